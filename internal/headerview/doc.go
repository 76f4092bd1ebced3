// Package headerview checks the structural rules a set of header views must
// satisfy before their fields can be merged.
//
// Only enabled fields of enabled header views participate. Per file:
//   - exactly one subject field
//   - unique field aliases
//   - every time span field carries a complete interval (unit and count)
//
// Every violation is reported; the checks never stop at the first problem
// so that all of a file's problems can be shown at once.
package headerview
