// Package diagnostic provides structured errors and warnings collected
// while checking header views.
//
// Key capabilities:
//   - Per-file, per-field error and warning records with stable codes
//   - Additive collection: checks never stop at the first problem
//   - Grouping of error messages by file for display
package diagnostic
