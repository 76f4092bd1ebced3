// Package etltime reconciles the temporal metadata of time span (mspan)
// fields declared by different files.
//
// Files imported together may record dates in different formats and at
// different granularities. The canonical field publishes the earliest
// reference date, rendered in one output format, and the coarsest
// interval unit across its sources.
//
// Date formats use the tokens the workbench UI shows its users
// (YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, hh, mm, ss, SSS, A, Z); they are
// translated to Go reference layouts by Layout.
package etltime
