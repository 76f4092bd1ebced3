package headerview

import (
	"fmt"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/diagnostic"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/match"
)

// Error messages reported per file.
const (
	MsgMissingSubject    = "There must be 1 subject"
	MsgTooManySubjects   = "There can only be 1 subject"
	MsgDuplicateAlias    = "Duplicate field names are not allowed"
	MsgIncompleteSpan    = "Time span fields must specify an interval unit and count"
	MsgSubjectCollision  = "Field names must differ from the subject field name"
	msgMissingReference  = "time span field has no reference date"
	msgLookAlikeTemplate = "field names %q and %q differ only in spelling"
)

// Diagnostic codes.
const (
	CodeMissingSubject   = "subject_missing"
	CodeTooManySubjects  = "subject_multiple"
	CodeDuplicateAlias   = "alias_duplicate"
	CodeIncompleteSpan   = "mspan_interval_incomplete"
	CodeMissingReference = "mspan_reference_missing"
	CodeLookAlikeAlias   = "alias_look_alike"
	CodeSubjectCollision = "alias_subject_collision"
)

// Validate checks every header view and returns the error messages per
// filename. Only files with at least one violation appear; a valid input
// yields an empty map.
func Validate(hvs etl.HeaderViews) map[string][]string {
	return ValidateDiagnostics(hvs).ByFile()
}

// ValidateDiagnostics runs the same checks as Validate and returns them as
// structured diagnostics, including warnings that do not block merging.
func ValidateDiagnostics(hvs etl.HeaderViews) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, name := range hvs.Filenames() {
		hv := hvs[name]
		if !hv.Enabled {
			continue
		}

		checkFile(res, name, hv.EnabledFields())
	}

	res.Merge(checkSubjectCollisions(hvs))

	return res
}

// checkSubjectCollisions reports fields in any file that reuse the alias
// the merged subject field is named after.
func checkSubjectCollisions(hvs etl.HeaderViews) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	subject, ok := hvs.SubjectAlias()
	if !ok {
		return res
	}

	for _, name := range hvs.Filenames() {
		hv := hvs[name]
		if !hv.Enabled {
			continue
		}

		for _, f := range hv.EnabledFields() {
			if f.Purpose != etl.PurposeSubject && f.FieldAlias == subject {
				res.AddError(CodeSubjectCollision, MsgSubjectCollision, name, f.FieldAlias)
			}
		}
	}

	return res
}

func checkFile(res *diagnostic.Diagnostics, file string, fields []etl.Source) {
	checkSubjects(res, file, fields)
	checkAliases(res, file, fields)
	checkSpans(res, file, fields)
}

func checkSubjects(res *diagnostic.Diagnostics, file string, fields []etl.Source) {
	var subjects []string

	for _, f := range fields {
		if f.Purpose == etl.PurposeSubject {
			subjects = append(subjects, f.FieldAlias)
		}
	}

	switch {
	case len(subjects) == 0:
		res.AddError(CodeMissingSubject, MsgMissingSubject, file, "")
	case len(subjects) > 1:
		for _, alias := range subjects {
			res.AddError(CodeTooManySubjects, MsgTooManySubjects, file, alias)
		}
	}
}

func checkAliases(res *diagnostic.Diagnostics, file string, fields []etl.Source) {
	seen := make(map[string]int, len(fields))
	aliases := make([]string, 0, len(fields))

	for _, f := range fields {
		seen[f.FieldAlias]++
		if seen[f.FieldAlias] == 2 {
			res.AddError(CodeDuplicateAlias, MsgDuplicateAlias, file, f.FieldAlias)
		}

		aliases = append(aliases, f.FieldAlias)
	}

	for _, p := range match.LookAlikes(aliases, match.DefaultLookAlikeThreshold) {
		res.AddWarning(CodeLookAlikeAlias, fmt.Sprintf(msgLookAlikeTemplate, p.A, p.B), file, p.B)
	}
}

func checkSpans(res *diagnostic.Diagnostics, file string, fields []etl.Source) {
	for _, f := range fields {
		if f.Purpose != etl.PurposeMSpan {
			continue
		}

		if f.Time == nil || !f.Time.Interval.IsComplete() {
			res.AddError(CodeIncompleteSpan, MsgIncompleteSpan, file, f.FieldAlias)
		}

		if f.Time == nil || f.Time.Reference.Value == "" {
			res.AddWarning(CodeMissingReference, msgMissingReference, file, f.FieldAlias)
		}
	}
}
