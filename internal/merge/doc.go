// Package merge reconciles the per-file declarations (sources) of one
// logical field into a single EtlField.
//
// Two error policies coexist:
//   - Strict: Combine, CombinePurposes and the temporal reconciler return an
//     error on missing input; callers guard against it.
//   - Tolerant: Merger.CombineLevels and Merger.CombineSymbolMaps log a
//     warning and substitute an empty value, so that one bad field does not
//     halt the pipeline.
//
// Folds run left to right within a field; independent fields may be merged
// concurrently (see Merger.Fields).
package merge
