// Package match compares field aliases across header views.
//
// Aliases typed by hand for different files often differ only in case,
// separators or a stray character ("Store ID", "store_id", "StoreId").
// Those are distinct names to the validator, which checks exact
// uniqueness, but they usually mean the user intended one field.
//
// Key functions:
//   - NormalizeAlias: case-folds and strips separators after splitting CamelCase
//   - Levenshtein: computes edit distance between strings
//   - LookAlikes: reports alias pairs that are distinct but nearly identical
package match
