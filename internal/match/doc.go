// Package match ranks known names by similarity to a misspelled one.
//
// Diagnostics use it to attach "did you mean" suggestions: an unknown type
// tag is compared against the supported scalar types, an unknown struct
// against the structs of the loaded package.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "field_one" ~ "FieldOne"
//   - Levenshtein: edit distance between two strings
//   - Rank / Suggest: score and filter candidate names
package match
