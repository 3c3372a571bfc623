// Package normalize holds the pure field-level repair rules for camp records.
//
// Every function here is total: input that does not match the expected shape
// is returned untouched (or reported absent), never rejected with an error.
// The rules are deliberately dataset-specific (K-12 grades, Vermont camps,
// US cost conventions) and several keep known quirks of the curated data
// (see ParseCost's period priority) rather than guessing at intent.
package normalize
