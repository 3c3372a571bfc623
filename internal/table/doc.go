// Package table provides the CSV-backed record table that every enrichment
// pass reads and rewrites.
//
// A Table is an ordered list of records with named string fields, mirroring
// the source spreadsheet one-to-one: the header order is preserved across a
// load/save round trip, rows are never added, removed, or reordered, and a
// blank value is a legitimate value for every field. Loading tolerates a
// UTF-8 byte-order mark; saving never emits one.
package table
