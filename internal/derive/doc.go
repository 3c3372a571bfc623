// Package derive projects the source camp table into the typed program
// records consumed by the directory front end.
//
// The projection is one-way: derived programs are computed fresh from the
// table on every conversion and never written back. Rows with neither an
// organization nor a camp name are dropped from the derived set only; the
// source table is untouched. Ids are assigned in source row order, starting
// at 1.
package derive
