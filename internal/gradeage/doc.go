// Package gradeage maps between student ages and K-12 grades.
//
// The mapping is built once per run from a small reference CSV of
// (Grade, Start Age, End Age) rows and is read-only afterwards. Inference is
// fill-if-blank in both directions: a missing grade is derived from a known
// age and a missing age from a known grade, but a value already present is
// never touched, so repeated runs are no-ops.
package gradeage
