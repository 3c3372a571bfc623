// Package pipeline orchestrates the enrichment passes over the camp table.
//
// Each pass is independent, idempotent, and fill-if-blank: a field that
// already holds a value is never overwritten, so any pass can be re-run at
// any time without damage. The orchestrator loads the full table once,
// applies the requested passes in order, and writes the full table back
// preserving header order and row order. Per-run change counts accumulate in
// an explicit Stats value; there is no package-level mutable state.
package pipeline
