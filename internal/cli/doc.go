// Package cli implements the command-line interface for campdata.
//
// The cli package provides the Cobra-based CLI with one subcommand per
// enrichment pass (backfill, normalize-times, geocode, fetch-descriptions),
// an enrich command that runs every pass in sequence, and a convert command
// that projects the table into the front end's data file. It coordinates the
// config, pipeline, geocode, describe, and derive packages and prints each
// run's aggregate change counts.
package cli
