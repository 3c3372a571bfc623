package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtcampfinder/campdata/internal/config"
	"github.com/vtcampfinder/campdata/internal/derive"
	"github.com/vtcampfinder/campdata/internal/describe"
	"github.com/vtcampfinder/campdata/internal/geocode"
	"github.com/vtcampfinder/campdata/internal/gradeage"
	"github.com/vtcampfinder/campdata/internal/logger"
	"github.com/vtcampfinder/campdata/internal/pipeline"
	"github.com/vtcampfinder/campdata/internal/table"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagCampCSV   string
	flagGradesCSV string
	flagOut       string
	flagVerbose   bool
	flagDryRun    bool
)

// cfg is resolved once per invocation by setup.
var cfg *config.Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campdata",
		Short: "Normalize and enrich the Vermont summer camp directory data",
		Long: `Repairs and enriches the summer camp spreadsheet: backfills grade and age
ranges from each other, canonicalizes start/end times, resolves vague
locations into verified street addresses, fetches missing descriptions from
camp websites, and converts the result into the directory's data file.

Every pass is fill-if-blank and idempotent: existing values are never
overwritten and re-running a pass on already-normalized data changes nothing.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	pf.StringVar(&flagCampCSV, "camp-csv", "", "Camp table CSV (overrides config)")
	pf.StringVar(&flagGradesCSV, "grades-csv", "", "Age-to-grade reference CSV (overrides config)")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and per-row progress")
	pf.BoolVar(&flagDryRun, "dry-run", false, "Run passes and report counts without saving the table")

	cmd.AddCommand(
		newBackfillCmd(),
		newNormalizeTimesCmd(),
		newGeocodeCmd(),
		newFetchDescriptionsCmd(),
		newEnrichCmd(),
		newConvertCmd(),
	)
	return cmd
}

// setup resolves configuration and logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if flagCampCSV != "" {
		cfg.Data.CampCSV = flagCampCSV
	}
	if flagGradesCSV != "" {
		cfg.Data.GradesCSV = flagGradesCSV
	}

	level := map[string]logger.Level{
		"debug": logger.LevelDebug,
		"info":  logger.LevelInfo,
		"warn":  logger.LevelWarn,
		"error": logger.LevelError,
	}[cfg.Logging.Level]
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))
	return nil
}

func newBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Fill missing grades from ages and ages from grades",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := backfillPass()
			if err != nil {
				return err
			}
			return runPasses(pass)
		},
	}
}

func newNormalizeTimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-times",
		Short: "Canonicalize start and end times to HH:MM AM/PM",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(pipeline.NormalizeTimes())
		},
	}
}

func newGeocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geocode",
		Short: "Resolve vague locations into verified street addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(geocodePass())
		},
	}
}

func newFetchDescriptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-descriptions",
		Short: "Fetch missing descriptions from camp websites",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(fetchPass())
		},
	}
}

func newEnrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Run every enrichment pass in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			backfill, err := backfillPass()
			if err != nil {
				return err
			}
			return runPasses(backfill, pipeline.NormalizeTimes(), geocodePass(), fetchPass())
		},
	}
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the camp table into the front end data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := table.Load(cfg.Data.CampCSV)
			if err != nil {
				return fmt.Errorf("loading camp table: %w", err)
			}

			programs := derive.Convert(t)
			out := cfg.Data.OutputJS
			if flagOut != "" {
				out = flagOut
			}
			if err := derive.WriteDataJS(out, programs); err != nil {
				return err
			}

			fmt.Printf("Written %d programs to %s\n", len(programs), out)
			derive.Summarize(programs).WriteReport(os.Stdout)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagOut, "out", "", "Output data file (overrides config)")
	return cmd
}

// backfillPass loads the reference table and builds the grade/age pass.
func backfillPass() (pipeline.Pass, error) {
	ga, err := gradeage.LoadTable(cfg.Data.GradesCSV)
	if err != nil {
		return pipeline.Pass{}, err
	}
	return pipeline.BackfillGradeAge(ga), nil
}

func geocodePass() pipeline.Pass {
	client := geocode.NewClientWithBaseURL(cfg.Geocoding.BaseURL)
	resolver := geocode.NewResolver(client, cfg.GeocodeDelay())
	return pipeline.EnrichLocations(resolver, progressFunc())
}

func fetchPass() pipeline.Pass {
	return pipeline.FetchDescriptions(describe.NewFetcher(), cfg.FetchDelay(), cfg.Fetching.CheckpointEvery, progressFunc())
}

func progressFunc() pipeline.ProgressFunc {
	if !flagVerbose {
		return nil
	}
	return printProgress
}

// runPasses executes the passes over the camp table and prints the report.
func runPasses(passes ...pipeline.Pass) error {
	orchestrator := pipeline.New(cfg.Data.CampCSV, flagDryRun)
	stats, err := orchestrator.Run(passes...)
	if err != nil {
		return err
	}
	stats.WriteReport(os.Stdout)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
