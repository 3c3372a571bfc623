package pipeline

import (
	"fmt"

	"github.com/vtcampfinder/campdata/internal/logger"
	"github.com/vtcampfinder/campdata/internal/table"
)

// Orchestrator runs enrichment passes over the camp table with
// read-modify-write semantics: the table is loaded once, mutated in memory,
// and written back in full with no rows added, removed, or reordered.
type Orchestrator struct {
	campPath string
	dryRun   bool
}

// New creates an Orchestrator for the camp table at campPath. In dry-run
// mode passes execute and stats accumulate, but nothing is written back,
// not even mid-pass checkpoints.
func New(campPath string, dryRun bool) *Orchestrator {
	return &Orchestrator{
		campPath: campPath,
		dryRun:   dryRun,
	}
}

// Run loads the table, applies the given passes in order, saves the table,
// and returns the accumulated statistics. The only fatal failures are
// reading or writing the table itself; per-row misses inside passes are
// reflected in the stats, never in the error.
func (o *Orchestrator) Run(passes ...Pass) (*Stats, error) {
	t, err := table.Load(o.campPath)
	if err != nil {
		return nil, fmt.Errorf("loading camp table: %w", err)
	}

	checkpoint := o.checkpointer()
	stats := &Stats{}
	for _, pass := range passes {
		logger.Info("pass starting", logger.Fields{
			"pass": pass.Name,
			"rows": len(t.Records),
		})
		if err := pass.Run(t, stats, checkpoint); err != nil {
			return nil, fmt.Errorf("running pass %s: %w", pass.Name, err)
		}
	}
	stats.RowsProcessed = len(t.Records)

	if o.dryRun {
		logger.Info("dry run, table not saved", nil)
		return stats, nil
	}
	if err := t.Save(o.campPath); err != nil {
		return nil, fmt.Errorf("saving camp table: %w", err)
	}
	return stats, nil
}

func (o *Orchestrator) checkpointer() Checkpointer {
	if o.dryRun {
		return func(*table.Table) error { return nil }
	}
	return func(t *table.Table) error {
		if err := t.Save(o.campPath); err != nil {
			return fmt.Errorf("checkpointing camp table: %w", err)
		}
		logger.Info("progress checkpointed", logger.Fields{"path": o.campPath})
		return nil
	}
}
