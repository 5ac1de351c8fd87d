package analyze

import (
	"fmt"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// Stats summarizes one analyze-stage run.
type Stats struct {
	NodesLoaded  int
	EdgesLoaded  int
	RowsWritten  int
	UnknownRoots int
}

// Driver runs a single analysis over a loaded edgegraph.Graph (§4.2).
type Driver struct {
	cfg Config
}

// New validates cfg, applying defaults where the config allows them, and
// returns a ready-to-run Driver.
func New(cfg Config) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Driver{cfg: cfg}, nil
}

// Run loads the edge list, evaluates the configured analysis, and writes
// the report. The output file is only ever created (via atomic rename) if
// the analysis completed without error.
func (d *Driver) Run() (Stats, error) {
	g, err := edgegraph.Load(d.cfg.InputPath)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{NodesLoaded: g.NumNodes(), EdgesLoaded: g.NumEdges()}

	switch d.cfg.Analysis {
	case AnalysisLinkHistogram:
		rows := Histogram(g, d.cfg.NumWorkers)
		if err := writeHistogram(d.cfg.OutputPath, rows); err != nil {
			return stats, err
		}

		stats.RowsWritten = len(rows)

	case AnalysisMostLinked:
		rows := RankByDegree(g, d.cfg.TopK)
		if err := writeMostLinked(d.cfg.OutputPath, rows); err != nil {
			return stats, err
		}

		stats.RowsWritten = len(rows)

	case AnalysisStepGroups:
		roots, err := SelectRoots(g, d.cfg.Roots)
		if err != nil {
			return stats, err
		}

		rows := StepGroups(g, roots, d.cfg.NumWorkers, d.cfg.Logger)
		if err := writeStepGroups(d.cfg.OutputPath, rows); err != nil {
			return stats, err
		}

		for _, r := range rows {
			if r.Unknown {
				stats.UnknownRoots++
			}
		}

		stats.RowsWritten = len(rows)

	default:
		return stats, fmt.Errorf("%w: unknown analysis %q", stageerr.ErrBadArgument, d.cfg.Analysis)
	}

	d.cfg.Logger.
		WithField("nodes", stats.NodesLoaded).
		WithField("edges", stats.EdgesLoaded).
		WithField("rows_written", stats.RowsWritten).
		Info("analyze complete")

	return stats, nil
}
