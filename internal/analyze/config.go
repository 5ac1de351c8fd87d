/*
	analyze evaluates the three structural analyses over a loaded
	edgegraph.Graph: per-node degree distribution, top-K degree ranking, and
	per-root breadth-first frontier sizes.
*/
package analyze

import (
	"fmt"
	"io"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// Analysis selects which of the three analyses a Run invokes.
type Analysis string

const (
	AnalysisLinkHistogram Analysis = "link-histogram"
	AnalysisMostLinked    Analysis = "most-linked"
	AnalysisStepGroups    Analysis = "step-groups"
)

// RootSelection chooses the root set for step-groups. Exactly one of
// UseMostLinked, UseRandom, RootsFile must be set (§4.2).
type RootSelection struct {
	UseMostLinked int
	UseRandom     int
	RootsFile     string
	Seed          int64
}

func (r RootSelection) validate() error {
	set := 0
	if r.UseMostLinked > 0 {
		set++
	}

	if r.UseRandom > 0 {
		set++
	}

	if r.RootsFile != "" {
		set++
	}

	if set != 1 {
		return fmt.Errorf("%w: step-groups requires exactly one of --use-most-linked, --use-random, --roots-file", stageerr.ErrBadArgument)
	}

	return nil
}

// Config configures a single analyze-stage run.
type Config struct {
	// InputPath is the edge-list TSV produced by the parse stage.
	InputPath string

	// OutputPath is the path the resulting report TSV is written to.
	OutputPath string

	// Analysis selects which report to produce.
	Analysis Analysis

	// TopK truncates most-linked output to the top K rows. Zero means the
	// full ranking is emitted.
	TopK int

	// Roots selects the BFS root set for step-groups. Ignored otherwise.
	Roots RootSelection

	// NumWorkers bounds the parallelism used for the degree histogram and
	// the per-root BFS pool. If not specified, runtime.NumCPU() is used.
	NumWorkers int

	// Logger receives warnings for unknown roots and a run summary. If not
	// specified an output-discarding logger is used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error

	if cfg.InputPath == "" {
		err = multierror.Append(err, fmt.Errorf("input path not provided"))
	}

	if cfg.OutputPath == "" {
		err = multierror.Append(err, fmt.Errorf("output path not provided"))
	}

	switch cfg.Analysis {
	case AnalysisLinkHistogram, AnalysisMostLinked:
	case AnalysisStepGroups:
		if rootsErr := cfg.Roots.validate(); rootsErr != nil {
			err = multierror.Append(err, rootsErr)
		}
	default:
		err = multierror.Append(err, fmt.Errorf("unknown analysis %q", cfg.Analysis))
	}

	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
