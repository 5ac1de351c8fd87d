/*
	parsedriver orchestrates the parse stage: a sequential title/redirect
	scan followed by a parallel wikitext-to-edge extraction pass built on
	top of internal/pipeline.
*/
package parsedriver

import (
	"fmt"
	"io"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/tdransfield/wikipedia-analysis/internal/ignore"
)

// Config configures a parse-stage run.
type Config struct {
	// DumpPath is the path to the source MediaWiki XML dump (optionally
	// bzip2- or gzip-compressed).
	DumpPath string

	// OutputPath is the path the resulting edge-list TSV is written to.
	OutputPath string

	// Ignore excludes matching titles as both edge sources and targets. A
	// nil set excludes nothing.
	Ignore *ignore.Set

	// Reverse emits the transpose graph (target<TAB>source) instead of
	// (source<TAB>target).
	Reverse bool

	// NumWorkers is the size of the worker pool used for the parallel
	// edge-extraction pass. If not specified, runtime.NumCPU() is used.
	NumWorkers int

	// Logger receives warnings for malformed pages and a summary at the end
	// of the run, which includes the count of unresolved redirect chains. If
	// not specified an output-discarding logger is used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error

	if cfg.DumpPath == "" {
		err = multierror.Append(err, fmt.Errorf("dump path not provided"))
	}

	if cfg.OutputPath == "" {
		err = multierror.Append(err, fmt.Errorf("output path not provided"))
	}

	if cfg.Ignore == nil {
		cfg.Ignore = &ignore.Set{}
	}

	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
