package parsedriver

import (
	"context"

	"github.com/tdransfield/wikipedia-analysis/internal/dumpio"
	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
)

// Driver runs the two-pass parse pipeline described in §4.1: a sequential
// title/redirect scan, then a parallel wikitext-to-edge extraction pass
// assembled from internal/pipeline stage runners.
type Driver struct {
	cfg   Config
	stats Stats
}

// New validates cfg, applying defaults where the config allows them, and
// returns a ready-to-run Driver.
func New(cfg Config) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Driver{cfg: cfg}, nil
}

// Run executes the parse stage to completion and returns run statistics.
// The output file is only ever created (via atomic rename) if the whole
// dump was consumed without a fatal error.
func (d *Driver) Run(ctx context.Context) (Stats, error) {
	nodes, redirects, err := d.firstPass()
	if err != nil {
		return d.stats, err
	}

	d.cfg.Logger.
		WithField("articles", nodes.Len()).
		WithField("redirects", redirects.Len()).
		Info("first pass complete")

	r, err := dumpio.Open(d.cfg.DumpPath)
	if err != nil {
		return d.stats, err
	}
	defer r.Close()

	w, err := edgegraph.NewWriter(d.cfg.OutputPath)
	if err != nil {
		return d.stats, err
	}

	cs := &counters{}
	src := &pageSource{
		splitter: dumpio.NewSplitter(r),
		counters: cs,
		logger:   d.cfg.Logger,
	}
	sink := &writerSink{w: w, reverse: d.cfg.Reverse, counters: cs}
	extractor := &edgeExtractor{
		nodes:     nodes,
		redirects: redirects,
		ignore:    d.cfg.Ignore,
		counters:  cs,
	}

	p := pipeline.New(pipeline.NewFixedWorkerPool(extractor, d.cfg.NumWorkers))

	if err := p.Execute(ctx, src, sink); err != nil {
		w.Abort()

		return d.stats, err
	}

	// A cancelled context stops the source early without a pipeline error;
	// the dump was not fully consumed, so the output must not be published.
	if err := ctx.Err(); err != nil {
		w.Abort()

		return d.stats, err
	}

	if err := w.Close(); err != nil {
		return d.stats, err
	}

	d.stats.PagesScanned += int(cs.pagesScanned.Load())
	d.stats.MalformedPages += int(cs.malformedPages.Load())
	d.stats.RedirectOverflows += int(cs.redirectOverflows.Load())
	d.stats.EdgesWritten = int(cs.edgesWritten.Load())

	d.cfg.Logger.
		WithField("edges", d.stats.EdgesWritten).
		WithField("malformed_pages", d.stats.MalformedPages).
		WithField("redirect_overflows", d.stats.RedirectOverflows).
		Info("parse complete")

	return d.stats, nil
}
