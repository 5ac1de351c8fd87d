package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tdransfield/wikipedia-analysis/internal/analyze"
)

func runAnalyze(logger *logrus.Entry, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	input := fs.String("input", "", "path to the edge-list TSV produced by parse (required)")
	output := fs.String("output", "", "path to write the report TSV to (required)")
	topK := fs.Int("top", 0, "most-linked: truncate output to the top K rows (0 = full ranking)")
	useMostLinked := fs.Int("use-most-linked", 0, "step-groups: select the top N nodes by degree as roots")
	useRandom := fs.Int("use-random", 0, "step-groups: sample N roots uniformly without replacement")
	seed := fs.Int64("seed", 0, "step-groups: PRNG seed for --use-random")
	rootsFile := fs.String("roots-file", "", "step-groups: one root title per line")
	workers := fs.Int("workers", 0, "size of the histogram/BFS worker pool (0 = runtime.NumCPU())")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("analyze requires exactly one positional analysis selector " +
			"(link-histogram|most-linked|step-groups)")
	}

	var selected analyze.Analysis

	switch fs.Arg(0) {
	case "link-histogram":
		selected = analyze.AnalysisLinkHistogram
	case "most-linked":
		selected = analyze.AnalysisMostLinked
	case "step-groups":
		selected = analyze.AnalysisStepGroups
	default:
		return fmt.Errorf("unknown analysis %q", fs.Arg(0))
	}

	seedWasSet := false

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedWasSet = true
		}
	})

	if *useRandom > 0 && !seedWasSet {
		*seed = time.Now().UnixNano()
		logger.WithField("seed", *seed).Info("no --seed given, derived one from wall-clock time")
	} else if *useRandom > 0 {
		logger.WithField("seed", *seed).Info("using the given --seed for random roots")
	}

	d, err := analyze.New(analyze.Config{
		InputPath:  *input,
		OutputPath: *output,
		Analysis:   selected,
		TopK:       *topK,
		NumWorkers: *workers,
		Roots: analyze.RootSelection{
			UseMostLinked: *useMostLinked,
			UseRandom:     *useRandom,
			RootsFile:     *rootsFile,
			Seed:          *seed,
		},
		Logger: logger.WithField("stage", "analyze"),
	})
	if err != nil {
		return err
	}

	stats, err := d.Run()
	if err != nil {
		return err
	}

	logger.
		WithField("rows_written", stats.RowsWritten).
		WithField("unknown_roots", stats.UnknownRoots).
		Info("analyze stage finished")

	return nil
}
