package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tdransfield/wikipedia-analysis/internal/ignore"
	"github.com/tdransfield/wikipedia-analysis/internal/parsedriver"
)

func runParse(ctx context.Context, logger *logrus.Entry, args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)

	output := fs.String("output", "", "path to write the edge-list TSV to (required)")
	ignoreDir := fs.String("ignore-dir", "", "directory of title lists to exclude as both source and target")
	reverse := fs.Bool("reverse", false, "emit the transpose graph (target<TAB>source)")
	fs.BoolVar(reverse, "r", false, "shorthand for --reverse")
	workers := fs.Int("workers", 0, "size of the edge-extraction worker pool (0 = runtime.NumCPU())")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("parse requires exactly one positional DUMP_PATH argument")
	}

	var ignoreSet *ignore.Set

	if *ignoreDir != "" {
		var err error

		ignoreSet, err = ignore.Load(*ignoreDir)
		if err != nil {
			return err
		}
	}

	d, err := parsedriver.New(parsedriver.Config{
		DumpPath:   fs.Arg(0),
		OutputPath: *output,
		Ignore:     ignoreSet,
		Reverse:    *reverse,
		NumWorkers: *workers,
		Logger:     logger.WithField("stage", "parse"),
	})
	if err != nil {
		return err
	}

	stats, err := d.Run(ctx)
	if err != nil {
		return err
	}

	logger.
		WithField("pages_scanned", stats.PagesScanned).
		WithField("edges_written", stats.EdgesWritten).
		Info("parse stage finished")

	return nil
}
