// Command wikigraph turns a MediaWiki XML dump into a directed hyperlink
// graph and runs structural analyses over it, as two one-shot subcommands:
// parse and analyze.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

const appName = "wikigraph"

func main() {
	host, _ := os.Hostname()

	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"host": host,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Listen for a termination signal and cancel the shared context so the
	// parse stage's in-flight pipeline unwinds instead of leaving a
	// half-written temp file behind.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGHUP)

		select {
		case s := <-signalChan:
			logger.WithField("signal", s.String()).Info("shutting down due to os signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	var err error

	switch os.Args[1] {
	case "parse":
		err = runParse(ctx, logger, os.Args[2:])
	case "analyze":
		err = runAnalyze(logger, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wikigraph <parse|analyze> [flags]")
}
