// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"cgmatch-core/hiercc"
	"cgmatch-core/profile"
	"cgmatch-core/reftable"
	"cgmatch/internal/cli"
	"cgmatch/internal/config"
	"cgmatch/internal/logging"
	"cgmatch/internal/output"
	"cgmatch/internal/version"
)

// RunContext executes one full matching run. Exit codes: 0 success,
// 2 usage/startup error, 3 runtime error, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("cgmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "cgmatch version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.ChunkSize > 0 {
		cfg.Scheme.ChunkSize = opts.ChunkSize
	}

	logger, err := logging.New(cfg.Logging.Level, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	// All inputs are local static files; fail before any isolate work.
	for _, path := range []string{opts.Input, opts.Ref, opts.HierCC} {
		if _, err := os.Stat(path); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	loci, err := reftable.ReadHeader(opts.Ref)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	table, err := hiercc.Load(opts.HierCC)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	queries, err := profile.LoadQueries(opts.Input, loci)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logger.Info("run starting",
		zap.Int("isolates", len(queries)),
		zap.Int("loci", len(loci)),
		zap.Int("chunk_size", cfg.Scheme.ChunkSize),
		zap.Int("hiercc_types", table.Len()))

	start := time.Now()
	rows, misses, err := runAll(parent, runParams{
		queries: queries,
		scanner: &reftable.Scanner{
			Path:      opts.Ref,
			ChunkSize: cfg.Scheme.ChunkSize,
			Loci:      len(loci),
		},
		table:      table,
		threads:    opts.Threads,
		confidence: opts.Confidence,
		logger:     logger,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if misses > 0 {
		logger.Warn("matched types missing from the hierCC table",
			zap.Int("isolates_affected", misses))
	}
	logger.Info("run finished",
		zap.Int("isolates", len(rows)),
		zap.Duration("took", time.Since(start)))

	if opts.Output == "-" {
		err = output.Write(stdout, rows, cfg.Scheme.Levels, opts.Header, opts.Confidence)
		if output.IsBrokenPipe(err) {
			return 0
		}
	} else {
		err = output.WriteFile(opts.Output, rows, cfg.Scheme.Levels, opts.Header, opts.Confidence)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
