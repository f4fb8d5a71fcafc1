// internal/cacheapp/app.go
package cacheapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"derep/internal/cachecli"
	"derep/internal/logger"
	"derep/internal/metadata"
	"derep/internal/version"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RunContext builds the metadata cache and returns the process exit code.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cachecli.NewFlagSet("derep-meta")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := cachecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "derep-meta version %s\n", version.Version)
		return 0
	}

	level := zapcore.InfoLevel
	if opts.Quiet {
		level = zapcore.WarnLevel
	}
	logger.Init(level, stderr)
	defer func() { _ = logger.Sync() }()

	n, err := metadata.BuildCache(opts.MetadataFile, opts.DBFile)
	if err != nil {
		logger.Error("Cache build failed.", zap.Error(err))
		return 1
	}
	logger.Info("Wrote metadata cache.",
		zap.String("db", opts.DBFile), zap.Int("genomes", n))
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
