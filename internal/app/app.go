// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"derep-core/derep"
	"derep-core/msa"
	"derep/internal/cli"
	"derep/internal/logger"
	"derep/internal/metadata"
	"derep/internal/version"
	"derep/internal/writers"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/cheggaaa/pb.v1"
)

// RunContext parses argv, runs the selection, and returns the process exit
// code: 0 on success, 2 on usage errors, 1 on runtime failures, 130 when the
// context was cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("derep")
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "derep version %s\n", version.Version)
		return 0
	}

	level := zapcore.InfoLevel
	if opts.Quiet {
		level = zapcore.WarnLevel
	}
	logger.Init(level, stderr)
	defer func() { _ = logger.Sync() }()

	if err := run(parent, opts, stderr); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 130
		}
		logger.Error("Representative selection failed.", zap.Error(err))
		return 1
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, stderr io.Writer) error {
	arSeqs, err := msa.Read(opts.ArMSA)
	if err != nil {
		return fmt.Errorf("archaeal MSA: %w", err)
	}
	bacSeqs, err := msa.Read(opts.BacMSA)
	if err != nil {
		return fmt.Errorf("bacterial MSA: %w", err)
	}
	logger.Info("Identified archaeal sequences in MSA.", zap.Int("count", len(arSeqs)))
	logger.Info("Identified bacterial sequences in MSA.", zap.Int("count", len(bacSeqs)))

	if len(arSeqs) != len(bacSeqs) {
		return fmt.Errorf("archaeal and bacterial MSAs do not contain the same number of sequences: %d vs %d",
			len(arSeqs), len(bacSeqs))
	}
	for id := range arSeqs {
		if _, ok := bacSeqs[id]; !ok {
			return fmt.Errorf("genome %s is in the archaeal MSA but not the bacterial MSA", id)
		}
	}

	initialReps, err := readRepList(opts.RepsFile, arSeqs)
	if err != nil {
		return err
	}
	logger.Info("Identified initial representatives.", zap.Int("count", len(initialReps)))

	meta, err := metadata.Load(opts.MetadataFile)
	if err != nil {
		return fmt.Errorf("metadata: %w", err)
	}

	quality := make(map[string]float64, len(meta.Quality))
	for id, q := range meta.Quality {
		quality[id] = q.Score()
	}

	missing := 0
	for id := range arSeqs {
		if _, ok := meta.Quality[id]; !ok {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d genomes have sequence data but no genome quality information", missing)
	}

	for id := range initialReps {
		if quality[id] < opts.MinQuality {
			return fmt.Errorf("representative %s does not meet the minimum quality threshold: %.2f < %.2f",
				id, quality[id], opts.MinQuality)
		}
	}

	// Candidate pool: everything with sequence data that is not already a
	// representative and is good enough to become one.
	candidates := make(derep.Set)
	for id := range arSeqs {
		if initialReps.Contains(id) {
			continue
		}
		if quality[id] >= opts.MinQuality {
			candidates.Add(id)
		}
	}

	ordered, err := derep.Order(candidates, quality)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("Comparing genomes to representatives.",
		zap.Int("genomes", len(ordered)),
		zap.Int("representatives", len(initialReps)),
		zap.Float64("threshold", opts.Threshold))

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	cfg := derep.Config{Threshold: opts.Threshold, Threads: threads}
	var bar *pb.ProgressBar
	if !opts.Quiet && len(ordered) > 0 {
		bar = pb.New(len(ordered))
		bar.Output = stderr
		bar.Start()
		cfg.Progress = func(done, total int) { bar.Set(done) }
	}

	idx := derep.NewGenusIndex(meta.Taxonomy, initialReps)
	sel := derep.NewSelector(cfg, arSeqs, bacSeqs)
	final, err := sel.Run(initialReps, ordered, idx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	logger.Info("Identified representatives.", zap.Int("count", len(final)))

	if err := writers.WriteRepListFile(opts.OutputFile, final); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readRepList reads the initial representative list: one genome ID per line,
// first tab-delimited field, '#' lines ignored. Every entry must have
// sequence data.
func readRepList(path string, seqs map[string]string) (derep.Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	reps := make(derep.Set)
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id := line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			id = line[:i]
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seqs[id]; !ok {
			return nil, fmt.Errorf("representative genome %s has no sequence data", id)
		}
		reps.Add(id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reps, nil
}
