// internal/cli/options_test.go
package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func baseArgs() []string {
	return []string{
		"--reps", "reps.tsv",
		"--ar-msa", "ar.faa",
		"--bac-msa", "bac.faa",
		"--metadata", "meta.tsv",
		"--output", "out.tsv",
	}
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, baseArgs()...)
	if o.Threshold != 0.95 || o.MinQuality != 50.0 || o.Threads != 0 {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestErrorMissingInputs(t *testing.T) {
	for _, drop := range []string{"--reps", "--ar-msa", "--bac-msa", "--metadata", "--output"} {
		var args []string
		base := baseArgs()
		for i := 0; i < len(base); i += 2 {
			if base[i] == drop {
				continue
			}
			args = append(args, base[i], base[i+1])
		}
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error when %s is missing", drop)
		}
	}
}

func TestErrorBadThreshold(t *testing.T) {
	for _, v := range []string{"0", "1.5", "-0.2"} {
		args := append(baseArgs(), "--threshold", v)
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for threshold %s", v)
		}
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version parse: %v %+v", err, o)
	}
}

func TestConfigFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "derep.yaml")
	data := "threshold: 0.9\nmin-quality: 60\nreps: from-config.tsv\n"
	if err := os.WriteFile(cfg, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// --threshold on the command line beats the config; the rest fall through.
	args := []string{
		"--config", cfg,
		"--threshold", "0.97",
		"--ar-msa", "ar.faa",
		"--bac-msa", "bac.faa",
		"--metadata", "meta.tsv",
		"--output", "out.tsv",
	}
	o := mustParse(t, args...)
	if o.Threshold != 0.97 {
		t.Errorf("explicit flag should win, got %v", o.Threshold)
	}
	if o.MinQuality != 60 {
		t.Errorf("config min-quality not applied, got %v", o.MinQuality)
	}
	if o.RepsFile != "from-config.tsv" {
		t.Errorf("config reps not applied, got %q", o.RepsFile)
	}
}
