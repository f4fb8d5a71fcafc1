// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"derep/internal/version"

	"github.com/spf13/viper"
)

// Options holds all CLI flags.
type Options struct {
	// Inputs
	RepsFile     string
	ArMSA        string
	BacMSA       string
	MetadataFile string

	// Selection parameters
	Threshold  float64
	MinQuality float64

	// Performance
	Threads int

	// Output
	OutputFile string

	Config  string
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: greedy AAI-based selection of representative genomes

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Values from an optional --config file fill in flags the command line left
// unset; explicit flags always win.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.RepsFile, "reps", "", "file listing initial representative genome IDs [*]")
	fs.StringVar(&opt.ArMSA, "ar-msa", "", "archaeal marker-gene MSA (FASTA, .gz ok) [*]")
	fs.StringVar(&opt.BacMSA, "bac-msa", "", "bacterial marker-gene MSA (FASTA, .gz ok) [*]")
	fs.StringVar(&opt.MetadataFile, "metadata", "", "genome metadata: TSV or sqlite cache built by derep-meta [*]")

	// Selection parameters
	fs.Float64Var(&opt.Threshold, "threshold", 0.95, "AAI threshold for clustering to a representative [0.95]")
	fs.Float64Var(&opt.MinQuality, "min-quality", 50.0, "minimum quality (completeness - contamination) for a representative [50]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "workers for the comparison scan (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.OutputFile, "output", "", "output file for the final representative list [*]")

	fs.StringVar(&opt.Config, "config", "", "YAML config file supplying defaults for unset flags")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress info logging and the progress bar [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.Config != "" {
		if err := applyConfig(fs, opt.Config); err != nil {
			return opt, err
		}
	}

	// Validation
	switch {
	case opt.RepsFile == "":
		return opt, errors.New("--reps is required")
	case opt.ArMSA == "":
		return opt, errors.New("--ar-msa is required")
	case opt.BacMSA == "":
		return opt, errors.New("--bac-msa is required")
	case opt.MetadataFile == "":
		return opt, errors.New("--metadata is required")
	case opt.OutputFile == "":
		return opt, errors.New("--output is required")
	}
	if opt.Threshold <= 0 || opt.Threshold > 1 {
		return opt, errors.New("--threshold must be in (0, 1]")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}

// applyConfig overlays config-file values onto flags not set on the command
// line. Config keys use the flag names.
func applyConfig(fs *flag.FlagSet, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil || explicit[f.Name] || !v.IsSet(f.Name) {
			return
		}
		if e := fs.Set(f.Name, v.GetString(f.Name)); e != nil {
			err = fmt.Errorf("config value for %s: %v", f.Name, e)
		}
	})
	return err
}
