// internal/cachecli/options.go
package cachecli

import (
	"errors"
	"flag"
	"fmt"

	"derep/internal/version"
)

// Options holds the derep-meta flags.
type Options struct {
	MetadataFile string
	DBFile       string
	Quiet        bool
	Version      bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: compile a genome metadata TSV into a sqlite cache for derep

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.MetadataFile, "metadata", "", "genome metadata TSV (.gz ok) [*]")
	fs.StringVar(&opt.DBFile, "db", "", "sqlite cache file to create [*]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress info logging [false]")
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

	if opt.MetadataFile == "" {
		return opt, errors.New("--metadata is required")
	}
	if opt.DBFile == "" {
		return opt, errors.New("--db is required")
	}
	return opt, nil
}
