package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-certgen/internal/config"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds the command-line flags shared by both commands.
type cliFlags struct {
	config       string
	participants string
	sheet        string
	template     string
	outputDir    string
	verbose      bool
	quiet        bool
	printConfig  bool
	version      bool
	help         bool
}

func parseFlags(name string, args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.participants, "participants", "i", "", "participants spreadsheet (.xlsx or .csv)")
	fs.StringVar(&f.sheet, "sheet", "", "worksheet name")
	fs.StringVarP(&f.template, "template", "t", "", "template image")
	fs.StringVarP(&f.outputDir, "output", "o", "", "output directory")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "no console logging")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if f.verbose && f.quiet {
		return nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage)
	}
	return f, nil
}

// mergeFlags applies flag values over cfg. Only flags that were given
// change anything.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.participants != "" {
		cfg.Files.Participants = f.participants
	}
	if f.sheet != "" {
		cfg.Files.Sheet = f.sheet
	}
	if f.template != "" {
		cfg.Files.Template = f.template
	}
	if f.outputDir != "" {
		cfg.Files.OutputDir = f.outputDir
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if f.quiet {
		cfg.Log.Console = false
	}
}
