package cli

import (
	"fmt"
	"io"

	"github.com/alnah/go-certgen"
)

// printUsage prints the usage message for the command.
func printUsage(w io.Writer, name string, mode certgen.Mode) {
	fmt.Fprintf(w, "Usage: %s [flags]\n", name)
	fmt.Fprintln(w)
	if mode == certgen.ModeFull {
		fmt.Fprintln(w, "Generate name-and-dates certificates (PNG and PDF) from a spreadsheet.")
	} else {
		fmt.Fprintln(w, "Generate name-only certificates (PNG) from a spreadsheet.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -i, --participants <path>  Participants spreadsheet (.xlsx, .csv)")
	fmt.Fprintln(w, "      --sheet <name>         Worksheet (default: first)")
	fmt.Fprintln(w, "  -t, --template <path>      Template image")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "  -v, --verbose              Debug logging")
	fmt.Fprintln(w, "  -q, --quiet                No console logging (log file only)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --print-config         Print the effective config as YAML and exit")
	fmt.Fprintln(w, "      --version              Print version and exit")
	fmt.Fprintln(w, "  -h, --help                 Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CERTGEN_CONFIG, CERTGEN_PARTICIPANTS, CERTGEN_TEMPLATE,")
	fmt.Fprintln(w, "  CERTGEN_OUTPUT_DIR, CERTGEN_LOG_LEVEL, CERTGEN_LOG_FILE")
	fmt.Fprintln(w, "  A .env file in the working directory is read first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 error, 2 usage/config, 3 input, 4 some records failed, 130 interrupted")
}
