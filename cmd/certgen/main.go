// Command certgen generates name-and-dates certificates as PNG and PDF.
package main

import (
	"os"

	"github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args, certgen.ModeFull))
}
