// Command certgen-simple generates name-only PNG certificates.
package main

import (
	"os"

	"github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args, certgen.ModeSimple))
}
