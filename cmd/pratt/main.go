// Command pratt parses expressions against declarative operator tables.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/pratt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pratt:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
