package main

import (
	"fmt"
	"os"

	"github.com/dbxverify/dbxverify/internal/cli"
	"github.com/dbxverify/dbxverify/internal/tui"
)

func main() {
	// With no arguments, start the interactive interface. Any argument
	// routes through the CLI, which enforces its own required flags.
	if len(os.Args) == 1 {
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
