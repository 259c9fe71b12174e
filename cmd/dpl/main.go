// Package main is the entry point for the dpl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/lingopipe/deepl/internal/dpl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
