// Package main is the entry point for the pricexpr CLI.
package main

import (
	"os"

	"pricing-expr/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
