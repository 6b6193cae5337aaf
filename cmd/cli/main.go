// Package main is the entry point for the pack-calc CLI.
package main

import (
	"os"

	"pack-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
