// Package cmd - line-item code listing
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"pack-calc/core/kb"
)

// codesCmd prints the line-item code table
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the billable line-item codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		codes := kb.Codes()
		sort.Strings(codes)
		for _, code := range codes {
			lc := kb.Describe(code)
			fmt.Printf("%-12s %-4s %s\n", code, lc.Unit, lc.Description)
		}
	},
}
