// Package cmd - knowledge-base override commands
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pack-calc/core/kb"
	"pack-calc/internal/errors"
)

// overridesCmd manages the operator override table
var overridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "Manage operator knowledge-base overrides",
	Long: `Manage the operator override table consulted before the static
knowledge base. Overrides win on exact key match and take part in
category and fuzzy lookups like any seeded entry.`,
}

func init() {
	overridesCmd.AddCommand(overridesListCmd)
	overridesCmd.AddCommand(overridesSetCmd)
	overridesCmd.AddCommand(overridesDeleteCmd)
}

// overridesListCmd prints the override table
var overridesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List operator overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		overrides, err := app.store.Snapshot(context.Background())
		if err != nil {
			return err
		}
		if len(overrides) == 0 {
			fmt.Println("no overrides")
			return nil
		}
		for _, key := range overrides.Keys() {
			mapping := overrides[key]
			fmt.Printf("%-24s %s/%s  %.2fh pack, %.2fh move\n",
				key, mapping.Category, mapping.Size,
				mapping.PackingHours, mapping.MovingHours)
		}
		return nil
	},
}

// overridesSetCmd inserts or replaces one override from a JSON mapping file
var overridesSetCmd = &cobra.Command{
	Use:   "set <key> <mapping.json>",
	Short: "Insert or replace an override",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return errors.Wrap(errors.TypeInput, "reading mapping file", err)
		}
		var mapping kb.Mapping
		if err := json.Unmarshal(data, &mapping); err != nil {
			return errors.Wrap(errors.TypeInput, "decoding mapping file", err)
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.store.SetOverride(context.Background(), args[0], mapping); err != nil {
			return err
		}
		fmt.Printf("override %s saved\n", args[0])
		return nil
	},
}

// overridesDeleteCmd removes one override
var overridesDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.store.DeleteOverride(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("override %s deleted\n", args[0])
		return nil
	},
}
