// Package cmd - calculation commands
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pack-calc/adapters/storage"
	"pack-calc/core/engine"
	"pack-calc/core/input"
	"pack-calc/core/kb"
	"pack-calc/core/output"
	"pack-calc/core/types"
	"pack-calc/internal/config"
	"pack-calc/internal/errors"
)

var (
	outputFormat     string
	noColor          bool
	skipExplanations bool
)

func init() {
	for _, c := range []*cobra.Command{calculateCmd, updateCmd, showCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
		c.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
		c.Flags().BoolVar(&skipExplanations, "no-explanations", false, "hide per-room explanations")
	}
}

// appContext bundles the wired collaborators for one command run
type appContext struct {
	store      storage.Store
	calculator *engine.Calculator
}

// openApp builds the knowledge base, storage backend, and calculator
// from the effective configuration
func openApp() (*appContext, error) {
	cfg := config.Get()

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	static := kb.Seed()
	if cfg.Overrides.FilePath != "" {
		fileOverrides, err := kb.LoadOverridesFile(cfg.Overrides.FilePath)
		if err != nil {
			store.Close()
			return nil, err
		}
		ctx := context.Background()
		for _, key := range fileOverrides.Keys() {
			if err := store.SetOverride(ctx, key, fileOverrides[key]); err != nil {
				store.Close()
				return nil, err
			}
		}
	}

	calculator := engine.NewCalculator(static, store, store, engine.Options{
		ReviewThreshold:     cfg.Engine.ReviewThreshold,
		SimilarityThreshold: cfg.Engine.SimilarityThreshold,
	})
	return &appContext{store: store, calculator: calculator}, nil
}

func (a *appContext) Close() {
	a.store.Close()
}

func loadRequest(path string) (*types.CalculationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading request file", err)
	}
	var req types.CalculationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "decoding request file", err)
	}
	if err := input.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func formatter() *output.Formatter {
	cfg := config.Get()
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.New(os.Stdout, output.Options{
		Format:           format,
		NoColor:          noColor,
		ShowExplanations: cfg.Output.ShowExplanations && !skipExplanations,
		ShowConfidence:   cfg.Output.ShowConfidence,
	})
}

// calculateCmd runs a new calculation from a JSON request file
var calculateCmd = &cobra.Command{
	Use:   "calculate <request.json>",
	Short: "Run a packing calculation from a request file",
	Long: `Run a packing calculation from a JSON request file.

The request lists rooms with free-form item lines; the result carries
pack-out materials, labor hours, protection, debris, and confidence.

Examples:
  pack-calc calculate request.json
  pack-calc calculate --format json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[0])
		if err != nil {
			return err
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		result, err := app.calculator.Calculate(context.Background(), req)
		if err != nil {
			return err
		}
		return formatter().Write(result)
	},
}

// updateCmd recomputes an existing calculation from a request file
var updateCmd = &cobra.Command{
	Use:   "update <calculation-id> <request.json>",
	Short: "Recompute an existing calculation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[1])
		if err != nil {
			return err
		}
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		result, err := app.calculator.Update(context.Background(), args[0], req)
		if err != nil {
			return err
		}
		return formatter().Write(result)
	},
}

// showCmd renders a stored calculation
var showCmd = &cobra.Command{
	Use:   "show <calculation-id>",
	Short: "Show a stored calculation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		calc, err := app.store.GetCalculation(context.Background(), args[0])
		if err != nil {
			return err
		}
		return formatter().Write(engine.ResultFromCalculation(calc))
	},
}

// listCmd lists stored calculations
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored calculations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		calcs, err := app.store.ListCalculations(context.Background())
		if err != nil {
			return err
		}
		for _, calc := range calcs {
			marker := " "
			if calc.NeedsReview {
				marker = "!"
			}
			fmt.Printf("%s %s  %-24s  crew %d  %.2fh  conf %.0f%%  %s\n",
				marker, calc.ID, calc.Name, calc.CrewSize,
				calc.ReportedPackOutHours, calc.Confidence*100,
				calc.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

// deleteCmd removes a stored calculation
var deleteCmd = &cobra.Command{
	Use:   "delete <calculation-id>",
	Short: "Delete a stored calculation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.store.DeleteCalculation(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}
