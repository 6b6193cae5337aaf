// Package cmd - correction commands
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pack-calc/core/correction"
	"pack-calc/internal/config"
	"pack-calc/internal/errors"
)

var (
	correctionCalcID  string
	correctionNotes   string
	correctionApprove bool
)

func init() {
	correctCmd.Flags().StringVar(&correctionCalcID, "calculation", "", "calculation ID to correct (overrides the file's calculation_id)")
	correctCmd.Flags().StringVar(&correctionNotes, "notes", "", "correction notes")
	correctCmd.Flags().BoolVar(&correctionApprove, "approve", false, "approve the correction for training")
}

// correctCmd attaches a human correction to a stored calculation
var correctCmd = &cobra.Command{
	Use:   "correct <correction.json>",
	Short: "Record a human correction against a calculation",
	Long: `Record a human correction against a stored calculation.

The correction file carries the corrected material and labor quantities.
The command reports the correction magnitude and whether enough approved
corrections have accumulated to retrain the estimation tables.

Example:
  pack-calc correct --calculation 3f2a... --approve corrections.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(errors.TypeInput, "reading correction file", err)
		}
		var input correction.Input
		if err := json.Unmarshal(data, &input); err != nil {
			return errors.Wrap(errors.TypeInput, "decoding correction file", err)
		}
		if correctionCalcID != "" {
			input.CalculationID = correctionCalcID
		}
		if correctionNotes != "" {
			input.Notes = correctionNotes
		}
		if correctionApprove {
			input.ApproveForTraining = true
		}

		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		tracker := correction.NewTracker(app.store, config.Get().Engine.RetrainThreshold)
		result, err := tracker.SaveCorrection(context.Background(), &input)
		if err != nil {
			return err
		}

		fmt.Printf("correction saved for %s\n", result.CalculationID)
		fmt.Printf("magnitude: %.1f%%\n", result.Magnitude*100)
		fmt.Printf("approved corrections since last training: %d\n", result.CorrectionsCount)
		if result.ShouldRetrain {
			fmt.Println("retraining threshold reached; run 'pack-calc train' to snapshot")
		}
		return nil
	},
}

// trainCmd marks the accumulated approved corrections as consumed
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Mark a training snapshot over the accumulated corrections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := context.Background()
		count, err := app.store.CountApprovedCorrections(ctx)
		if err != nil {
			return err
		}
		if err := app.store.MarkTrainingSnapshot(ctx); err != nil {
			return err
		}
		fmt.Printf("training snapshot recorded over %d approved corrections\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
}
