// Package output renders calculation results as terminal text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"pack-calc/core/types"
	"pack-calc/core/ui"
	"pack-calc/internal/errors"
)

// Options controls what the text formatter includes
type Options struct {
	Format           string
	NoColor          bool
	ShowExplanations bool
	ShowConfidence   bool
}

// Formatter writes calculation results
type Formatter struct {
	out  io.Writer
	opts Options
}

// New creates a formatter
func New(out io.Writer, opts Options) *Formatter {
	return &Formatter{out: out, opts: opts}
}

// Write renders the result in the configured format
func (f *Formatter) Write(result *types.CalculationResult) error {
	switch f.opts.Format {
	case "", "text":
		f.writeText(result)
		return nil
	case "json":
		enc := json.NewEncoder(f.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return errors.Newf(errors.TypeInput, "unknown output format: %s", f.opts.Format)
	}
}

func (f *Formatter) writeText(result *types.CalculationResult) {
	w := ui.NewWriter(f.out, f.opts.NoColor)

	summary := w.NewEstimateSummary()
	summary.CrewSize = result.CrewSize
	summary.PackOutHours = result.PackOutHours
	summary.PackInHours = result.PackInHours
	summary.DebrisTons = result.Debris.TotalTons
	summary.Confidence = result.Confidence
	summary.Level = result.ConfidenceLevel
	summary.NeedsReview = result.NeedsReview
	summary.Rooms = len(result.Rooms)
	summary.Render()

	f.writeLineItems(w, "Pack-Out Materials", result.PackOutMaterials)
	f.writeLineItems(w, "Pack-Out Labor", result.PackOutLabor)
	f.writeLineItems(w, "Pack-In Labor", result.PackInLabor)
	f.writeLineItems(w, "Protection", result.Protection)

	w.Header("Debris")
	debris := w.NewTable("Material", "Pounds", "Tons")
	debris.AddRow("Cardboard", fmtQty(result.Debris.CardboardLb), fmtQty(result.Debris.CardboardTons))
	debris.AddRow("Plastic", fmtQty(result.Debris.PlasticLb), fmtQty(result.Debris.PlasticTons))
	debris.AddRow("Paper", fmtQty(result.Debris.PaperLb), fmtQty(result.Debris.PaperTons))
	debris.AddRow("Total", fmtQty(result.Debris.TotalLb), fmtQty(result.Debris.TotalTons))
	debris.Render()

	w.Header("Rooms")
	for _, room := range result.Rooms {
		w.SubHeader(fmt.Sprintf("%s (%s floor)", room.Name, room.FloorLevel))
		w.Dimmed("packing %.2fh, moving %.2fh, logistics %.2fh, %.0f boxes",
			room.PackingHours, room.MovingHours, room.LogisticsHours, room.BoxCount)
		if f.opts.ShowExplanations {
			for _, line := range room.Explanations {
				w.Dimmed("%s", line)
			}
		}
		w.Println("")
	}

	if f.opts.ShowConfidence {
		w.SubHeader("Strategy attribution")
		for _, axis := range []types.Axis{types.AxisMaterials, types.AxisLabor, types.AxisProtection} {
			if strategy, ok := result.Strategies[axis]; ok {
				w.Dimmed("%s: %s", axis, strategy)
			}
		}
	}

	w.Println("")
	w.Dimmed("calculation %s", result.CalculationID)
}

func (f *Formatter) writeLineItems(w *ui.Writer, title string, items []types.LineItem) {
	if len(items) == 0 {
		return
	}
	w.Header(title)
	table := w.NewTable("Code", "Description", "Qty", "Unit")
	for _, item := range items {
		table.AddRow(item.Code, item.Description, fmtQty(item.Quantity), item.Unit)
	}
	table.Render()
}

// fmtQty trims trailing zeros so whole quantities print without decimals
func fmtQty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
