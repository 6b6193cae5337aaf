// Package correction records human corrections against calculations and
// decides when enough approved corrections have accumulated to retrain
// the estimation tables.
package correction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pack-calc/core/determinism"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
	"pack-calc/internal/logging"
)

// DefaultRetrainThreshold is the approved-correction count that flags a
// retraining pass
const DefaultRetrainThreshold = 50

// Store is the persistence collaborator for corrections
type Store interface {
	GetCalculation(ctx context.Context, id string) (*types.Calculation, error)
	UpdateCalculation(ctx context.Context, calc *types.Calculation) error
	SaveCorrection(ctx context.Context, rec *types.CorrectionRecord) error

	// CountApprovedCorrections counts corrections approved for training
	// since the last training snapshot
	CountApprovedCorrections(ctx context.Context) (int, error)
}

// Input is one human correction against an existing calculation
type Input struct {
	CalculationID      string            `json:"calculation_id"`
	CorrectedMaterials types.MaterialMap `json:"corrected_materials"`
	CorrectedLabor     types.MaterialMap `json:"corrected_labor,omitempty"`
	Notes              string            `json:"notes,omitempty"`

	// ApproveForTraining marks the correction usable as a training sample
	ApproveForTraining bool `json:"approve_for_training"`
}

// Result reports the outcome of saving a correction
type Result struct {
	CalculationID string  `json:"calculation_id"`
	Magnitude     float64 `json:"magnitude"`

	// CorrectionsCount is the approved-correction total after this save
	CorrectionsCount int `json:"corrections_count"`

	// ShouldRetrain flags that the approved count reached the threshold
	ShouldRetrain bool `json:"should_retrain"`
}

// Tracker persists corrections and computes their magnitude
type Tracker struct {
	store     Store
	threshold int
}

// NewTracker creates a tracker; threshold <= 0 uses the default
func NewTracker(store Store, threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultRetrainThreshold
	}
	return &Tracker{store: store, threshold: threshold}
}

// SaveCorrection attaches a human correction to a calculation, updates
// the calculation's correction state, and reports whether retraining
// should run.
func (t *Tracker) SaveCorrection(ctx context.Context, in *Input) (*Result, error) {
	if in.CalculationID == "" {
		return nil, errors.Input("calculation_id is required")
	}
	if len(in.CorrectedMaterials) == 0 && len(in.CorrectedLabor) == 0 {
		return nil, errors.Input("correction carries no corrected quantities")
	}

	calc, err := t.store.GetCalculation(ctx, in.CalculationID)
	if err != nil {
		return nil, err
	}

	magnitude := Magnitude(calc.PackOutMaterials, in.CorrectedMaterials)

	rec := &types.CorrectionRecord{
		ID:                  uuid.NewString(),
		CalculationID:       calc.ID,
		CorrectedMaterials:  in.CorrectedMaterials.Clone(),
		CorrectedLabor:      in.CorrectedLabor.Clone(),
		Notes:               in.Notes,
		Magnitude:           magnitude,
		ApprovedForTraining: in.ApproveForTraining,
		CreatedAt:           time.Now().UTC(),
	}
	if err := t.store.SaveCorrection(ctx, rec); err != nil {
		return nil, errors.Storage("saving correction", err)
	}

	calc.WasCorrected = true
	calc.CorrectionMagnitude = magnitude
	calc.CorrectedMaterials = in.CorrectedMaterials.Clone()
	calc.CorrectedLabor = in.CorrectedLabor.Clone()
	calc.CorrectionNotes = in.Notes
	calc.ApprovedForTraining = in.ApproveForTraining
	calc.UpdatedAt = time.Now().UTC()
	if err := t.store.UpdateCalculation(ctx, calc); err != nil {
		return nil, errors.Storage("updating corrected calculation", err)
	}

	count, err := t.store.CountApprovedCorrections(ctx)
	if err != nil {
		return nil, errors.Storage("counting corrections", err)
	}

	result := &Result{
		CalculationID:    calc.ID,
		Magnitude:        magnitude,
		CorrectionsCount: count,
		ShouldRetrain:    count >= t.threshold,
	}

	logging.Info("correction saved",
		zap.String("calculation", calc.ID),
		zap.Float64("magnitude", magnitude),
		zap.Int("approved_count", count),
		zap.Bool("should_retrain", result.ShouldRetrain))

	return result, nil
}

// Magnitude is the mean relative change across the original material
// codes: |corrected - original| / original, averaged over every code the
// original estimate priced with a nonzero quantity. Codes the original
// never priced contribute nothing, so adding a brand-new line does not
// skew the ratio.
func Magnitude(original, corrected types.MaterialMap) float64 {
	var sum float64
	var n int
	for _, code := range original.Codes() {
		orig := original[code]
		if orig <= 0 {
			continue
		}
		delta := corrected.Get(code) - orig
		if delta < 0 {
			delta = -delta
		}
		sum += delta / orig
		n++
	}
	if n == 0 {
		return 0
	}
	return determinism.Round(sum/float64(n), 4)
}
