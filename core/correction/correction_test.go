package correction

import (
	"context"
	"testing"
	"time"

	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

// fakeStore implements Store over a single calculation
type fakeStore struct {
	calc          *types.Calculation
	saved         []*types.CorrectionRecord
	approvedCount int
}

func (f *fakeStore) GetCalculation(_ context.Context, id string) (*types.Calculation, error) {
	if f.calc == nil || f.calc.ID != id {
		return nil, errors.NotFound("calculation", id)
	}
	return f.calc, nil
}

func (f *fakeStore) UpdateCalculation(_ context.Context, calc *types.Calculation) error {
	f.calc = calc
	return nil
}

func (f *fakeStore) SaveCorrection(_ context.Context, rec *types.CorrectionRecord) error {
	f.saved = append(f.saved, rec)
	if rec.ApprovedForTraining {
		f.approvedCount++
	}
	return nil
}

func (f *fakeStore) CountApprovedCorrections(_ context.Context) (int, error) {
	return f.approvedCount, nil
}

func storedCalculation() *types.Calculation {
	return &types.Calculation{
		ID: "calc-1",
		PackOutMaterials: types.MaterialMap{
			kb.CodeBoxMedium:  10,
			kb.CodeBubbleWrap: 50,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestMagnitudeIsMeanRelativeChange(t *testing.T) {
	original := types.MaterialMap{kb.CodeBoxMedium: 10, kb.CodeBubbleWrap: 50}
	corrected := types.MaterialMap{kb.CodeBoxMedium: 15, kb.CodeBubbleWrap: 50}

	// BOX-M changes by 50%, BWRAP by 0%: mean is 25%
	if got := Magnitude(original, corrected); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestMagnitudeExcludesZeroQuantityCodes(t *testing.T) {
	original := types.MaterialMap{kb.CodeBoxMedium: 10, kb.CodeTape: 0}
	corrected := types.MaterialMap{kb.CodeBoxMedium: 20, kb.CodeTape: 5}

	// Only BOX-M counts: a zero-quantity original has no meaningful ratio
	if got := Magnitude(original, corrected); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestMagnitudeIgnoresBrandNewLines(t *testing.T) {
	original := types.MaterialMap{kb.CodeBoxMedium: 10}
	corrected := types.MaterialMap{kb.CodeBoxMedium: 10, kb.CodeFurniturePad: 99}

	if got := Magnitude(original, corrected); got != 0 {
		t.Errorf("adding a new line must not move the magnitude, got %v", got)
	}
}

func TestMagnitudeCountsRemovedLinesAsFullChange(t *testing.T) {
	original := types.MaterialMap{kb.CodeBoxMedium: 10}
	corrected := types.MaterialMap{}

	if got := Magnitude(original, corrected); got != 1.0 {
		t.Errorf("removing a line is a 100%% change, got %v", got)
	}
}

func TestSaveCorrectionUpdatesCalculationState(t *testing.T) {
	store := &fakeStore{calc: storedCalculation()}
	tracker := NewTracker(store, 0)

	result, err := tracker.SaveCorrection(context.Background(), &Input{
		CalculationID:      "calc-1",
		CorrectedMaterials: types.MaterialMap{kb.CodeBoxMedium: 12, kb.CodeBubbleWrap: 50},
		Notes:              "two more boxes were needed",
		ApproveForTraining: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Magnitude != 0.1 {
		t.Errorf("expected magnitude 0.1, got %v", result.Magnitude)
	}
	if !store.calc.WasCorrected {
		t.Error("calculation should be marked corrected")
	}
	if store.calc.CorrectedMaterials.Get(kb.CodeBoxMedium) != 12 {
		t.Error("corrected materials should be attached to the calculation")
	}
	if !store.calc.ApprovedForTraining {
		t.Error("approval flag should be persisted")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved record, got %d", len(store.saved))
	}
	if store.saved[0].Magnitude != result.Magnitude {
		t.Error("record magnitude should match the result")
	}
}

func TestRetrainSignalAtThreshold(t *testing.T) {
	store := &fakeStore{calc: storedCalculation(), approvedCount: 49}
	tracker := NewTracker(store, 50)

	result, err := tracker.SaveCorrection(context.Background(), &Input{
		CalculationID:      "calc-1",
		CorrectedMaterials: types.MaterialMap{kb.CodeBoxMedium: 11},
		ApproveForTraining: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CorrectionsCount != 50 {
		t.Errorf("expected 50 approved corrections, got %d", result.CorrectionsCount)
	}
	if !result.ShouldRetrain {
		t.Error("expected the retrain signal at the threshold")
	}
}

func TestBelowThresholdNoRetrainSignal(t *testing.T) {
	store := &fakeStore{calc: storedCalculation()}
	tracker := NewTracker(store, 50)

	result, err := tracker.SaveCorrection(context.Background(), &Input{
		CalculationID:      "calc-1",
		CorrectedMaterials: types.MaterialMap{kb.CodeBoxMedium: 11},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ShouldRetrain {
		t.Error("unapproved correction must not trigger retraining")
	}
}

func TestCorrectionInputValidation(t *testing.T) {
	store := &fakeStore{calc: storedCalculation()}
	tracker := NewTracker(store, 0)

	_, err := tracker.SaveCorrection(context.Background(), &Input{
		CorrectedMaterials: types.MaterialMap{kb.CodeBoxMedium: 1},
	})
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected an input error for a missing ID, got %v", err)
	}

	_, err = tracker.SaveCorrection(context.Background(), &Input{CalculationID: "calc-1"})
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected an input error for empty corrections, got %v", err)
	}

	_, err = tracker.SaveCorrection(context.Background(), &Input{
		CalculationID:      "missing",
		CorrectedMaterials: types.MaterialMap{kb.CodeBoxMedium: 1},
	})
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
