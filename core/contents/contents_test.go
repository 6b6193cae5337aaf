package contents

import (
	"testing"

	"pack-calc/core/kb"
	"pack-calc/core/types"
)

func TestFullyLoadedXLBookshelf(t *testing.T) {
	e := NewEstimator()

	est := e.Estimate("extra large bookshelf + contents", "bookshelf")
	if est.BoxesNeeded != 8 {
		t.Errorf("expected 8 boxes for a full xl bookshelf, got %d", est.BoxesNeeded)
	}
	if est.Size != types.SizeXL {
		t.Errorf("expected xl size, got %s", est.Size)
	}
	if got := est.LineItems.Get(kb.CodeBoxSmall); got != 8 {
		t.Errorf("expected 8 small boxes, got %.1f", got)
	}
	if est.PackingHours != 2.0 {
		t.Errorf("expected 2.0 packing hours (8 boxes x 15 min), got %.2f", est.PackingHours)
	}
}

func TestFullnessMultipliers(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		text      string
		furniture string
		wantMult  float64
		wantBoxes int
	}{
		{"crammed bookshelf + contents", "bookshelf", 1.4, 6},
		{"stuffed cabinet + contents", "cabinet", 1.3, 4},
		{"nearly empty bookshelf + contents", "bookshelf", 0.1, 1},
		{"barely filled bookshelf + contents", "bookshelf", 0.3, 1},
		{"bookshelf + contents", "bookshelf", 1.0, 4},
	}

	for _, tt := range tests {
		est := e.Estimate(tt.text, tt.furniture)
		if est.Multiplier != tt.wantMult {
			t.Errorf("%q: expected multiplier %.1f, got %.2f", tt.text, tt.wantMult, est.Multiplier)
		}
		if est.BoxesNeeded != tt.wantBoxes {
			t.Errorf("%q: expected %d boxes, got %d", tt.text, tt.wantBoxes, est.BoxesNeeded)
		}
	}
}

func TestFullerFurnitureNeverNeedsFewerBoxes(t *testing.T) {
	e := NewEstimator()

	sparse := e.Estimate("sparse bookshelf + contents", "bookshelf")
	full := e.Estimate("bookshelf + contents", "bookshelf")
	overflowing := e.Estimate("overflowing bookshelf + contents", "bookshelf")

	if sparse.BoxesNeeded > full.BoxesNeeded {
		t.Errorf("sparse (%d) needs more boxes than full (%d)", sparse.BoxesNeeded, full.BoxesNeeded)
	}
	if full.BoxesNeeded > overflowing.BoxesNeeded {
		t.Errorf("full (%d) needs more boxes than overflowing (%d)", full.BoxesNeeded, overflowing.BoxesNeeded)
	}
}

func TestUnknownFurnitureUsesDefaultProfile(t *testing.T) {
	e := NewEstimator()

	est := e.Estimate("closet + contents", "closet")
	if est.FurnitureType != "storage" {
		t.Errorf("expected default storage profile, got %s", est.FurnitureType)
	}
	if est.BoxesNeeded != 2 {
		t.Errorf("expected 2 generic boxes, got %d", est.BoxesNeeded)
	}
	if got := est.LineItems.Get(kb.CodeBoxMedium); got != 2 {
		t.Errorf("expected 2 medium boxes, got %.1f", got)
	}
}

func TestVagueDescriptionsLowerConfidence(t *testing.T) {
	e := NewEstimator()

	precise := e.Estimate("large bookshelf packed with books + contents", "bookshelf")
	vague := e.Estimate("bookshelf with stuff + contents", "bookshelf")

	if vague.Confidence >= precise.Confidence {
		t.Errorf("vague description (%.2f) should score below precise (%.2f)",
			vague.Confidence, precise.Confidence)
	}
}

func TestConfidenceStaysInBand(t *testing.T) {
	e := NewEstimator()

	texts := []string{
		"closet with stuff + contents",
		"overflowing extra large cabinet completely full + contents",
	}
	for _, text := range texts {
		est := e.Estimate(text, "unknown")
		if est.Confidence < 0.3 || est.Confidence > 1.0 {
			t.Errorf("%q: confidence %.2f outside [0.3, 1.0]", text, est.Confidence)
		}
	}
}

func TestEstimateAlwaysNeedsAtLeastOneBox(t *testing.T) {
	e := NewEstimator()

	est := e.Estimate("empty wardrobe + contents", "wardrobe")
	if est.BoxesNeeded < 1 {
		t.Errorf("expected at least 1 box, got %d", est.BoxesNeeded)
	}
}

func TestContentsEstimateCarriesNoWrapCodes(t *testing.T) {
	e := NewEstimator()

	est := e.Estimate("large dresser + contents", "dresser")
	for code := range est.LineItems {
		if kb.IsWrapCode(code) {
			t.Errorf("contents estimate must not carry wrap code %s", code)
		}
	}
}
