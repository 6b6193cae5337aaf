package debris

import (
	"testing"

	"pack-calc/core/kb"
	"pack-calc/core/types"
)

func TestDebrisBreakdown(t *testing.T) {
	materials := types.MaterialMap{
		kb.CodeBoxSmall:     10,
		kb.CodeBubbleWrap:   100,
		kb.CodeStretchWrap:  2,
		kb.CodePackingPaper: 3,
	}

	out := Compute(materials)

	if out.CardboardLb != 15 {
		t.Errorf("expected 15 lb cardboard (10 boxes x 1.5), got %.2f", out.CardboardLb)
	}
	if out.PlasticLb != 6 {
		t.Errorf("expected 6 lb plastic (100x0.02 + 2x2), got %.2f", out.PlasticLb)
	}
	if out.PaperLb != 36 {
		t.Errorf("expected 36 lb paper (3 bundles x 12), got %.2f", out.PaperLb)
	}
}

func TestTotalIsSumOfComponents(t *testing.T) {
	materials := types.MaterialMap{
		kb.CodeBoxMedium:    7,
		kb.CodeBubbleWrap:   35,
		kb.CodeStretchWrap:  1.5,
		kb.CodePackingPaper: 2.25,
	}

	out := Compute(materials)

	if out.TotalLb != out.CardboardLb+out.PlasticLb+out.PaperLb {
		t.Errorf("total %.4f is not the sum of components", out.TotalLb)
	}
}

func TestTonsAreExactlyPoundsOverTwoThousand(t *testing.T) {
	materials := types.MaterialMap{
		kb.CodeBoxLarge:    13,
		kb.CodeBubbleWrap:  77,
		kb.CodeStretchWrap: 3,
	}

	out := Compute(materials)

	if out.CardboardTons != out.CardboardLb/2000 {
		t.Error("cardboard tons must equal pounds / 2000")
	}
	if out.PlasticTons != out.PlasticLb/2000 {
		t.Error("plastic tons must equal pounds / 2000")
	}
	if out.PaperTons != out.PaperLb/2000 {
		t.Error("paper tons must equal pounds / 2000")
	}
	if out.TotalTons != out.TotalLb/2000 {
		t.Error("total tons must equal pounds / 2000")
	}
}

func TestPaperFallbackWhenNoBundles(t *testing.T) {
	materials := types.MaterialMap{kb.CodeBoxSmall: 10}

	out := Compute(materials)

	if out.PaperLb != 4 {
		t.Errorf("expected fallback paper of 4 lb (10 boxes x 0.4), got %.2f", out.PaperLb)
	}
}

func TestEmptyMaterialsYieldNoDebris(t *testing.T) {
	out := Compute(types.NewMaterialMap())

	if out.TotalLb != 0 || out.TotalTons != 0 {
		t.Errorf("expected zero debris, got %.2f lb", out.TotalLb)
	}
}

func TestAllBoxTypesCountAsCardboard(t *testing.T) {
	materials := types.MaterialMap{
		kb.CodeBoxSmall:    1,
		kb.CodeBoxMedium:   1,
		kb.CodeBoxLarge:    1,
		kb.CodeBoxDish:     1,
		kb.CodeBoxWardrobe: 1,
	}

	out := Compute(materials)

	if out.CardboardLb != 7.5 {
		t.Errorf("expected 7.5 lb cardboard (5 boxes x 1.5), got %.2f", out.CardboardLb)
	}
}
