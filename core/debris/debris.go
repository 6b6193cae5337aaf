// Package debris estimates post-pack debris weight from aggregated
// materials. Factor multiplication runs on decimals so the same material
// map always yields the same weights.
package debris

import (
	"github.com/shopspring/decimal"

	"pack-calc/core/kb"
	"pack-calc/core/types"
)

// Yield factors. Empirically tuned reference values.
var (
	// CardboardLbPerBox is debris weight per packing box of any size
	CardboardLbPerBox = decimal.NewFromFloat(1.5)

	// PlasticLbPerBubbleFoot is debris weight per linear foot of bubble wrap
	PlasticLbPerBubbleFoot = decimal.NewFromFloat(0.02)

	// PlasticLbPerStretchRoll is debris weight per stretch wrap roll
	PlasticLbPerStretchRoll = decimal.NewFromFloat(2.0)

	// PaperLbPerBundle is debris weight per packing paper bundle
	PaperLbPerBundle = decimal.NewFromFloat(12.0)

	// PaperLbPerBoxFallback estimates paper debris per box when no
	// explicit paper quantity is present
	PaperLbPerBoxFallback = decimal.NewFromFloat(0.4)
)

// Compute derives the debris breakdown from aggregated pack-out materials
func Compute(materials types.MaterialMap) types.DebrisBreakdown {
	var boxes decimal.Decimal
	for code, qty := range materials {
		if kb.IsBoxCode(code) {
			boxes = boxes.Add(decimal.NewFromFloat(qty))
		}
	}

	cardboard := boxes.Mul(CardboardLbPerBox)

	plastic := decimal.NewFromFloat(materials.Get(kb.CodeBubbleWrap)).Mul(PlasticLbPerBubbleFoot).
		Add(decimal.NewFromFloat(materials.Get(kb.CodeStretchWrap)).Mul(PlasticLbPerStretchRoll))

	var paper decimal.Decimal
	if qty := materials.Get(kb.CodePackingPaper); qty > 0 {
		paper = decimal.NewFromFloat(qty).Mul(PaperLbPerBundle)
	} else {
		paper = boxes.Mul(PaperLbPerBoxFallback)
	}

	cardboardLb, _ := cardboard.Float64()
	plasticLb, _ := plastic.Float64()
	paperLb, _ := paper.Float64()

	// Totals are sums of the exported components, and every ton figure is
	// its pound figure divided by exactly 2000.
	totalLb := cardboardLb + plasticLb + paperLb

	return types.DebrisBreakdown{
		CardboardLb:   cardboardLb,
		PlasticLb:     plasticLb,
		PaperLb:       paperLb,
		TotalLb:       totalLb,
		CardboardTons: cardboardLb / 2000,
		PlasticTons:   plasticLb / 2000,
		PaperTons:     paperLb / 2000,
		TotalTons:     totalLb / 2000,
	}
}
