package engine

import (
	"pack-calc/core/kb"
	"pack-calc/core/types"
)

// Wrapping consumables added per unit for fragile, glass, picture, and
// mirror items, scaled by size bucket. Skipped when the resolved
// materials already carry the packed-with-labor code, which bundles
// wrapping into the labor line.
var (
	wrapBubbleFeet = map[types.SizeTier]float64{
		types.SizeSmall:  5,
		types.SizeMedium: 10,
		types.SizeLarge:  15,
		types.SizeXL:     20,
	}
	wrapStretchRolls = map[types.SizeTier]float64{
		types.SizeSmall:  0.25,
		types.SizeMedium: 0.5,
		types.SizeLarge:  0.5,
		types.SizeXL:     1,
	}
	wrapPaperBundles = map[types.SizeTier]float64{
		types.SizeSmall:  0.25,
		types.SizeMedium: 0.5,
		types.SizeLarge:  0.75,
		types.SizeXL:     1,
	}
)

// Fallback material set for unmatched items, applied per unit
const (
	fallbackBubbleFeet   = 10.0
	fallbackPackingHours = 0.25
	fallbackMovingHours  = 0.25
	fallbackConfidence   = 0.3
)

// wrappingFor returns the wrap consumables for one unit of the given tier
func wrappingFor(tier types.SizeTier) types.MaterialMap {
	if _, ok := wrapBubbleFeet[tier]; !ok {
		tier = types.SizeMedium
	}
	return types.MaterialMap{
		kb.CodeBubbleWrap:   wrapBubbleFeet[tier],
		kb.CodeStretchWrap:  wrapStretchRolls[tier],
		kb.CodePackingPaper: wrapPaperBundles[tier],
	}
}

// fallbackMaterials is the hard-coded default for unmatched items:
// one medium box plus a fixed bubble-wrap quantity per unit
func fallbackMaterials() types.MaterialMap {
	return types.MaterialMap{
		kb.CodeBoxMedium:  1,
		kb.CodeBubbleWrap: fallbackBubbleFeet,
	}
}
