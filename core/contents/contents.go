// Package contents estimates packing materials for the CONTENTS of
// storage furniture ("bookshelf + contents"), independent of the
// furniture's own packing materials.
package contents

import (
	"fmt"
	"strings"

	"pack-calc/core/kb"
	"pack-calc/core/matcher"
	"pack-calc/core/types"
)

// Profile describes how full one kind of storage furniture packs out
type Profile struct {
	FurnitureType string

	// BoxCode is the box type used for this furniture's contents
	BoxCode string

	// BaseBoxes is the box count for a fully-loaded unit by size tier
	BaseBoxes map[types.SizeTier]float64

	// ItemsPerBox is informational density used in reasoning output
	ItemsPerBox int

	// MinutesPerBox converts box count into packing labor
	MinutesPerBox float64

	// Secondary materials added per box
	Secondary types.MaterialMap
}

// profiles keyed by furniture type. The default profile covers unknown
// storage furniture with a fixed two generic boxes.
var profiles = map[string]Profile{
	"bookshelf": {
		FurnitureType: "bookshelf",
		BoxCode:       kb.CodeBoxSmall,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 2, types.SizeMedium: 4, types.SizeLarge: 6, types.SizeXL: 8},
		ItemsPerBox:   30,
		MinutesPerBox: 15,
		Secondary:     types.MaterialMap{kb.CodePackingPaper: 0.25, kb.CodeTape: 0.25},
	},
	"dresser": {
		FurnitureType: "dresser",
		BoxCode:       kb.CodeBoxMedium,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 2, types.SizeMedium: 3, types.SizeLarge: 4, types.SizeXL: 6},
		ItemsPerBox:   20,
		MinutesPerBox: 12,
		Secondary:     types.MaterialMap{kb.CodeTape: 0.25},
	},
	"wardrobe": {
		FurnitureType: "wardrobe",
		BoxCode:       kb.CodeBoxWardrobe,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 1, types.SizeMedium: 2, types.SizeLarge: 3, types.SizeXL: 4},
		ItemsPerBox:   15,
		MinutesPerBox: 10,
		Secondary:     types.MaterialMap{kb.CodeTape: 0.25},
	},
	"cabinet": {
		FurnitureType: "cabinet",
		BoxCode:       kb.CodeBoxDish,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 2, types.SizeMedium: 3, types.SizeLarge: 5, types.SizeXL: 7},
		ItemsPerBox:   25,
		MinutesPerBox: 18,
		Secondary:     types.MaterialMap{kb.CodePackingPaper: 0.5, kb.CodeTape: 0.25},
	},
	"desk": {
		FurnitureType: "desk",
		BoxCode:       kb.CodeBoxSmall,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 1, types.SizeMedium: 2, types.SizeLarge: 3, types.SizeXL: 4},
		ItemsPerBox:   25,
		MinutesPerBox: 12,
		Secondary:     types.MaterialMap{kb.CodeTape: 0.25},
	},
	"shelf": {
		FurnitureType: "shelf",
		BoxCode:       kb.CodeBoxMedium,
		BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 2, types.SizeMedium: 3, types.SizeLarge: 5, types.SizeXL: 6},
		ItemsPerBox:   20,
		MinutesPerBox: 12,
		Secondary:     types.MaterialMap{kb.CodeTape: 0.25},
	},
}

// defaultProfile covers unknown furniture types
var defaultProfile = Profile{
	FurnitureType: "storage",
	BoxCode:       kb.CodeBoxMedium,
	BaseBoxes:     map[types.SizeTier]float64{types.SizeSmall: 2, types.SizeMedium: 2, types.SizeLarge: 2, types.SizeXL: 2},
	ItemsPerBox:   20,
	MinutesPerBox: 12,
	Secondary:     types.MaterialMap{kb.CodeTape: 0.25},
}

// fullnessKeywords map descriptive words to a fullness multiplier.
// When several match, the maximum wins.
var fullnessKeywords = []struct {
	Keyword    string
	Multiplier float64
}{
	{"overflowing", 1.5},
	{"crammed", 1.4},
	{"stuffed", 1.3},
	{"packed", 1.2},
	{"completely full", 1.2},
	{"full", 1.0},
	{"mostly", 0.8},
	{"half", 0.5},
	{"some", 0.4},
	{"sparse", 0.3},
	{"nearly empty", 0.1},
	{"empty", 0.0},
}

// Fullness special cases
const (
	overloadFloor = 1.4 // "too much" / "way too"
	scantCap      = 0.3 // "barely" / "hardly"
)

var vagueWords = []string{"stuff", "things"}

// Estimate is the contents estimation result
type Estimate struct {
	FurnitureType string            `json:"furniture_type"`
	Size          types.SizeTier    `json:"size"`
	BoxesNeeded   int               `json:"boxes_needed"`
	LineItems     types.MaterialMap `json:"line_items"`
	PackingHours  float64           `json:"packing_hours"`
	Multiplier    float64           `json:"multiplier"`
	Confidence    float64           `json:"confidence"`
	Reasoning     string            `json:"reasoning"`
}

// Estimator computes contents estimates. Stateless and reentrant.
type Estimator struct{}

// NewEstimator creates an estimator
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate computes the boxes, materials, and packing labor for the
// contents of one piece of storage furniture. furnitureType is usually
// the matcher's detected category; unknown types get the default profile.
func (e *Estimator) Estimate(text, furnitureType string) *Estimate {
	normalized := matcher.Normalize(text)

	profile, typeKnown := profiles[furnitureType]
	if !typeKnown {
		profile = defaultProfile
	}

	size, sizeExplicit := matcher.DetectSize(normalized)
	if !sizeExplicit {
		size = types.SizeMedium
	}
	baseBoxes := profile.BaseBoxes[size]
	if baseBoxes == 0 {
		baseBoxes = profile.BaseBoxes[types.SizeMedium]
	}

	multiplier, fullnessExplicit := detectFullness(normalized)

	boxes := int(baseBoxes*multiplier + 0.5)
	if boxes < 1 {
		boxes = 1
	}

	lineItems := types.NewMaterialMap()
	lineItems.Add(profile.BoxCode, float64(boxes))
	lineItems.MergeScaled(profile.Secondary, float64(boxes))

	packingHours := profile.MinutesPerBox * float64(boxes) / 60

	confidence := 0.5
	if typeKnown {
		confidence += 0.2
	}
	if sizeExplicit {
		confidence += 0.1
	}
	if fullnessExplicit {
		confidence += 0.15
	} else if hasVagueWords(normalized) {
		confidence -= 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.3 {
		confidence = 0.3
	}

	reasoning := fmt.Sprintf(
		"%s (%s) contents: %.0f base boxes x %.2f fullness = %d %s (~%d items/box), %.0f min/box packing",
		profile.FurnitureType, size, baseBoxes, multiplier, boxes,
		profile.BoxCode, profile.ItemsPerBox, profile.MinutesPerBox)

	return &Estimate{
		FurnitureType: profile.FurnitureType,
		Size:          size,
		BoxesNeeded:   boxes,
		LineItems:     lineItems,
		PackingHours:  packingHours,
		Multiplier:    multiplier,
		Confidence:    confidence,
		Reasoning:     reasoning,
	}
}

// detectFullness scans for fullness keywords, taking the maximum when
// several match. "too much"/"way too" floor the multiplier at 1.4;
// "barely"/"hardly" cap it at 0.3. No keyword means 1.0 (assume full).
func detectFullness(normalized string) (float64, bool) {
	multiplier := 1.0
	matched := false
	for _, entry := range fullnessKeywords {
		if strings.Contains(normalized, entry.Keyword) {
			if !matched || entry.Multiplier > multiplier {
				multiplier = entry.Multiplier
			}
			matched = true
		}
	}

	if strings.Contains(normalized, "too much") || strings.Contains(normalized, "way too") {
		if multiplier < overloadFloor {
			multiplier = overloadFloor
		}
		matched = true
	}
	if strings.Contains(normalized, "barely") || strings.Contains(normalized, "hardly") {
		if multiplier > scantCap {
			multiplier = scantCap
		}
		matched = true
	}

	return multiplier, matched
}

func hasVagueWords(normalized string) bool {
	for _, word := range vagueWords {
		if strings.Contains(normalized, word) {
			return true
		}
	}
	return false
}
