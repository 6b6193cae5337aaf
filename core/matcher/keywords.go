// Package matcher resolves free-text item names to canonical knowledge-base
// keys. Matching is a best-effort heuristic: every result carries an
// explicit confidence, and "no match" is a valid outcome the caller must
// handle with a default material set.
package matcher

import (
	"pack-calc/core/types"
)

// contentsPhrases hand matching off to the contents estimator. Furniture
// and its contents must never both resolve to the same material lines.
var contentsPhrases = []string{
	"+ contents",
	"plus contents",
	"with contents",
	"& contents",
	"and contents",
	"w/ contents",
	"contents of",
}

// categoryEntry pairs a category with its keyword list.
// Registration order breaks score ties: earlier categories win.
type categoryEntry struct {
	Category string
	Keywords []string
}

var categoryKeywords = []categoryEntry{
	{"bed", []string{"bed", "mattress", "bunk", "headboard"}},
	{"sofa", []string{"sofa", "couch", "loveseat", "sectional", "futon"}},
	{"bookshelf", []string{"bookshelf", "bookcase", "book shelf", "shelving unit"}},
	{"dresser", []string{"dresser", "chest of drawers", "bureau", "drawers"}},
	{"wardrobe", []string{"wardrobe", "armoire"}},
	{"cabinet", []string{"cabinet", "hutch", "cupboard", "china"}},
	{"desk", []string{"desk", "workstation", "vanity"}},
	{"nightstand", []string{"nightstand", "night stand", "bedside table"}},
	{"table", []string{"table", "dining"}},
	{"chair", []string{"chair", "stool", "recliner", "bench", "ottoman"}},
	{"piano", []string{"piano", "baby grand", "upright grand"}},
	{"tv", []string{"tv", "television", "flat screen", "monitor"}},
	{"mirror", []string{"mirror"}},
	{"picture", []string{"picture", "painting", "artwork", "framed art", "canvas"}},
	{"lamp", []string{"lamp", "floor light"}},
	{"appliance", []string{"refrigerator", "fridge", "freezer", "washer", "dryer", "dishwasher", "stove", "oven", "microwave", "appliance"}},
	{"rug", []string{"rug", "carpet"}},
	{"box", []string{"box", "boxes", "tote", "bin", "crate"}},
}

// sizeEntry pairs a generic size tier with its keyword list
type sizeEntry struct {
	Tier     types.SizeTier
	Keywords []string
}

var sizeKeywords = []sizeEntry{
	{types.SizeSmall, []string{"small", "little", "mini", "compact", "tiny", "petite"}},
	{types.SizeMedium, []string{"medium", "standard", "regular", "normal", "mid size"}},
	{types.SizeLarge, []string{"large", "big", "tall", "wide", "oversized", "long"}},
	{types.SizeXL, []string{"extra large", "xl", "xlarge", "huge", "giant", "massive", "jumbo"}},
}

// bedSizeKeywords map to bed size tokens instead of generic tiers
var bedSizeKeywords = []struct {
	Size     string
	Keywords []string
}{
	{"twin", []string{"twin", "single"}},
	{"full", []string{"full", "double"}},
	{"queen", []string{"queen"}},
	{"king", []string{"king", "california king", "cal king"}},
}

// defaultBedSize is the assumed bed size when no bed-size keyword matches
const defaultBedSize = "full"

// bedSizeTiers maps bed size tokens to generic tiers for wrapping scale
var bedSizeTiers = map[string]types.SizeTier{
	"twin":  types.SizeSmall,
	"full":  types.SizeMedium,
	"queen": types.SizeLarge,
	"king":  types.SizeXL,
}

// categorySizeDefaults override the medium default for categories whose
// typical variant is not medium
var categorySizeDefaults = map[string]types.SizeTier{
	"nightstand": types.SizeSmall,
	"lamp":       types.SizeSmall,
	"piano":      types.SizeXL,
	"picture":    types.SizeSmall,
}

// quantityWords is the fixed word -> count table consulted when no
// numeric quantity is present. Checked in order; first hit wins.
var quantityWords = []struct {
	Word  string
	Count int
}{
	{"single", 1},
	{"pair", 2},
	{"couple", 2},
	{"trio", 3},
	{"triple", 3},
	{"few", 3},
	{"set", 4},
	{"several", 4},
	{"dozen", 12},
}

// materialKeywords hint at the item's construction material
var materialKeywords = []string{
	"wood", "wooden", "oak", "pine", "glass", "metal", "steel",
	"leather", "plastic", "marble", "wicker",
}

// fragileKeywords force the fragile flag regardless of category
var fragileKeywords = []string{"glass", "fragile", "antique", "delicate", "crystal"}
