// Package kb - Authoritative packing knowledge base.
// Defines the canonical item-to-material mappings and the line-item code
// table. This is the source of truth for estimation; it is built once at
// process start and never mutated at runtime. Operator overrides live in a
// separate, explicitly mutable store consulted before the static table.
package kb

// Line-item codes used across materials, labor, and protection maps.
const (
	CodeBoxSmall    = "BOX-S"
	CodeBoxMedium   = "BOX-M"
	CodeBoxLarge    = "BOX-L"
	CodeBoxDish     = "BOX-DISH"
	CodeBoxWardrobe = "BOX-WRD"

	CodeBubbleWrap   = "BWRAP"
	CodeStretchWrap  = "SWRAP"
	CodePackingPaper = "PAPER"
	CodeFurniturePad = "PAD"
	CodeTape         = "TAPE"

	// CodePackedWithLabor marks items whose wrapping materials are bundled
	// into the labor line; no separate wrap consumables are added for them.
	CodePackedWithLabor = "PKLBR"

	CodeMattressCoverTwin  = "MATCOV-T"
	CodeMattressCoverFull  = "MATCOV-F"
	CodeMattressCoverQueen = "MATCOV-Q"
	CodeMattressCoverKing  = "MATCOV-K"

	CodeFloorProtection  = "FLRPRO"
	CodeStairProtection  = "STAIRPRO"
	CodeCornerProtection = "CORNERPRO"
	CodeDoorProtection   = "DOORPRO"

	CodeStorageContainer = "STGCONT"

	CodeLaborPack      = "LAB-PACK"
	CodeLaborMove      = "LAB-MOVE"
	CodeLaborLogistics = "LAB-LOG"
	CodeLaborMoveIn    = "LAB-MOVEIN"
)

// LineCode describes a code for presentation purposes only
type LineCode struct {
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// lineCodes is the static code -> description/unit table
var lineCodes = map[string]LineCode{
	CodeBoxSmall:    {Description: "Small packing box (1.5 cu ft)", Unit: "EA"},
	CodeBoxMedium:   {Description: "Medium packing box (3.0 cu ft)", Unit: "EA"},
	CodeBoxLarge:    {Description: "Large packing box (4.5 cu ft)", Unit: "EA"},
	CodeBoxDish:     {Description: "Dish pack box", Unit: "EA"},
	CodeBoxWardrobe: {Description: "Wardrobe box with bar", Unit: "EA"},

	CodeBubbleWrap:   {Description: "Bubble wrap", Unit: "LF"},
	CodeStretchWrap:  {Description: "Stretch wrap roll", Unit: "RL"},
	CodePackingPaper: {Description: "Packing paper bundle", Unit: "BDL"},
	CodeFurniturePad: {Description: "Furniture pad / moving blanket", Unit: "EA"},
	CodeTape:         {Description: "Packing tape roll", Unit: "RL"},

	CodePackedWithLabor: {Description: "Item packed by labor, materials included", Unit: "EA"},

	CodeMattressCoverTwin:  {Description: "Mattress cover, twin", Unit: "EA"},
	CodeMattressCoverFull:  {Description: "Mattress cover, full", Unit: "EA"},
	CodeMattressCoverQueen: {Description: "Mattress cover, queen", Unit: "EA"},
	CodeMattressCoverKing:  {Description: "Mattress cover, king", Unit: "EA"},

	CodeFloorProtection:  {Description: "Floor protection film", Unit: "SF"},
	CodeStairProtection:  {Description: "Stairwell protection", Unit: "SF"},
	CodeCornerProtection: {Description: "Corner guard", Unit: "EA"},
	CodeDoorProtection:   {Description: "Door jamb protector", Unit: "EA"},

	CodeStorageContainer: {Description: "Portable storage container", Unit: "EA"},

	CodeLaborPack:      {Description: "Packing labor", Unit: "HR"},
	CodeLaborMove:      {Description: "Pack-out moving labor", Unit: "HR"},
	CodeLaborLogistics: {Description: "Truck and storage handling labor", Unit: "HR"},
	CodeLaborMoveIn:    {Description: "Pack-in moving labor", Unit: "HR"},
}

// Describe returns the presentation entry for a code.
// Unknown codes fall back to the code itself with unit EA.
func Describe(code string) LineCode {
	if lc, ok := lineCodes[code]; ok {
		return lc
	}
	return LineCode{Description: code, Unit: "EA"}
}

// Codes returns all known line-item codes
func Codes() []string {
	codes := make([]string, 0, len(lineCodes))
	for code := range lineCodes {
		codes = append(codes, code)
	}
	return codes
}

// boxCodes are the codes that count toward box totals
var boxCodes = map[string]bool{
	CodeBoxSmall:    true,
	CodeBoxMedium:   true,
	CodeBoxLarge:    true,
	CodeBoxDish:     true,
	CodeBoxWardrobe: true,
}

// IsBoxCode reports whether a code represents a packing box
func IsBoxCode(code string) bool {
	return boxCodes[code]
}

// wrapCodes are furniture-wrapping consumables. Contents-only estimates
// must never include these unless a contents profile names them.
var wrapCodes = map[string]bool{
	CodeFurniturePad:    true,
	CodeStretchWrap:     true,
	CodeBubbleWrap:      true,
	CodePackedWithLabor: true,
}

// IsWrapCode reports whether a code is a furniture-wrapping consumable
func IsWrapCode(code string) bool {
	return wrapCodes[code]
}
