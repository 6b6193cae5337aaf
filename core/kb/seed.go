package kb

import (
	"pack-calc/core/types"
)

// Seed builds the static knowledge base.
// Quantities are per single unit of the item. Registration order matters:
// similarity search and legacy lookup iterate keys in this order, and
// earlier keys win score ties.
func Seed() *KnowledgeBase {
	k := New()

	// Beds. Size tokens are bed sizes, not generic tiers.
	k.Register("bed_twin", Mapping{
		Category: "bed", Size: "twin", Tier: types.SizeSmall,
		Materials: types.MaterialMap{
			CodeMattressCoverTwin: 1, CodeFurniturePad: 2, CodeStretchWrap: 1, CodeTape: 1,
		},
		WeightLb: 90, PackingHours: 0.4, MovingHours: 0.5,
	})
	k.Register("bed_full", Mapping{
		Category: "bed", Size: "full", Tier: types.SizeMedium,
		Materials: types.MaterialMap{
			CodeMattressCoverFull: 1, CodeFurniturePad: 2, CodeStretchWrap: 1, CodeTape: 1,
		},
		WeightLb: 120, PackingHours: 0.5, MovingHours: 0.6,
	})
	k.Register("bed_queen", Mapping{
		Category: "bed", Size: "queen", Tier: types.SizeLarge,
		Materials: types.MaterialMap{
			CodeMattressCoverQueen: 1, CodeFurniturePad: 3, CodeStretchWrap: 1, CodeTape: 1,
		},
		WeightLb: 160, RequiresDisassembly: true, PackingHours: 0.5, MovingHours: 0.75,
	})
	k.Register("bed_king", Mapping{
		Category: "bed", Size: "king", Tier: types.SizeXL,
		Materials: types.MaterialMap{
			CodeMattressCoverKing: 1, CodeFurniturePad: 4, CodeStretchWrap: 1, CodeTape: 1,
		},
		WeightLb: 200, RequiresDisassembly: true, PackingHours: 0.6, MovingHours: 1.0,
	})

	// Sofas
	k.Register("sofa_small", Mapping{
		Category: "sofa", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1},
		WeightLb:  120, PackingHours: 0.25, MovingHours: 0.5,
	})
	k.Register("sofa_medium", Mapping{
		Category: "sofa", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1},
		WeightLb:  180, PackingHours: 0.25, MovingHours: 0.75,
	})
	k.Register("sofa_large", Mapping{
		Category: "sofa", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 4, CodeStretchWrap: 1.5},
		WeightLb:  250, PackingHours: 0.3, MovingHours: 1.0,
	})
	k.Register("sofa_xl", Mapping{
		Category: "sofa", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 6, CodeStretchWrap: 2},
		WeightLb:  400, RequiresDisassembly: true, PackingHours: 0.4, MovingHours: 1.5,
	})

	// Bookshelves
	k.Register("bookshelf_small", Mapping{
		Category: "bookshelf", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  40, PackingHours: 0.15, MovingHours: 0.25,
	})
	k.Register("bookshelf_medium", Mapping{
		Category: "bookshelf", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  70, PackingHours: 0.2, MovingHours: 0.4,
	})
	k.Register("bookshelf_large", Mapping{
		Category: "bookshelf", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1},
		WeightLb:  110, PackingHours: 0.25, MovingHours: 0.6,
	})
	k.Register("bookshelf_xl", Mapping{
		Category: "bookshelf", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1},
		WeightLb:  160, RequiresDisassembly: true, PackingHours: 0.3, MovingHours: 0.9,
	})

	// Dressers
	k.Register("dresser_small", Mapping{
		Category: "dresser", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1, CodeTape: 0.5},
		WeightLb:  80, PackingHours: 0.2, MovingHours: 0.4,
	})
	k.Register("dresser_medium", Mapping{
		Category: "dresser", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1, CodeTape: 0.5},
		WeightLb:  120, PackingHours: 0.25, MovingHours: 0.6,
	})
	k.Register("dresser_large", Mapping{
		Category: "dresser", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1, CodeTape: 0.5},
		WeightLb:  180, PackingHours: 0.3, MovingHours: 0.8,
	})
	k.Register("dresser_xl", Mapping{
		Category: "dresser", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 4, CodeStretchWrap: 1.5, CodeTape: 1},
		WeightLb:  240, PackingHours: 0.35, MovingHours: 1.1,
	})

	// Wardrobes
	k.Register("wardrobe_medium", Mapping{
		Category: "wardrobe", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1},
		WeightLb:  150, PackingHours: 0.3, MovingHours: 0.8,
	})
	k.Register("wardrobe_large", Mapping{
		Category: "wardrobe", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 4, CodeStretchWrap: 1.5},
		WeightLb:  220, RequiresDisassembly: true, PackingHours: 0.35, MovingHours: 1.0,
	})
	k.Register("wardrobe_xl", Mapping{
		Category: "wardrobe", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 5, CodeStretchWrap: 2},
		WeightLb:  300, RequiresDisassembly: true, PackingHours: 0.4, MovingHours: 1.4,
	})

	// Cabinets
	k.Register("cabinet_small", Mapping{
		Category: "cabinet", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  50, PackingHours: 0.2, MovingHours: 0.3,
	})
	k.Register("cabinet_medium", Mapping{
		Category: "cabinet", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1},
		WeightLb:  100, PackingHours: 0.25, MovingHours: 0.5,
	})
	k.Register("cabinet_large", Mapping{
		Category: "cabinet", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1, CodeBubbleWrap: 10},
		WeightLb:  180, Fragile: true, PackingHours: 0.4, MovingHours: 0.8,
	})

	// Desks
	k.Register("desk_small", Mapping{
		Category: "desk", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  60, PackingHours: 0.2, MovingHours: 0.4,
	})
	k.Register("desk_medium", Mapping{
		Category: "desk", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1},
		WeightLb:  100, PackingHours: 0.25, MovingHours: 0.6,
	})
	k.Register("desk_large", Mapping{
		Category: "desk", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1},
		WeightLb:  160, RequiresDisassembly: true, PackingHours: 0.3, MovingHours: 0.9,
	})

	// Tables
	k.Register("table_small", Mapping{
		Category: "table", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 1},
		WeightLb:  40, PackingHours: 0.15, MovingHours: 0.3,
	})
	k.Register("table_medium", Mapping{
		Category: "table", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 2},
		WeightLb:  80, PackingHours: 0.2, MovingHours: 0.5,
	})
	k.Register("table_large", Mapping{
		Category: "table", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 1},
		WeightLb:  140, RequiresDisassembly: true, PackingHours: 0.3, MovingHours: 0.8,
	})
	k.Register("table_xl", Mapping{
		Category: "table", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 4, CodeStretchWrap: 1.5},
		WeightLb:  220, RequiresDisassembly: true, PackingHours: 0.4, MovingHours: 1.2,
	})

	// Chairs
	k.Register("chair_small", Mapping{
		Category: "chair", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeStretchWrap: 0.5},
		WeightLb:  20, PackingHours: 0.1, MovingHours: 0.15,
	})
	k.Register("chair_medium", Mapping{
		Category: "chair", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  35, PackingHours: 0.1, MovingHours: 0.2,
	})
	k.Register("chair_large", Mapping{
		Category: "chair", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1},
		WeightLb:  80, PackingHours: 0.15, MovingHours: 0.4,
	})

	// Nightstands
	k.Register("nightstand_small", Mapping{
		Category: "nightstand", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeFurniturePad: 1},
		WeightLb:  30, PackingHours: 0.1, MovingHours: 0.2,
	})
	k.Register("nightstand_medium", Mapping{
		Category: "nightstand", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 0.5},
		WeightLb:  45, PackingHours: 0.15, MovingHours: 0.25,
	})

	// Piano. Only one variant; always the heaviest thing in the room.
	k.Register("piano_xl", Mapping{
		Category: "piano", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 6, CodeStretchWrap: 2},
		WeightLb:  600, RequiresDisassembly: true, PackingHours: 0.75, MovingHours: 4.0,
	})

	// TVs are packed with labor; wrap materials are bundled in the line.
	k.Register("tv_small", Mapping{
		Category: "tv", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  20, Fragile: true, PackingHours: 0.25, MovingHours: 0.15,
	})
	k.Register("tv_medium", Mapping{
		Category: "tv", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  35, Fragile: true, PackingHours: 0.3, MovingHours: 0.2,
	})
	k.Register("tv_large", Mapping{
		Category: "tv", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodePackedWithLabor: 1, CodeFurniturePad: 1},
		WeightLb:  60, Fragile: true, PackingHours: 0.4, MovingHours: 0.3,
	})
	k.Register("tv_xl", Mapping{
		Category: "tv", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodePackedWithLabor: 1, CodeFurniturePad: 2},
		WeightLb:  90, Fragile: true, PackingHours: 0.5, MovingHours: 0.4,
	})

	// Mirrors and pictures: packed with labor
	k.Register("mirror_small", Mapping{
		Category: "mirror", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  10, Fragile: true, PackingHours: 0.15, MovingHours: 0.1,
	})
	k.Register("mirror_medium", Mapping{
		Category: "mirror", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  20, Fragile: true, PackingHours: 0.2, MovingHours: 0.15,
	})
	k.Register("mirror_large", Mapping{
		Category: "mirror", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  40, Fragile: true, PackingHours: 0.3, MovingHours: 0.2,
	})
	k.Register("picture_small", Mapping{
		Category: "picture", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  5, Fragile: true, PackingHours: 0.1, MovingHours: 0.05,
	})
	k.Register("picture_medium", Mapping{
		Category: "picture", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  10, Fragile: true, PackingHours: 0.15, MovingHours: 0.1,
	})
	k.Register("picture_large", Mapping{
		Category: "picture", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodePackedWithLabor: 1},
		WeightLb:  20, Fragile: true, PackingHours: 0.2, MovingHours: 0.15,
	})

	// Lamps
	k.Register("lamp_small", Mapping{
		Category: "lamp", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeBoxMedium: 1, CodePackingPaper: 0.5},
		WeightLb:  8, Fragile: true, PackingHours: 0.15, MovingHours: 0.05,
	})
	k.Register("lamp_medium", Mapping{
		Category: "lamp", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeBoxLarge: 1, CodePackingPaper: 0.5},
		WeightLb:  12, Fragile: true, PackingHours: 0.2, MovingHours: 0.1,
	})
	k.Register("lamp_large", Mapping{
		Category: "lamp", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeBoxLarge: 1, CodePackingPaper: 1},
		WeightLb:  25, Fragile: true, PackingHours: 0.25, MovingHours: 0.15,
	})

	// Appliances
	k.Register("appliance_small", Mapping{
		Category: "appliance", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeBoxLarge: 1, CodePackingPaper: 0.5, CodeTape: 0.5},
		WeightLb:  30, PackingHours: 0.2, MovingHours: 0.2,
	})
	k.Register("appliance_medium", Mapping{
		Category: "appliance", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeFurniturePad: 1, CodeStretchWrap: 1, CodeTape: 0.5},
		WeightLb:  120, PackingHours: 0.3, MovingHours: 0.6,
	})
	k.Register("appliance_large", Mapping{
		Category: "appliance", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeFurniturePad: 2, CodeStretchWrap: 1.5, CodeTape: 1},
		WeightLb:  220, PackingHours: 0.4, MovingHours: 0.9,
	})
	k.Register("appliance_xl", Mapping{
		Category: "appliance", Size: "xl", Tier: types.SizeXL,
		Materials: types.MaterialMap{CodeFurniturePad: 3, CodeStretchWrap: 2, CodeTape: 1},
		WeightLb:  320, PackingHours: 0.5, MovingHours: 1.2,
	})

	// Rugs
	k.Register("rug_small", Mapping{
		Category: "rug", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeTape: 0.5},
		WeightLb:  15, PackingHours: 0.1, MovingHours: 0.1,
	})
	k.Register("rug_medium", Mapping{
		Category: "rug", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeStretchWrap: 0.5, CodeTape: 0.5},
		WeightLb:  30, PackingHours: 0.15, MovingHours: 0.15,
	})
	k.Register("rug_large", Mapping{
		Category: "rug", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeStretchWrap: 1, CodeTape: 0.5},
		WeightLb:  60, PackingHours: 0.2, MovingHours: 0.25,
	})

	// Pre-packed boxes brought by the customer
	k.Register("box_small", Mapping{
		Category: "box", Size: "small", Tier: types.SizeSmall,
		Materials: types.MaterialMap{CodeBoxSmall: 1, CodeTape: 0.25},
		WeightLb:  30, PackingHours: 0.05, MovingHours: 0.05,
	})
	k.Register("box_medium", Mapping{
		Category: "box", Size: "medium", Tier: types.SizeMedium,
		Materials: types.MaterialMap{CodeBoxMedium: 1, CodeTape: 0.25},
		WeightLb:  40, PackingHours: 0.05, MovingHours: 0.07,
	})
	k.Register("box_large", Mapping{
		Category: "box", Size: "large", Tier: types.SizeLarge,
		Materials: types.MaterialMap{CodeBoxLarge: 1, CodeTape: 0.25},
		WeightLb:  50, PackingHours: 0.05, MovingHours: 0.1,
	})

	return k
}
