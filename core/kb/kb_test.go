package kb

import (
	"testing"

	"pack-calc/core/types"
)

func TestSeedRegistersBedVariants(t *testing.T) {
	k := Seed()

	for _, key := range []string{"bed_twin", "bed_full", "bed_queen", "bed_king"} {
		if !k.Has(key) {
			t.Errorf("expected seeded key %s", key)
		}
	}

	queen, _ := k.Get("bed_queen")
	if queen.Category != "bed" || queen.Size != "queen" {
		t.Errorf("unexpected bed_queen mapping: %+v", queen)
	}
	if !queen.RequiresDisassembly {
		t.Error("queen bed should require disassembly")
	}
	if queen.Materials.Get(CodeMattressCoverQueen) != 1 {
		t.Error("queen bed should carry a queen mattress cover")
	}
}

func TestOverridesWinOnExactMatch(t *testing.T) {
	static := Seed()
	overrides := Overrides{
		"bed_queen": {
			Category: "bed", Size: "queen", Tier: types.SizeLarge,
			Materials:    types.MaterialMap{CodeFurniturePad: 10},
			PackingHours: 2.0, MovingHours: 2.0,
		},
	}
	view := NewView(static, overrides)

	mapping, ok := view.Lookup("bed_queen")
	if !ok {
		t.Fatal("expected bed_queen to resolve")
	}
	if mapping.Materials.Get(CodeFurniturePad) != 10 {
		t.Error("expected the override mapping, got the static one")
	}

	// Keys not overridden still resolve from the static table
	if _, ok := view.Lookup("bed_king"); !ok {
		t.Error("static keys must survive alongside overrides")
	}
}

func TestOverridesExtendTheKeySpace(t *testing.T) {
	view := NewView(Seed(), Overrides{
		"safe_large": {
			Category: "safe", Size: "large", Tier: types.SizeLarge,
			Materials:   types.MaterialMap{CodeFurniturePad: 2},
			MovingHours: 1.5,
		},
	})

	if !view.Has("safe_large") {
		t.Fatal("override-only key must be visible")
	}
	keys := view.KeysByCategory("safe")
	if len(keys) != 1 || keys[0] != "safe_large" {
		t.Errorf("expected safe_large in category lookup, got %v", keys)
	}
}

func TestDescribeFallsBackToCode(t *testing.T) {
	lc := Describe("NOPE-99")
	if lc.Description != "NOPE-99" || lc.Unit != "EA" {
		t.Errorf("unexpected fallback: %+v", lc)
	}

	box := Describe(CodeBoxMedium)
	if box.Unit != "EA" || box.Description == CodeBoxMedium {
		t.Errorf("expected a real description for %s", CodeBoxMedium)
	}
}

func TestCodeClassification(t *testing.T) {
	for _, code := range []string{CodeBoxSmall, CodeBoxMedium, CodeBoxLarge, CodeBoxDish, CodeBoxWardrobe} {
		if !IsBoxCode(code) {
			t.Errorf("%s should be a box code", code)
		}
	}
	if IsBoxCode(CodeBubbleWrap) {
		t.Error("bubble wrap is not a box code")
	}

	for _, code := range []string{CodeFurniturePad, CodeStretchWrap, CodeBubbleWrap, CodePackedWithLabor} {
		if !IsWrapCode(code) {
			t.Errorf("%s should be a wrap code", code)
		}
	}
	if IsWrapCode(CodeBoxSmall) {
		t.Error("a box is not a wrap code")
	}
}

func TestKeysByCategoryPreservesRegistrationOrder(t *testing.T) {
	k := Seed()
	keys := k.KeysByCategory("bed")

	want := []string{"bed_twin", "bed_full", "bed_queen", "bed_king"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d bed keys, got %d", len(want), len(keys))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("position %d: expected %s, got %s", i, key, keys[i])
		}
	}
}
