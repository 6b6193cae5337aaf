package determinism

import (
	"testing"

	"pack-calc/core/types"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68},
		{2.664, 2.66},
		{-2.675, -2.68},
		{0.125, 0.13},
		{1.0, 1.0},
	}
	for _, tt := range tests {
		if got := RoundQty(tt.in); got != tt.want {
			t.Errorf("RoundQty(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRoundMaterialsInPlace(t *testing.T) {
	m := types.MaterialMap{"BOX-M": 1.23456, "TAPE": 0.005}
	RoundMaterials(m)

	if m["BOX-M"] != 1.23 {
		t.Errorf("expected 1.23, got %v", m["BOX-M"])
	}
	if m["TAPE"] != 0.01 {
		t.Errorf("expected 0.01, got %v", m["TAPE"])
	}
}

func TestStableIDsAreReproducible(t *testing.T) {
	g := NewIDGenerator("calc-1")

	first := g.Generate("room", "Bedroom", "0")
	second := g.Generate("room", "Bedroom", "0")
	if first != second {
		t.Errorf("same parts must yield the same ID: %s vs %s", first, second)
	}
	if len(first) != 16 {
		t.Errorf("expected a 16-character ID, got %d", len(first))
	}
}

func TestStableIDsVaryByNamespaceAndParts(t *testing.T) {
	a := NewIDGenerator("calc-1")
	b := NewIDGenerator("calc-2")

	if a.Generate("room", "Bedroom") == b.Generate("room", "Bedroom") {
		t.Error("different namespaces must yield different IDs")
	}
	if a.Generate("room", "Bedroom") == a.Generate("room", "Kitchen") {
		t.Error("different parts must yield different IDs")
	}

	// Part boundaries matter: ("ab", "c") != ("a", "bc")
	if a.Generate("ab", "c") == a.Generate("a", "bc") {
		t.Error("part boundaries must be part of the identity")
	}
}
