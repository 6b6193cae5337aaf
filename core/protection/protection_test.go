package protection

import (
	"testing"

	"pack-calc/core/kb"
	"pack-calc/core/types"
)

func TestSingleFloorHouse(t *testing.T) {
	out := Compute(Input{Building: types.BuildingHouse, FloorCount: 1})

	if got := out.Get(kb.CodeFloorProtection); got != 200 {
		t.Errorf("expected 200 SF floor protection, got %.0f", got)
	}
	if out.Has(kb.CodeStairProtection) {
		t.Error("single-floor building must not need stairwell protection")
	}
	if got := out.Get(kb.CodeCornerProtection); got != 1 {
		t.Errorf("expected 1 corner guard, got %.0f", got)
	}
}

func TestMultiFloorWithoutElevator(t *testing.T) {
	out := Compute(Input{Building: types.BuildingHouse, FloorCount: 3})

	if got := out.Get(kb.CodeFloorProtection); got != 300 {
		t.Errorf("expected 300 SF floor protection (200 + 2x50), got %.0f", got)
	}
	if got := out.Get(kb.CodeStairProtection); got != 120 {
		t.Errorf("expected 120 SF stairwell protection (3x40), got %.0f", got)
	}
	if got := out.Get(kb.CodeCornerProtection); got != 3 {
		t.Errorf("expected 3 corner guards, got %.0f", got)
	}
}

func TestElevatorSkipsStairwellProtection(t *testing.T) {
	out := Compute(Input{Building: types.BuildingApartment, FloorCount: 4, HasElevator: true})

	if out.Has(kb.CodeStairProtection) {
		t.Error("elevator building must not need stairwell protection")
	}
}

func TestUnknownBuildingFallsBackToHouse(t *testing.T) {
	known := Compute(Input{Building: types.BuildingHouse, FloorCount: 1})
	unknown := Compute(Input{Building: types.BuildingType("warehouse"), FloorCount: 1})

	if unknown.Get(kb.CodeFloorProtection) != known.Get(kb.CodeFloorProtection) {
		t.Error("unknown building type should use house base footage")
	}
}

func TestZeroFloorCountTreatedAsOne(t *testing.T) {
	out := Compute(Input{Building: types.BuildingCondo, FloorCount: 0})

	if got := out.Get(kb.CodeFloorProtection); got != 120 {
		t.Errorf("expected 120 SF for a condo at one floor, got %.0f", got)
	}
	if out.Has(kb.CodeStairProtection) {
		t.Error("zero floors must not produce stairwell protection")
	}
}
