// Package protection computes building protection materials for a job.
package protection

import (
	"pack-calc/core/kb"
	"pack-calc/core/types"
)

// Input carries the building metadata that drives protection quantities
type Input struct {
	Building    types.BuildingType
	FloorCount  int
	HasElevator bool
}

// Base floor-protection square footage by building type
var baseSquareFeet = map[types.BuildingType]float64{
	types.BuildingHouse:      200,
	types.BuildingApartment:  100,
	types.BuildingTownhouse:  150,
	types.BuildingCondo:      120,
	types.BuildingCommercial: 300,
}

const (
	// perFloorSquareFeet is added for every floor above the first
	perFloorSquareFeet = 50

	// stairwellPerFloor is the stairwell protection SF per floor when
	// there is no elevator
	stairwellPerFloor = 40
)

// Compute returns the protection material quantities for a building
func Compute(in Input) types.MaterialMap {
	floors := in.FloorCount
	if floors < 1 {
		floors = 1
	}

	base, ok := baseSquareFeet[in.Building]
	if !ok {
		base = baseSquareFeet[types.BuildingHouse]
	}

	out := types.NewMaterialMap()
	out.Add(kb.CodeFloorProtection, base+float64(floors-1)*perFloorSquareFeet)

	if !in.HasElevator && floors > 1 {
		out.Add(kb.CodeStairProtection, float64(floors)*stairwellPerFloor)
	}

	corners := floors
	if corners < 1 {
		corners = 1
	}
	out.Add(kb.CodeCornerProtection, float64(corners))

	return out
}
