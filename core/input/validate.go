// Package input - Normalized request boundary
// EVERYTHING downstream consumes validated requests only.
// Decouples CLI and file-format semantics from the calculation engine.
package input

import (
	"fmt"

	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

var validFloorLevels = map[types.FloorLevel]bool{
	types.FloorBasement:  true,
	types.FloorMain:      true,
	types.FloorSecond:    true,
	types.FloorThird:     true,
	types.FloorFourth:    true,
	types.FloorFifthPlus: true,
}

var validBuildingTypes = map[types.BuildingType]bool{
	types.BuildingHouse:      true,
	types.BuildingApartment:  true,
	types.BuildingTownhouse:  true,
	types.BuildingCondo:      true,
	types.BuildingCommercial: true,
}

var validSizeTiers = map[types.SizeTier]bool{
	types.SizeSmall:  true,
	types.SizeMedium: true,
	types.SizeLarge:  true,
	types.SizeXL:     true,
}

// Validate checks a calculation request at the engine boundary.
// Enum fields may be empty (defaults apply downstream) but never invalid.
func Validate(req *types.CalculationRequest) error {
	if req == nil {
		return errors.Input("request is nil")
	}
	if len(req.Rooms) == 0 {
		return errors.Input("request has no rooms")
	}
	if req.BuildingType != "" && !validBuildingTypes[req.BuildingType] {
		return errors.Newf(errors.TypeInput, "unknown building type: %s", req.BuildingType)
	}
	if req.FloorCount < 0 {
		return errors.Input("floor_count must not be negative")
	}
	if req.CrewSize < 0 {
		return errors.Input("crew_size must not be negative")
	}

	for i, room := range req.Rooms {
		where := fmt.Sprintf("rooms[%d]", i)
		if room.Name == "" {
			return errors.Newf(errors.TypeInput, "%s: name is required", where)
		}
		if room.FloorLevel != "" && !validFloorLevels[room.FloorLevel] {
			return errors.Newf(errors.TypeInput, "%s: unknown floor level: %s", where, room.FloorLevel)
		}
		for j, item := range room.Items {
			itemWhere := fmt.Sprintf("%s.items[%d]", where, j)
			if item.Name == "" {
				return errors.Newf(errors.TypeInput, "%s: name is required", itemWhere)
			}
			if item.Quantity < 0 {
				return errors.Newf(errors.TypeInput, "%s: quantity must not be negative", itemWhere)
			}
			if item.Size != "" && !validSizeTiers[item.Size] {
				return errors.Newf(errors.TypeInput, "%s: unknown size: %s", itemWhere, item.Size)
			}
			if item.FloorLevel != "" && !validFloorLevels[item.FloorLevel] {
				return errors.Newf(errors.TypeInput, "%s: unknown floor level: %s", itemWhere, item.FloorLevel)
			}
		}
	}
	return nil
}
