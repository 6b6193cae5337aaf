// Package types defines the shared domain types for the pack calculation engine.
package types

// FloorLevel identifies the floor a room or item sits on
type FloorLevel string

const (
	FloorBasement  FloorLevel = "basement"
	FloorMain      FloorLevel = "main"
	FloorSecond    FloorLevel = "second"
	FloorThird     FloorLevel = "third"
	FloorFourth    FloorLevel = "fourth"
	FloorFifthPlus FloorLevel = "fifth_plus"
)

// Ordinal returns the floor number counted from ground level.
// Basement counts as floor 1 for floor-count purposes.
func (f FloorLevel) Ordinal() int {
	switch f {
	case FloorBasement, FloorMain:
		return 1
	case FloorSecond:
		return 2
	case FloorThird:
		return 3
	case FloorFourth:
		return 4
	case FloorFifthPlus:
		return 5
	default:
		return 1
	}
}

// BuildingType classifies the building being packed
type BuildingType string

const (
	BuildingHouse      BuildingType = "house"
	BuildingApartment  BuildingType = "apartment"
	BuildingTownhouse  BuildingType = "townhouse"
	BuildingCondo      BuildingType = "condo"
	BuildingCommercial BuildingType = "commercial"
)

// SizeTier is the generic size bucket used for matching and wrapping
type SizeTier string

const (
	SizeSmall  SizeTier = "small"
	SizeMedium SizeTier = "medium"
	SizeLarge  SizeTier = "large"
	SizeXL     SizeTier = "xl"
)

// InputMethod records how a room inventory was captured
type InputMethod string

const (
	InputManual InputMethod = "manual"
	InputVoice  InputMethod = "voice"
	InputPhoto  InputMethod = "photo"
)

// Axis identifies a result dimension for strategy attribution
type Axis string

const (
	AxisMaterials  Axis = "materials"
	AxisLabor      Axis = "labor"
	AxisProtection Axis = "protection"
)
