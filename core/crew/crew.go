// Package crew computes the crew size assumed when converting base
// per-person labor hours into total billable hours.
package crew

// Input carries the aggregates that drive crew sizing
type Input struct {
	// Requested is the user-provided crew size (0 = none)
	Requested int

	// TotalItems across all rooms
	TotalItems int

	// TotalBoxes across all rooms (box-code quantities)
	TotalBoxes int

	// BaseHours is total base labor hours before crew scaling
	BaseHours float64

	// RoomCount across the calculation
	RoomCount int

	// FloorCount of the building
	FloorCount int
}

// Sizing thresholds. Each bonus applies per FULL block beyond its
// threshold, by integer division.
const (
	MinCrew = 2

	itemThreshold = 30
	itemsPerCrew  = 20

	boxThreshold = 25
	boxesPerCrew = 15

	hourThreshold = 12.0
	hoursPerCrew  = 8.0

	roomThreshold = 5
	roomsPerCrew  = 5

	multiFloorAt = 3
)

// Size computes the crew size for a calculation. Always >= MinCrew.
func Size(in Input) int {
	size := MinCrew
	if in.Requested > size {
		size = in.Requested
	}

	if in.TotalItems > itemThreshold {
		size += (in.TotalItems - itemThreshold) / itemsPerCrew
	}
	if in.TotalBoxes > boxThreshold {
		size += (in.TotalBoxes - boxThreshold) / boxesPerCrew
	}
	if in.BaseHours > hourThreshold {
		size += int((in.BaseHours - hourThreshold) / hoursPerCrew)
	}
	if in.RoomCount > roomThreshold {
		size += (in.RoomCount - roomThreshold) / roomsPerCrew
	}
	if in.FloorCount >= multiFloorAt {
		size++
	}

	return size
}
