// Package floors provides the per-floor labor multiplier table.
// Moving hours scale per floor level and direction; packing hours never do.
package floors

import (
	"pack-calc/core/types"
)

// Multiplier scales moving labor for one floor level.
// Down applies to pack-out (carrying items out), Up to pack-in.
type Multiplier struct {
	Down float64
	Up   float64
}

// table holds the empirically tuned reference multipliers.
// Changing these silently changes billing output.
var table = map[types.FloorLevel]Multiplier{
	types.FloorBasement:  {Down: 1.2, Up: 1.5},
	types.FloorMain:      {Down: 1.0, Up: 1.0},
	types.FloorSecond:    {Down: 1.3, Up: 1.6},
	types.FloorThird:     {Down: 1.5, Up: 2.0},
	types.FloorFourth:    {Down: 1.7, Up: 2.5},
	types.FloorFifthPlus: {Down: 2.0, Up: 3.0},
}

// For returns the multiplier for a floor level.
// Unknown levels fall back to the main level.
func For(level types.FloorLevel) Multiplier {
	if m, ok := table[level]; ok {
		return m
	}
	return table[types.FloorMain]
}

// Known reports whether a floor level has an explicit table entry
func Known(level types.FloorLevel) bool {
	_, ok := table[level]
	return ok
}
