package engine

import (
	"pack-calc/core/confidence"
	"pack-calc/core/explanation"
	"pack-calc/core/kb"
	"pack-calc/core/types"
)

// lineItems converts a material map to presentation rows in sorted
// code order
func lineItems(m types.MaterialMap) []types.LineItem {
	out := make([]types.LineItem, 0, len(m))
	for _, code := range m.Codes() {
		lc := kb.Describe(code)
		out = append(out, types.LineItem{
			Code:        code,
			Description: lc.Description,
			Unit:        lc.Unit,
			Quantity:    m[code],
		})
	}
	return out
}

// buildResult assembles the outbound payload from the persisted
// aggregate and the per-room explanations collected during computation
func buildResult(calc *types.Calculation, expl []*explanation.RoomExplanation) *types.CalculationResult {
	result := &types.CalculationResult{
		CalculationID: calc.ID,

		PackOutMaterials: lineItems(calc.PackOutMaterials),
		PackOutLabor:     lineItems(calc.PackOutLabor),
		PackInLabor:      lineItems(calc.PackInLabor),
		Protection:       lineItems(calc.Protection),

		Debris: calc.Debris,

		CrewSize:     calc.CrewSize,
		PackOutHours: calc.ReportedPackOutHours,
		PackInHours:  calc.ReportedPackInHours,

		Confidence:      calc.Confidence,
		ConfidenceLevel: confidence.LevelFor(calc.Confidence),
		NeedsReview:     calc.NeedsReview,
		Strategies:      calc.Strategies,
	}

	result.Rooms = make([]types.RoomBreakdown, 0, len(calc.Rooms))
	for i := range calc.Rooms {
		room := &calc.Rooms[i]
		breakdown := types.RoomBreakdown{
			Name:           room.Name,
			FloorLevel:     room.FloorLevel,
			Materials:      lineItems(room.Materials),
			PackingHours:   room.PackingHours,
			MovingHours:    room.MovingHours,
			LogisticsHours: room.LogisticsHours,
			BoxCount:       room.BoxCount,
		}
		if i < len(expl) && expl[i] != nil {
			breakdown.Explanations = expl[i].Render()
		}
		result.Rooms = append(result.Rooms, breakdown)
	}

	return result
}

// ResultFromCalculation rebuilds a result view from a stored aggregate,
// without explanations (those are not persisted).
func ResultFromCalculation(calc *types.Calculation) *types.CalculationResult {
	return buildResult(calc, nil)
}
