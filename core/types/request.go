package types

// CalculationRequest is the inbound payload consumed from the API layer.
// Validation of enum values and quantities happens at that boundary; the
// engine still normalizes quantity < 1 to 1 defensively.
type CalculationRequest struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`

	BuildingType BuildingType `json:"building_type"`

	// FloorCount of 0 means derive from room floor levels
	FloorCount  int  `json:"floor_count,omitempty"`
	HasElevator bool `json:"has_elevator"`

	// CrewSize of 0 means compute automatically
	CrewSize int `json:"crew_size,omitempty"`

	Rooms []RoomInput `json:"rooms"`
}

// RoomInput is one room of the inbound inventory
type RoomInput struct {
	Name        string      `json:"name"`
	FloorLevel  FloorLevel  `json:"floor_level"`
	InputMethod InputMethod `json:"input_method,omitempty"`
	Items       []ItemInput `json:"items"`
}

// ItemInput is one free-form inventory line
type ItemInput struct {
	Name                string     `json:"name"`
	Quantity            int        `json:"quantity,omitempty"`
	Size                SizeTier   `json:"size,omitempty"`
	Category            string     `json:"category,omitempty"`
	FloorLevel          FloorLevel `json:"floor_level,omitempty"`
	Fragile             bool       `json:"fragile,omitempty"`
	RequiresDisassembly bool       `json:"requires_disassembly,omitempty"`
}

// LineItem is a presentation-ready output row
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
}

// RoomBreakdown explains one room's contribution to the result
type RoomBreakdown struct {
	Name           string     `json:"name"`
	FloorLevel     FloorLevel `json:"floor_level"`
	Materials      []LineItem `json:"materials"`
	PackingHours   float64    `json:"packing_hours"`
	MovingHours    float64    `json:"moving_hours"`
	LogisticsHours float64    `json:"logistics_hours"`
	BoxCount       float64    `json:"box_count"`
	Explanations   []string   `json:"explanations"`
}

// CalculationResult is the outbound payload produced for the report layer
type CalculationResult struct {
	CalculationID string `json:"calculation_id"`

	PackOutMaterials []LineItem `json:"pack_out_materials"`
	PackOutLabor     []LineItem `json:"pack_out_labor"`
	PackInLabor      []LineItem `json:"pack_in_labor"`
	Protection       []LineItem `json:"protection"`

	Debris DebrisBreakdown `json:"debris"`

	Rooms []RoomBreakdown `json:"rooms"`

	CrewSize     int     `json:"crew_size"`
	PackOutHours float64 `json:"pack_out_hours"`
	PackInHours  float64 `json:"pack_in_hours"`

	Confidence      float64         `json:"confidence"`
	ConfidenceLevel string          `json:"confidence_level"`
	NeedsReview     bool            `json:"needs_review"`
	Strategies      map[Axis]string `json:"strategies"`
}
