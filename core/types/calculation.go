package types

import "time"

// Calculation is one full estimation run.
// It is created empty, mutated in place as rooms are processed, and
// written atomically at calculation end.
type Calculation struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`

	// Building metadata
	BuildingType BuildingType `json:"building_type"`
	FloorCount   int          `json:"floor_count"`
	HasElevator  bool         `json:"has_elevator"`
	CrewSize     int          `json:"crew_size"`

	// Aggregated outputs (code -> quantity, labor codes carry hours)
	PackOutMaterials MaterialMap `json:"pack_out_materials"`
	PackOutLabor     MaterialMap `json:"pack_out_labor"`
	PackInLabor      MaterialMap `json:"pack_in_labor"`
	Protection       MaterialMap `json:"protection"`

	// Debris breakdown derived from aggregated materials
	Debris DebrisBreakdown `json:"debris"`

	// Summary hour totals (base hours, before crew scaling)
	TotalPackingHours   float64 `json:"total_packing_hours"`
	TotalMovingHours    float64 `json:"total_moving_hours"`
	TotalLogisticsHours float64 `json:"total_logistics_hours"`

	// Reported hours are base hours scaled by crew size
	ReportedPackOutHours float64 `json:"reported_pack_out_hours"`
	ReportedPackInHours  float64 `json:"reported_pack_in_hours"`

	// ML metadata
	Confidence  float64         `json:"confidence"`
	NeedsReview bool            `json:"needs_review"`
	Strategies  map[Axis]string `json:"strategies"`

	// Correction state
	WasCorrected        bool        `json:"was_corrected"`
	CorrectionMagnitude float64     `json:"correction_magnitude,omitempty"`
	CorrectedMaterials  MaterialMap `json:"corrected_materials,omitempty"`
	CorrectedLabor      MaterialMap `json:"corrected_labor,omitempty"`
	CorrectionNotes     string      `json:"correction_notes,omitempty"`
	ApprovedForTraining bool        `json:"approved_for_training"`

	Rooms []Room `json:"rooms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room belongs to exactly one Calculation
type Room struct {
	ID            string      `json:"id"`
	CalculationID string      `json:"calculation_id"`
	Name          string      `json:"name"`
	FloorLevel    FloorLevel  `json:"floor_level"`
	InputMethod   InputMethod `json:"input_method"`

	// Per-room aggregates
	Materials      MaterialMap `json:"materials"`
	PackingHours   float64     `json:"packing_hours"`
	MovingHours    float64     `json:"moving_hours"`
	LogisticsHours float64     `json:"logistics_hours"`
	BoxCount       float64     `json:"box_count"`

	Items []Item `json:"items,omitempty"`
}

// Item belongs to exactly one Room.
// Quantity is always >= 1; resolved materials are always non-negative.
type Item struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	// Optional explicit attributes; inferred when empty
	Size     SizeTier `json:"size,omitempty"`
	Category string   `json:"category,omitempty"`

	// FloorLevel inherits the room's when unset
	FloorLevel FloorLevel `json:"floor_level,omitempty"`

	Fragile             bool `json:"fragile"`
	RequiresDisassembly bool `json:"requires_disassembly"`

	// Resolution outputs
	ResolvedKey  string      `json:"resolved_key,omitempty"`
	Materials    MaterialMap `json:"materials"`
	PackingHours float64     `json:"packing_hours"`
	MovingHours  float64     `json:"moving_hours"`
	Confidence   float64     `json:"confidence"`
}

// CorrectionRecord holds the delta-bearing fields of a human correction,
// attached 1:1 to a Calculation once corrected.
type CorrectionRecord struct {
	ID                  string      `json:"id"`
	CalculationID       string      `json:"calculation_id"`
	CorrectedMaterials  MaterialMap `json:"corrected_materials"`
	CorrectedLabor      MaterialMap `json:"corrected_labor"`
	Notes               string      `json:"notes,omitempty"`
	Magnitude           float64     `json:"magnitude"`
	ApprovedForTraining bool        `json:"approved_for_training"`
	CreatedAt           time.Time   `json:"created_at"`
}

// DebrisBreakdown reports post-pack debris weight by material class.
// Ton values are always the pound values divided by exactly 2000.
type DebrisBreakdown struct {
	CardboardLb   float64 `json:"cardboard_lb"`
	PlasticLb     float64 `json:"plastic_lb"`
	PaperLb       float64 `json:"paper_lb"`
	TotalLb       float64 `json:"total_lb"`
	CardboardTons float64 `json:"cardboard_tons"`
	PlasticTons   float64 `json:"plastic_tons"`
	PaperTons     float64 `json:"paper_tons"`
	TotalTons     float64 `json:"total_tons"`
}
