// Package explanation builds the natural-language per-room breakdown.
// Exposes WHY each quantity and hour figure was chosen, not just totals.
package explanation

import (
	"fmt"
	"strings"
)

// ItemExplanation records how one inventory line was resolved
type ItemExplanation struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	ResolvedKey string  `json:"resolved_key,omitempty"`
	Strategy    string  `json:"strategy"`
	Confidence  float64 `json:"confidence"`

	PackingHours float64 `json:"packing_hours"`
	MovingHours  float64 `json:"moving_hours"`

	// Notes carry extra reasoning: wrapping additions, contents
	// estimator reasoning, fallback warnings
	Notes []string `json:"notes,omitempty"`
}

// AddNote appends a reasoning note
func (e *ItemExplanation) AddNote(format string, args ...interface{}) {
	e.Notes = append(e.Notes, fmt.Sprintf(format, args...))
}

// Render produces the one-line explanation for this item
func (e *ItemExplanation) Render() string {
	var sb strings.Builder

	resolved := e.ResolvedKey
	if resolved == "" {
		resolved = "no match"
	}
	fmt.Fprintf(&sb, "%s x%d: %s via %s (%.0f%% confidence)",
		e.Name, e.Quantity, resolved, strategyLabel(e.Strategy), e.Confidence*100)

	if e.PackingHours > 0 || e.MovingHours > 0 {
		fmt.Fprintf(&sb, "; %.2fh packing, %.2fh moving", e.PackingHours, e.MovingHours)
	}
	for _, note := range e.Notes {
		sb.WriteString("; ")
		sb.WriteString(note)
	}
	return sb.String()
}

// RoomExplanation aggregates item explanations for one room
type RoomExplanation struct {
	Room  string
	Items []*ItemExplanation

	// LogisticsNote explains the distributed truck/storage handling time
	LogisticsNote string
}

// NewRoomExplanation creates an explanation for a room
func NewRoomExplanation(room string) *RoomExplanation {
	return &RoomExplanation{Room: room}
}

// AddItem records one item's explanation
func (r *RoomExplanation) AddItem(e *ItemExplanation) {
	r.Items = append(r.Items, e)
}

// SetLogistics records the logistics distribution note
func (r *RoomExplanation) SetLogistics(hours, boxShare float64) {
	r.LogisticsNote = fmt.Sprintf(
		"logistics: %.2fh handling time (%.0f%% of project boxes)", hours, boxShare*100)
}

// Render produces the room's explanation lines
func (r *RoomExplanation) Render() []string {
	out := make([]string, 0, len(r.Items)+1)
	for _, item := range r.Items {
		out = append(out, item.Render())
	}
	if r.LogisticsNote != "" {
		out = append(out, r.LogisticsNote)
	}
	return out
}

func strategyLabel(strategy string) string {
	switch strategy {
	case "composite_key", "legacy_lookup", "seed_data":
		return "seed data"
	case "similarity", "fuzzy_match":
		return "fuzzy match"
	case "contents_profile":
		return "contents profile"
	case "default_fallback":
		return "default fallback"
	default:
		return strategy
	}
}
