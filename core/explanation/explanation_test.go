package explanation

import (
	"strings"
	"testing"
)

func TestItemRenderCarriesResolutionDetails(t *testing.T) {
	e := &ItemExplanation{
		Name:         "queen bed",
		Quantity:     1,
		ResolvedKey:  "bed_queen",
		Strategy:     "composite_key",
		Confidence:   0.9,
		PackingHours: 0.5,
		MovingHours:  0.75,
	}
	e.AddNote("wrapping added for fragile item (%s)", "large")

	got := e.Render()
	for _, want := range []string{
		"queen bed x1", "bed_queen", "seed data", "90% confidence",
		"0.50h packing", "0.75h moving", "wrapping added",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestUnresolvedItemRendersNoMatch(t *testing.T) {
	e := &ItemExplanation{Name: "mystery", Quantity: 2, Strategy: "default_fallback", Confidence: 0.3}

	got := e.Render()
	if !strings.Contains(got, "no match") {
		t.Errorf("expected a no-match marker, got %q", got)
	}
	if !strings.Contains(got, "default fallback") {
		t.Errorf("expected the fallback label, got %q", got)
	}
	if strings.Contains(got, "packing") {
		t.Errorf("zero hours should not render an hours clause: %q", got)
	}
}

func TestStrategyLabels(t *testing.T) {
	tests := []struct {
		strategy string
		want     string
	}{
		{"composite_key", "seed data"},
		{"legacy_lookup", "seed data"},
		{"similarity", "fuzzy match"},
		{"contents_profile", "contents profile"},
		{"default_fallback", "default fallback"},
		{"custom_thing", "custom_thing"},
	}
	for _, tt := range tests {
		if got := strategyLabel(tt.strategy); got != tt.want {
			t.Errorf("strategyLabel(%s): expected %q, got %q", tt.strategy, tt.want, got)
		}
	}
}

func TestRoomRenderOrdersItemsThenLogistics(t *testing.T) {
	room := NewRoomExplanation("Bedroom")
	room.AddItem(&ItemExplanation{Name: "bed", Quantity: 1, ResolvedKey: "bed_full", Strategy: "composite_key", Confidence: 0.8})
	room.AddItem(&ItemExplanation{Name: "lamp", Quantity: 2, ResolvedKey: "lamp_small", Strategy: "legacy_lookup", Confidence: 0.65})
	room.SetLogistics(0.45, 0.3)

	lines := room.Render()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "bed ") || !strings.HasPrefix(lines[1], "lamp ") {
		t.Errorf("items out of order: %v", lines[:2])
	}
	if !strings.Contains(lines[2], "0.45h handling time") || !strings.Contains(lines[2], "30% of project boxes") {
		t.Errorf("unexpected logistics line: %q", lines[2])
	}
}
