package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

func sampleResult() *types.CalculationResult {
	return &types.CalculationResult{
		CalculationID: "calc-1",
		PackOutMaterials: []types.LineItem{
			{Code: "BOX-M", Description: "Medium box", Unit: "EA", Quantity: 4},
			{Code: "BWRAP", Description: "Bubble wrap", Unit: "FT", Quantity: 20.5},
		},
		PackOutLabor: []types.LineItem{
			{Code: "LAB-PACK", Description: "Packing labor", Unit: "HR", Quantity: 2.5},
		},
		Rooms: []types.RoomBreakdown{
			{Name: "Bedroom", FloorLevel: types.FloorSecond,
				PackingHours: 1.2, MovingHours: 0.8, LogisticsHours: 0.3, BoxCount: 4,
				Explanations: []string{"queen bed x1: bed_queen via seed data (90% confidence)"}},
		},
		CrewSize:        2,
		PackOutHours:    6.4,
		PackInHours:     2.1,
		Confidence:      0.85,
		ConfidenceLevel: "high",
	}
}

func TestJSONOutputRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, Options{Format: "json"})

	if err := f.Write(sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded types.CalculationResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.CalculationID != "calc-1" {
		t.Errorf("unexpected calculation ID: %s", decoded.CalculationID)
	}
	if decoded.CrewSize != 2 || len(decoded.PackOutMaterials) != 2 {
		t.Error("result fields lost in JSON encoding")
	}
}

func TestTextOutputListsMaterialsAndRooms(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, Options{Format: "text", NoColor: true, ShowExplanations: true})

	if err := f.Write(sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"BOX-M", "Medium box", "20.50",
		"Pack-Out Labor", "LAB-PACK",
		"Bedroom", "queen bed x1",
		"calculation calc-1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in text output", want)
		}
	}
	if strings.Contains(got, "Protection") {
		t.Error("empty sections should be skipped")
	}
}

func TestExplanationsHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, Options{NoColor: true})

	if err := f.Write(sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "queen bed x1") {
		t.Error("explanations should only render when requested")
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, Options{Format: "yaml"})

	err := f.Write(sampleResult())
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected an input error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown format")
	}
}

func TestWholeQuantitiesPrintWithoutDecimals(t *testing.T) {
	if got := fmtQty(4); got != "4" {
		t.Errorf("expected 4, got %s", got)
	}
	if got := fmtQty(20.5); got != "20.50" {
		t.Errorf("expected 20.50, got %s", got)
	}
}
