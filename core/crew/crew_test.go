package crew

import "testing"

func TestMinimumCrewIsTwo(t *testing.T) {
	if got := Size(Input{}); got != MinCrew {
		t.Errorf("expected minimum crew of %d, got %d", MinCrew, got)
	}
	if got := Size(Input{Requested: 1}); got != MinCrew {
		t.Errorf("requested crew below minimum must clamp to %d, got %d", MinCrew, got)
	}
}

func TestRequestedCrewWins(t *testing.T) {
	if got := Size(Input{Requested: 5}); got != 5 {
		t.Errorf("expected requested crew of 5, got %d", got)
	}
}

func TestModerateJobStaysAtMinimum(t *testing.T) {
	// 40 items, 30 boxes, 10 base hours, 6 rooms, 2 floors: every driver
	// sits below a full bonus block, so the crew stays at the minimum.
	in := Input{
		Requested:  2,
		TotalItems: 40,
		TotalBoxes: 30,
		BaseHours:  10,
		RoomCount:  6,
		FloorCount: 2,
	}
	if got := Size(in); got != 2 {
		t.Errorf("expected crew of 2, got %d", got)
	}
}

func TestEachDriverAddsCrew(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"items", Input{TotalItems: 71}, 4},
		{"boxes", Input{TotalBoxes: 56}, 4},
		{"hours", Input{BaseHours: 28}, 4},
		{"rooms", Input{RoomCount: 16}, 4},
		{"floors", Input{FloorCount: 3}, 3},
	}
	for _, tt := range tests {
		if got := Size(tt.in); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestDriversCombine(t *testing.T) {
	in := Input{
		TotalItems: 71, // +2
		TotalBoxes: 56, // +2
		BaseHours:  28, // +2
		RoomCount:  16, // +2
		FloorCount: 3,  // +1
	}
	if got := Size(in); got != 11 {
		t.Errorf("expected crew of 11, got %d", got)
	}
}
