package model

import (
	"testing"
	"time"
)

func TestChoreStatusTransitions(t *testing.T) {
	tests := []struct {
		from ChoreStatus
		to   ChoreStatus
		want bool
	}{
		{ChoreStatusPending, ChoreStatusCompleted, true},
		{ChoreStatusCompleted, ChoreStatusVerified, true},
		{ChoreStatusPending, ChoreStatusVerified, false},
		{ChoreStatusCompleted, ChoreStatusPending, false},
		{ChoreStatusVerified, ChoreStatusCompleted, false},
		{ChoreStatusVerified, ChoreStatusPending, false},
		{ChoreStatusVerified, ChoreStatusVerified, false},
		{ChoreStatusPending, ChoreStatusPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestChoreStampDefaults(t *testing.T) {
	now := time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)

	c := Chore{Title: "Make Bed"}.Stamp("5", now)
	if c.ID != "5" {
		t.Errorf("id = %q, want %q", c.ID, "5")
	}
	if !c.CreatedDate.Equal(now) {
		t.Errorf("created_date = %v, want %v", c.CreatedDate, now)
	}
	if c.Status != ChoreStatusPending {
		t.Errorf("status = %q, want default pending", c.Status)
	}

	// Caller-supplied values survive stamping.
	earlier := now.Add(-time.Hour)
	c2 := Chore{ID: "9", CreatedDate: earlier, Status: ChoreStatusCompleted}.Stamp("5", now)
	if c2.ID != "9" || !c2.CreatedDate.Equal(earlier) || c2.Status != ChoreStatusCompleted {
		t.Errorf("stamp overwrote caller fields: %+v", c2)
	}
}
