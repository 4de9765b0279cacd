package rules

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 2},
		{110, 2},
		{150, 2},
		{199, 2},
		{200, 3},
		{280, 3},
		{1000, 11},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := Level(tt.points); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	prev := Level(0)
	for p := 1; p <= 1000; p++ {
		cur := Level(p)
		if cur < prev {
			t.Fatalf("Level(%d) = %d dropped below Level(%d) = %d", p, cur, p-1, prev)
		}
		prev = cur
	}
}

func TestProgress(t *testing.T) {
	for p := 0; p <= 500; p++ {
		got := Progress(p)
		if got != p%100 {
			t.Errorf("Progress(%d) = %d, want %d", p, got, p%100)
		}
		if got < 0 || got > 99 {
			t.Errorf("Progress(%d) = %d, out of [0,99]", p, got)
		}
	}
}

func TestPointsToNext(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 100},
		{95, 5},
		{99, 1},
		{100, 100},
		{150, 50},
	}
	for _, tt := range tests {
		if got := PointsToNext(tt.points); got != tt.want {
			t.Errorf("PointsToNext(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}
