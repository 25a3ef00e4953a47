package simulation

import (
	"testing"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

func TestSnapshotCountdownAndInk(t *testing.T) {
	e := NewEngine(nil)
	s := playing(testLevel(2))

	tests := []struct {
		survived float64
		want     int
	}{
		{0, 8},
		{999, 8},
		{1000, 7},
		{7001, 1},
		{8000, 0},
	}
	for _, tt := range tests {
		s.Survived = tt.survived
		if got := e.Snapshot(&s).SecondsRemaining(); got != tt.want {
			t.Errorf("SecondsRemaining at %v = %d, want %d", tt.survived, got, tt.want)
		}
	}

	s.UsedInk = 500
	snap := e.Snapshot(&s)
	if snap.InkRemaining() != 1500 {
		t.Errorf("Expected 1500 ink remaining, got %v", snap.InkRemaining())
	}
	if snap.InkFraction() != 0.75 {
		t.Errorf("Expected ink fraction 0.75, got %v", snap.InkFraction())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := NewEngine(nil)
	s := playing(testLevel(2))
	s.Shield = newShield([]geom.Point{{X: 100, Y: 200}, {X: 140, Y: 200}, {X: 180, Y: 200}, {X: 220, Y: 200}})

	snap := e.Snapshot(&s)
	snap.Threats[0].Pos = geom.Point{X: -1, Y: -1}
	snap.Shield.Local[0] = geom.Point{X: 999, Y: 999}

	if s.Threats[0].Pos == snap.Threats[0].Pos {
		t.Error("Expected threat slice to be copied")
	}
	if s.Shield.Points[0] == snap.Shield.Local[0] {
		t.Error("Expected shield points to be copied")
	}
	if snap.Shield.World[0] != (geom.Point{X: 100, Y: 200}) {
		t.Errorf("Expected first world point at stroke start, got %v", snap.Shield.World[0])
	}
	if snap.Balloon != BalloonPos(s.Character.Pos) {
		t.Errorf("Expected balloon above the aunty, got %v", snap.Balloon)
	}
}
