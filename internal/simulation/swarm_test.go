package simulation

import (
	"testing"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

func TestThreatReflectsOffPlatform(t *testing.T) {
	e := NewEngine(nil)
	c := e.Config().Swarm
	platform := level.Obstacle{ID: "p", Kind: level.KindPlatform, Rect: geom.Rect{X: 100, Y: 300, W: 200, H: 20}}

	tests := []struct {
		name    string
		pos     geom.Point
		vel     geom.Point
		wantPos geom.Point
		wantVel geom.Point
	}{
		{
			name:    "falling onto the top",
			pos:     geom.Point{X: 200, Y: 297},
			vel:     geom.Point{X: 3, Y: 6},
			wantPos: geom.Point{X: 200, Y: 300 - c.ObstacleMargin},
			wantVel: geom.Point{X: 3, Y: -6 * c.ObstacleRestitution},
		},
		{
			name:    "rising into the bottom",
			pos:     geom.Point{X: 200, Y: 322},
			vel:     geom.Point{X: -2, Y: -5},
			wantPos: geom.Point{X: 200, Y: 320 + c.ObstacleMargin},
			wantVel: geom.Point{X: -2, Y: 5 * c.ObstacleRestitution},
		},
		{
			name:    "flying into the left side",
			pos:     geom.Point{X: 98, Y: 310},
			vel:     geom.Point{X: 10, Y: 1},
			wantPos: geom.Point{X: 100 - c.ObstacleMargin, Y: 310},
			wantVel: geom.Point{X: -10 * c.ObstacleRestitution, Y: 1},
		},
		{
			name:    "clear of the platform",
			pos:     geom.Point{X: 200, Y: 250},
			vel:     geom.Point{X: 4, Y: 4},
			wantPos: geom.Point{X: 200, Y: 250},
			wantVel: geom.Point{X: 4, Y: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Threat{ID: "b0", Pos: tt.pos, Vel: tt.vel, Active: true}
			e.resolveThreatObstacle(&th, platform)
			if th.Pos != tt.wantPos {
				t.Errorf("pos = %v, want %v", th.Pos, tt.wantPos)
			}
			if th.Vel != tt.wantVel {
				t.Errorf("vel = %v, want %v", th.Vel, tt.wantVel)
			}
		})
	}
}

func TestThreatReflectsOffWalls(t *testing.T) {
	e := NewEngine(nil)
	c := e.Config().Swarm

	th := Threat{Pos: geom.Point{X: 5, Y: 590}, Vel: geom.Point{X: -8, Y: 7}, Active: true}
	e.clampThreatToWalls(&th)

	want := geom.Point{X: WallThickness + c.WallMargin, Y: CanvasHeight - WallThickness - c.FloorMargin}
	if th.Pos != want {
		t.Errorf("pos = %v, want %v", th.Pos, want)
	}
	wantVel := geom.Point{X: 8 * c.ObstacleRestitution, Y: -7 * c.ObstacleRestitution}
	if th.Vel != wantVel {
		t.Errorf("vel = %v, want %v", th.Vel, wantVel)
	}
}
