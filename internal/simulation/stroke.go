package simulation

import (
	"math"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

// PointerKind identifies a pointer event
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer sample in canvas coordinates
type PointerEvent struct {
	Kind PointerKind
	At   geom.Point
}

// CanDraw reports whether a new stroke may begin
func (s *State) CanDraw() bool {
	return s.Phase == PhaseReady && !s.Started && !s.Stroke.Active && s.InkRemaining() > 0
}

// clampSample keeps a drawing sample inside the wall frame
func (e *Engine) clampSample(p geom.Point) geom.Point {
	m := WallThickness + e.cfg.Drawing.SampleMargin
	return geom.Point{
		X: geom.Clamp(p.X, m, CanvasWidth-m),
		Y: geom.Clamp(p.Y, m, CanvasHeight-m),
	}
}

// applyPointer feeds one pointer event into the stroke state machine.
// It reports whether the event finalized a shield.
func (e *Engine) applyPointer(s *State, ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if !s.CanDraw() {
			return false
		}
		// A press is judged where it landed; only the stored sample is clamped
		if e.OverlapsProtected(s, ev.At) {
			return false
		}
		s.Stroke = Stroke{Active: true, Points: []geom.Point{e.clampSample(ev.At)}}

	case PointerMove:
		if !s.Stroke.Active {
			return false
		}
		p := e.clampSample(ev.At)
		if s.UsedInk >= s.MaxInk() || e.OverlapsProtected(s, p) {
			return e.finishStroke(s)
		}
		last := s.Stroke.Points[len(s.Stroke.Points)-1]
		if geom.Distance(last, p) > e.cfg.Drawing.MinSpacing {
			s.Stroke.Points = append(s.Stroke.Points, p)
		}

	case PointerUp:
		if s.Stroke.Active {
			return e.finishStroke(s)
		}
	}
	return false
}

// finishStroke ends the gesture. Enough points become the shield and start the attempt;
// otherwise the stroke is discarded and the ink spent on it stays spent.
func (e *Engine) finishStroke(s *State) bool {
	points := s.Stroke.Points
	s.Stroke = Stroke{}

	if len(points) < e.cfg.Drawing.MinPoints {
		return false
	}

	s.Shield = newShield(points)
	s.Started = true
	s.Phase = PhasePlaying
	return true
}

// OverlapsProtected reports whether p lies in a zone where drawing is not allowed:
// around the aunty, her body, the balloon and its string, the hive and every obstacle.
func (e *Engine) OverlapsProtected(s *State, p geom.Point) bool {
	aunty := s.Character.Pos
	margin := e.cfg.Drawing.ObstacleMargin

	if geom.Distance(p, aunty) < CharacterRadius+8 {
		return true
	}
	if math.Abs(p.X-aunty.X) < 40 && p.Y > aunty.Y-30 && p.Y < aunty.Y+90 {
		return true
	}

	if s.Level.HasBalloon {
		b := BalloonPos(aunty)
		if geom.Distance(p, b) < BalloonRadius+6 {
			return true
		}
		if math.Abs(p.X-b.X) < 8 && p.Y > b.Y && p.Y < aunty.Y {
			return true
		}
	}

	if geom.Distance(p, s.Level.HivePos) < HiveSafeRadius {
		return true
	}

	for _, o := range s.Level.Obstacles {
		if o.Rect.Inflate(margin).ContainsOpen(p) {
			return true
		}
	}
	return false
}
