package simulation

import (
	"math"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// ShieldView is the drawable shield
type ShieldView struct {
	Pos    geom.Point
	Rot    float64
	Local  []geom.Point
	World  []geom.Point
	Radius float64
}

// Snapshot is a read-only copy of an attempt for renderers
type Snapshot struct {
	LevelID    int
	Title      string
	Phase      Phase
	Started    bool
	Character  Character
	HasBalloon bool
	Balloon    geom.Point
	Hive       geom.Point
	Obstacles  []level.Obstacle
	Shield     *ShieldView
	Stroke     []geom.Point
	Drawing    bool
	Threats    []Threat
	InkUsed    float64
	InkMax     float64
	Survived   float64
	Victory    float64
}

// Snapshot builds the read model of s. Nothing in the result aliases s.
func (e *Engine) Snapshot(s *State) Snapshot {
	snap := Snapshot{
		LevelID:    s.Level.ID,
		Title:      s.Level.Title,
		Phase:      s.Phase,
		Started:    s.Started,
		Character:  s.Character,
		HasBalloon: s.Level.HasBalloon,
		Balloon:    BalloonPos(s.Character.Pos),
		Hive:       s.Level.HivePos,
		Obstacles:  append([]level.Obstacle(nil), s.Level.Obstacles...),
		Stroke:     append([]geom.Point(nil), s.Stroke.Points...),
		Drawing:    s.Stroke.Active,
		Threats:    append([]Threat(nil), s.Threats...),
		InkUsed:    s.UsedInk,
		InkMax:     s.MaxInk(),
		Survived:   s.Survived,
		Victory:    e.cfg.Step.VictoryDelay,
	}

	if sh := s.Shield; sh != nil {
		snap.Shield = &ShieldView{
			Pos:    sh.Pos,
			Rot:    sh.Rot,
			Local:  append([]geom.Point(nil), sh.Points...),
			World:  geom.Transform(nil, sh.Points, sh.Pos, sh.Rot),
			Radius: e.cfg.Shield.CollisionRadius,
		}
	}
	return snap
}

// InkRemaining returns the unspent drawing budget in milliseconds
func (s Snapshot) InkRemaining() float64 {
	return max(0, s.InkMax-s.InkUsed)
}

// InkFraction returns the unspent share of the drawing budget in [0, 1]
func (s Snapshot) InkFraction() float64 {
	if s.InkMax <= 0 {
		return 0
	}
	return geom.Clamp(s.InkRemaining()/s.InkMax, 0, 1)
}

// SecondsRemaining returns the whole seconds left until the aunty is safe
func (s Snapshot) SecondsRemaining() int {
	left := s.Victory - s.Survived
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left / 1000))
}
