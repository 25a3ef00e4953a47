package simulation

import (
	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// Phase is the attempt state machine
type Phase uint8

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseWon
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "READY"
	case PhasePlaying:
		return "PLAYING"
	case PhaseWon:
		return "WON"
	case PhaseFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the attempt is over
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseFailed
}

// Mood is the aunty's displayed state
type Mood uint8

const (
	MoodCalm Mood = iota
	MoodWorried
	MoodHappy
	MoodHarmed
)

func (m Mood) String() string {
	switch m {
	case MoodCalm:
		return "CALM"
	case MoodWorried:
		return "WORRIED"
	case MoodHappy:
		return "HAPPY"
	case MoodHarmed:
		return "HARMED"
	default:
		return "UNKNOWN"
	}
}

// Character is the aunty
type Character struct {
	Pos  geom.Point
	Vel  geom.Point
	Mood Mood
}

// Shield is the finalized drawn line.
// Points are in the local frame with the stroke centroid at the origin and never change.
type Shield struct {
	Points []geom.Point
	Pos    geom.Point
	Rot    float64
	VX, VY float64
	AV     float64
}

// Threat is one member of the swarm
type Threat struct {
	ID              string
	Pos             geom.Point
	Vel             geom.Point
	Active          bool
	Impact          float64 // Milliseconds of impact emphasis left
	SpeedMultiplier float64 // 0 = default
}

// Stroke is a drawing gesture in progress
type Stroke struct {
	Active bool
	Points []geom.Point
}

// State is everything that evolves during an attempt
type State struct {
	Level     level.Level
	Character Character
	Shield    *Shield
	Stroke    Stroke
	Threats   []Threat
	Survived  float64 // Milliseconds survived while playing
	UsedInk   float64 // Milliseconds of drawing spent
	Phase     Phase
	Started   bool // A shield has been finalized this attempt
}

// NewState builds the initial state of an attempt from a level descriptor
func NewState(l level.Level) State {
	l = l.Clone()
	if l.MaxInk <= 0 {
		l.MaxInk = level.DefaultMaxInk
	}

	threats := make([]Threat, len(l.Threats))
	for i, spec := range l.Threats {
		threats[i] = Threat{
			ID:              spec.ID,
			Pos:             l.HivePos,
			Active:          true,
			SpeedMultiplier: spec.SpeedMultiplier,
		}
	}

	return State{
		Level:     l,
		Character: Character{Pos: l.CharacterStart, Mood: MoodCalm},
		Threats:   threats,
		Phase:     PhaseReady,
	}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	out := s
	out.Threats = append([]Threat(nil), s.Threats...)
	out.Stroke.Points = append([]geom.Point(nil), s.Stroke.Points...)
	if s.Shield != nil {
		sh := *s.Shield
		sh.Points = append([]geom.Point(nil), s.Shield.Points...)
		out.Shield = &sh
	}
	// Level slices are never mutated after NewState so they can be shared
	return out
}

// MaxInk returns the drawing budget of the attempt
func (s *State) MaxInk() float64 {
	return s.Level.MaxInk
}

// InkRemaining returns the unspent drawing budget
func (s *State) InkRemaining() float64 {
	return max(0, s.Level.MaxInk-s.UsedInk)
}

// BalloonPos returns the balloon centre for a given aunty position
func BalloonPos(aunty geom.Point) geom.Point {
	return geom.Point{X: aunty.X, Y: aunty.Y - BalloonOffsetY}
}
