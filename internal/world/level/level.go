// Package level describes the static layout of a single attempt: where the aunty starts,
// where the hive sits, which obstacles fill the canvas and how big the swarm is.
// Levels are produced by the generator or loaded from JSON packs and are read-only
// to the simulation.
package level

import (
	"fmt"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

// DefaultMaxInk is the drawing budget (milliseconds of drawing) used when a level omits one
const DefaultMaxInk = 2000.0

// ObstacleKind classifies a static obstacle
type ObstacleKind string

const (
	KindPlatform ObstacleKind = "platform"
	KindCrate    ObstacleKind = "crate"
	KindSpikes   ObstacleKind = "spikes"
	KindWater    ObstacleKind = "water"
)

// Solid reports whether the obstacle physically blocks the aunty and the swarm
func (k ObstacleKind) Solid() bool {
	return k == KindPlatform || k == KindCrate
}

// Hazard reports whether touching the obstacle harms the aunty
func (k ObstacleKind) Hazard() bool {
	return k == KindSpikes || k == KindWater
}

// Valid reports whether k is a known kind
func (k ObstacleKind) Valid() bool {
	return k.Solid() || k.Hazard()
}

// Obstacle is an axis-aligned static rectangle
type Obstacle struct {
	ID   string       `json:"id"`
	Kind ObstacleKind `json:"kind"`
	geom.Rect
}

// ThreatSpec describes one member of the swarm.
// A zero SpeedMultiplier means the simulation default applies.
type ThreatSpec struct {
	ID              string  `json:"id"`
	SpeedMultiplier float64 `json:"speed_multiplier,omitempty"`
}

// Level is the immutable descriptor an attempt is built from
type Level struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	CharacterStart geom.Point   `json:"character_start"`
	HivePos        geom.Point   `json:"hive_pos"`
	Obstacles      []Obstacle   `json:"obstacles"`
	Threats        []ThreatSpec `json:"threats,omitempty"`
	MaxInk         float64      `json:"max_ink,omitempty"`
	HasBalloon     bool         `json:"has_balloon,omitempty"`

	// Shorthand for packs that describe a uniform swarm instead of listing every threat
	ThreatCount     int     `json:"threat_count,omitempty"`
	SpeedMultiplier float64 `json:"speed_multiplier,omitempty"`
}

// Normalize fills documented defaults in place and rejects unknown obstacle kinds
func (l *Level) Normalize() error {
	if l.Title == "" {
		l.Title = fmt.Sprintf("Level %d", l.ID)
	}
	if l.MaxInk <= 0 {
		l.MaxInk = DefaultMaxInk
	}
	if len(l.Threats) == 0 && l.ThreatCount > 0 {
		l.Threats = Swarm(l.ThreatCount, l.SpeedMultiplier)
	}
	for i := range l.Threats {
		if l.Threats[i].ID == "" {
			l.Threats[i].ID = fmt.Sprintf("b%d", i)
		}
		if l.Threats[i].SpeedMultiplier < 0 {
			l.Threats[i].SpeedMultiplier = 0
		}
	}
	for i, o := range l.Obstacles {
		if !o.Kind.Valid() {
			return fmt.Errorf("level %d obstacle %q: unknown kind %q", l.ID, o.ID, o.Kind)
		}
		if o.ID == "" {
			l.Obstacles[i].ID = fmt.Sprintf("o%d", i)
		}
	}
	return nil
}

// Swarm builds count threat specs sharing one speed multiplier
func Swarm(count int, speedMultiplier float64) []ThreatSpec {
	specs := make([]ThreatSpec, count)
	for i := range specs {
		specs[i] = ThreatSpec{ID: fmt.Sprintf("b%d", i), SpeedMultiplier: speedMultiplier}
	}
	return specs
}

// Clone returns a deep copy so callers can never alias another level's slices
func (l Level) Clone() Level {
	out := l
	out.Obstacles = append([]Obstacle(nil), l.Obstacles...)
	out.Threats = append([]ThreatSpec(nil), l.Threats...)
	return out
}
