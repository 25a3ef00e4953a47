package simulation

import (
	"math"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

// Input is the pointer activity collected since the previous tick
type Input struct {
	Events []PointerEvent
}

// EventKind identifies an attempt transition
type EventKind uint8

const (
	EventStarted EventKind = iota // A shield was finalized and the attempt is running
	EventWon
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventWon:
		return "won"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event notifies the host of an attempt transition
type Event struct {
	Kind     EventKind
	LevelID  int
	Title    string
	Survived float64
}

// Engine advances attempts using a fixed tuning
type Engine struct {
	cfg Config
}

// NewEngine creates an engine. A nil config selects the defaults.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.sanitize()
	return &Engine{cfg: c}
}

// Config returns a copy of the engine tuning
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(nil)

// Advance steps prev by dt milliseconds with the default tuning
func Advance(prev State, dt float64, in Input) (State, []Event) {
	return defaultEngine.Advance(prev, dt, in)
}

// Advance returns the state after dt milliseconds and the transitions that happened.
// prev is never modified. Terminal states are returned unchanged.
func (e *Engine) Advance(prev State, dt float64, in Input) (State, []Event) {
	s := prev.Clone()
	if s.Phase.Terminal() {
		return s, nil
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	var events []Event
	emit := func(kind EventKind) {
		events = append(events, Event{
			Kind:     kind,
			LevelID:  s.Level.ID,
			Title:    s.Level.Title,
			Survived: s.Survived,
		})
	}

	for _, ev := range in.Events {
		if e.applyPointer(&s, ev) {
			emit(EventStarted)
		}
	}

	if s.Stroke.Active {
		s.UsedInk = min(s.MaxInk(), s.UsedInk+dt)
		if s.UsedInk >= s.MaxInk() && e.finishStroke(&s) {
			emit(EventStarted)
		}
	}

	if s.Phase == PhasePlaying && dt > 0 {
		if e.simulate(&s, dt) {
			s.Phase = PhaseFailed
			s.Character.Mood = MoodHarmed
			emit(EventFailed)
		} else {
			s.Survived += dt
			if s.Survived >= e.cfg.Step.VictoryDelay {
				s.Phase = PhaseWon
				s.Character.Mood = MoodHappy
				emit(EventWon)
			}
		}
	}

	e.deriveMood(&s)
	return s, events
}

// simulate runs one tick of sub-steps and reports whether the aunty was harmed
func (e *Engine) simulate(s *State, dt float64) bool {
	n := e.cfg.Step.SubSteps
	fierce := e.fierceFactor(s.Survived)
	obstacles := s.Level.Obstacles
	ch := &s.Character
	sh := s.Shield

	var world []geom.Point
	hit := false

	for step := 0; step < n; step++ {
		e.integrateCharacter(ch, s.Level.HasBalloon)
		if sh != nil {
			e.integrateShield(sh)
			world = geom.Transform(world, sh.Points, sh.Pos, sh.Rot)
		}

		if s.Level.HasBalloon {
			e.resolveBalloon(ch, sh, world, obstacles)
		}
		if sh != nil {
			e.resolveShieldVsCharacter(ch, world)
		}

		for i := range s.Threats {
			t := &s.Threats[i]
			if !t.Active {
				continue
			}
			if e.stepThreat(t, ch.Pos, sh, world, fierce, dt) {
				t.Impact = e.cfg.Swarm.LethalImpactDuration
				hit = true
			}
		}

		e.clampCharacterToWalls(ch)

		for _, o := range obstacles {
			if o.Kind.Solid() {
				e.resolveCharacterObstacle(ch, o)
			}
			for i := range s.Threats {
				if s.Threats[i].Active {
					e.resolveThreatObstacle(&s.Threats[i], o)
				}
			}
			if o.Kind.Hazard() && e.hazardContact(ch, o) {
				hit = true
			}
		}

		for i := range s.Threats {
			if s.Threats[i].Active {
				e.clampThreatToWalls(&s.Threats[i])
			}
		}

		if sh != nil {
			e.resolveShieldBounds(sh, world, obstacles)
		}

		// Obstacle pushes can move the aunty past a wall
		e.clampCharacterToWalls(ch)
	}

	return hit
}
