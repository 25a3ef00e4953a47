package simulation

import (
	"sync"
	"time"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// Driver owns the current attempt for a host loop.
// Pointer methods may be called from any goroutine; they are buffered and applied on the next Tick.
type Driver struct {
	mu      sync.Mutex
	engine  *Engine
	level   level.Level
	state   State
	pending []PointerEvent
	last    time.Duration
	ticked  bool
}

// NewDriver creates a driver with l loaded. A nil engine uses the default tuning.
func NewDriver(engine *Engine, l level.Level) *Driver {
	if engine == nil {
		engine = defaultEngine
	}
	d := &Driver{engine: engine}
	d.Load(l)
	return d
}

// Load replaces the attempt with a fresh one on l
func (d *Driver) Load(l level.Level) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.level = l.Clone()
	d.restart()
}

// Reset restarts the current level from its spawn state
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.restart()
}

func (d *Driver) restart() {
	d.state = NewState(d.level)
	d.pending = nil
	d.ticked = false
}

// PointerDown queues the start of a stroke
func (d *Driver) PointerDown(at geom.Point) {
	d.queue(PointerEvent{Kind: PointerDown, At: at})
}

// PointerMove queues a stroke sample
func (d *Driver) PointerMove(at geom.Point) {
	d.queue(PointerEvent{Kind: PointerMove, At: at})
}

// PointerUp queues the end of a stroke
func (d *Driver) PointerUp(at geom.Point) {
	d.queue(PointerEvent{Kind: PointerUp, At: at})
}

func (d *Driver) queue(ev PointerEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = append(d.pending, ev)
}

// Tick advances the attempt to the monotonic timestamp now.
// The first tick after a load or reset only records the timestamp.
func (d *Driver) Tick(now time.Duration) []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	var dt float64
	if d.ticked {
		dt = float64(now-d.last) / float64(time.Millisecond)
	}
	d.last = now
	d.ticked = true

	in := Input{Events: d.pending}
	d.pending = nil

	var events []Event
	d.state, events = d.engine.Advance(d.state, dt, in)
	return events
}

// State returns a copy of the current attempt
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state.Clone()
}

// Level returns the loaded level
func (d *Driver) Level() level.Level {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.level.Clone()
}

// Snapshot returns the read model of the current attempt
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.engine.Snapshot(&d.state)
}
