package game

import (
	"time"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/render"
	"chosenoffset.com/saveaunty/internal/simulation"
)

// Game runs one attempt: it turns pointer input into stroke events and ticks the driver.
type Game struct {
	Driver   *simulation.Driver
	Renderer render.Renderer
	InputMgr render.InputManager
	Clock    func() time.Duration

	// Pointer tracking
	pointerDown bool
	lastPointer geom.Point
	clicked     bool
}

// NewGame creates a game around driver. A nil clock uses wall time since creation.
func NewGame(driver *simulation.Driver, r render.Renderer, input render.InputManager, clock func() time.Duration) *Game {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}
	return &Game{
		Driver:   driver,
		Renderer: r,
		InputMgr: input,
		Clock:    clock,
	}
}

// Update feeds this frame's pointer activity to the driver and advances it.
func (g *Game) Update() []simulation.Event {
	g.pollPointer()
	return g.Driver.Tick(g.Clock())
}

// Clicked reports whether the pointer was pressed during the last Update
func (g *Game) Clicked() bool {
	return g.clicked
}

// Snapshot returns the read model of the attempt
func (g *Game) Snapshot() simulation.Snapshot {
	return g.Driver.Snapshot()
}

// pollPointer converts the pointer state into down/move/up events
func (g *Game) pollPointer() {
	g.clicked = false
	if g.InputMgr == nil {
		return
	}

	x, y, pressed := g.InputMgr.PointerState()
	p := geom.Point{X: float64(x), Y: float64(y)}

	switch {
	case pressed && !g.pointerDown:
		g.Driver.PointerDown(p)
		g.clicked = true
	case pressed && p != g.lastPointer:
		g.Driver.PointerMove(p)
	case !pressed && g.pointerDown:
		g.Driver.PointerUp(g.lastPointer)
	}

	g.pointerDown = pressed
	g.lastPointer = p
}
