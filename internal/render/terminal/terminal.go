// Package terminal implements the render interfaces on a tcell screen so the
// game can be played in a terminal with the mouse.
//
// The logical canvas is mapped onto character cells that are assumed to be
// twice as tall as they are wide. Shapes are rasterized by cell centers and
// painted as cell backgrounds; text is painted as foreground runes on top of
// whatever background is already there.
package terminal

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/saveaunty/internal/render"
)

// FrameInterval is the delay between two game ticks.
const FrameInterval = 16 * time.Millisecond

// Canvas maps logical canvas coordinates to terminal cells.
type Canvas struct {
	Width, Height int
	Cols, Rows    int

	scale      float64 // canvas units per cell column
	offX, offY float64 // centering offset in cells
}

// NewCanvas fits a width x height canvas into cols x rows cells, keeping its
// aspect ratio and centering it.
func NewCanvas(width, height, cols, rows int) Canvas {
	c := Canvas{Width: width, Height: height, Cols: cols, Rows: rows, scale: 1}
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return c
	}
	c.scale = math.Max(float64(width)/float64(cols), float64(height)/float64(rows*2))
	c.offX = (float64(cols) - float64(width)/c.scale) / 2
	c.offY = (float64(rows) - float64(height)/(c.scale*2)) / 2
	return c
}

// CellWidth is the width of one cell in canvas units.
func (c Canvas) CellWidth() float64 { return c.scale }

// CellHeight is the height of one cell in canvas units.
func (c Canvas) CellHeight() float64 { return c.scale * 2 }

// ToCell returns the cell containing canvas point (x, y).
func (c Canvas) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x/c.scale + c.offX))
	row = int(math.Floor(y/(c.scale*2) + c.offY))
	return col, row
}

// ToCanvas returns the canvas position of the center of a cell.
func (c Canvas) ToCanvas(col, row int) (x, y float64) {
	x = (float64(col) + 0.5 - c.offX) * c.scale
	y = (float64(row) + 0.5 - c.offY) * c.scale * 2
	return x, y
}

func (c Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.Cols && row < c.Rows
}

// Surface is a render.Image backed by a tcell screen. A surface without a
// screen accepts drawing calls and discards them.
type Surface struct {
	screen tcell.Screen
	canvas Canvas
}

// NewSurface wraps screen with the given canvas mapping.
func NewSurface(screen tcell.Screen, canvas Canvas) *Surface {
	return &Surface{screen: screen, canvas: canvas}
}

// Canvas returns the current mapping.
func (s *Surface) Canvas() Canvas { return s.canvas }

// Size returns the logical canvas size.
func (s *Surface) Size() (width, height int) {
	return s.canvas.Width, s.canvas.Height
}

// Fill paints every cell with the given background color.
func (s *Surface) Fill(clr color.Color) {
	if s.screen == nil {
		return
	}
	bg, ok := toColor(clr)
	if !ok {
		return
	}
	s.screen.Fill(' ', tcell.StyleDefault.Background(bg))
}

func (s *Surface) paint(col, row int, bg tcell.Color) {
	if s.screen == nil || !s.canvas.inside(col, row) {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bg))
}

// toColor converts clr to a terminal color. Mostly transparent colors are
// reported as not drawable.
func toColor(clr color.Color) (tcell.Color, bool) {
	if clr == nil {
		return tcell.ColorDefault, false
	}
	_, _, _, a := clr.RGBA()
	if a < 0x8000 {
		return tcell.ColorDefault, false
	}
	return tcell.FromImageColor(clr), true
}

// Renderer implements render.Renderer on Surfaces. Text is measured against
// the mapping last given to SetCanvas.
type Renderer struct {
	mu     sync.Mutex
	canvas Canvas
}

// NewRenderer creates a terminal renderer.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// SetCanvas updates the mapping used by MeasureText.
func (r *Renderer) SetCanvas(canvas Canvas) {
	r.mu.Lock()
	r.canvas = canvas
	r.mu.Unlock()
}

func unwrap(img render.Image) *Surface {
	s, ok := img.(*Surface)
	if !ok {
		return &Surface{}
	}
	return s
}

// fillWhere paints every cell in the bounding box whose center satisfies
// inside. Shapes smaller than a cell still paint the cell under their center.
func fillWhere(s *Surface, minX, minY, maxX, maxY float64, bg tcell.Color, inside func(x, y float64) bool) {
	c := s.canvas
	c0, r0 := c.ToCell(minX, minY)
	c1, r1 := c.ToCell(maxX, maxY)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.ToCanvas(col, row)
			if inside(x, y) {
				s.paint(col, row, bg)
				painted = true
			}
		}
	}
	if !painted {
		col, row := c.ToCell((minX+maxX)/2, (minY+maxY)/2)
		s.paint(col, row, bg)
	}
}

// FillRect paints the cells covered by the rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	bg, ok := toColor(clr)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	x0, y0 := float64(x), float64(y)
	x1, y1 := x0+float64(width), y0+float64(height)
	fillWhere(unwrap(dst), x0, y0, x1, y1, bg, func(px, py float64) bool {
		return px >= x0 && px < x1 && py >= y0 && py < y1
	})
}

// StrokeRect paints the four edges of the rectangle.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.StrokeLine(dst, x, y, x+width, y, strokeWidth, clr)
	r.StrokeLine(dst, x+width, y, x+width, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x+width, y+height, x, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x, y+height, x, y, strokeWidth, clr)
}

// FillCircle paints the cells whose centers lie inside the circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	bg, ok := toColor(clr)
	if !ok || radius <= 0 {
		return
	}
	fillDisc(unwrap(dst), float64(x), float64(y), float64(radius), bg)
}

func fillDisc(s *Surface, cx, cy, radius float64, bg tcell.Color) {
	rr := radius * radius
	fillWhere(s, cx-radius, cy-radius, cx+radius, cy+radius, bg, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= rr
	})
}

// StrokeCircle paints cells along the circumference.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	bg, ok := toColor(clr)
	if !ok || radius <= 0 {
		return
	}
	s := unwrap(dst)
	cx, cy, rad := float64(x), float64(y), float64(radius)
	step := s.canvas.CellWidth() / 2
	n := int(math.Ceil(2 * math.Pi * rad / step))
	if n < 8 {
		n = 8
	}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		col, row := s.canvas.ToCell(cx+math.Cos(a)*rad, cy+math.Sin(a)*rad)
		s.paint(col, row, bg)
	}
}

// StrokeLine samples the segment every half cell. Strokes wider than two
// cells are painted as a chain of discs.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	bg, ok := toColor(clr)
	if !ok {
		return
	}
	s := unwrap(dst)
	ax, ay := float64(x0), float64(y0)
	dx, dy := float64(x1)-ax, float64(y1)-ay
	step := s.canvas.CellWidth() / 2
	n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1
	half := float64(strokeWidth) / 2
	thick := half >= s.canvas.CellWidth()
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		px, py := ax+dx*t, ay+dy*t
		if thick {
			fillDisc(s, px, py, half, bg)
			continue
		}
		col, row := s.canvas.ToCell(px, py)
		s.paint(col, row, bg)
	}
}

// DrawText writes text starting at the cell containing (x, y). The cell
// backgrounds underneath are kept; scale is ignored.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	fg, ok := toColor(clr)
	if !ok {
		return
	}
	s := unwrap(dst)
	if s.screen == nil {
		return
	}
	col, row := s.canvas.ToCell(float64(x), float64(y))
	for _, ch := range text {
		if s.canvas.inside(col, row) {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, ch, nil, style.Foreground(fg))
		}
		col++
	}
}

// MeasureText returns the canvas size of text laid out one rune per cell.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	r.mu.Lock()
	c := r.canvas
	r.mu.Unlock()
	w := float64(len([]rune(text))) * c.CellWidth()
	return int(math.Ceil(w)), int(math.Ceil(c.CellHeight()))
}

// Input implements render.InputManager from tcell events.
//
// Terminals report key presses but not releases, so a key counts as pressed
// for the frame in which it arrived. A mouse press that is released before
// the next frame is still reported as pressed for one frame.
type Input struct {
	mu      sync.Mutex
	canvas  Canvas
	x, y    int
	pressed bool
	latched bool
	keys    map[render.Key]bool
}

// NewInput creates an input manager for a canvas mapping.
func NewInput(canvas Canvas) *Input {
	return &Input{canvas: canvas, keys: make(map[render.Key]bool)}
}

// SetCanvas updates the mapping used to convert mouse cells to canvas points.
func (in *Input) SetCanvas(canvas Canvas) {
	in.mu.Lock()
	in.canvas = canvas
	in.mu.Unlock()
}

// HandleEvent records a tcell event. It reports whether the event was used.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := in.canvas.ToCanvas(col, row)
		in.x, in.y = int(math.Round(x)), int(math.Round(y))
		in.pressed = ev.Buttons()&tcell.Button1 != 0
		if in.pressed {
			in.latched = true
		}
		return true
	case *tcell.EventKey:
		key, ok := translateKey(ev)
		if ok {
			in.keys[key] = true
		}
		return ok
	}
	return false
}

// EndFrame clears per-frame key presses and the mouse latch.
func (in *Input) EndFrame() {
	in.mu.Lock()
	clear(in.keys)
	in.latched = false
	in.mu.Unlock()
}

func translateKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyEnter:
		return render.KeyEnter, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return render.KeySpace, true
		case 'r', 'R':
			return render.KeyR, true
		case 'n', 'N':
			return render.KeyN, true
		case 'q', 'Q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}

// IsKeyJustPressed reports whether key arrived during the current frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.keys[key]
}

// PointerState returns the mouse position and primary button.
func (in *Input) PointerState() (x, y int, pressed bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.x, in.y, in.pressed || in.latched
}

// Engine runs a render.Game on a tcell screen. The caller owns the screen
// and is responsible for Init and Fini.
type Engine struct {
	screen   tcell.Screen
	renderer *Renderer
	input    *Input
	tick     time.Duration
}

// NewEngine creates an engine drawing through renderer and feeding events to
// input. Both follow the canvas mapping across resizes.
func NewEngine(screen tcell.Screen, renderer *Renderer, input *Input) *Engine {
	return &Engine{screen: screen, renderer: renderer, input: input, tick: FrameInterval}
}

// SetWindowSize is a no-op; the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the terminal title where supported.
func (e *Engine) SetWindowTitle(title string) {
	e.screen.SetTitle(title)
}

// SetWindowResizable is a no-op; terminal resizes are always followed.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame ticks game until Update returns an error or the screen is
// finalized. A finalized screen ends the loop without error.
func (e *Engine) RunGame(game render.Game) error {
	e.screen.EnableMouse()
	e.screen.HideCursor()

	surface := &Surface{screen: e.screen}
	relayout := func() {
		cols, rows := e.screen.Size()
		w, h := game.Layout(cols, rows)
		surface.canvas = NewCanvas(w, h, cols, rows)
		e.renderer.SetCanvas(surface.canvas)
		e.input.SetCanvas(surface.canvas)
	}
	relayout()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				e.screen.Sync()
				relayout()
				continue
			}
			e.input.HandleEvent(ev)

		case <-ticker.C:
			err := game.Update()
			e.input.EndFrame()
			if err != nil {
				return err
			}
			e.screen.Clear()
			game.Draw(surface)
			e.screen.Show()
		}
	}
}
