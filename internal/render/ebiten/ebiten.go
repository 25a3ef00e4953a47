// Package ebiten implements the render interfaces with Ebiten for desktop,
// browser and mobile windows.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/saveaunty/internal/render"
)

// Debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// EbitenRenderer draws with ebiten's vector package and debug font.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, false)
}

func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText prints with the debug font. The debug font is always white at a
// fixed size, so clr and scale are ignored.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenutil.DebugPrintAt(unwrap(dst), str, x, y)
}

// MeasureText returns the debug font extent of str.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	return len(str) * glyphWidth, glyphHeight
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*Screen).img
}

// Screen wraps the ebiten.Image passed to Draw.
type Screen struct {
	img *ebiten.Image
}

// Size returns the size of the screen image in pixels.
func (s *Screen) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the whole screen image.
func (s *Screen) Fill(clr color.Color) {
	s.img.Fill(clr)
}

// EbitenInputManager reads ebiten's keyboard, mouse and touch state.
type EbitenInputManager struct {
	touches []ebiten.TouchID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() *EbitenInputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether key went down this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// PointerState returns the first touch, or the mouse when nothing touches the screen.
func (m *EbitenInputManager) PointerState() (x, y int, pressed bool) {
	m.touches = ebiten.AppendTouchIDs(m.touches[:0])
	if len(m.touches) > 0 {
		x, y = ebiten.TouchPosition(m.touches[0])
		return x, y, true
	}
	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyR:
		return ebiten.KeyR, true
	case render.KeyN:
		return ebiten.KeyN, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEnter:
		return ebiten.KeyEnter, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	}
	return 0, false
}

// EbitenEngine runs a render.Game in an ebiten window.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() *EbitenEngine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// RunGame blocks until the game's Update returns an error or the window closes.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Screen{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
