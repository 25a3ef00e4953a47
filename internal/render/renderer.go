// Package render defines the drawing, input and loop interfaces the game is
// written against. Backends live in subpackages (ebiten for a window,
// terminal for a tcell screen).
package render

import "image/color"

// Renderer draws shapes and text in logical canvas coordinates.
type Renderer interface {
	// Shapes
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)

	// Text
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is the surface a frame is drawn onto.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager reports keyboard and pointer state for the current frame.
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// PointerState reports the primary pointer in canvas coordinates: the
	// first touch when the screen is being touched, otherwise the mouse with
	// its left button.
	PointerState() (x, y int, pressed bool)
}

// Key represents a keyboard key.
type Key int

const (
	KeyR      Key = iota // Retry level
	KeyN                 // Next level
	KeySpace             // Continue from the outcome overlay
	KeyEnter             // Continue from the outcome overlay
	KeyEscape            // Quit
)

// Game is driven by an Engine once per tick.
type Game interface {
	Update() error
	Draw(screen Image)

	// Layout accepts the outside size (window pixels or terminal cells) and
	// returns the logical canvas size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window or terminal and runs the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the game's Update returns an error or the
	// window is closed.
	RunGame(game Game) error
}
