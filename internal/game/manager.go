package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"chosenoffset.com/saveaunty/internal/feedback"
	"chosenoffset.com/saveaunty/internal/render"
	"chosenoffset.com/saveaunty/internal/simulation"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// Manager handles level progression, attempts and the outcome overlay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Clock        func() time.Duration

	Levels   []level.Level
	Index    int // Current level
	Attempts int // Resets since the level was loaded
	Game     *Game

	// Feedback for the finished attempt
	Feedback        feedback.Provider
	FeedbackTimeout time.Duration
	Pending         *feedback.Pending

	engine *simulation.Engine
}

// NewManager creates a manager positioned on the first level.
func NewManager(r render.Renderer, input render.InputManager, engine *simulation.Engine, levels []level.Level, provider feedback.Provider) (*Manager, error) {
	if len(levels) == 0 {
		return nil, errors.New("no levels to play")
	}
	if engine == nil {
		engine = simulation.NewEngine(nil)
	}
	if provider == nil {
		provider = feedback.NewQuoteProvider(0)
	}

	m := &Manager{
		ScreenWidth:     simulation.CanvasWidth,
		ScreenHeight:    simulation.CanvasHeight,
		Renderer:        r,
		InputMgr:        input,
		Levels:          levels,
		Feedback:        provider,
		FeedbackTimeout: 3 * time.Second,
		engine:          engine,
	}
	m.LoadLevel(0)
	return m, nil
}

// LoadLevel starts a fresh attempt on level index (wrapped into range).
func (m *Manager) LoadLevel(index int) {
	n := len(m.Levels)
	m.Index = ((index % n) + n) % n
	m.Attempts = 0
	m.dropFeedback()

	l := m.Levels[m.Index]
	prev := m.Game
	m.Game = NewGame(simulation.NewDriver(m.engine, l), m.Renderer, m.InputMgr, m.Clock)
	if prev != nil {
		// A press that dismissed the overlay must not start a stroke on the new level
		m.Game.pointerDown = prev.pointerDown
		m.Game.lastPointer = prev.lastPointer
	}
	log.Printf("Loaded %s (%d threats, %.0fms ink)", l.Title, len(l.Threats), l.MaxInk)
}

// Retry restarts the current level.
func (m *Manager) Retry() {
	m.dropFeedback()
	m.Attempts++
	m.Game.Driver.Reset()
}

// NextLevel advances to the following level, wrapping to the first after the last.
func (m *Manager) NextLevel() {
	if m.IsLastLevel() {
		log.Printf("All %d levels cleared, starting over", len(m.Levels))
	}
	m.LoadLevel(m.Index + 1)
}

// IsLastLevel reports whether the current level is the final one
func (m *Manager) IsLastLevel() bool {
	return m.Index == len(m.Levels)-1
}

// Score is the points shown in the header
func (m *Manager) Score() int {
	return m.Index * 1000
}

func (m *Manager) dropFeedback() {
	if m.Pending != nil {
		m.Pending.Cancel()
		m.Pending = nil
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr != nil && m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}

	events := m.Game.Update()
	m.handleEvents(events)

	phase := m.Game.Snapshot().Phase
	if !phase.Terminal() {
		if m.keyPressed(render.KeyR) {
			m.Retry()
		}
		return nil
	}

	advance := m.Game.Clicked() || m.keyPressed(render.KeyEnter) || m.keyPressed(render.KeySpace)
	switch {
	case m.keyPressed(render.KeyR):
		m.Retry()
	case phase == simulation.PhaseWon && (advance || m.keyPressed(render.KeyN)):
		m.NextLevel()
	case phase == simulation.PhaseFailed && advance:
		m.Retry()
	}
	return nil
}

func (m *Manager) keyPressed(key render.Key) bool {
	return m.InputMgr != nil && m.InputMgr.IsKeyJustPressed(key)
}

// handleEvents reacts to attempt transitions
func (m *Manager) handleEvents(events []simulation.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case simulation.EventStarted:
			log.Printf("%s: shield drawn, attempt %d running", ev.Title, m.Attempts+1)
		case simulation.EventWon:
			log.Printf("%s: aunty saved", ev.Title)
			m.requestFeedback(feedback.OutcomeWin, ev.Title)
		case simulation.EventFailed:
			log.Printf("%s: aunty stung after %.0fms", ev.Title, ev.Survived)
			m.requestFeedback(feedback.OutcomeFail, ev.Title)
		}
	}
}

func (m *Manager) requestFeedback(outcome feedback.Outcome, title string) {
	m.dropFeedback()
	m.Pending = feedback.Request(context.Background(), m.Feedback, outcome, title, m.FeedbackTimeout)
}

// FeedbackText returns the line for the finished attempt, or the loading text
func (m *Manager) FeedbackText() string {
	if m.Pending == nil {
		return feedback.LoadingText
	}
	return m.Pending.Text()
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
	m.drawHeader(screen)

	switch m.Game.Snapshot().Phase {
	case simulation.PhaseWon:
		button := "NEXT LEVEL"
		if m.IsLastLevel() {
			button = "FINISH!"
		}
		m.drawOverlay(screen, "LEVEL CLEAR!", button, colorButtonWin)
	case simulation.PhaseFailed:
		m.drawOverlay(screen, "AUNTY DOWN!", "TRY AGAIN", colorButtonFail)
	}
}

// drawHeader shows score and level number inside the top wall
func (m *Manager) drawHeader(screen render.Image) {
	m.Renderer.DrawText(screen, fmt.Sprintf("SCORE %06d", m.Score()), 20, 0, colorWhite, 1)

	name := ShortTitle(m.Levels[m.Index].Title)
	w, _ := m.Renderer.MeasureText(name, 1)
	m.Renderer.DrawText(screen, name, simulation.CanvasWidth-20-w, 0, colorWhite, 1)
}

func (m *Manager) drawOverlay(screen render.Image, heading, button string, buttonColor color.Color) {
	const px, py, pw = 40, 160, 320
	cw, ch := float32(simulation.CanvasWidth), float32(simulation.CanvasHeight)
	m.Renderer.FillRect(screen, 0, 0, cw, ch, colorOverlay)

	lines := WrapText(strings.ToUpper(m.FeedbackText()), 40)
	ph := float32(120 + 16*len(lines))
	m.Renderer.FillRect(screen, px, py, pw, ph, colorPanel)
	m.Renderer.StrokeRect(screen, px, py, pw, ph, 8, colorBlack)

	m.drawCentered(screen, heading, py+20)
	for i, line := range lines {
		m.drawCentered(screen, line, py+50+16*i)
	}

	by := py + int(ph) - 50
	m.Renderer.FillRect(screen, px+80, float32(by), pw-160, 32, buttonColor)
	m.Renderer.StrokeRect(screen, px+80, float32(by), pw-160, 32, 4, colorBlack)
	m.drawCentered(screen, button, by+9)
}

func (m *Manager) drawCentered(screen render.Image, text string, y int) {
	w, _ := m.Renderer.MeasureText(text, 1)
	m.Renderer.DrawText(screen, text, (simulation.CanvasWidth-w)/2, y, colorBlack, 1)
}

// Layout keeps the logical screen at canvas size so pointer coordinates are canvas coordinates.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

// ShortTitle returns the part of a level title before the colon
func ShortTitle(title string) string {
	short, _, _ := strings.Cut(title, ":")
	return strings.TrimSpace(short)
}

// WrapText splits text into lines of at most width runes, breaking at spaces
func WrapText(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
