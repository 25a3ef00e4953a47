package game

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/feedback"
	"chosenoffset.com/saveaunty/internal/render"
	"chosenoffset.com/saveaunty/internal/simulation"
	"chosenoffset.com/saveaunty/internal/world/level"
)

type fakeInput struct {
	x, y    int
	pressed bool
	just    map[render.Key]bool
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.just[key] }
func (f *fakeInput) PointerState() (int, int, bool)       { return f.x, f.y, f.pressed }

type fakeImage struct{}

func (fakeImage) Size() (int, int) { return 400, 600 }
func (fakeImage) Fill(color.Color) {}

type fakeRenderer struct {
	texts  []string
	shapes int
}

func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.shapes++
}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.shapes++
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return 6 * len(text), 13
}

type fixedProvider string

func (p fixedProvider) Feedback(context.Context, feedback.Outcome, string) (string, error) {
	return string(p), nil
}

type harness struct {
	t   *testing.T
	m   *Manager
	in  *fakeInput
	r   *fakeRenderer
	now time.Duration
}

func testLevels() []level.Level {
	calm := level.Level{
		ID:             1,
		Title:          "Level 1: Calm",
		CharacterStart: geom.Point{X: 200, Y: 511},
		HivePos:        geom.Point{X: 200, Y: 80},
		MaxInk:         2000,
	}
	stung := level.Level{
		ID:             2,
		Title:          "Level 2: Stung",
		CharacterStart: geom.Point{X: 200, Y: 511},
		HivePos:        geom.Point{X: 200, Y: 460},
		Threats:        level.Swarm(1, 0),
		MaxInk:         2000,
	}
	return []level.Level{calm, stung}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, in: &fakeInput{just: map[render.Key]bool{}}, r: &fakeRenderer{}}

	m, err := NewManager(h.r, h.in, nil, testLevels(), fixedProvider("hello aunty"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m.Clock = func() time.Duration { return h.now }
	m.LoadLevel(0)
	h.m = m
	return h
}

// frame runs one Update after advancing the clock by dt
func (h *harness) frame(dt time.Duration) {
	h.t.Helper()
	h.now += dt
	if err := h.m.Update(); err != nil {
		h.t.Fatalf("Unexpected update error: %v", err)
	}
	h.in.just = map[render.Key]bool{}
}

func (h *harness) drawShield() {
	h.in.x, h.in.y, h.in.pressed = 60, 200, true
	h.frame(16 * time.Millisecond)
	for _, x := range []int{80, 100, 120} {
		h.in.x = x
		h.frame(16 * time.Millisecond)
	}
	h.in.pressed = false
	h.frame(16 * time.Millisecond)
}

func (h *harness) runUntilTerminal() simulation.Phase {
	h.t.Helper()
	for i := 0; i < 200; i++ {
		if phase := h.m.Game.Snapshot().Phase; phase.Terminal() {
			return phase
		}
		h.frame(100 * time.Millisecond)
	}
	h.t.Fatal("Attempt never finished")
	return simulation.PhaseReady
}

func (h *harness) waitFeedback() {
	h.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.m.Pending == nil || !h.m.Pending.Done() {
		if time.Now().After(deadline) {
			h.t.Fatal("Feedback never resolved")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewManagerNeedsLevels(t *testing.T) {
	if _, err := NewManager(&fakeRenderer{}, nil, nil, nil, nil); err == nil {
		t.Error("Expected error without levels")
	}
}

func TestPointerDrawsShield(t *testing.T) {
	h := newHarness(t)
	h.drawShield()

	snap := h.m.Game.Snapshot()
	if snap.Phase != simulation.PhasePlaying || snap.Shield == nil {
		t.Fatalf("Expected attempt running with a shield, got %v", snap.Phase)
	}
	if len(snap.Shield.Local) != 4 {
		t.Errorf("Expected 4 shield points, got %d", len(snap.Shield.Local))
	}
}

func TestWinShowsFeedbackAndAdvances(t *testing.T) {
	h := newHarness(t)
	h.drawShield()

	if phase := h.runUntilTerminal(); phase != simulation.PhaseWon {
		t.Fatalf("Expected win, got %v", phase)
	}
	h.waitFeedback()
	if got := h.m.FeedbackText(); got != "hello aunty" {
		t.Errorf("Expected provider text, got %q", got)
	}

	h.m.Draw(fakeImage{})
	joined := strings.Join(h.r.texts, "|")
	for _, want := range []string{"LEVEL CLEAR!", "HELLO AUNTY", "NEXT LEVEL", "SCORE 000000", "Level 1"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q drawn, got %v", want, h.r.texts)
		}
	}

	h.in.pressed = true
	h.frame(16 * time.Millisecond)
	if h.m.Index != 1 || h.m.Score() != 1000 {
		t.Fatalf("Expected level 2 with score 1000, got index %d", h.m.Index)
	}
	if h.m.Pending != nil {
		t.Error("Expected feedback cleared on level change")
	}

	// The held press must not start a stroke on the new level
	h.in.x = 80
	h.frame(16 * time.Millisecond)
	if h.m.Game.Snapshot().Drawing {
		t.Error("Expected no stroke from the press that dismissed the overlay")
	}
}

func TestFailOffersRetry(t *testing.T) {
	h := newHarness(t)
	h.m.LoadLevel(1)
	h.drawShield()

	if phase := h.runUntilTerminal(); phase != simulation.PhaseFailed {
		t.Fatalf("Expected failure, got %v", phase)
	}
	h.waitFeedback()

	h.m.Draw(fakeImage{})
	joined := strings.Join(h.r.texts, "|")
	if !strings.Contains(joined, "AUNTY DOWN!") || !strings.Contains(joined, "TRY AGAIN") {
		t.Errorf("Expected failure overlay, got %v", h.r.texts)
	}

	h.in.just[render.KeyEnter] = true
	h.frame(16 * time.Millisecond)

	if h.m.Attempts != 1 || h.m.Index != 1 {
		t.Errorf("Expected retry of level 2, got attempts=%d index=%d", h.m.Attempts, h.m.Index)
	}
	if phase := h.m.Game.Snapshot().Phase; phase != simulation.PhaseReady {
		t.Errorf("Expected fresh attempt, got %v", phase)
	}
}

func TestNextLevelWrapsAfterLast(t *testing.T) {
	h := newHarness(t)
	h.m.LoadLevel(1)
	if !h.m.IsLastLevel() {
		t.Fatal("Expected level 2 to be last")
	}

	h.m.NextLevel()
	if h.m.Index != 0 {
		t.Errorf("Expected wrap to first level, got %d", h.m.Index)
	}
}

func TestEscapeQuits(t *testing.T) {
	h := newHarness(t)
	h.in.just[render.KeyEscape] = true

	if err := h.m.Update(); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestLayoutIsCanvasSize(t *testing.T) {
	h := newHarness(t)
	w, hh := h.m.Layout(1920, 1080)
	if w != simulation.CanvasWidth || hh != simulation.CanvasHeight {
		t.Errorf("Expected canvas layout, got %dx%d", w, hh)
	}
}

func TestShortTitle(t *testing.T) {
	if got := ShortTitle("Level 12: Buzz Off"); got != "Level 12" {
		t.Errorf("Expected Level 12, got %q", got)
	}
	if got := ShortTitle("Bonus"); got != "Bonus" {
		t.Errorf("Expected Bonus, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
