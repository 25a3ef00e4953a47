package feedback

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// LoadingText is shown while a line is being fetched
	LoadingText = "LOADING..."
	// UnavailableText is shown when the provider failed
	UnavailableText = "..."
)

// Pending is a feedback request running in the background.
// The game loop polls Text every frame without blocking.
type Pending struct {
	Outcome Outcome
	Title   string

	mu     sync.Mutex
	text   string
	done   bool
	cancel context.CancelFunc
}

// Request starts fetching a line from p. A timeout of zero waits until ctx is done.
func Request(ctx context.Context, p Provider, outcome Outcome, title string, timeout time.Duration) *Pending {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	pending := &Pending{
		Outcome: outcome,
		Title:   title,
		text:    LoadingText,
		cancel:  cancel,
	}

	go func() {
		defer cancel()
		text, err := p.Feedback(ctx, outcome, title)
		if err != nil {
			log.Printf("Feedback for %q unavailable: %v", title, err)
			text = UnavailableText
		}
		pending.resolve(text)
	}()

	return pending
}

// Resolved returns a Pending that already holds text
func Resolved(outcome Outcome, title, text string) *Pending {
	return &Pending{Outcome: outcome, Title: title, text: text, done: true, cancel: func() {}}
}

func (p *Pending) resolve(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}
	p.text = text
	p.done = true
}

// Text returns the line, or LoadingText while the request is in flight
func (p *Pending) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.text
}

// Done reports whether the request finished
func (p *Pending) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.done
}

// Cancel abandons the request
func (p *Pending) Cancel() {
	p.cancel()
}
