// Package feedback supplies the aunty's one-line reaction to a finished attempt.
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Outcome is how an attempt ended
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeFail Outcome = "fail"
)

// ParseOutcome validates an outcome name
func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(s))); o {
	case OutcomeWin, OutcomeFail:
		return o, nil
	default:
		return "", fmt.Errorf("unknown outcome %q", s)
	}
}

// Provider returns a reaction line for a level outcome
type Provider interface {
	Feedback(ctx context.Context, outcome Outcome, title string) (string, error)
}

// QuoteProvider picks lines from the built-in pools.
// The title selects a base line and a small random offset keeps repeats varied.
type QuoteProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuoteProvider creates a provider. Seed 0 uses the current time.
func NewQuoteProvider(seed int64) *QuoteProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &QuoteProvider{rng: rand.New(rand.NewSource(seed))}
}

// MaxOffset bounds the random step added to the title hash
const MaxOffset = 5

// Feedback picks a line for the outcome
func (p *QuoteProvider) Feedback(ctx context.Context, outcome Outcome, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	offset := p.rng.Intn(MaxOffset)
	p.mu.Unlock()

	return Pick(outcome, title, offset), nil
}

// Pick returns the line at (titleHash + offset) in the outcome's pool
func Pick(outcome Outcome, title string, offset int) string {
	pool := failQuotes
	if outcome == OutcomeWin {
		pool = winQuotes
	}
	return pool[(titleHash(title)+offset)%len(pool)]
}

func titleHash(title string) int {
	sum := 0
	for _, r := range title {
		sum += int(r)
	}
	return sum
}

// Pool returns a copy of the lines for an outcome
func Pool(outcome Outcome) []string {
	if outcome == OutcomeWin {
		return append([]string(nil), winQuotes...)
	}
	return append([]string(nil), failQuotes...)
}

// HTTPProvider asks a feedbackd server for the line
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPProvider creates a client for the server at baseURL
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Response is the body served by /api/feedback
type Response struct {
	Outcome Outcome `json:"outcome"`
	Title   string  `json:"title"`
	Quote   string  `json:"quote"`
}

// Feedback requests a line from the server
func (p *HTTPProvider) Feedback(ctx context.Context, outcome Outcome, title string) (string, error) {
	q := url.Values{}
	q.Set("outcome", string(outcome))
	q.Set("title", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/api/feedback?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build feedback request: %w", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request feedback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feedback server returned %s", resp.Status)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode feedback: %w", err)
	}
	if body.Quote == "" {
		return "", errors.New("feedback server returned an empty quote")
	}
	return body.Quote, nil
}
