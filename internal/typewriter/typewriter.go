// Package typewriter reveals a finished string a few characters per tick so a
// complete response reads as if it were being generated live.
package typewriter

import (
	"iter"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultInterval matches a 4ms cadence between ticks.
	DefaultInterval = 4 * time.Millisecond
	// DefaultRate reveals one character per tick.
	DefaultRate = 1
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances a reveal. Ticks addressed to another model or to an
// abandoned reveal are ignored.
type TickMsg struct {
	ID         int
	generation int
}

// Option customizes a Model.
type Option func(*Model)

// WithRate sets how many characters appear per tick.
func WithRate(rate int) Option {
	return func(m *Model) {
		if rate > 0 {
			m.rate = rate
		}
	}
}

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// Model is a Bubble Tea component holding one reveal at a time.
type Model struct {
	id         int
	generation int
	runes      []rune
	shown      int
	rate       int
	interval   time.Duration
}

// New returns an idle Model.
func New(opts ...Option) Model {
	m := Model{
		id:       nextID(),
		rate:     DefaultRate,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID identifies the model's ticks.
func (m Model) ID() int { return m.id }

// Start abandons any reveal in progress and begins revealing text from the
// empty prefix.
func (m *Model) Start(text string) tea.Cmd {
	m.generation++
	m.runes = []rune(text)
	m.shown = 0
	if len(m.runes) == 0 {
		return nil
	}
	return m.tick()
}

// Stop abandons the current reveal and clears the output.
func (m *Model) Stop() {
	m.generation++
	m.runes = nil
	m.shown = 0
}

// Skip reveals the rest of the text at once.
func (m *Model) Skip() {
	m.shown = len(m.runes)
}

// Done reports whether the full text is visible.
func (m Model) Done() bool {
	return m.shown >= len(m.runes)
}

// Text returns the full target string.
func (m Model) Text() string {
	return string(m.runes)
}

// Update handles TickMsg values.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.generation != m.generation || m.Done() {
		return m, nil
	}
	m.shown = advance(m.shown, m.rate, len(m.runes))
	if m.Done() {
		return m, nil
	}
	return m, m.tick()
}

// View renders the revealed prefix.
func (m Model) View() string {
	return string(m.runes[:m.shown])
}

func (m Model) tick() tea.Cmd {
	id, generation := m.id, m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, generation: generation}
	})
}

func advance(shown, rate, total int) int {
	if rate < 1 {
		rate = 1
	}
	shown += rate
	if shown > total {
		shown = total
	}
	return shown
}

// Prefixes yields the successive prefixes a reveal of text at rate would show,
// ending with text itself. Empty text yields nothing.
func Prefixes(text string, rate int) iter.Seq[string] {
	runes := []rune(text)
	return func(yield func(string) bool) {
		shown := 0
		for shown < len(runes) {
			shown = advance(shown, rate, len(runes))
			if !yield(string(runes[:shown])) {
				return
			}
		}
	}
}
