// Package session holds the summarize screen's submission state machine.
//
// A Machine moves Idle → Loading → Shown → Idle. Submit hands out exactly one
// Request per accepted submission and Resolve accepts exactly one Result for it.
package session

import (
	"errors"
	"strings"

	"github.com/csheth/tldr/internal/vocab"
)

// FailureMessage is shown for every upstream failure, whatever the cause.
const FailureMessage = "Failed to generate summary. Please try again."

var (
	// ErrEmptyInput blocks submission of empty or whitespace-only text.
	ErrEmptyInput = errors.New("input text is empty")
	// ErrBusy is returned when the machine is not Idle.
	ErrBusy = errors.New("a summary is already in progress")
)

// Mode enumerates the screen states.
type Mode int

const (
	ModeIdle Mode = iota
	ModeLoading
	ModeShown
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeLoading:
		return "loading"
	case ModeShown:
		return "shown"
	default:
		return "unknown"
	}
}

// Request is the single outbound summarization call for a submission.
type Request struct {
	ID         uint64
	Message    string
	Context    string
	VocabLevel string
}

// Result is either a summary or the fixed failure message, never both.
type Result struct {
	text   string
	failed bool
}

// Succeeded wraps a summary returned by the relay.
func Succeeded(text string) Result {
	return Result{text: text}
}

// Failed returns the generic failure result.
func Failed() Result {
	return Result{text: FailureMessage, failed: true}
}

// Failed reports whether the result is the failure branch.
func (r Result) Failed() bool { return r.failed }

// Text returns the summary, or FailureMessage for failures.
func (r Result) Text() string { return r.text }

// Machine owns the screen state. It is not safe for concurrent use; the
// Bubble Tea update loop is its only writer.
type Machine struct {
	table    vocab.Table
	mode     Mode
	text     string
	level    string
	result   Result
	nextID   uint64
	inFlight uint64
}

// New returns an Idle machine with the default vocabulary level selected.
func New(table vocab.Table) *Machine {
	if table == nil {
		table = vocab.Levels
	}
	level := vocab.DefaultLabel
	if _, err := table.Instruction(level); err != nil && len(table) > 0 {
		level = table[0].Label
	}
	return &Machine{table: table, level: level}
}

func (m *Machine) Mode() Mode         { return m.mode }
func (m *Machine) Text() string       { return m.text }
func (m *Machine) VocabLevel() string { return m.level }

// Result returns the shown result. ok is false outside ModeShown.
func (m *Machine) Result() (Result, bool) {
	if m.mode != ModeShown {
		return Result{}, false
	}
	return m.result, true
}

// Pending returns the ID of the request in flight, or 0.
func (m *Machine) Pending() uint64 {
	if m.mode != ModeLoading {
		return 0
	}
	return m.inFlight
}

// SetText replaces the input while Idle. It reports whether the edit applied.
func (m *Machine) SetText(text string) bool {
	if m.mode != ModeIdle {
		return false
	}
	m.text = text
	return true
}

// ImportText overwrites the input with file contents verbatim.
func (m *Machine) ImportText(text string) bool {
	return m.SetText(text)
}

// SetVocabLevel selects a label from the table.
func (m *Machine) SetVocabLevel(label string) error {
	if m.mode != ModeIdle {
		return ErrBusy
	}
	if _, err := m.table.Instruction(label); err != nil {
		return err
	}
	m.level = label
	return nil
}

// CycleVocabLevel advances to the next label and returns it.
func (m *Machine) CycleVocabLevel() string {
	if m.mode == ModeIdle {
		m.level = m.table.Next(m.level)
	}
	return m.level
}

// Submit moves Idle → Loading and returns the request to send.
func (m *Machine) Submit() (Request, error) {
	if m.mode != ModeIdle {
		return Request{}, ErrBusy
	}
	message := strings.TrimSpace(m.text)
	if message == "" {
		return Request{}, ErrEmptyInput
	}
	instruction, err := m.table.Instruction(m.level)
	if err != nil {
		return Request{}, err
	}
	m.nextID++
	m.inFlight = m.nextID
	m.mode = ModeLoading
	return Request{
		ID:         m.inFlight,
		Message:    message,
		Context:    vocab.HarmContext,
		VocabLevel: instruction,
	}, nil
}

// Resolve moves Loading → Shown when id matches the request in flight. An
// empty success is treated as a failure so Shown always has something to show.
func (m *Machine) Resolve(id uint64, result Result) bool {
	if m.mode != ModeLoading || id != m.inFlight {
		return false
	}
	if !result.failed && result.text == "" {
		result = Failed()
	}
	m.result = result
	m.mode = ModeShown
	m.inFlight = 0
	return true
}

// Fail resolves the request in flight with the generic failure.
func (m *Machine) Fail(id uint64) bool {
	return m.Resolve(id, Failed())
}

// Back discards the shown result and returns to Idle with the input intact.
func (m *Machine) Back() bool {
	if m.mode != ModeShown {
		return false
	}
	m.result = Result{}
	m.mode = ModeIdle
	return true
}
