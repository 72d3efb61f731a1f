package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

type jobStatus string

const (
	jobKindSummarize jobKind = "summarize"
	jobKindImport    jobKind = "import"
	jobKindPing      jobKind = "ping"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
	// jobStatusStale marks a summarize job whose request is no longer the one
	// the session is waiting for.
	jobStatusStale jobStatus = "stale"
)

// jobSpec names one unit of background work. RequestID is set for
// summarize jobs; Subject is a short human label such as a file name.
type jobSpec struct {
	Kind      jobKind
	RequestID uint64
	Subject   string
}

func (s jobSpec) String() string {
	switch {
	case s.RequestID != 0:
		return fmt.Sprintf("%s #%d", s.Kind, s.RequestID)
	case s.Subject != "":
		return fmt.Sprintf("%s %s", s.Kind, s.Subject)
	default:
		return string(s.Kind)
	}
}

type jobSnapshot struct {
	Spec        jobSpec
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
}

func (s jobSnapshot) Duration() time.Duration {
	if s.CompletedAt.IsZero() {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus runs summarize, import and ping work off the update loop.
type jobBus struct {
	now func() time.Time
}

func newJobBus() *jobBus {
	return &jobBus{now: time.Now}
}

// Start announces spec as running, then runs runner and returns its payload
// inside a jobResultEnvelope.
func (b *jobBus) Start(spec jobSpec, runner jobRunner) tea.Cmd {
	started := b.now()
	announce := func() tea.Msg {
		return jobSignalMsg{Snapshot: jobSnapshot{Spec: spec, Status: jobStatusRunning, StartedAt: started}}
	}
	run := func() tea.Msg {
		payload, err := runner(context.Background())
		snapshot := jobSnapshot{
			Spec:        spec,
			Status:      jobStatusSucceeded,
			StartedAt:   started,
			CompletedAt: b.now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		}
		log.Printf("[jobs] %s %s (duration=%s, err=%v)", spec, snapshot.Status, snapshot.Duration(), err)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}
	return tea.Sequence(announce, run)
}

// settle records a finished job. A summarize result for any request other than
// pending is kept but labelled stale.
func settle(states map[jobKind]jobSnapshot, snapshot jobSnapshot, pending uint64) jobSnapshot {
	if snapshot.Spec.Kind == jobKindSummarize && snapshot.Spec.RequestID != pending {
		snapshot.Status = jobStatusStale
		log.Printf("[jobs] %s completed after the session moved on", snapshot.Spec)
	}
	states[snapshot.Spec.Kind] = snapshot
	return snapshot
}
