package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tldr/internal/session"
)

func TestJobBusCarriesRequestID(t *testing.T) {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bus := newJobBus()
	bus.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}

	req := session.Request{ID: 7, Message: "hello"}
	msgs := collect(bus.Start(summarizeSpec(req), summarizeJob(&fakeSummarizer{text: "ok"}, req)))
	if len(msgs) != 2 {
		t.Fatalf("expected signal and result, got %d messages", len(msgs))
	}

	signal, ok := msgs[0].(jobSignalMsg)
	if !ok || signal.Snapshot.Status != jobStatusRunning || signal.Snapshot.Spec.RequestID != 7 {
		t.Fatalf("unexpected start signal %#v", msgs[0])
	}
	envelope, ok := msgs[1].(jobResultEnvelope)
	if !ok {
		t.Fatalf("unexpected result %T", msgs[1])
	}
	if envelope.Snapshot.Status != jobStatusSucceeded || envelope.Snapshot.Spec.RequestID != 7 {
		t.Fatalf("unexpected snapshot %+v", envelope.Snapshot)
	}
	if got := envelope.Snapshot.Duration(); got != 250*time.Millisecond {
		t.Fatalf("duration %s", got)
	}
	if envelope.Snapshot.Spec.String() != "summarize #7" {
		t.Fatalf("spec label %q", envelope.Snapshot.Spec)
	}
}

func TestJobBusRecordsFailure(t *testing.T) {
	failing := func(context.Context) (tea.Msg, error) { return nil, errors.New("disk gone") }
	msgs := collect(newJobBus().Start(importSpec("/tmp/notes.txt"), failing))
	envelope := msgs[len(msgs)-1].(jobResultEnvelope)
	if envelope.Snapshot.Status != jobStatusFailed || envelope.Snapshot.Err != "disk gone" {
		t.Fatalf("unexpected snapshot %+v", envelope.Snapshot)
	}
	if envelope.Snapshot.Spec.String() != "import notes.txt" {
		t.Fatalf("spec label %q", envelope.Snapshot.Spec)
	}
}

func TestSettleLabelsStaleSummaries(t *testing.T) {
	cases := []struct {
		name    string
		spec    jobSpec
		pending uint64
		want    jobStatus
	}{
		{name: "current request", spec: jobSpec{Kind: jobKindSummarize, RequestID: 3}, pending: 3, want: jobStatusSucceeded},
		{name: "older request", spec: jobSpec{Kind: jobKindSummarize, RequestID: 2}, pending: 3, want: jobStatusStale},
		{name: "nothing pending", spec: jobSpec{Kind: jobKindSummarize, RequestID: 2}, pending: 0, want: jobStatusStale},
		{name: "import ignores pending", spec: jobSpec{Kind: jobKindImport, Subject: "a.txt"}, pending: 3, want: jobStatusSucceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			states := map[jobKind]jobSnapshot{}
			got := settle(states, jobSnapshot{Spec: tc.spec, Status: jobStatusSucceeded}, tc.pending)
			if got.Status != tc.want || states[tc.spec.Kind].Status != tc.want {
				t.Fatalf("status %q, want %q", got.Status, tc.want)
			}
		})
	}
}
