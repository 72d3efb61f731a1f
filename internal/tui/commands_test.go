package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/csheth/tldr/internal/session"
	"github.com/csheth/tldr/internal/textfile"
)

type deadlineSummarizer struct {
	deadline time.Time
	ok       bool
}

func (d *deadlineSummarizer) Summarize(ctx context.Context, _ session.Request) (string, error) {
	d.deadline, d.ok = ctx.Deadline()
	return "done", nil
}

func TestSummarizeJobCarriesRequestID(t *testing.T) {
	relay := &deadlineSummarizer{}
	msg, err := summarizeJob(relay, session.Request{ID: 42, Message: "x"})(context.Background())
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	result, ok := msg.(summaryResultMsg)
	if !ok {
		t.Fatalf("unexpected payload %T", msg)
	}
	if result.requestID != 42 || result.text != "done" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !relay.ok || time.Until(relay.deadline) > summarizeTimeout {
		t.Fatalf("relay call should carry the summarize timeout, got %v (set=%v)", relay.deadline, relay.ok)
	}
}

func TestSummarizeJobReportsError(t *testing.T) {
	relay := &fakeSummarizer{err: errors.New("boom")}
	msg, err := summarizeJob(relay, session.Request{ID: 3})(context.Background())
	if err == nil {
		t.Fatal("expected job error")
	}
	if result := msg.(summaryResultMsg); result.err == nil || result.requestID != 3 {
		t.Fatalf("error not carried in payload: %+v", result)
	}
}

func TestImportFileJob(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.txt")
	if err := os.WriteFile(good, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	msg, err := importFileJob(good)(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if loaded := msg.(fileLoadedMsg); loaded.text != "hello" || loaded.path != good {
		t.Fatalf("unexpected payload %+v", loaded)
	}

	msg, err = importFileJob(filepath.Join(dir, "photo.png"))(context.Background())
	if !errors.Is(err, textfile.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, ok := msg.(fileErrorMsg); !ok {
		t.Fatalf("expected fileErrorMsg, got %T", msg)
	}
}
