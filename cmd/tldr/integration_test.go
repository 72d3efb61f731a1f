package main

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/tldr/internal/llm"
	"github.com/csheth/tldr/internal/relay"
	"github.com/csheth/tldr/internal/tuitest"
)

const demoSummary = "Short demo summary."

func TestSummarizeRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty harness needs a unix terminal")
	}
	t.Parallel()

	client, mode, err := llm.New(llm.Config{DemoText: demoSummary})
	if err != nil {
		t.Fatalf("llm.New: %v", err)
	}
	srv := httptest.NewServer(relay.New(relay.Options{Client: client, Mode: mode}).Router())
	t.Cleanup(srv.Close)

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-relay", srv.URL},
		Dir:     cmdDir,
		Env:     []string{"TLDR_DEBUG_LOG="},
		Width:   100,
		Height:  40,
		Steps: []tuitest.Step{
			tuitest.WaitFor("Vocabulary Default"),
			tuitest.WaitFor("(online)"),
			tuitest.Type("Hello relay"),
			tuitest.Press(tuitest.KeyTab),
			tuitest.WaitFor("Vocabulary ELI5"),
			tuitest.Press(tuitest.KeyCtrlS),
			tuitest.WaitFor(demoSummary),
			tuitest.Press(tuitest.KeyEsc),
			tuitest.WaitFor("press Ctrl+S to summarize again"),
			{Delay: 200 * time.Millisecond, Input: tuitest.KeyCtrlC},
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if !rec.Contains("AI-generated") || !rec.Contains("Report Inaccurate Summary Form") {
		t.Fatal("disclaimer never rendered")
	}
	if !rec.Contains("Hello relay") {
		t.Fatal("typed input never rendered")
	}
	if _, ok := rec.FinalFrame(); !ok {
		t.Fatal("no frames captured")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "tldr-integration")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
