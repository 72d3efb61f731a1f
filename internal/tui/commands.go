package tui

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tldr/internal/session"
	"github.com/csheth/tldr/internal/textfile"
)

const (
	summarizeTimeout = 2 * time.Minute
	pingTimeout      = 3 * time.Second
)

func summarizeSpec(req session.Request) jobSpec {
	return jobSpec{Kind: jobKindSummarize, RequestID: req.ID}
}

func summarizeJob(client Summarizer, req session.Request) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, summarizeTimeout)
		defer cancel()
		text, err := client.Summarize(ctx, req)
		return summaryResultMsg{requestID: req.ID, text: text, err: err}, err
	}
}

func importSpec(path string) jobSpec {
	return jobSpec{Kind: jobKindImport, Subject: filepath.Base(path)}
}

func importFileJob(path string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		text, err := textfile.Read(path)
		if err != nil {
			return fileErrorMsg{path: path, err: err}, err
		}
		return fileLoadedMsg{path: path, text: text}, nil
	}
}

func pingJob(relay Pinger) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, pingTimeout)
		defer cancel()
		_, err := relay.Ping(ctx)
		return relayStatusMsg{err: err}, err
	}
}
