package tui

import (
	"context"

	"github.com/csheth/tldr/internal/session"
)

// Summarizer is the relay collaborator the screen sends requests to.
type Summarizer interface {
	Summarize(ctx context.Context, req session.Request) (string, error)
}

// Pinger is implemented by relays that can report whether they are reachable.
// The screen checks it once at startup.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
}

const heroTagline = "Paste text, pick a vocabulary level, get the gist."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

const (
	editorPlaceholder = "Type text here, or press Ctrl+O to import a .txt file, then choose the vocabulary level and press Ctrl+S to summarize."
	importPlaceholder = "Path to a .txt or .pdf file…"
)

const (
	disclaimerText  = "This summary is AI-generated and may not always capture all critical details. Please verify the accuracy of the summary and refer to the original text if needed."
	feedbackFormURL = "https://forms.gle/p7qu8RFtKRhKPDGr7"
	reportText      = "To report incorrect or inappropriate content, use the Report Inaccurate Summary Form: " + feedbackFormURL
	feedbackText    = "We appreciate any feedback! General Feedback Form: " + feedbackFormURL
)

// summaryResultMsg carries the relay outcome for one request.
type summaryResultMsg struct {
	requestID uint64
	text      string
	err       error
}

// fileLoadedMsg carries the text read from an imported file.
type fileLoadedMsg struct {
	path string
	text string
}

// fileErrorMsg reports a file that could not be imported, including files
// whose contents are not text.
type fileErrorMsg struct {
	path string
	err  error
}

// relayStatusMsg reports the startup liveness check.
type relayStatusMsg struct {
	err error
}
