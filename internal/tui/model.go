package tui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/tldr/internal/session"
	"github.com/csheth/tldr/internal/textfile"
	"github.com/csheth/tldr/internal/theme"
	"github.com/csheth/tldr/internal/typewriter"
	"github.com/csheth/tldr/internal/vocab"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Relay          Summarizer
	RelayName      string
	Vocab          vocab.Table
	VocabLevel     string
	Theme          theme.Theme
	InitialFile    string
	RevealInterval time.Duration
	RevealRate     int
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Vocab == nil {
		config.Vocab = vocab.Levels
	}

	editor := textarea.New()
	editor.Placeholder = editorPlaceholder
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.MaxWidth = 0
	editor.SetWidth(76)
	editor.SetHeight(12)
	editor.Focus()

	pathInput := textinput.New()
	pathInput.Placeholder = importPlaceholder
	pathInput.CharLimit = 512
	pathInput.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(76, 8)
	vp.MouseWheelEnabled = true

	machine := session.New(config.Vocab)
	var startupError string
	if config.VocabLevel != "" {
		if err := machine.SetVocabLevel(config.VocabLevel); err != nil {
			log.Printf("[tui] vocab level %q rejected: %v", config.VocabLevel, err)
			startupError = fmt.Sprintf("Unknown vocabulary level %q; using %s.", config.VocabLevel, machine.VocabLevel())
		}
	}

	m := &model{
		config:       config,
		session:      machine,
		editor:       editor,
		pathInput:    pathInput,
		spinner:      spin,
		output:       vp,
		writer:       typewriter.New(typewriter.WithInterval(config.RevealInterval), typewriter.WithRate(config.RevealRate)),
		theme:        config.Theme,
		layout:       newPageLayout(),
		jobs:         newJobBus(),
		jobStates:    map[jobKind]jobSnapshot{},
		infoMessage:  "Type or import text, then press Ctrl+S to summarize.",
		errorMessage: startupError,
	}
	m.applyTheme()
	return m
}

type model struct {
	config  Config
	session *session.Machine

	editor    textarea.Model
	pathInput textinput.Model
	spinner   spinner.Model
	output    viewport.Model
	writer    typewriter.Model
	theme     theme.Theme
	layout    pageLayout
	jobs      *jobBus
	jobStates map[jobKind]jobSnapshot

	importing    bool
	helpVisible  bool
	relayStatus  string
	infoMessage  string
	errorMessage string
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if path := strings.TrimSpace(m.config.InitialFile); path != "" {
		cmds = append(cmds, m.jobs.Start(importSpec(path), importFileJob(path)))
	}
	if pinger, ok := m.config.Relay.(Pinger); ok {
		m.relayStatus = "checking"
		cmds = append(cmds, m.jobs.Start(jobSpec{Kind: jobKindPing}, pingJob(pinger)))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.session.Mode() != session.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.writer, cmd = m.writer.Update(msg)
		m.refreshOutput()
		return m, cmd
	case jobSignalMsg:
		m.jobStates[msg.Snapshot.Spec.Kind] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		settle(m.jobStates, msg.Snapshot, m.session.Pending())
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case summaryResultMsg:
		return m, m.handleSummaryResult(msg)
	case fileLoadedMsg:
		m.handleFileLoaded(msg)
		return m, nil
	case relayStatusMsg:
		if msg.err != nil {
			m.relayStatus = "offline"
			m.errorMessage = fmt.Sprintf("Relay unreachable: %v", msg.err)
		} else {
			m.relayStatus = "online"
		}
		return m, nil
	case fileErrorMsg:
		m.handleFileError(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.session.Mode() == session.ModeShown {
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.applyLayout()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) tea.Cmd {
	if m.importing {
		return m.handleImportKey(key)
	}
	switch key.Type {
	case tea.KeyF1:
		m.helpVisible = !m.helpVisible
		return nil
	case tea.KeyF2:
		m.theme = m.theme.NextBackground()
		m.applyTheme()
		return nil
	case tea.KeyF3:
		m.theme = m.theme.NextFont()
		m.applyTheme()
		return nil
	case tea.KeyF4:
		m.theme = m.theme.NextTypeface()
		m.applyTheme()
		m.refreshOutput()
		return nil
	}
	switch m.session.Mode() {
	case session.ModeIdle:
		return m.handleIdleKey(key)
	case session.ModeShown:
		return m.handleShownKey(key)
	default:
		return nil
	}
}

func (m *model) handleIdleKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyTab:
		level := m.session.CycleVocabLevel()
		m.infoMessage = fmt.Sprintf("Vocabulary level: %s", level)
		return nil
	case tea.KeyCtrlO:
		m.importing = true
		m.pathInput.SetValue("")
		m.editor.Blur()
		m.infoMessage = "Enter a file path and press Enter. Esc cancels."
		return m.pathInput.Focus()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(key)
	m.session.SetText(m.editor.Value())
	return cmd
}

func (m *model) handleShownKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc, tea.KeyBackspace:
		return m.back()
	case tea.KeyEnter, tea.KeySpace:
		if !m.writer.Done() {
			m.writer.Skip()
			m.refreshOutput()
		}
		return nil
	}
	var cmd tea.Cmd
	m.output, cmd = m.output.Update(key)
	return cmd
}

func (m *model) handleImportKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.closeImport()
		m.infoMessage = "Import canceled."
		return m.editor.Focus()
	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.errorMessage = "Enter a path to a .txt or .pdf file."
			return nil
		}
		m.closeImport()
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Reading %s…", filepath.Base(path))
		return tea.Batch(m.editor.Focus(), m.jobs.Start(importSpec(path), importFileJob(path)))
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(key)
	return cmd
}

func (m *model) closeImport() {
	m.importing = false
	m.pathInput.Blur()
	m.pathInput.SetValue("")
}

func (m *model) submit() tea.Cmd {
	req, err := m.session.Submit()
	if err != nil {
		if errors.Is(err, session.ErrEmptyInput) {
			m.infoMessage = "Nothing to summarize yet."
		}
		return nil
	}
	m.editor.Blur()
	m.writer.Stop()
	m.errorMessage = ""
	m.infoMessage = "Summarizing…"
	m.applyLayout()
	return tea.Batch(m.spinner.Tick, m.jobs.Start(summarizeSpec(req), summarizeJob(m.config.Relay, req)))
}

func (m *model) back() tea.Cmd {
	if !m.session.Back() {
		return nil
	}
	m.writer.Stop()
	m.output.SetContent("")
	m.output.GotoTop()
	m.infoMessage = "Edit the text and press Ctrl+S to summarize again."
	m.applyLayout()
	return m.editor.Focus()
}

func (m *model) handleSummaryResult(msg summaryResultMsg) tea.Cmd {
	result := session.Succeeded(msg.text)
	if msg.err != nil {
		result = session.Failed()
	}
	if !m.session.Resolve(msg.requestID, result) {
		return nil
	}
	shown, _ := m.session.Result()
	if shown.Failed() {
		m.writer.Stop()
		m.infoMessage = "Press Esc to go back and try again."
		m.refreshOutput()
		return nil
	}
	m.infoMessage = "Summary ready. Enter skips the animation, Esc goes back."
	cmd := m.writer.Start(shown.Text())
	m.refreshOutput()
	return cmd
}

func (m *model) handleFileLoaded(msg fileLoadedMsg) {
	if !m.session.ImportText(msg.text) {
		m.errorMessage = fmt.Sprintf("Import of %s finished while summarizing; go back and import again.", filepath.Base(msg.path))
		return
	}
	m.editor.SetValue(msg.text)
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Imported %s (%d characters).", filepath.Base(msg.path), len([]rune(msg.text)))
}

func (m *model) handleFileError(msg fileErrorMsg) {
	switch {
	case errors.Is(msg.err, textfile.ErrNotText):
		m.errorMessage = fmt.Sprintf("%s does not contain readable text.", filepath.Base(msg.path))
	case errors.Is(msg.err, textfile.ErrUnsupported):
		m.errorMessage = "Only .txt and .pdf files can be imported."
	default:
		m.errorMessage = fmt.Sprintf("import failed: %v", msg.err)
	}
}

// refreshOutput renders the summary panel body into the viewport.
func (m *model) refreshOutput() {
	result, ok := m.session.Result()
	if !ok {
		return
	}
	var body string
	if result.Failed() {
		body = errorStyle.Render(result.Text())
	} else {
		body = wordwrap.String(m.writer.View(), m.layout.wrapWidth())
	}
	m.output.SetContent(body)
	if !m.writer.Done() {
		m.output.GotoBottom()
	}
}

func (m *model) applyLayout() {
	submitted := m.session.Mode() != session.ModeIdle
	m.editor.SetWidth(m.layout.viewportWidth)
	m.editor.SetHeight(m.layout.editorHeight(submitted))
	m.output.Width = m.layout.viewportWidth
	m.output.Height = m.layout.outputHeight()
	m.pathInput.Width = m.layout.viewportWidth - 4
	m.refreshOutput()
}

// applyTheme pushes the selected colors and typeface into the editor so the
// input matches the summary panel.
func (m *model) applyTheme() {
	text := m.theme.Apply(lipgloss.NewStyle())
	for _, style := range []*textarea.Style{&m.editor.FocusedStyle, &m.editor.BlurredStyle} {
		style.Base = text
		style.Text = text
		style.CursorLine = text
		style.EndOfBuffer = text
		style.Placeholder = text.Faint(true)
	}
	// the textarea renders through a pointer to whichever style was active when
	// it last gained or lost focus, so re-point it at the updated copy
	if m.editor.Focused() {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}
