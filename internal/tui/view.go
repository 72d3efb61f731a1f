package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/tldr/internal/session"
	"github.com/csheth/tldr/internal/theme"
)

func (m *model) View() string {
	parts := []string{m.heroView(), m.settingsView()}
	switch m.session.Mode() {
	case session.ModeIdle:
		parts = append(parts, m.editorPanel())
	case session.ModeLoading:
		parts = append(parts, m.editorPanel(), m.loadingView())
	case session.ModeShown:
		parts = append(parts, m.editorPanel(), m.outputPanel())
	}
	parts = append(parts, m.messagesView())
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	parts = append(parts, m.statusView())
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderLogo(),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) settingsView() string {
	cells := []string{
		fmt.Sprintf("Vocabulary %s", m.session.VocabLevel()),
		"Background " + theme.Swatch(theme.Backgrounds, m.theme.Background()),
		"Font " + theme.Swatch(theme.Fonts, m.theme.Font()),
		fmt.Sprintf("Typeface %s", m.theme.Typeface()),
	}
	return strings.Join(cells, "  •  ")
}

func (m *model) editorPanel() string {
	parts := []string{sectionHeaderStyle.Render("Text"), m.theme.Apply(editorBoxStyle).Render(m.editor.View())}
	if m.importing {
		parts = append(parts, sectionHeaderStyle.Render("Import File"), m.pathInput.View())
	}
	return strings.Join(parts, "\n")
}

func (m *model) loadingView() string {
	return fmt.Sprintf("%s %s", m.spinner.View(), helperStyle.Render("Generating summary…"))
}

func (m *model) outputPanel() string {
	style := m.theme.Apply(outputBoxStyle).Width(m.layout.viewportWidth)
	parts := []string{
		sectionHeaderStyle.Render("Summary"),
		style.Render(m.output.View()),
	}
	if result, ok := m.session.Result(); ok && !result.Failed() {
		wrap := m.layout.wrapWidth()
		parts = append(parts,
			disclaimerStyle.Render(wordwrap.String(disclaimerText, wrap)),
			helperStyle.Render(wordwrap.String(reportText, wrap)),
			helperStyle.Render(wordwrap.String(feedbackText, wrap)),
		)
	}
	return strings.Join(parts, "\n")
}

func (m *model) messagesView() string {
	var parts []string
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	return strings.Join(parts, "\n")
}

func (m *model) statusView() string {
	stats := []string{strings.ToUpper(m.session.Mode().String())}
	if m.config.RelayName != "" {
		relay := "Relay " + m.config.RelayName
		if m.relayStatus != "" {
			relay += " (" + m.relayStatus + ")"
		}
		stats = append(stats, relay)
	}
	stats = append(stats, m.jobStatusBadges()...)
	stats = append(stats, "F1 help")
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	var badges []string
	for _, kind := range []jobKind{jobKindImport, jobKindSummarize} {
		snap, ok := m.jobStates[kind]
		if !ok {
			continue
		}
		switch snap.Status {
		case jobStatusRunning:
			badges = append(badges, fmt.Sprintf("%s…", snap.Spec))
		case jobStatusSucceeded:
			badges = append(badges, fmt.Sprintf("%s %s", snap.Spec, snap.Duration().Round(10*time.Millisecond)))
		case jobStatusFailed:
			badges = append(badges, fmt.Sprintf("%s failed", snap.Spec))
		case jobStatusStale:
			badges = append(badges, fmt.Sprintf("%s stale", snap.Spec))
		}
	}
	return badges
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"Ctrl+S", "Summarize"},
		{"Tab", "Vocabulary level"},
		{"Ctrl+O", "Import file"},
		{"Esc", "Back to editing"},
		{"Enter", "Skip animation"},
		{"↑/↓", "Scroll summary"},
		{"F2", "Background"},
		{"F3", "Font color"},
		{"F4", "Typeface"},
		{"F1", "Toggle help"},
		{"Ctrl+C", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description + "   ")
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func renderLogo() string {
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	// shadow first, offset one cell down and right, then the face over it
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
