package tui

import "github.com/charmbracelet/lipgloss"

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	disclaimerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	heroAccentColor        = lipgloss.Color("#457B9D")
	heroDeepColor          = lipgloss.Color("#1D3557")
	heroTextColor          = lipgloss.Color("#F1FAEE")
	heroSecondaryTextColor = lipgloss.Color("#A8DADC")

	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#A8DADC")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#F4A261")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	outputBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(0, 1)
	editorBoxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#56526e"))
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroDeepColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0b1526"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"████████╗  ██╗        ██████╗   ██████╗  ",
		"╚══██╔══╝  ██║        ██╔══██╗  ██╔══██╗ ",
		"   ██║     ██║        ██║  ██║  ██████╔╝ ",
		"   ██║     ██║        ██║  ██║  ██╔══██╗ ",
		"   ██║     ███████╗   ██████╔╝  ██║  ██║ ",
		"   ╚═╝     ╚══════╝   ╚═════╝   ╚═╝  ╚═╝ ",
	}
)
