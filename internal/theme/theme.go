package theme

import "github.com/charmbracelet/lipgloss"

// Backgrounds are the background swatches offered in the settings panel.
var Backgrounds = []string{
	"#A8DADC",
	"#F4A261",
	"#457B9D",
	"#FFE8D6",
	"#1D3557",
	"#FFFFFF",
	"#000000",
}

// Fonts are the foreground swatches offered in the settings panel.
var Fonts = []string{
	"#1D3557",
	"#F4F1DE",
	"#457B9D",
	"#264653",
	"#A8DADC",
	"#FFFFFF",
	"#000000",
}

// Typeface names a font family. Terminals render a single font, so each
// family maps to a text face instead.
type Typeface struct {
	Name  string
	apply func(lipgloss.Style) lipgloss.Style
}

// Typefaces are the families offered in the settings panel.
var Typefaces = []Typeface{
	{Name: "Arial", apply: func(s lipgloss.Style) lipgloss.Style { return s }},
	{Name: "Times New Roman", apply: func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) }},
	{Name: "Courier New", apply: func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) }},
	{Name: "Verdana", apply: func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) }},
	{Name: "Comic Sans MS", apply: func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) }},
}

// Theme is the current selection in each palette.
type Theme struct {
	background int
	font       int
	typeface   int
}

// Default selects the first entry of every palette.
func Default() Theme {
	return Theme{}
}

// Named builds a theme from palette values, ignoring any that are unknown.
func Named(background, font, typeface string) Theme {
	t := Default()
	if i := indexOf(Backgrounds, background); i >= 0 {
		t.background = i
	}
	if i := indexOf(Fonts, font); i >= 0 {
		t.font = i
	}
	for i, face := range Typefaces {
		if face.Name == typeface {
			t.typeface = i
		}
	}
	return t
}

func (t Theme) Background() string { return Backgrounds[t.background] }
func (t Theme) Font() string       { return Fonts[t.font] }
func (t Theme) Typeface() string   { return Typefaces[t.typeface].Name }

func (t Theme) NextBackground() Theme {
	t.background = (t.background + 1) % len(Backgrounds)
	return t
}

func (t Theme) NextFont() Theme {
	t.font = (t.font + 1) % len(Fonts)
	return t
}

func (t Theme) NextTypeface() Theme {
	t.typeface = (t.typeface + 1) % len(Typefaces)
	return t
}

// Apply colors base and sets its text face.
func (t Theme) Apply(base lipgloss.Style) lipgloss.Style {
	styled := base.
		Background(lipgloss.Color(t.Background())).
		Foreground(lipgloss.Color(t.Font()))
	return Typefaces[t.typeface].apply(styled)
}

// Swatch renders a palette with the selected entry marked.
func Swatch(colors []string, selected string) string {
	cells := make([]string, 0, len(colors))
	for _, color := range colors {
		marker := "  "
		if color == selected {
			marker = "▸ "
		}
		cells = append(cells, lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Render(marker))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}
