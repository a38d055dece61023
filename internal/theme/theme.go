package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/config"
)

// Options pick the palette. Override comes from the command line and wins
// over the persisted preference.
type Options struct {
	Override  string
	Preferred string
}

// Theme is the set of lipgloss styles every view renders with.
type Theme struct {
	Name        string
	IsLight     bool
	Title       lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Body        lipgloss.Style
	Selected    lipgloss.Style
	Price       lipgloss.Style
	Hint        lipgloss.Style
	HelpBox     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Subtle      lipgloss.Style
}

type palette struct {
	bg, fg, primary, accent, subtle     lipgloss.Color
	success, warning, danger, highlight lipgloss.Color
}

var (
	dark = palette{
		bg: "#14161b", fg: "#e6e4de", primary: "#e0b872", accent: "#8fc7b8", subtle: "#6d7079",
		success: "#7fd18b", warning: "#f2c45a", danger: "#ef7a6f", highlight: "#2a2d35",
	}
	light = palette{
		bg: "#faf8f3", fg: "#23201b", primary: "#8a5a12", accent: "#2f6f62", subtle: "#7b766d",
		success: "#2f7d3a", warning: "#a86a00", danger: "#b3261e", highlight: "#ece6d9",
	}
)

// New builds the theme selected by opts. Auto resolves to dark.
func New(opts Options) Theme {
	name := Resolve(opts.Override, opts.Preferred)
	if name == config.ThemeLight {
		return build(name, true, light)
	}
	return build(config.ThemeDark, false, dark)
}

// Resolve returns the concrete palette name for an override and a preference.
func Resolve(override, preferred string) string {
	for _, candidate := range []string{override, preferred} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if name := config.NormalizeTheme(candidate); name != config.ThemeAuto {
			return name
		}
		return config.ThemeDark
	}
	return config.ThemeDark
}

// RenderTab prints a tab label using the appropriate style.
func (t Theme) RenderTab(label string, active bool) string {
	if active {
		return t.TabActive.Render(label)
	}
	return t.TabInactive.Render(label)
}

func build(name string, isLight bool, p palette) Theme {
	return Theme{
		Name:        name,
		IsLight:     isLight,
		Title:       lipgloss.NewStyle().Foreground(p.primary).Bold(true).PaddingRight(1),
		Header:      lipgloss.NewStyle().Foreground(p.primary).Padding(0, 1),
		Footer:      lipgloss.NewStyle().Foreground(p.subtle).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(p.bg).Background(p.primary).Padding(0, 2).Bold(true),
		TabInactive: lipgloss.NewStyle().Foreground(p.primary).Padding(0, 2),
		Body:        lipgloss.NewStyle().Foreground(p.fg).Padding(1, 2),
		Selected:    lipgloss.NewStyle().Foreground(p.fg).Background(p.highlight).Bold(true),
		Price:       lipgloss.NewStyle().Foreground(p.accent),
		Hint:        lipgloss.NewStyle().Foreground(p.subtle).Italic(true),
		HelpBox:     lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		HelpKey:     lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		HelpDesc:    lipgloss.NewStyle().Foreground(p.fg),
		Success:     lipgloss.NewStyle().Foreground(p.success).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		Danger:      lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		Subtle:      lipgloss.NewStyle().Foreground(p.subtle),
	}
}
