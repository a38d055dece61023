package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	"github.com/adamkadaban/storefront-tui/internal/ui/view"
	"github.com/adamkadaban/storefront-tui/internal/ui/widget"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

const exportDirID = "export-dir"

// ThemeChangedMsg is emitted after a theme choice has been saved.
type ThemeChangedMsg struct {
	Name string
}

type field int

const (
	fieldTheme field = iota
	fieldExportDir
	fieldCount
)

// Model renders the settings view for persisted preferences.
type Model struct {
	store      *state.Store
	theme      theme.Theme
	controller controller.SettingsManager

	focus     field
	themeIdx  int
	exportDir textinput.Model
	status    string

	width  int
	height int
}

var _ view.Model = (*Model)(nil)

// New constructs a settings view model.
func New(store *state.Store, th theme.Theme, ctrl controller.SettingsManager) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "system temp dir"
	input.CharLimit = 256

	m := &Model{store: store, theme: th, controller: ctrl, exportDir: input}
	m.syncSelection()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Title() string { return "Settings" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.exportDir.Width = max(20, width/2)
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Focus() keymap.Focus {
	focus := keymap.FocusOf(m.exportDir)
	if focus.Editable() {
		focus.ID = exportDirID
	}
	return focus
}

func (m *Model) Blur() bool {
	if !m.exportDir.Focused() {
		return false
	}
	m.exportDir.Blur()
	m.syncSelection()
	return true
}

func (m *Model) Hints() []keymap.HintTarget { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.exportDir.Focused() {
		if keyMsg.Type == tea.KeyEnter {
			m.exportDir.Blur()
			m.persistExportDir()
			return m, nil
		}
		var cmd tea.Cmd
		m.exportDir, cmd = m.exportDir.Update(keyMsg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "down", "j":
		m.focus = (m.focus + 1) % fieldCount
	case "up", "k":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "left", "h":
		if m.focus == fieldTheme {
			m.themeIdx = util.WrapIndex(m.themeIdx, -1, len(widget.ThemeOptions()))
		}
	case "right", "l":
		if m.focus == fieldTheme {
			m.themeIdx = util.WrapIndex(m.themeIdx, 1, len(widget.ThemeOptions()))
		}
	case "enter", "s":
		switch m.focus {
		case fieldTheme:
			return m, m.persistTheme()
		case fieldExportDir:
			return m, m.exportDir.Focus()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	exportLabel := m.theme.Header.Render("Export directory:")
	if m.focus == fieldExportDir {
		exportLabel = m.theme.Warning.Render(">") + exportLabel
	} else {
		exportLabel = " " + exportLabel
	}

	body := []string{
		m.theme.Title.Render("Appearance"),
		widget.RenderOptionRow(m.theme, "Theme", widget.ThemeOptions(), m.themeIdx, m.focus == fieldTheme),
		"",
		m.theme.Title.Render("Exports"),
		fmt.Sprintf("%s %s", exportLabel, m.exportDir.View()),
		"",
		m.theme.Subtle.Render("↑/↓ move · ←/→ change · enter save or edit"),
	}
	if m.status != "" {
		body = append(body, m.status)
	}

	content := strings.Join(body, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Width(max(1, m.width)).Height(max(5, m.height)).Render(content)
}

func (m *Model) syncSelection() {
	settings := m.store.Snapshot().Settings
	m.themeIdx = widget.IndexOf(widget.ThemeOptions(), settings.Theme)
	m.exportDir.SetValue(settings.ExportDir)
}

func (m *Model) persistTheme() tea.Cmd {
	if m.controller == nil {
		m.status = m.theme.Danger.Render("Settings controller unavailable")
		return nil
	}
	value, err := m.controller.SetTheme(widget.ThemeOptions()[m.themeIdx].Value)
	if err != nil {
		m.status = m.theme.Danger.Render(fmt.Sprintf("Failed to save theme: %v", err))
		return nil
	}
	m.themeIdx = widget.IndexOf(widget.ThemeOptions(), value)
	m.updateSettings(func(s *state.Settings) { s.Theme = value })
	m.status = m.theme.Success.Render(fmt.Sprintf("Theme set to %s", value))
	return func() tea.Msg { return ThemeChangedMsg{Name: value} }
}

func (m *Model) persistExportDir() {
	if m.controller == nil {
		m.status = m.theme.Danger.Render("Settings controller unavailable")
		return
	}
	value, err := m.controller.SetExportDir(m.exportDir.Value())
	if err != nil {
		m.status = m.theme.Danger.Render(fmt.Sprintf("Failed to save export directory: %v", err))
		return
	}
	m.exportDir.SetValue(value)
	m.updateSettings(func(s *state.Settings) { s.ExportDir = value })
	m.status = m.theme.Success.Render(fmt.Sprintf("Exports go to %s", util.Fallback(value, "the system temp dir")))
}

func (m *Model) updateSettings(mut func(*state.Settings)) {
	settings := m.store.Snapshot().Settings
	mut(&settings)
	m.store.SetSettings(settings)
}
