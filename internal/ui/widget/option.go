package widget

import (
	"fmt"
	"strings"

	"github.com/adamkadaban/storefront-tui/internal/theme"
)

// Option represents a selectable item with a display label and underlying value.
type Option struct {
	Label string
	Value string
}

// IndexOf returns the index of the option with the given value, or 0 if not found.
func IndexOf(options []Option, value string) int {
	for i, opt := range options {
		if strings.EqualFold(opt.Value, value) {
			return i
		}
	}
	return 0
}

// ThemeOptions lists the selectable palettes.
func ThemeOptions() []Option {
	return []Option{
		{Label: "Auto", Value: "auto"},
		{Label: "Dark", Value: "dark"},
		{Label: "Light", Value: "light"},
	}
}

// RenderOptionRow renders a horizontal row of selectable options with the given
// label, highlighting the selected option and optionally styling for focus.
func RenderOptionRow(th theme.Theme, label string, opts []Option, selected int, focused bool) string {
	cells := make([]string, len(opts))
	for idx, opt := range opts {
		style := th.TabInactive
		marker := " "
		if idx == selected {
			style = th.TabActive
			if focused {
				marker = th.Warning.Render(">")
			}
		} else if focused {
			style = style.Faint(true)
		}
		cells[idx] = marker + style.Render(opt.Label)
	}
	return fmt.Sprintf("%s %s", th.Header.Render(label+":"), strings.Join(cells, " "))
}
