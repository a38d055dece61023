package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/adamkadaban/storefront-tui/internal/util"
)

// Column describes one fixed-width column.
type Column struct {
	Title string
	Width int
	Right bool
}

// Styles used by Render.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
}

// Render lays out rows under a header. The row at selected is highlighted;
// pass -1 for none. Cells are truncated to their column width.
func Render(cols []Column, rows [][]string, selected int, st Styles) []string {
	out := make([]string, 0, len(rows)+1)
	out = append(out, renderRow(cols, titles(cols), st.Header))
	for idx, row := range rows {
		style := st.Cell
		if idx == selected {
			style = st.Selected
		}
		out = append(out, renderRow(cols, row, style))
	}
	return out
}

func titles(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func renderRow(cols []Column, cells []string, style lipgloss.Style) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		text := ""
		if i < len(cells) {
			text = util.TruncateString(cells[i], col.Width)
		}
		if col.Right {
			parts[i] = util.PadLeft(text, col.Width)
		} else {
			parts[i] = util.PadString(text, col.Width)
		}
	}
	return style.Render(strings.Join(parts, "  "))
}

// ComputeMaxWidth returns the widest row width, ignoring escape sequences.
func ComputeMaxWidth(rows []string) int {
	maxWidth := 0
	for _, row := range rows {
		if w := ansi.StringWidth(row); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// ClipRows cuts each row to the visible cells [xOffset, xOffset+width).
func ClipRows(rows []string, xOffset, width int) []string {
	if width <= 0 {
		width = 1
	}
	clipped := make([]string, len(rows))
	for i, row := range rows {
		clipped[i] = ansi.Cut(row, xOffset, xOffset+width)
	}
	return clipped
}

// PadAndStyle truncates/pads text and renders it with the given style.
func PadAndStyle(style lipgloss.Style, text string, width int, truncate bool) string {
	if width <= 0 {
		return ""
	}
	content := text
	if truncate {
		content = util.TruncateString(text, width)
	}
	if ansi.StringWidth(content) < width {
		content = util.PadString(content, width)
	}
	return style.Render(content)
}
