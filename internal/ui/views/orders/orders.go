package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	"github.com/adamkadaban/storefront-tui/internal/ui/components/table"
	"github.com/adamkadaban/storefront-tui/internal/ui/view"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

var columns = []table.Column{
	{Title: "Order", Width: 8},
	{Title: "Placed", Width: 14},
	{Title: "Items", Width: 5, Right: true},
	{Title: "Total", Width: 9, Right: true},
	{Title: "Note", Width: 30},
}

// Model lists placed orders, newest first.
type Model struct {
	store *state.Store
	theme theme.Theme
	now   func() time.Time

	cursor  int
	details bool

	width  int
	height int
}

var _ view.Model = (*Model)(nil)

// New constructs the orders view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th, now: time.Now}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Title() string { return "Orders" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Focus() keymap.Focus { return keymap.Focus{Kind: keymap.FocusNone} }

func (m *Model) Blur() bool {
	if !m.details {
		return false
	}
	m.details = false
	return true
}

func (m *Model) Hints() []keymap.HintTarget { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	count := len(m.store.Snapshot().Orders)
	switch keyMsg.String() {
	case "up", "k":
		m.cursor = util.WrapIndex(m.cursor, -1, count)
	case "down", "j":
		m.cursor = util.WrapIndex(m.cursor, 1, count)
	case "enter":
		m.details = !m.details && count > 0
	}
	return m, nil
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()
	if len(snapshot.Orders) == 0 {
		msg := m.theme.Subtle.Render("No orders yet.")
		return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height)).Render(msg)
	}
	if m.cursor >= len(snapshot.Orders) {
		m.cursor = len(snapshot.Orders) - 1
	}

	now := m.now()
	rows := make([][]string, 0, len(snapshot.Orders))
	for _, order := range snapshot.Orders {
		rows = append(rows, []string{
			order.ID,
			util.Ago(order.PlacedAt, now),
			strconv.Itoa(itemCount(order)),
			shop.FormatPrice(order.Total),
			util.Fallback(order.Note, "-"),
		})
	}
	lines := table.Render(columns, rows, m.cursor, table.Styles{
		Header:   m.theme.Title,
		Cell:     lipgloss.NewStyle(),
		Selected: m.theme.Selected,
	})
	if m.details {
		lines = append(lines, "", m.renderDetails(snapshot.Orders[m.cursor]))
	}
	lines = append(lines, "", m.theme.Subtle.Render("↑/↓ move · enter details"))

	return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height)).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderDetails(order state.Order) string {
	parts := []string{m.theme.Header.Render("Order " + order.ID)}
	for _, line := range order.Lines {
		parts = append(parts, fmt.Sprintf("  %d × %s  %s",
			line.Quantity, line.Product.Name, m.theme.Price.Render(shop.FormatPrice(line.Subtotal()))))
	}
	parts = append(parts, fmt.Sprintf("  placed %s", order.PlacedAt.Format(time.DateTime)))
	return strings.Join(parts, "\n")
}

func itemCount(order state.Order) int {
	count := 0
	for _, line := range order.Lines {
		count += line.Quantity
	}
	return count
}
