package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	"github.com/adamkadaban/storefront-tui/internal/ui/components/table"
	"github.com/adamkadaban/storefront-tui/internal/ui/view"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

const searchID = "catalog-search"

var columns = []table.Column{
	{Title: "Product", Width: 28},
	{Title: "SKU", Width: 18},
	{Title: "Price", Width: 9, Right: true},
	{Title: "Stock", Width: 5, Right: true},
}

// Model lists the catalog with a filter field.
type Model struct {
	store *state.Store
	theme theme.Theme
	cart  controller.CartManager

	search textinput.Model
	cursor int
	status string

	width  int
	height int
}

var (
	_ view.Model    = (*Model)(nil)
	_ view.Searcher = (*Model)(nil)
)

// New constructs the catalog view.
func New(store *state.Store, th theme.Theme, cart controller.CartManager) *Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "name or SKU"
	input.CharLimit = 64
	return &Model{store: store, theme: th, cart: cart, search: input}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Title() string { return "Catalog" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(24, width/2)
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Focus() keymap.Focus {
	focus := keymap.FocusOf(m.search)
	if focus.Editable() {
		focus.ID = searchID
	}
	return focus
}

func (m *Model) Blur() bool {
	if !m.search.Focused() {
		return false
	}
	m.search.Blur()
	return true
}

func (m *Model) Hints() []keymap.HintTarget {
	return []keymap.HintTarget{placeholderHint{input: &m.search}}
}

// StartSearch focuses the filter field.
func (m *Model) StartSearch() tea.Cmd {
	return m.search.Focus()
}

// Query returns the current filter text.
func (m *Model) Query() string { return m.search.Value() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.Focused() {
		if keyMsg.Type == tea.KeyEnter {
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(keyMsg)
		m.cursor = 0
		return m, cmd
	}

	visible := m.visible()
	switch keyMsg.String() {
	case "up", "k":
		m.cursor = util.WrapIndex(m.cursor, -1, len(visible))
	case "down", "j":
		m.cursor = util.WrapIndex(m.cursor, 1, len(visible))
	case "/":
		return m, m.StartSearch()
	case "enter", "a":
		m.addSelected(visible)
	}
	return m, nil
}

func (m *Model) View() string {
	visible := m.visible()
	if m.cursor >= len(visible) {
		m.cursor = max(0, len(visible)-1)
	}

	lines := []string{m.search.View(), ""}
	if len(visible) == 0 {
		lines = append(lines, m.theme.Subtle.Render("No products match."))
	} else {
		rows := make([][]string, 0, len(visible))
		for _, p := range visible {
			rows = append(rows, []string{p.Name, p.SKU, shop.FormatPrice(p.Price), stockLabel(p.Stock)})
		}
		rendered := table.Render(columns, rows, m.cursor, table.Styles{
			Header:   m.theme.Title,
			Cell:     lipgloss.NewStyle(),
			Selected: m.theme.Selected,
		})
		if m.width > 0 {
			rendered = table.ClipRows(rendered, 0, m.width-4)
		}
		lines = append(lines, rendered...)
	}
	lines = append(lines, "", m.theme.Subtle.Render("↑/↓ move · enter add to cart · / filter"))
	if m.status != "" {
		lines = append(lines, m.status)
	}

	return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height)).Render(strings.Join(lines, "\n"))
}

func (m *Model) visible() []state.Product {
	return shop.Search(m.store.Snapshot().Products, m.search.Value())
}

func (m *Model) addSelected(visible []state.Product) {
	if len(visible) == 0 {
		return
	}
	if m.cart == nil {
		m.status = m.theme.Danger.Render("Cart unavailable")
		return
	}
	p := visible[m.cursor]
	switch err := m.cart.AddToCart(p.SKU); {
	case errors.Is(err, shop.ErrOutOfStock):
		m.status = m.theme.Warning.Render(fmt.Sprintf("%s is out of stock", p.Name))
	case err != nil:
		m.status = m.theme.Danger.Render(fmt.Sprintf("Failed to add %s: %v", p.Name, err))
	default:
		m.status = m.theme.Success.Render(fmt.Sprintf("Added %s", p.Name))
	}
}

func stockLabel(stock int) string {
	if stock <= 0 {
		return "-"
	}
	return strconv.Itoa(stock)
}

// placeholderHint shows the search shortcut in the empty search field.
type placeholderHint struct {
	input *textinput.Model
}

func (p placeholderHint) Shortcut() string { return keymap.NameSearch }

func (p placeholderHint) Hint() string { return p.input.Placeholder }

func (p placeholderHint) SetHint(hint string) { p.input.Placeholder = hint }
