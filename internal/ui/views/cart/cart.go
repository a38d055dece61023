package cart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	"github.com/adamkadaban/storefront-tui/internal/ui/components/table"
	"github.com/adamkadaban/storefront-tui/internal/ui/view"
	"github.com/adamkadaban/storefront-tui/internal/ui/widget"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

const noteID = "order-note"

var columns = []table.Column{
	{Title: "Product", Width: 28},
	{Title: "Qty", Width: 4, Right: true},
	{Title: "Price", Width: 9, Right: true},
	{Title: "Subtotal", Width: 10, Right: true},
}

// Model shows the cart, an order note and the checkout controls.
type Model struct {
	store *state.Store
	theme theme.Theme
	cart  controller.CartManager

	note   textarea.Model
	cursor int
	status string

	submit *widget.Label
	export *widget.Label

	width  int
	height int
}

var (
	_ view.Model     = (*Model)(nil)
	_ view.Submitter = (*Model)(nil)
)

// New constructs the cart view.
func New(store *state.Store, th theme.Theme, cart controller.CartManager) *Model {
	note := textarea.New()
	note.Placeholder = "Delivery note (optional)"
	note.ShowLineNumbers = false
	note.SetHeight(3)
	note.CharLimit = 280
	return &Model{
		store:  store,
		theme:  th,
		cart:   cart,
		note:   note,
		submit: widget.NewLabel(keymap.NameCheckout, "Submit order"),
		export: widget.NewLabel(keymap.NameExport, "Export"),
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Title() string { return "Cart" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.note.SetWidth(max(20, width-8))
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) Focus() keymap.Focus {
	focus := keymap.FocusOf(&m.note)
	if focus.Editable() {
		focus.ID = noteID
	}
	return focus
}

func (m *Model) Blur() bool {
	if !m.note.Focused() {
		return false
	}
	m.note.Blur()
	return true
}

func (m *Model) Hints() []keymap.HintTarget {
	return []keymap.HintTarget{m.submit, m.export}
}

// Note returns the order note typed so far.
func (m *Model) Note() string { return m.note.Value() }

// Submit checks out the cart with the current note.
func (m *Model) Submit() error {
	if m.cart == nil {
		return errors.New("cart unavailable")
	}
	receipt, err := m.cart.Checkout(m.note.Value())
	if err != nil {
		m.status = m.theme.Danger.Render(fmt.Sprintf("Checkout failed: %v", err))
		return err
	}
	m.note.Reset()
	m.note.Blur()
	m.cursor = 0
	m.status = m.theme.Success.Render(fmt.Sprintf("Order %s placed · %d items · %s",
		shortID(receipt.OrderID), receipt.Items, shop.FormatPrice(receipt.Total)))
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.note.Focused() {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(keyMsg)
		return m, cmd
	}

	lines := m.store.Snapshot().Cart
	switch keyMsg.String() {
	case "up", "k":
		m.cursor = util.WrapIndex(m.cursor, -1, len(lines))
	case "down", "j":
		m.cursor = util.WrapIndex(m.cursor, 1, len(lines))
	case "+", "a":
		m.adjust(lines, controller.CartManager.AddToCart)
	case "-", "d":
		m.adjust(lines, controller.CartManager.RemoveFromCart)
	case "n":
		return m, m.note.Focus()
	}
	return m, nil
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()
	if m.cursor >= len(snapshot.Cart) {
		m.cursor = max(0, len(snapshot.Cart)-1)
	}

	lines := m.summary(snapshot)
	lines = append(lines,
		"",
		m.note.View(),
		"",
		fmt.Sprintf("%s  %s", m.theme.TabActive.Render(m.submit.String()), m.theme.TabInactive.Render(m.export.String())),
		m.theme.Subtle.Render("↑/↓ move · +/- quantity · n edit note"),
	)
	if m.status != "" {
		lines = append(lines, m.status)
	}

	return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height)).Render(strings.Join(lines, "\n"))
}

// summary renders the cart lines and the total.
func (m *Model) summary(snapshot state.Snapshot) []string {
	if len(snapshot.Cart) == 0 {
		return []string{m.theme.Subtle.Render("Your cart is empty. Add products from the catalog.")}
	}
	rows := make([][]string, 0, len(snapshot.Cart))
	for _, line := range snapshot.Cart {
		rows = append(rows, []string{
			line.Product.Name,
			strconv.Itoa(line.Quantity),
			shop.FormatPrice(line.Product.Price),
			shop.FormatPrice(line.Subtotal()),
		})
	}
	lines := table.Render(columns, rows, m.cursor, table.Styles{
		Header:   m.theme.Title,
		Cell:     lipgloss.NewStyle(),
		Selected: m.theme.Selected,
	})
	return append(lines, "", fmt.Sprintf("%s %s",
		m.theme.Title.Render(fmt.Sprintf("Total (%d items):", snapshot.CartCount())),
		m.theme.Price.Render(shop.FormatPrice(snapshot.CartTotal()))))
}

func (m *Model) adjust(lines []state.CartLine, op func(controller.CartManager, string) error) {
	if len(lines) == 0 || m.cart == nil {
		return
	}
	m.cursor = min(m.cursor, len(lines)-1)
	sku := lines[m.cursor].Product.SKU
	if err := op(m.cart, sku); err != nil {
		m.status = m.theme.Warning.Render(err.Error())
		return
	}
	m.status = ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
