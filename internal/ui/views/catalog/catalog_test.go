package catalog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
)

type fakeCart struct {
	added []string
	err   error
}

func (f *fakeCart) AddToCart(sku string) error {
	f.added = append(f.added, sku)
	return f.err
}

func (f *fakeCart) RemoveFromCart(string) error { return nil }

func (f *fakeCart) Checkout(string) (controller.OrderReceipt, error) {
	return controller.OrderReceipt{}, nil
}

func newModel(cart controller.CartManager) *Model {
	store := state.NewStore()
	store.SetProducts(shop.DefaultCatalog())
	m := New(store, theme.New(theme.Options{}), cart)
	m.SetSize(100, 20)
	return m
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestViewListsProducts(t *testing.T) {
	out := newModel(&fakeCart{}).View()
	for _, want := range []string{"Earl Grey tea", "mug-stone", "$59.00", "Stock"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestEnterAddsSelectedProduct(t *testing.T) {
	cart := &fakeCart{}
	m := newModel(cart)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if diff := cmp.Diff([]string{"tea-sencha"}, cart.added); diff != "" {
		t.Fatalf("added mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "Added Sencha") {
		t.Fatalf("expected status line, got:\n%s", m.View())
	}
}

func TestOutOfStockStatus(t *testing.T) {
	m := newModel(&fakeCart{err: shop.ErrOutOfStock})
	press(m, runes("a"))
	if !strings.Contains(m.View(), "out of stock") {
		t.Fatalf("expected out of stock status:\n%s", m.View())
	}
}

func TestSearchFocusAndFilter(t *testing.T) {
	cart := &fakeCart{}
	m := newModel(cart)

	if m.Focus().Editable() {
		t.Fatal("search should start blurred")
	}
	m.StartSearch()
	focus := m.Focus()
	if focus.Kind != keymap.FocusTextInput || focus.ID != searchID {
		t.Fatalf("expected search focus, got %+v", focus)
	}

	press(m, runes("k"), runes("e"), runes("t"))
	if m.Query() != "ket" {
		t.Fatalf("typed keys should reach the input, got %q", m.Query())
	}
	if len(cart.added) != 0 {
		t.Fatal("typing must not trigger view shortcuts")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Focus().Editable() {
		t.Fatal("enter should leave the search field")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if diff := cmp.Diff([]string{"kettle-gooseneck"}, cart.added); diff != "" {
		t.Fatalf("expected filtered selection (-want +got):\n%s", diff)
	}
}

func TestBlur(t *testing.T) {
	m := newModel(&fakeCart{})
	if m.Blur() {
		t.Fatal("nothing to blur yet")
	}
	m.StartSearch()
	if !m.Blur() || m.Focus().Editable() {
		t.Fatal("expected blur to release the search field")
	}
}

func TestSearchPlaceholderCarriesShortcut(t *testing.T) {
	reg := keymap.NewRegistry()
	reg.Register(keymap.Binding{Name: keymap.NameSearch, Key: "k", Ctrl: true})
	m := newModel(&fakeCart{})

	if n := keymap.NewAnnotator(reg).AnnotateAll(m.Hints()...); n != 1 {
		t.Fatalf("expected one hint, got %d", n)
	}
	if m.search.Placeholder != "name or SKU (Ctrl+K)" {
		t.Fatalf("unexpected placeholder %q", m.search.Placeholder)
	}
}
