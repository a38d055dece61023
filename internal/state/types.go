package state

import "time"

// ViewKind identifies a top-level view inside the TUI router.
type ViewKind string

const (
	ViewCatalog  ViewKind = "catalog"
	ViewCart     ViewKind = "cart"
	ViewOrders   ViewKind = "orders"
	ViewSettings ViewKind = "settings"
)

// DefaultViewOrder drives the tab navigation order across the application.
var DefaultViewOrder = []ViewKind{
	ViewCatalog,
	ViewCart,
	ViewOrders,
	ViewSettings,
}

// Product is a sellable catalog entry. Prices are in cents.
type Product struct {
	SKU   string `yaml:"sku" toml:"sku"`
	Name  string `yaml:"name" toml:"name"`
	Price int64  `yaml:"price" toml:"price"`
	Stock int    `yaml:"stock" toml:"stock"`
}

// CartLine is a product and the quantity the shopper wants.
type CartLine struct {
	Product  Product `yaml:"product"`
	Quantity int     `yaml:"quantity"`
}

// Subtotal returns price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Order is a submitted cart.
type Order struct {
	ID       string     `yaml:"id"`
	Lines    []CartLine `yaml:"lines"`
	Total    int64      `yaml:"total"`
	Note     string     `yaml:"note,omitempty"`
	PlacedAt time.Time  `yaml:"placed_at"`
}

// Settings mirrors the persisted preferences shown in the settings view.
type Settings struct {
	Theme     string
	ExportDir string
}

// Snapshot is a threadsafe copy of the application's state tree.
type Snapshot struct {
	ActiveView ViewKind
	Products   []Product
	Cart       []CartLine
	Orders     []Order
	Settings   Settings
	Status     string
	LastError  string
}

// CartTotal sums every cart line.
func (s Snapshot) CartTotal() int64 {
	var total int64
	for _, line := range s.Cart {
		total += line.Subtotal()
	}
	return total
}

// CartCount returns the number of items in the cart.
func (s Snapshot) CartCount() int {
	count := 0
	for _, line := range s.Cart {
		count += line.Quantity
	}
	return count
}
