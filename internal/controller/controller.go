package controller

// CartManager mutates the shopping cart and turns it into orders.
type CartManager interface {
	AddToCart(sku string) error
	RemoveFromCart(sku string) error
	Checkout(note string) (OrderReceipt, error)
}

// Exporter writes the current cart somewhere outside the program.
type Exporter interface {
	ExportCart(dir string) (string, error)
}

// SettingsManager persists UI configuration choices.
type SettingsManager interface {
	SetTheme(name string) (string, error)
	SetExportDir(dir string) (string, error)
}

// OrderReceipt summarises a placed order for the UI.
type OrderReceipt struct {
	OrderID string
	Items   int
	Total   int64
}
