package keymap

// Binding names used by the storefront.
const (
	NameHelp         = "help"
	NameClose        = "close"
	NameQuit         = "quit"
	NameSearch       = "search"
	NameNextView     = "next-view"
	NamePrevView     = "prev-view"
	NameViewCatalog  = "view-catalog"
	NameViewCart     = "view-cart"
	NameViewOrders   = "view-orders"
	NameViewSettings = "view-settings"
	NameCheckout     = "checkout"
	NameExport       = "export"
)

// DefaultSpecs returns the storefront's default bindings in registry order.
func DefaultSpecs() []BindingSpec {
	return []BindingSpec{
		{Name: NameHelp, Key: "/", Ctrl: true, Description: "Show keyboard shortcuts"},
		{Name: NameClose, Key: "Escape", Description: "Close dialog"},
		{Name: NameQuit, Key: "c", Ctrl: true, Description: "Quit"},
		{Name: NameSearch, Key: "k", Ctrl: true, Description: "Open search"},
		{Name: NameNextView, Key: "Tab", Description: "Next view"},
		{Name: NamePrevView, Key: "Tab", Shift: true, Description: "Previous view"},
		{Name: NameViewCatalog, Key: "1", Alt: true, Description: "Go to catalog"},
		{Name: NameViewCart, Key: "2", Alt: true, Description: "Go to cart"},
		{Name: NameViewOrders, Key: "3", Alt: true, Description: "Go to orders"},
		{Name: NameViewSettings, Key: "4", Alt: true, Description: "Go to settings"},
		{Name: NameCheckout, Key: "s", Ctrl: true, Description: "Submit order"},
		{Name: NameExport, Key: "p", Ctrl: true, Description: "Export cart"},
	}
}

// DefaultAllowList returns the bindings that stay active while typing.
func DefaultAllowList() []string {
	return []string{NameClose, NameHelp, NameQuit}
}
