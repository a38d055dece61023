package shop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/logging"
	"github.com/adamkadaban/storefront-tui/internal/state"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrUnknownProduct = errors.New("unknown product")
	ErrOutOfStock     = errors.New("out of stock")
)

// Options configure a Service.
type Options struct {
	Logger *log.Logger
	Now    func() time.Time
	NewID  func() string
}

// Service implements the cart and export controllers on top of the store.
type Service struct {
	store  *state.Store
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

var (
	_ controller.CartManager = (*Service)(nil)
	_ controller.Exporter    = (*Service)(nil)
)

// NewService returns a cart service backed by store.
func NewService(store *state.Store, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Service{store: store, logger: opts.Logger, now: opts.Now, newID: opts.NewID}
}

// AddToCart adds one unit of sku, bounded by stock.
func (s *Service) AddToCart(sku string) error {
	product, ok := s.product(sku)
	if !ok {
		return fmt.Errorf("add %q: %w", sku, ErrUnknownProduct)
	}

	var err error
	s.store.UpdateCart(func(lines []state.CartLine) []state.CartLine {
		for i := range lines {
			if lines[i].Product.SKU != sku {
				continue
			}
			if lines[i].Quantity >= product.Stock {
				err = fmt.Errorf("add %q: %w", sku, ErrOutOfStock)
				return lines
			}
			lines[i].Quantity++
			return lines
		}
		if product.Stock <= 0 {
			err = fmt.Errorf("add %q: %w", sku, ErrOutOfStock)
			return lines
		}
		return append(lines, state.CartLine{Product: product, Quantity: 1})
	})
	if err != nil {
		return err
	}
	s.logger.Debug("cart add", "sku", sku)
	return nil
}

// RemoveFromCart drops one unit of sku, removing the line at zero.
func (s *Service) RemoveFromCart(sku string) error {
	found := false
	s.store.UpdateCart(func(lines []state.CartLine) []state.CartLine {
		for i := range lines {
			if lines[i].Product.SKU != sku {
				continue
			}
			found = true
			lines[i].Quantity--
			if lines[i].Quantity <= 0 {
				return append(lines[:i], lines[i+1:]...)
			}
			return lines
		}
		return lines
	})
	if !found {
		return fmt.Errorf("remove %q: %w", sku, ErrUnknownProduct)
	}
	s.logger.Debug("cart remove", "sku", sku)
	return nil
}

// Checkout turns the cart into an order and empties the cart.
func (s *Service) Checkout(note string) (controller.OrderReceipt, error) {
	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		return controller.OrderReceipt{}, ErrEmptyCart
	}

	order := state.Order{
		ID:       s.newID(),
		Lines:    snap.Cart,
		Total:    snap.CartTotal(),
		Note:     strings.TrimSpace(note),
		PlacedAt: s.now(),
	}
	s.store.AddOrder(order)
	s.store.UpdateCart(func([]state.CartLine) []state.CartLine { return nil })
	s.logger.Info("order placed", "order", order.ID, "items", snap.CartCount(), "total", order.Total)

	return controller.OrderReceipt{OrderID: order.ID, Items: snap.CartCount(), Total: order.Total}, nil
}

type cartExport struct {
	ExportedAt time.Time        `yaml:"exported_at"`
	Lines      []state.CartLine `yaml:"lines"`
	Total      string           `yaml:"total"`
}

// ExportCart writes the cart as YAML into dir and returns the file path.
func (s *Service) ExportCart(dir string) (string, error) {
	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		return "", ErrEmptyCart
	}
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	now := s.now()
	data, err := yaml.Marshal(cartExport{ExportedAt: now, Lines: snap.Cart, Total: FormatPrice(snap.CartTotal())})
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("cart-%s.yaml", now.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	s.logger.Info("cart exported", "path", path)
	return path, nil
}

func (s *Service) product(sku string) (state.Product, bool) {
	for _, p := range s.store.Snapshot().Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return state.Product{}, false
}
