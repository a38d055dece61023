package state

import (
	"sync"
)

// Store guards shared application state needed by multiple Bubble Tea models.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	subs     map[int]*Subscription
	nextSub  int
}

// Subscription delivers notifications when the store mutates.
type Subscription struct {
	id     int
	store  *Store
	events chan struct{}
}

// NewStore creates a state store seeded with default values.
func NewStore() *Store {
	return &Store{
		snapshot: Snapshot{ActiveView: ViewCatalog},
		subs:     make(map[int]*Subscription),
	}
}

// Snapshot returns a copy of the current application state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copySnap := s.snapshot
	copySnap.Products = cloneSlice(s.snapshot.Products)
	copySnap.Cart = cloneSlice(s.snapshot.Cart)
	copySnap.Orders = cloneOrders(s.snapshot.Orders)
	return copySnap
}

// SetProducts replaces the catalog.
func (s *Store) SetProducts(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Products = cloneSlice(products)
	s.notifyLocked()
}

// UpdateCart applies fn to the cart lines and stores the result.
func (s *Store) UpdateCart(fn func([]CartLine) []CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Cart = fn(cloneSlice(s.snapshot.Cart))
	s.notifyLocked()
}

// AddOrder records a placed order, newest first.
func (s *Store) AddOrder(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.Lines = cloneSlice(order.Lines)
	s.snapshot.Orders = append([]Order{order}, s.snapshot.Orders...)
	s.notifyLocked()
}

// SetActiveView updates the router's active view.
func (s *Store) SetActiveView(kind ViewKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.ActiveView = kind
	s.notifyLocked()
}

// ActiveView returns the currently selected view.
func (s *Store) ActiveView() ViewKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.ActiveView
}

// SetSettings replaces the settings shown in the UI.
func (s *Store) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Settings = settings
	s.notifyLocked()
}

// SetStatus records an informational footer message and clears the last error.
func (s *Store) SetStatus(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = msg
	s.snapshot.LastError = ""
	s.notifyLocked()
}

// SetError records a user-visible error message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = msg
	s.notifyLocked()
}

// Subscribe returns a subscription that receives a signal whenever the store mutates.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription{
		id:     s.nextSub,
		store:  s,
		events: make(chan struct{}, 1),
	}
	s.nextSub++
	s.subs[sub.id] = sub
	return sub
}

func (s *Store) notifyLocked() {
	for _, sub := range s.subs {
		select {
		case sub.events <- struct{}{}:
		default:
		}
	}
}

func (s *Store) removeSubscription(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(sub.events)
	}
}

// Events returns a channel that receives a signal for each store mutation.
func (sub *Subscription) Events() <-chan struct{} {
	if sub == nil {
		return nil
	}
	return sub.events
}

// Close stops the subscription and releases associated resources.
func (sub *Subscription) Close() {
	if sub == nil || sub.store == nil {
		return
	}
	sub.store.removeSubscription(sub.id)
	sub.store = nil
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneOrders(orders []Order) []Order {
	out := cloneSlice(orders)
	for i := range out {
		out[i].Lines = cloneSlice(out[i].Lines)
	}
	return out
}
