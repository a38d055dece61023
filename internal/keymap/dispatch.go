package keymap

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ErrReentrantDispatch is returned when an action calls back into the
// dispatcher that is currently running it.
var ErrReentrantDispatch = errors.New("keymap: re-entrant dispatch")

// Outcome reports what Handle did with an event.
type Outcome struct {
	// Handled is true when a binding matched. The caller must then suppress
	// the event's default handling.
	Handled bool
	// Binding is the name of the binding that fired.
	Binding string
}

// DispatcherOptions configure a Dispatcher.
type DispatcherOptions struct {
	Logger *log.Logger
}

// Dispatcher routes key events to the first matching binding.
type Dispatcher struct {
	registry *Registry
	guard    Guard
	logger   *log.Logger
	running  atomic.Bool
}

// NewDispatcher returns a dispatcher scanning reg and filtering with guard.
func NewDispatcher(reg *Registry, guard Guard, opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{registry: reg, guard: guard, logger: logger}
}

// Registry returns the registry the dispatcher scans.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Guard returns the dispatcher's focus guard.
func (d *Dispatcher) Guard() Guard { return d.guard }

// Handle scans the registry in order and runs the first binding that both
// passes the guard and matches ev. Later bindings are never considered once
// one matches, even if the action fails. Action errors are returned wrapped
// with the binding name.
func (d *Dispatcher) Handle(ev Event) (Outcome, error) {
	if !d.running.CompareAndSwap(false, true) {
		d.logger.Warn("nested dispatch rejected", "key", ev.Key)
		return Outcome{}, ErrReentrantDispatch
	}
	defer d.running.Store(false)

	editable := d.guard.Editable(ev)
	for b := range d.registry.All() {
		if !d.guard.Permits(editable, b) {
			continue
		}
		if !Matches(ev, b) {
			continue
		}
		d.logger.Debug("dispatch", "binding", b.Name, "key", ev.Key, "focus", ev.Focus.Kind)
		outcome := Outcome{Handled: true, Binding: b.Name}
		if b.Action == nil {
			return outcome, nil
		}
		if err := b.Action.Run(ev); err != nil {
			d.logger.Error("action failed", "binding", b.Name, "err", err)
			return outcome, fmt.Errorf("%s: %w", b.Name, err)
		}
		return outcome, nil
	}
	return Outcome{}, nil
}
