package root

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/adamkadaban/storefront-tui/internal/controller"
	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/logging"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	"github.com/adamkadaban/storefront-tui/internal/ui/help"
	"github.com/adamkadaban/storefront-tui/internal/ui/view"
	"github.com/adamkadaban/storefront-tui/internal/ui/views/cart"
	"github.com/adamkadaban/storefront-tui/internal/ui/views/catalog"
	"github.com/adamkadaban/storefront-tui/internal/ui/views/orders"
	settingsview "github.com/adamkadaban/storefront-tui/internal/ui/views/settings"
	"github.com/adamkadaban/storefront-tui/internal/ui/widget"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

// Options controls how the root model is assembled.
type Options struct {
	Theme        theme.Theme
	Bindings     []keymap.BindingSpec
	AllowInInput []string
	Logger       *log.Logger
	Cart         controller.CartManager
	Exporter     controller.Exporter
	Settings     controller.SettingsManager
}

var footerBindings = []string{keymap.NameHelp, keymap.NameSearch, keymap.NameCheckout, keymap.NameQuit}

var viewBindings = map[state.ViewKind]string{
	state.ViewCatalog:  keymap.NameViewCatalog,
	state.ViewCart:     keymap.NameViewCart,
	state.ViewOrders:   keymap.NameViewOrders,
	state.ViewSettings: keymap.NameViewSettings,
}

// Model orchestrates routed Bubble Tea views and global UI chrome. Every
// key press goes through the shortcut dispatcher first; only keys no
// binding claims reach the active view.
type Model struct {
	store    *state.Store
	sub      *state.Subscription
	theme    theme.Theme
	logger   *log.Logger
	exporter controller.Exporter

	registry   *keymap.Registry
	dispatcher *keymap.Dispatcher
	overlay    *help.Overlay
	toggle     *keymap.HelpToggle

	views  map[state.ViewKind]view.Model
	tabs   map[state.ViewKind]*widget.Label
	order  []state.ViewKind
	active state.ViewKind

	pending []tea.Cmd

	width  int
	height int
}

// New builds the root Bubble Tea model and loads the key bindings.
func New(store *state.Store, opts Options) (*Model, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	specs := opts.Bindings
	if len(specs) == 0 {
		specs = keymap.DefaultSpecs()
	}
	allow := opts.AllowInInput
	if allow == nil {
		allow = keymap.DefaultAllowList()
	}

	m := &Model{
		store:    store,
		theme:    opts.Theme,
		logger:   opts.Logger,
		exporter: opts.Exporter,
		registry: keymap.NewRegistry(),
		overlay:  help.New(opts.Theme),
		views: map[state.ViewKind]view.Model{
			state.ViewCatalog:  catalog.New(store, opts.Theme, opts.Cart),
			state.ViewCart:     cart.New(store, opts.Theme, opts.Cart),
			state.ViewOrders:   orders.New(store, opts.Theme),
			state.ViewSettings: settingsview.New(store, opts.Theme, opts.Settings),
		},
		tabs:   make(map[state.ViewKind]*widget.Label),
		order:  append([]state.ViewKind{}, state.DefaultViewOrder...),
		active: store.ActiveView(),
	}
	m.toggle = keymap.NewHelpToggle(m.registry, m.overlay)

	if err := keymap.Load(m.registry, specs, m.actions()); err != nil {
		return nil, fmt.Errorf("load key bindings: %w", err)
	}
	for _, c := range keymap.Conflicts(m.registry) {
		m.logger.Warn("binding can never fire", "binding", c.Shadowed, "shadowed_by", c.By)
	}
	m.dispatcher = keymap.NewDispatcher(m.registry, keymap.NewGuard(keymap.NewAllowList(allow...)), keymap.DispatcherOptions{
		Logger: m.logger,
	})

	annotator := keymap.NewAnnotator(m.registry)
	hints := make([]keymap.HintTarget, 0, len(m.order))
	for _, kind := range m.order {
		label := widget.NewLabel(viewBindings[kind], m.views[kind].Title())
		m.tabs[kind] = label
		hints = append(hints, label)
		hints = append(hints, m.views[kind].Hints()...)
	}
	annotated := annotator.AnnotateAll(hints...)
	m.logger.Debug("keymap ready", "bindings", m.registry.Len(), "hints", annotated)

	m.sub = store.Subscribe()
	return m, nil
}

// Registry exposes the live bindings.
func (m *Model) Registry() *keymap.Registry { return m.registry }

func (m *Model) actions() keymap.Actions {
	actions := keymap.Actions{
		keymap.NameHelp:  m.toggle,
		keymap.NameClose: keymap.ActionFunc(m.closeAction),
		keymap.NameQuit: keymap.ActionFunc(func(keymap.Event) error {
			m.queue(tea.Quit)
			return nil
		}),
		keymap.NameSearch: keymap.ActionFunc(func(keymap.Event) error {
			m.activate(state.ViewCatalog)
			if s, ok := m.activeView().(view.Searcher); ok {
				m.queue(s.StartSearch())
			}
			return nil
		}),
		keymap.NameNextView: keymap.ActionFunc(func(keymap.Event) error {
			m.cycle(1)
			return nil
		}),
		keymap.NamePrevView: keymap.ActionFunc(func(keymap.Event) error {
			m.cycle(-1)
			return nil
		}),
		keymap.NameCheckout: keymap.ActionFunc(func(keymap.Event) error {
			m.activate(state.ViewCart)
			s, ok := m.activeView().(view.Submitter)
			if !ok {
				return errors.New("cart view cannot submit")
			}
			return s.Submit()
		}),
		keymap.NameExport: keymap.ActionFunc(m.exportAction),
	}
	for kind, name := range viewBindings {
		actions[name] = keymap.ActionFunc(func(keymap.Event) error {
			m.activate(kind)
			return nil
		})
	}
	return actions
}

func (m *Model) closeAction(keymap.Event) error {
	if m.toggle.Close() {
		return nil
	}
	m.activeView().Blur()
	return nil
}

func (m *Model) exportAction(keymap.Event) error {
	if m.exporter == nil {
		return errors.New("export unavailable")
	}
	path, err := m.exporter.ExportCart(m.store.Snapshot().Settings.ExportDir)
	if err != nil {
		if errors.Is(err, shop.ErrEmptyCart) {
			return errors.New("nothing to export, the cart is empty")
		}
		return err
	}
	m.store.SetStatus("Cart exported to " + path)
	return nil
}

type storeChangeMsg struct{}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views)+1)
	for _, kind := range m.order {
		cmds = append(cmds, m.views[kind].Init())
	}
	cmds = append(cmds, waitForStoreChanges(m.sub))
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangeMsg:
		return m, waitForStoreChanges(m.sub)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overlay.SetWidth(msg.Width - 8)
		for _, v := range m.views {
			v.SetSize(msg.Width, max(1, msg.Height-2))
		}
		return m, nil

	case settingsview.ThemeChangedMsg:
		m.applyTheme(theme.New(theme.Options{Preferred: msg.Name}))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.QuitMsg:
		m.closeSubscription()
	}

	updated, cmd := m.activeView().Update(msg)
	if next, ok := updated.(view.Model); ok {
		m.views[m.active] = next
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ev := keymap.FromKeyMsg(msg, m.activeView().Focus())
	out, err := m.dispatcher.Handle(ev)
	switch {
	case err != nil:
		m.store.SetError(err.Error())
	case out.Handled && m.store.Snapshot().LastError != "":
		m.store.SetError("")
	}
	if out.Handled {
		return m.drain()
	}
	if m.toggle.Visible() {
		return nil
	}

	updated, cmd := m.activeView().Update(msg)
	if next, ok := updated.(view.Model); ok {
		m.views[m.active] = next
	}
	return cmd
}

func (m *Model) View() string {
	headline := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("Storefront"),
		lipgloss.NewStyle().Padding(0, 1).Render(m.renderTabs()),
	)

	body := m.activeView().View()
	if overlay := m.overlay.View(); overlay != "" {
		body = lipgloss.Place(max(1, m.width), max(1, m.height-2), lipgloss.Center, lipgloss.Center, overlay)
	}
	footer := m.theme.Footer.Render(m.footerLine(m.store.Snapshot()))

	return lipgloss.JoinVertical(lipgloss.Left, headline, body, footer)
}

func (m *Model) activeView() view.Model {
	return m.views[m.active]
}

func (m *Model) activate(kind state.ViewKind) {
	if _, ok := m.views[kind]; !ok || kind == m.active {
		return
	}
	m.activeView().Blur()
	m.active = kind
	m.store.SetActiveView(kind)
}

func (m *Model) cycle(delta int) {
	idx := util.WrapIndex(indexOf(m.order, m.active), delta, len(m.order))
	m.activate(m.order[idx])
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) drain() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) applyTheme(th theme.Theme) {
	m.theme = th
	m.overlay.SetTheme(th)
	for _, v := range m.views {
		v.SetTheme(th)
	}
	m.logger.Info("theme changed", "theme", th.Name)
}

func (m *Model) closeSubscription() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}

func (m *Model) renderTabs() string {
	labels := make([]string, 0, len(m.order))
	for _, kind := range m.order {
		labels = append(labels, m.theme.RenderTab(m.tabs[kind].String(), kind == m.active))
	}
	return strings.Join(labels, " ")
}

func (m *Model) footerLine(snapshot state.Snapshot) string {
	parts := []string{
		fmt.Sprintf("Cart %d · %s", snapshot.CartCount(), shop.FormatPrice(snapshot.CartTotal())),
	}
	if short := keymap.ShortHelp(m.registry, footerBindings...); short != "" {
		parts = append(parts, short)
	}
	switch {
	case snapshot.LastError != "":
		parts = append(parts, m.theme.Danger.Render(snapshot.LastError))
	case snapshot.Status != "":
		parts = append(parts, m.theme.Success.Render(snapshot.Status))
	}
	return strings.Join(parts, " · ")
}

func indexOf(values []state.ViewKind, target state.ViewKind) int {
	for idx, value := range values {
		if value == target {
			return idx
		}
	}
	return 0
}

func waitForStoreChanges(sub *state.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-sub.Events(); !ok {
			return nil
		}
		return storeChangeMsg{}
	}
}
