package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/adamkadaban/storefront-tui/internal/config"
	"github.com/adamkadaban/storefront-tui/internal/logging"
	"github.com/adamkadaban/storefront-tui/internal/settings"
	"github.com/adamkadaban/storefront-tui/internal/shop"
	"github.com/adamkadaban/storefront-tui/internal/state"
	"github.com/adamkadaban/storefront-tui/internal/theme"
	root "github.com/adamkadaban/storefront-tui/internal/ui/root"
	"github.com/adamkadaban/storefront-tui/internal/util"
)

// Options control how the application is executed. Empty fields fall back
// to the config file.
type Options struct {
	ConfigPath  string
	Theme       string
	CatalogPath string
	LogPath     string
	LogLevel    string
}

// Run loads configuration, prepares state, and starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	model, closer, err := build(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	prog := tea.NewProgram(model, tea.WithAltScreen())

	runnerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runnerCtx)
	group.Go(func() error {
		<-groupCtx.Done()
		prog.Quit()
		return nil
	})
	group.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	if err := group.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// build assembles the root model. The returned closer releases the log file.
func build(opts Options) (*root.Model, io.Closer, error) {
	configPath, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	logger, closer, err := logging.New(logging.Options{
		Path:  util.Fallback(opts.LogPath, cfg.LogPath),
		Level: opts.LogLevel,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	model, err := assemble(configPath, cfg, opts, logger)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return model, closer, nil
}

func assemble(configPath string, cfg config.Config, opts Options, logger *log.Logger) (*root.Model, error) {
	products := shop.DefaultCatalog()
	if path := util.Fallback(opts.CatalogPath, cfg.CatalogPath); path != "" {
		loaded, err := shop.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		products = loaded
	}
	logger.Info("starting", "config", configPath, "products", len(products))

	store := state.NewStore()
	store.SetProducts(products)
	store.SetSettings(state.Settings{Theme: cfg.Theme, ExportDir: cfg.ExportDir})

	svc := shop.NewService(store, shop.Options{Logger: logger.WithPrefix("shop")})

	return root.New(store, root.Options{
		Theme:        theme.New(theme.Options{Override: opts.Theme, Preferred: cfg.Theme}),
		Bindings:     cfg.BindingSpecs(),
		AllowInInput: cfg.AllowInInput(),
		Logger:       logger.WithPrefix("keymap"),
		Cart:         svc,
		Exporter:     svc,
		Settings:     settings.NewManager(configPath, cfg),
	})
}
