package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adamkadaban/storefront-tui/internal/app"
)

func main() {
	var opts app.Options

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the config file (defaults to XDG config dir)")
	flag.StringVar(&opts.Theme, "theme", "", "Override theme (light, dark, auto)")
	flag.StringVar(&opts.CatalogPath, "catalog", "", "Product catalog (.yaml or .toml), overrides catalog_path")
	flag.StringVar(&opts.LogPath, "log", "", "Append logs to this file, overrides log_path")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "storefront-tui: %v\n", err)
		os.Exit(1)
	}
}
