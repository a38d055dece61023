package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adamkadaban/storefront-tui/internal/keymap"
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config captures persisted user preferences and the keyboard layout.
type Config struct {
	Theme       string       `yaml:"theme"`
	CatalogPath string       `yaml:"catalog_path,omitempty"`
	ExportDir   string       `yaml:"export_dir,omitempty"`
	LogPath     string       `yaml:"log_path,omitempty"`
	Keymap      KeymapConfig `yaml:"keymap,omitempty"`
}

// KeymapConfig declares the global shortcuts. An empty section means the
// built-in defaults.
type KeymapConfig struct {
	AllowInInput []string             `yaml:"allow_in_input,omitempty"`
	Bindings     []keymap.BindingSpec `yaml:"bindings,omitempty"`
}

// Load reads configuration data from the provided path. If the file does not exist,
// a default configuration is returned without an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ResolvePath(path)
	if err != nil {
		return cfg, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Theme = NormalizeTheme(cfg.Theme)

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory when needed.
func Save(path string, cfg Config) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default returns a usable configuration when no file exists yet.
func Default() Config {
	return Config{Theme: ThemeAuto}
}

// DefaultPath returns the standard configuration path within the user's
// XDG config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "storefront-tui", "config.yaml"), nil
}

// ResolvePath returns path, or the default path when path is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultPath()
}

// NormalizeTheme lower-cases a theme name and falls back to auto.
func NormalizeTheme(name string) string {
	switch value := strings.ToLower(strings.TrimSpace(name)); value {
	case ThemeDark, ThemeLight, ThemeAuto:
		return value
	default:
		return ThemeAuto
	}
}

// BindingSpecs returns the configured bindings, or the defaults.
func (c Config) BindingSpecs() []keymap.BindingSpec {
	if len(c.Keymap.Bindings) == 0 {
		return keymap.DefaultSpecs()
	}
	return c.Keymap.Bindings
}

// AllowInInput returns the configured allow-list, or the default one.
// An explicitly empty list in a config with custom bindings stays empty.
func (c Config) AllowInInput() []string {
	if c.Keymap.AllowInInput == nil {
		return keymap.DefaultAllowList()
	}
	return c.Keymap.AllowInInput
}

// Validate checks the keymap section for mistakes that would make dispatch
// surprising. A repeated name is not one of them: the later entry replaces
// the earlier binding and keeps its position.
func Validate(cfg Config) error {
	names := make(map[string]struct{})
	for idx, spec := range cfg.BindingSpecs() {
		if strings.TrimSpace(spec.Name) == "" {
			return fmt.Errorf("binding %d: empty name", idx)
		}
		names[spec.Name] = struct{}{}
		if strings.TrimSpace(spec.Key) == "" {
			return fmt.Errorf("binding %q: empty key", spec.Name)
		}
	}
	for _, name := range cfg.AllowInInput() {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("allow_in_input: unknown binding %q", name)
		}
	}
	return nil
}
