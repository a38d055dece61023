package shop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/adamkadaban/storefront-tui/internal/state"
)

type catalogFile struct {
	Products []state.Product `yaml:"products" toml:"products"`
}

// LoadCatalog reads products from a YAML or TOML file, chosen by extension.
func LoadCatalog(path string) ([]state.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(file.Products))
	for idx, p := range file.Products {
		if p.SKU == "" {
			return nil, fmt.Errorf("catalog product %d: empty sku", idx)
		}
		if _, dup := seen[p.SKU]; dup {
			return nil, fmt.Errorf("catalog product %d: duplicate sku %q", idx, p.SKU)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog product %q: negative price", p.SKU)
		}
		seen[p.SKU] = struct{}{}
	}
	return file.Products, nil
}

// DefaultCatalog is shown when no catalog file is configured.
func DefaultCatalog() []state.Product {
	return []state.Product{
		{SKU: "tea-earl", Name: "Earl Grey tea, 100g", Price: 650, Stock: 40},
		{SKU: "tea-sencha", Name: "Sencha green tea, 100g", Price: 890, Stock: 25},
		{SKU: "mug-stone", Name: "Stoneware mug", Price: 1400, Stock: 12},
		{SKU: "kettle-gooseneck", Name: "Gooseneck kettle", Price: 5900, Stock: 4},
		{SKU: "infuser", Name: "Steel infuser", Price: 450, Stock: 0},
	}
}

// Search filters products by case-insensitive substring on name or SKU.
// Queries of four or more runes also match any name word within edit
// distance one, which absorbs most typos.
func Search(products []state.Product, query string) []state.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}
	fuzzy := utf8.RuneCountInString(query) >= 4

	var out []state.Product
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, query) || strings.Contains(strings.ToLower(p.SKU), query) {
			out = append(out, p)
			continue
		}
		if !fuzzy {
			continue
		}
		for _, word := range strings.FieldsFunc(name, isSeparator) {
			if levenshtein.ComputeDistance(word, query) <= 1 {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func isSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '-' || r == '/'
}

// FormatPrice renders cents as a dollar amount.
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
