package sales

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed catalog.json
var defaultCatalog []byte

// ErrInvalidCatalog is returned when a catalog payload cannot be used.
var ErrInvalidCatalog = errors.New("invalid product catalog")

// Catalog is the read-only product list sales are stamped from.
type Catalog interface {
	ListProducts() []Product
	Lookup(itemName string) (Product, bool)
}

// StaticCatalog is a Catalog loaded once and never modified.
type StaticCatalog struct {
	products []Product
	byName   map[string]int
}

// NewStaticCatalog builds a catalog from the given products, preserving their order.
func NewStaticCatalog(products []Product) (*StaticCatalog, error) {
	c := &StaticCatalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if strings.TrimSpace(p.ItemName) == "" {
			return nil, fmt.Errorf("%w: empty item name", ErrInvalidCatalog)
		}
		if p.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: negative price for %q", ErrInvalidCatalog, p.ItemName)
		}
		if _, dup := c.byName[p.ItemName]; dup {
			return nil, fmt.Errorf("%w: duplicate item %q", ErrInvalidCatalog, p.ItemName)
		}
		c.byName[p.ItemName] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// LoadCatalog decodes a JSON array of products.
func LoadCatalog(r io.Reader) (*StaticCatalog, error) {
	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewStaticCatalog(products)
}

// LoadCatalogFile reads a JSON catalog from disk.
func LoadCatalogFile(path string) (*StaticCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the catalog bundled with the binary.
func DefaultCatalog() (*StaticCatalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog))
}

func (c *StaticCatalog) ListProducts() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *StaticCatalog) Lookup(itemName string) (Product, bool) {
	i, ok := c.byName[itemName]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}
