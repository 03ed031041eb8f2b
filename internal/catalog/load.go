package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCategory = errors.New("catalog: empty option list")
	ErrNoSubjects    = errors.New("catalog: no subjects")
)

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every table is non-empty, IDs are unique within a
// table and no price is negative. Resolve relies on the first two.
func (c *Catalog) Validate() error {
	if len(c.Subjects) == 0 {
		return ErrNoSubjects
	}
	if err := uniqueIDs("subjects", c.Subjects); err != nil {
		return err
	}
	for _, s := range c.Subjects {
		if s.BasePrice < 0 {
			return fmt.Errorf("catalog: subject %q has negative base price", s.ID)
		}
	}
	if len(c.Colors) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyCategory, Color)
	}
	if err := uniqueIDs(string(Color), c.Colors); err != nil {
		return err
	}
	for _, cat := range PricedCategories {
		opts := c.Priced(cat)
		if len(opts) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}
		if err := uniqueIDs(string(cat), opts); err != nil {
			return err
		}
		for _, o := range opts {
			if o.PriceDelta < 0 {
				return fmt.Errorf("catalog: %s option %q has negative price delta", cat, o.ID)
			}
		}
	}
	return nil
}

func uniqueIDs[T Identified](table string, list []T) error {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		id := v.Key()
		if id == "" {
			return fmt.Errorf("catalog: %s entry without id", table)
		}
		if seen[id] {
			return fmt.Errorf("catalog: duplicate %s id %q", table, id)
		}
		seen[id] = true
	}
	return nil
}
