package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestDefault_FreshCopies(t *testing.T) {
	a := Default()
	a.Eyes[0].PriceDelta = 99
	if b := Default(); b.Eyes[0].PriceDelta != 0 {
		t.Error("Default() shares slices between calls")
	}
}

func TestSubject(t *testing.T) {
	c := Default()
	fox, ok := c.Subject("fox")
	if !ok {
		t.Fatal("Expected fox to exist")
	}
	if fox.Name != "Arctic Fox" || fox.BasePrice != 24 {
		t.Errorf("unexpected fox: %+v", fox)
	}
	if _, ok := c.Subject("unicorn"); ok {
		t.Error("Expected unknown subject to be missing")
	}
}

func TestPriced(t *testing.T) {
	c := Default()
	if c.Priced(Color) != nil {
		t.Error("Color should not be a priced list")
	}
	if got := len(c.Priced(Accessory)); got != 4 {
		t.Errorf("Expected 4 accessories, got %d", got)
	}
}

func TestOptionIDs(t *testing.T) {
	c := Default()
	tests := []struct {
		cat  Category
		want []string
	}{
		{Color, []string{"amber", "mint", "ocean", "violet"}},
		{Eyes, []string{"bright", "sleepy", "mischief"}},
		{Tail, []string{"fluffy", "short", "long"}},
	}
	for _, tt := range tests {
		if got := c.OptionIDs(tt.cat); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("OptionIDs(%s) = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, ok := ParseCategory(string(c))
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, ok)
		}
	}
	if _, ok := ParseCategory("hat"); ok {
		t.Error("ParseCategory(\"hat\") should fail")
	}
	if Color.Priced() {
		t.Error("Color must not be priced")
	}
	if !Eyes.Priced() {
		t.Error("Eyes must be priced")
	}
}

func TestLoad_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")
	doc := `subjects:
  - id: owl
    name: Night Owl
    basePrice: 19.5
colors:
  - { id: snow, name: Snow, hex: "#ffffff" }
eyes:
  - { id: round, name: Round }
body:
  - { id: small, name: Small }
tail:
  - { id: fan, name: Fan, priceDelta: 1.5 }
accessory:
  - { id: none, name: None }
  - { id: monocle, name: Monocle, priceDelta: 6 }
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	owl, ok := c.Subject("owl")
	if !ok {
		t.Fatal("Expected owl subject")
	}
	if owl.BasePrice != 19.5 {
		t.Errorf("Expected base price 19.5, got %v", owl.BasePrice)
	}
	if got := Resolve(c.Accessory, "monocle").PriceDelta; got != 6 {
		t.Errorf("Expected monocle delta 6, got %v", got)
	}
}

func TestLoad_ShippedCatalogMatchesDefault(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "catalogs", "default.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("catalogs/default.yaml differs from Default()")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("non_existent_catalog.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("subjects: [")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantIs  error
		wantMsg string
	}{
		{"no subjects", func(c *Catalog) { c.Subjects = nil }, ErrNoSubjects, ""},
		{"empty eyes", func(c *Catalog) { c.Eyes = nil }, ErrEmptyCategory, "eyes"},
		{"empty colors", func(c *Catalog) { c.Colors = nil }, ErrEmptyCategory, "color"},
		{"duplicate tail", func(c *Catalog) { c.Tail = append(c.Tail, c.Tail[0]) }, nil, "duplicate tail"},
		{"negative delta", func(c *Catalog) { c.Body[1].PriceDelta = -1 }, nil, "negative price delta"},
		{"negative base", func(c *Catalog) { c.Subjects[0].BasePrice = -5 }, nil, "negative base price"},
		{"missing id", func(c *Catalog) { c.Accessory[2].ID = "" }, nil, "without id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("Expected %v, got %v", tt.wantIs, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
