package catalog

// Subject is a character that can be configured and purchased.
type Subject struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	BasePrice   float64 `yaml:"basePrice" json:"basePrice"`
	Accent      string  `yaml:"accent" json:"accent"` // hex, e.g. "#ff9f43"
	Glyph       string  `yaml:"glyph" json:"glyph"`
}

// ColorOption is a body color. Colors carry no price.
type ColorOption struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Hex  string `yaml:"hex" json:"hex"`
}

// PricedOption is one choice within a priced trait category. A zero
// PriceDelta means the option is included in the base price.
type PricedOption struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	PriceDelta float64 `yaml:"priceDelta" json:"priceDelta"`
}

func (s Subject) Key() string { return s.ID }
func (o ColorOption) Key() string { return o.ID }
func (o PricedOption) Key() string { return o.ID }

// Catalog holds every table the configurator reads from. It is never
// mutated after load.
type Catalog struct {
	Subjects  []Subject      `yaml:"subjects" json:"subjects"`
	Colors    []ColorOption  `yaml:"colors" json:"colors"`
	Eyes      []PricedOption `yaml:"eyes" json:"eyes"`
	Body      []PricedOption `yaml:"body" json:"body"`
	Tail      []PricedOption `yaml:"tail" json:"tail"`
	Accessory []PricedOption `yaml:"accessory" json:"accessory"`
}

// Subject looks up a subject by ID.
func (c *Catalog) Subject(id string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// Priced returns the option list of a priced category, or nil for color.
func (c *Catalog) Priced(cat Category) []PricedOption {
	switch cat {
	case Eyes:
		return c.Eyes
	case Body:
		return c.Body
	case Tail:
		return c.Tail
	case Accessory:
		return c.Accessory
	default:
		return nil
	}
}

// OptionIDs lists the option identifiers of any category in catalog order.
func (c *Catalog) OptionIDs(cat Category) []string {
	if cat == Color {
		return ids(c.Colors)
	}
	return ids(c.Priced(cat))
}

func ids[T Identified](list []T) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.Key())
	}
	return out
}
