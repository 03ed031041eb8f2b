package configurator

import "avatarmarket/internal/catalog"

// Record is the trait selection for one subject: one option ID per
// category.
type Record struct {
	Color     string `json:"color"`
	Eyes      string `json:"eyes"`
	Body      string `json:"body"`
	Tail      string `json:"tail"`
	Accessory string `json:"accessory"`
}

// DefaultRecord selects the first option of every category.
func DefaultRecord(cat *catalog.Catalog) Record {
	return Record{
		Color:     catalog.Resolve(cat.Colors, "").ID,
		Eyes:      catalog.Resolve(cat.Eyes, "").ID,
		Body:      catalog.Resolve(cat.Body, "").ID,
		Tail:      catalog.Resolve(cat.Tail, "").ID,
		Accessory: catalog.Resolve(cat.Accessory, "").ID,
	}
}

// Get returns the option ID chosen for a category.
func (r Record) Get(c catalog.Category) string {
	switch c {
	case catalog.Color:
		return r.Color
	case catalog.Eyes:
		return r.Eyes
	case catalog.Body:
		return r.Body
	case catalog.Tail:
		return r.Tail
	case catalog.Accessory:
		return r.Accessory
	default:
		return ""
	}
}

// With returns a copy of r with one category replaced. Unknown categories
// leave the record unchanged.
func (r Record) With(c catalog.Category, optionID string) Record {
	switch c {
	case catalog.Color:
		r.Color = optionID
	case catalog.Eyes:
		r.Eyes = optionID
	case catalog.Body:
		r.Body = optionID
	case catalog.Tail:
		r.Tail = optionID
	case catalog.Accessory:
		r.Accessory = optionID
	}
	return r
}

// Normalize replaces stale IDs with the fallback option of each category,
// so the result is fully populated with IDs that exist in cat.
func (r Record) Normalize(cat *catalog.Catalog) Record {
	return Record{
		Color:     catalog.Resolve(cat.Colors, r.Color).ID,
		Eyes:      catalog.Resolve(cat.Eyes, r.Eyes).ID,
		Body:      catalog.Resolve(cat.Body, r.Body).ID,
		Tail:      catalog.Resolve(cat.Tail, r.Tail).ID,
		Accessory: catalog.Resolve(cat.Accessory, r.Accessory).ID,
	}
}
