package catalog

// Category is one customizable dimension of a subject.
type Category string

const (
	Color     Category = "color"
	Eyes      Category = "eyes"
	Body      Category = "body"
	Tail      Category = "tail"
	Accessory Category = "accessory"
)

// Categories lists every category in display order.
var Categories = []Category{Color, Eyes, Body, Tail, Accessory}

// PricedCategories lists the categories that contribute to the total.
var PricedCategories = []Category{Eyes, Body, Tail, Accessory}

// ParseCategory maps a form value to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Priced reports whether options in this category carry a price delta.
func (c Category) Priced() bool {
	return c != Color && c != ""
}

// Label is the human-readable name shown next to the category.
func (c Category) Label() string {
	switch c {
	case Color:
		return "Color"
	case Eyes:
		return "Eyes"
	case Body:
		return "Body"
	case Tail:
		return "Tail"
	case Accessory:
		return "Accessory"
	default:
		return string(c)
	}
}
