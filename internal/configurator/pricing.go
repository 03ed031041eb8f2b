package configurator

import "avatarmarket/internal/catalog"

// ComputeTotal returns the subject's base price plus the price delta of the
// selected eyes, body, tail and accessory. Color is free. A nil subject
// costs nothing. Stale option IDs are priced as the category's fallback.
func ComputeTotal(cat *catalog.Catalog, subject *catalog.Subject, rec Record) float64 {
	if subject == nil {
		return 0
	}
	total := subject.BasePrice
	for _, c := range catalog.PricedCategories {
		total += catalog.Resolve(cat.Priced(c), rec.Get(c)).PriceDelta
	}
	return total
}

// Line is one row of a price breakdown.
type Line struct {
	Category catalog.Category
	Label    string
	Option   string
	Price    float64
}

// Included reports whether the line adds nothing to the base price.
func (l Line) Included() bool { return l.Price == 0 }

// Quote is the itemized price of a configured subject.
type Quote struct {
	Subject *catalog.Subject
	Color   catalog.ColorOption
	Lines   []Line
	Base    float64
	Extras  float64
	Total   float64
}

// Breakdown itemizes ComputeTotal. Lines are listed in category order and
// carry resolved option names.
func Breakdown(cat *catalog.Catalog, subject *catalog.Subject, rec Record) Quote {
	q := Quote{
		Subject: subject,
		Color:   catalog.Resolve(cat.Colors, rec.Color),
		Total:   ComputeTotal(cat, subject, rec),
	}
	if subject == nil {
		return q
	}
	q.Base = subject.BasePrice
	q.Extras = q.Total - q.Base
	q.Lines = make([]Line, 0, len(catalog.PricedCategories))
	for _, c := range catalog.PricedCategories {
		o := catalog.Resolve(cat.Priced(c), rec.Get(c))
		q.Lines = append(q.Lines, Line{
			Category: c,
			Label:    c.Label(),
			Option:   o.Name,
			Price:    o.PriceDelta,
		})
	}
	return q
}
