package web

import (
	"avatarmarket/internal/catalog"
	"avatarmarket/internal/configurator"
	"avatarmarket/internal/money"
)

// StepView is one entry of the step indicator.
type StepView struct {
	Number int
	Label  string
	Active bool
	Done   bool
}

// SubjectView is a card on the choose step.
type SubjectView struct {
	catalog.Subject
	Price    string
	Selected bool
}

// OptionView is a chip or swatch on the customize step.
type OptionView struct {
	ID     string
	Name   string
	Hex    string // color swatches only
	Price  string // empty when included
	Active bool
}

// CategoryView groups the options of one trait category.
type CategoryView struct {
	Category catalog.Category
	Label    string
	Swatches bool
	Options  []OptionView
}

// LineView is one row of the review table.
type LineView struct {
	Label  string
	Option string
	Price  string
}

// ViewModel contains everything the configure templates render.
type ViewModel struct {
	Step       configurator.Step
	Steps      []StepView
	Subjects   []SubjectView
	Selected   *catalog.Subject
	Record     configurator.Record
	ColorHex   string
	Categories []CategoryView
	Lines      []LineView
	Base       string
	Extras     string
	Total      string
	CanNext    bool
	CanBack    bool
	NextLabel  string
	Confirming bool
}

func makeViewModel(sess *configurator.Session) ViewModel {
	cat := sess.Catalog()
	rec := sess.Active()
	q := sess.Quote()

	vm := ViewModel{
		Step:       sess.Step(),
		Selected:   q.Subject,
		Record:     rec,
		ColorHex:   q.Color.Hex,
		Base:       money.Format(q.Base),
		Extras:     money.Format(q.Extras),
		Total:      money.Format(q.Total),
		CanNext:    sess.CanNext(),
		CanBack:    sess.CanBack(),
		Confirming: sess.Confirming(),
	}
	if vm.Step == configurator.StepChoose {
		vm.NextLabel = "Customize"
	} else {
		vm.NextLabel = "Review"
	}

	cur := sess.Step().Index()
	for i, st := range configurator.Steps() {
		vm.Steps = append(vm.Steps, StepView{
			Number: i + 1,
			Label:  st.Label(),
			Active: i == cur,
			Done:   i < cur,
		})
	}

	for _, s := range cat.Subjects {
		vm.Subjects = append(vm.Subjects, SubjectView{
			Subject:  s,
			Price:    money.Format(s.BasePrice),
			Selected: q.Subject != nil && q.Subject.ID == s.ID,
		})
	}

	colors := CategoryView{Category: catalog.Color, Label: catalog.Color.Label(), Swatches: true}
	activeColor := catalog.Resolve(cat.Colors, rec.Color).ID
	for _, c := range cat.Colors {
		colors.Options = append(colors.Options, OptionView{
			ID: c.ID, Name: c.Name, Hex: c.Hex, Active: c.ID == activeColor,
		})
	}
	vm.Categories = append(vm.Categories, colors)
	for _, c := range catalog.PricedCategories {
		cv := CategoryView{Category: c, Label: c.Label()}
		active := catalog.Resolve(cat.Priced(c), rec.Get(c)).ID
		for _, o := range cat.Priced(c) {
			ov := OptionView{ID: o.ID, Name: o.Name, Active: o.ID == active}
			if o.PriceDelta > 0 {
				ov.Price = money.Delta(o.PriceDelta)
			}
			cv.Options = append(cv.Options, ov)
		}
		vm.Categories = append(vm.Categories, cv)
	}

	if q.Subject != nil {
		vm.Lines = append(vm.Lines, LineView{Label: "Animal", Option: q.Subject.Name, Price: money.Format(q.Base)})
		for _, l := range q.Lines {
			vm.Lines = append(vm.Lines, LineView{Label: l.Label, Option: l.Option, Price: money.Delta(l.Price)})
		}
	}
	return vm
}
