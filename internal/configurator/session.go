package configurator

import (
	"errors"
	"fmt"

	"avatarmarket/internal/catalog"
)

var ErrUnknownSubject = errors.New("unknown subject")

// Session is the state of one visitor working through the configurator.
// It is not safe for concurrent use; callers serialize access per visitor.
type Session struct {
	cat        *catalog.Catalog
	step       Step
	selectedID string
	store      *Store
	confirming bool
}

// NewSession starts at the choose step with nothing selected.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		cat:   cat,
		step:  StepChoose,
		store: NewStore(cat),
	}
}

func (s *Session) Catalog() *catalog.Catalog { return s.cat }
func (s *Session) Step() Step { return s.step }

// Confirming reports whether the purchase confirmation is showing.
func (s *Session) Confirming() bool { return s.confirming }

// Select makes subjectID the selected subject. Edits previously made to it
// are kept.
func (s *Session) Select(subjectID string) error {
	if _, ok := s.cat.Subject(subjectID); !ok {
		return fmt.Errorf("select %q: %w", subjectID, ErrUnknownSubject)
	}
	s.selectedID = subjectID
	return nil
}

// Selected returns the selected subject, if any.
func (s *Session) Selected() (catalog.Subject, bool) {
	if s.selectedID == "" {
		return catalog.Subject{}, false
	}
	return s.cat.Subject(s.selectedID)
}

// Active returns the trait selection of the selected subject, or the
// default record when nothing is selected.
func (s *Session) Active() Record {
	if s.selectedID == "" {
		return s.store.def
	}
	return s.store.Active(s.selectedID)
}

// Update sets one category on the selected subject. Without a selection
// it does nothing.
func (s *Session) Update(c catalog.Category, optionID string) {
	if s.selectedID == "" {
		return
	}
	s.store.Update(s.selectedID, c, optionID)
}

// Total is the current price of the selected subject, or 0.
func (s *Session) Total() float64 {
	return ComputeTotal(s.cat, s.selectedPtr(), s.Active())
}

// Quote itemizes Total.
func (s *Session) Quote() Quote {
	return Breakdown(s.cat, s.selectedPtr(), s.Active())
}

func (s *Session) selectedPtr() *catalog.Subject {
	sub, ok := s.Selected()
	if !ok {
		return nil
	}
	return &sub
}

// CanNext reports whether Next would move forward.
func (s *Session) CanNext() bool {
	switch s.step {
	case StepChoose:
		return s.selectedID != ""
	case StepCustomize:
		return true
	default:
		return false
	}
}

// CanBack reports whether Back would move backward.
func (s *Session) CanBack() bool {
	return s.step != StepChoose
}

// Next advances one step when permitted and reports whether it moved.
func (s *Session) Next() bool {
	if !s.CanNext() {
		return false
	}
	s.step = s.step.next()
	return true
}

// Back returns one step and reports whether it moved.
func (s *Session) Back() bool {
	if !s.CanBack() {
		return false
	}
	s.step = s.step.back()
	return true
}

// ConfirmPurchase shows the purchase confirmation. Only valid on review.
func (s *Session) ConfirmPurchase() bool {
	if s.step != StepReview || s.selectedID == "" {
		return false
	}
	s.confirming = true
	return true
}

// ClosePurchase dismisses the confirmation and resets the whole session,
// including every subject's stored record.
func (s *Session) ClosePurchase() bool {
	if !s.confirming {
		return false
	}
	s.Reset()
	return true
}

// Reset returns the session to its initial state.
func (s *Session) Reset() {
	s.step = StepChoose
	s.selectedID = ""
	s.store.Clear()
	s.confirming = false
}

// Edited reports whether subjectID has a stored record.
func (s *Session) Edited(subjectID string) bool {
	return s.store.Has(subjectID)
}
