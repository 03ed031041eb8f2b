package configurator

import "avatarmarket/internal/catalog"

// Store maps subject IDs to their trait selection. Records are created on
// first edit and only removed by Clear.
type Store struct {
	def     Record
	records map[string]Record
}

// NewStore returns an empty store whose default record comes from cat.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		def:     DefaultRecord(cat),
		records: map[string]Record{},
	}
}

// Active returns the stored record for subjectID, or the default record.
func (s *Store) Active(subjectID string) Record {
	if r, ok := s.records[subjectID]; ok {
		return r
	}
	return s.def
}

// Update writes the previous (or default) record for subjectID with one
// category replaced. Other subjects are left alone.
func (s *Store) Update(subjectID string, c catalog.Category, optionID string) {
	s.records[subjectID] = s.Active(subjectID).With(c, optionID)
}

// Has reports whether subjectID has been edited since the last Clear.
func (s *Store) Has(subjectID string) bool {
	_, ok := s.records[subjectID]
	return ok
}

// Clear drops every record.
func (s *Store) Clear() {
	clear(s.records)
}

func (s *Store) Len() int { return len(s.records) }
