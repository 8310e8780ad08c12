package models

// GenreSelection is a set of genre identifiers with insertion order preserved
// for display. Membership is unique; toggling twice is an identity.
type GenreSelection struct {
	order []string
	set   map[string]struct{}
}

// NewGenreSelection creates a selection preloaded with the given genres.
func NewGenreSelection(initial ...string) *GenreSelection {
	s := &GenreSelection{set: make(map[string]struct{})}
	for _, g := range initial {
		if _, ok := s.set[g]; ok {
			continue
		}
		s.set[g] = struct{}{}
		s.order = append(s.order, g)
	}
	return s
}

// Toggle adds genre when absent and removes it when present.
func (s *GenreSelection) Toggle(genre string) {
	if _, ok := s.set[genre]; ok {
		delete(s.set, genre)
		for i, g := range s.order {
			if g == genre {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.set[genre] = struct{}{}
	s.order = append(s.order, genre)
}

// Has reports whether genre is selected.
func (s *GenreSelection) Has(genre string) bool {
	_, ok := s.set[genre]
	return ok
}

// Clear removes all genres from the selection.
func (s *GenreSelection) Clear() {
	s.set = make(map[string]struct{})
	s.order = nil
}

// Values returns the selected genres in insertion order.
func (s *GenreSelection) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected genres.
func (s *GenreSelection) Len() int {
	return len(s.order)
}
