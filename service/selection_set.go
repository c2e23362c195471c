package services

// SelectionSet is the set of room ids chosen by the guest. Membership is
// O(1); ids keep the order in which they were selected.
type SelectionSet struct {
	ids   map[string]struct{}
	order []string
}

func NewSelectionSet(ids ...string) *SelectionSet {
	s := &SelectionSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Toggle removes the id when present, adds it otherwise, and reports
// whether it is selected afterwards.
func (s *SelectionSet) Toggle(id string) bool {
	if s.Contains(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

func (s *SelectionSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *SelectionSet) Len() int {
	return len(s.order)
}

// IDs returns the selected ids in selection order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Retain drops every id for which keep returns false.
func (s *SelectionSet) Retain(keep func(id string) bool) {
	kept := s.order[:0]
	for _, id := range s.order {
		if keep(id) {
			kept = append(kept, id)
		} else {
			delete(s.ids, id)
		}
	}
	s.order = kept
}

func (s *SelectionSet) Clear() {
	s.ids = make(map[string]struct{})
	s.order = nil
}

func (s *SelectionSet) add(id string) {
	if s.Contains(id) {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *SelectionSet) remove(id string) {
	delete(s.ids, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
