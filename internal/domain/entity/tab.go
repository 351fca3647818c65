package entity

// TabID uniquely identifies a tab.
type TabID string

// TabIDSet is an insertion-ordered set of tab identifiers.
// The zero value is ready to use.
type TabIDSet struct {
	ids []TabID
}

// Add appends id unless it is already present.
func (s *TabIDSet) Add(id TabID) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops id from the set, keeping the order of the remaining entries.
func (s *TabIDSet) Remove(id TabID) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is in the set.
func (s *TabIDSet) Contains(id TabID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of tab ids.
func (s *TabIDSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the ids in insertion order.
func (s *TabIDSet) IDs() []TabID {
	out := make([]TabID, len(s.ids))
	copy(out, s.ids)
	return out
}
