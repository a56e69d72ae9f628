package identity

// Set is an insertion-ordered string set. Team attribution iterates known
// teams in a fixed order so that repeated runs over the same records produce
// identical output.
type Set struct {
	index map[string]struct{}
	items []string
}

func NewSet(items ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add appends item unless it is empty or already present.
func (s *Set) Add(item string) {
	if item == "" {
		return
	}
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *Set) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order. The caller must not mutate
// the returned slice.
func (s *Set) Items() []string {
	return s.items
}
