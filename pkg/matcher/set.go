package matcher

// Set holds distinct matchers, keyed by their structural identity.
// The zero value is an empty set. A Set is not safe for concurrent writes.
type Set struct {
	buckets map[uint64][]Matcher
	order   []Matcher
}

// NewSet creates a set holding ms, skipping duplicates.
func NewSet(ms ...Matcher) *Set {
	s := &Set{}
	for _, m := range ms {
		s.Add(m)
	}
	return s
}

// Add inserts m. It returns false if an equal matcher is already present
// or m is nil.
func (s *Set) Add(m Matcher) bool {
	if m == nil || s.Contains(m) {
		return false
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]Matcher)
	}
	h := m.Hash()
	s.buckets[h] = append(s.buckets[h], m)
	s.order = append(s.order, m)
	return true
}

// Contains reports whether a matcher equal to m is present.
func (s *Set) Contains(m Matcher) bool {
	if m == nil {
		return false
	}
	for _, existing := range s.buckets[m.Hash()] {
		if existing.Equal(m) {
			return true
		}
	}
	return false
}

// Remove deletes the matcher equal to m. It returns false if none was present.
func (s *Set) Remove(m Matcher) bool {
	if m == nil {
		return false
	}
	h := m.Hash()
	bucket := s.buckets[h]
	for i, existing := range bucket {
		if !existing.Equal(m) {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(s.buckets, h)
		} else {
			s.buckets[h] = bucket
		}
		for j, o := range s.order {
			if o == existing {
				s.order = append(s.order[:j], s.order[j+1:]...)
				break
			}
		}
		return true
	}
	return false
}

// Len returns the number of matchers in the set.
func (s *Set) Len() int { return len(s.order) }

// Items returns the matchers in insertion order.
func (s *Set) Items() []Matcher {
	out := make([]Matcher, len(s.order))
	copy(out, s.order)
	return out
}
