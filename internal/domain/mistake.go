package domain

// Mistake is a wrong first-pass answer together with the direction it was asked in
type Mistake struct {
	Shown     string
	Answer    string
	Expected  string
	Direction Direction
}

// ShownIndex returns the side of the original pair that was prompted
func (m Mistake) ShownIndex() int {
	return m.Direction.Shown()
}

// ExpectedIndex returns the side of the original pair that was expected
func (m Mistake) ExpectedIndex() int {
	return m.Direction.Expected()
}

// Pair reconstructs the original pair by putting each term back into its slot
func (m Mistake) Pair() WordPair {
	var sides [2]string
	sides[m.ShownIndex()] = m.Shown
	sides[m.ExpectedIndex()] = m.Expected
	return WordPair{Word: sides[0], Translation: sides[1]}
}

// MistakeSet collects distinct mistakes, keyed by the full mistake tuple.
// Iteration order is insertion order.
type MistakeSet struct {
	seen  map[Mistake]struct{}
	items []Mistake
}

// NewMistakeSet creates an empty set
func NewMistakeSet() *MistakeSet {
	return &MistakeSet{seen: make(map[Mistake]struct{})}
}

// Add inserts m and reports whether it was not already present
func (s *MistakeSet) Add(m Mistake) bool {
	if _, ok := s.seen[m]; ok {
		return false
	}
	s.seen[m] = struct{}{}
	s.items = append(s.items, m)
	return true
}

// Len returns the number of distinct mistakes
func (s *MistakeSet) Len() int {
	return len(s.items)
}

// Items returns the mistakes in insertion order
func (s *MistakeSet) Items() []Mistake {
	out := make([]Mistake, len(s.items))
	copy(out, s.items)
	return out
}

// Pairs returns the reconstructed original pair of every mistake
func (s *MistakeSet) Pairs() []WordPair {
	pairs := make([]WordPair, 0, len(s.items))
	for _, m := range s.items {
		pairs = append(pairs, m.Pair())
	}
	return pairs
}
