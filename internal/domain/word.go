package domain

import "strings"

// WordPair is one vocabulary item: a term in language A and its translation
// in language B. Pairs are compared by value.
type WordPair struct {
	Word        string
	Translation string
}

// NewWordPair builds a pair from its two sides
func NewWordPair(word, translation string) WordPair {
	return WordPair{Word: word, Translation: translation}
}

// Side returns the term stored at index 0 (Word) or 1 (Translation)
func (p WordPair) Side(i int) string {
	if i == 0 {
		return p.Word
	}
	return p.Translation
}

// String renders the pair in the ';' file format
func (p WordPair) String() string {
	return strings.Join([]string{p.Word, p.Translation}, ";")
}

// LanguagePair holds the display labels of side 0 and side 1
type LanguagePair struct {
	A string
	B string
}

// Label returns the label for side i
func (l LanguagePair) Label(i int) string {
	if i == 0 {
		return l.A
	}
	return l.B
}

// Contains reports whether pair occurs in pairs
func Contains(pairs []WordPair, pair WordPair) bool {
	for _, p := range pairs {
		if p == pair {
			return true
		}
	}
	return false
}
