package testutil

import (
	"vocabdrill/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a word pair
func NewTestPair(word, translation string) domain.WordPair {
	return domain.NewWordPair(word, translation)
}

// NewTestPairs builds pairs from alternating word/translation arguments
func NewTestPairs(terms ...string) []domain.WordPair {
	pairs := make([]domain.WordPair, 0, len(terms)/2)
	for i := 0; i+1 < len(terms); i += 2 {
		pairs = append(pairs, domain.NewWordPair(terms[i], terms[i+1]))
	}
	return pairs
}

// NewTestLanguages returns the labels used across tests
func NewTestLanguages() domain.LanguagePair {
	return domain.LanguagePair{A: "Fr", B: "De"}
}
