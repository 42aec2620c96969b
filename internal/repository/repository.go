package repository

import (
	"vocabdrill/internal/domain"
)

// WordRepository defines word list operations for one session directory
type WordRepository interface {
	LoadWords() ([]domain.WordPair, error)
	LoadHistorical() ([]domain.WordPair, error)
}

// MistakeRepository defines mistakes file operations
type MistakeRepository interface {
	LoadMistakes() ([]domain.WordPair, error)
	SaveMistakes(mistakes []domain.Mistake) error
}
