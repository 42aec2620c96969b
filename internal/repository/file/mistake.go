package file

import (
	"path/filepath"

	"vocabdrill/internal/domain"
)

// MistakesFile holds the mistakes of the last session
const MistakesFile = "mistakes.txt"

// MistakeRepo implements repository.MistakeRepository
type MistakeRepo struct {
	path string
}

// NewMistakeRepo creates a mistakes repository for the session directory dir
func NewMistakeRepo(dir string) *MistakeRepo {
	return &MistakeRepo{path: filepath.Join(dir, MistakesFile)}
}

// Path returns the mistakes file location
func (r *MistakeRepo) Path() string {
	return r.path
}

// LoadMistakes reads the pairs recorded by the previous session
func (r *MistakeRepo) LoadMistakes() ([]domain.WordPair, error) {
	return ReadPairs(r.path)
}

// SaveMistakes overwrites the mistakes file, one reconstructed pair per mistake
func (r *MistakeRepo) SaveMistakes(mistakes []domain.Mistake) error {
	pairs := make([]domain.WordPair, 0, len(mistakes))
	for _, m := range mistakes {
		pairs = append(pairs, m.Pair())
	}
	return WritePairs(r.path, pairs)
}
