package file

import (
	"fmt"
	"path/filepath"
	"sort"

	"vocabdrill/internal/domain"
)

const (
	// WordsFile is the primary word list of a session directory
	WordsFile = "words.txt"
	// HistoricalPattern matches older word lists kept next to the primary one
	HistoricalPattern = "words_*.txt"
)

// WordRepo implements repository.WordRepository on a session directory
type WordRepo struct {
	dir string
}

// NewWordRepo creates a word repository rooted at dir
func NewWordRepo(dir string) *WordRepo {
	return &WordRepo{dir: dir}
}

// LoadWords reads the primary word list
func (r *WordRepo) LoadWords() ([]domain.WordPair, error) {
	return ReadPairs(filepath.Join(r.dir, WordsFile))
}

// LoadHistorical concatenates every historical word list in name order
func (r *WordRepo) LoadHistorical() ([]domain.WordPair, error) {
	files, err := filepath.Glob(filepath.Join(r.dir, HistoricalPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list historical files: %w", err)
	}
	sort.Strings(files)

	var pairs []domain.WordPair
	for _, f := range files {
		if filepath.Base(f) == WordsFile {
			continue
		}
		filePairs, err := ReadPairs(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, filePairs...)
	}

	return pairs, nil
}
