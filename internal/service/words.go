package service

import (
	"vocabdrill/internal/domain"
)

// MergeExtras appends extras to base. With requireMembership an extra pair is
// only appended when it already occurs in the list; the others are returned as
// skipped. The base slice is not modified.
func MergeExtras(base, extras []domain.WordPair, requireMembership bool) (merged, skipped []domain.WordPair) {
	merged = make([]domain.WordPair, len(base), len(base)+len(extras))
	copy(merged, base)

	for _, p := range extras {
		if requireMembership && !domain.Contains(merged, p) {
			skipped = append(skipped, p)
			continue
		}
		merged = append(merged, p)
	}

	return merged, skipped
}
