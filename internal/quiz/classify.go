package quiz

import (
	"strings"

	"vocabdrill/internal/domain"
)

// Classify compares an answer with the expected term. The first matching rule wins:
// exact match, case-insensitive match, match with all spaces removed, wrong.
func Classify(answer, expected string) domain.Verdict {
	answer = strings.TrimSpace(answer)

	switch {
	case answer == expected:
		return domain.VerdictCorrect
	case strings.ToLower(answer) == strings.ToLower(expected):
		return domain.VerdictCapitalization
	case removeSpaces(answer) == removeSpaces(expected):
		return domain.VerdictSpacing
	default:
		return domain.VerdictWrong
	}
}

func removeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
