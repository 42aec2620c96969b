package service

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"vocabdrill/internal/domain"
)

// RetestOutcome compares the retest with the first pass
type RetestOutcome int

const (
	RetestAllCorrect RetestOutcome = iota
	RetestImproved
	RetestNotImproved
)

// ClassifyRetest decides how the retest went
func ClassifyRetest(firstPass, retest int) RetestOutcome {
	switch {
	case retest == 0:
		return RetestAllCorrect
	case retest < firstPass:
		return RetestImproved
	default:
		return RetestNotImproved
	}
}

// PercentCorrect returns round((1 - mistakes/sampleSize) * 100)
func PercentCorrect(mistakes, sampleSize int) int {
	if sampleSize <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(mistakes)/float64(sampleSize)) * 100))
}

// FormatMistakeTable renders shown term, given answer and expected term
// of every mistake as aligned columns
func FormatMistakeTable(mistakes []domain.Mistake) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\tWord\tAnswer\tCorrect")
	for i, m := range mistakes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, m.Shown, m.Answer, m.Expected)
	}
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}
