package domain

// Verdict is the classification of one answer
type Verdict string

const (
	VerdictCorrect        Verdict = "correct"
	VerdictCapitalization Verdict = "capitalization"
	VerdictSpacing        Verdict = "spacing"
	VerdictWrong          Verdict = "wrong"
)

// Accepted reports whether the answer counts as right
func (v Verdict) Accepted() bool {
	return v != VerdictWrong
}
