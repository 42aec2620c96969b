package testutil

import (
	"io"
	"regexp"
	"strings"
)

// ScriptedConsole answers prompts through a function of the prompt text and
// records everything that was shown
type ScriptedConsole struct {
	Answer  func(prompt string) (string, bool)
	Prompts []string
	Output  []string
}

// NewQueueConsole answers prompts with the given lines in order and returns
// io.EOF once they run out
func NewQueueConsole(lines ...string) *ScriptedConsole {
	queue := append([]string(nil), lines...)
	return &ScriptedConsole{
		Answer: func(string) (string, bool) {
			if len(queue) == 0 {
				return "", false
			}
			line := queue[0]
			queue = queue[1:]
			return line, true
		},
	}
}

// Prompt implements quiz.Console
func (c *ScriptedConsole) Prompt(text string) (string, error) {
	c.Prompts = append(c.Prompts, text)
	answer, ok := c.Answer(text)
	if !ok {
		return "", io.EOF
	}
	return answer, nil
}

// Show implements quiz.Console
func (c *ScriptedConsole) Show(text string) {
	c.Output = append(c.Output, text)
}

// Transcript joins all shown lines
func (c *ScriptedConsole) Transcript() string {
	return strings.Join(c.Output, "\n")
}

var quizPrompt = regexp.MustCompile(`^\(\s*\d+/\d+\)\. (\{OLD\} )?\[([^\]]*)\] (.*) => \[([^\]]*)\] $`)

// QuizPrompt is a parsed quiz prompt
type QuizPrompt struct {
	Old           bool
	ShownLabel    string
	Shown         string
	ExpectedLabel string
}

// ParseQuizPrompt extracts the shown term and labels from a quiz prompt
func ParseQuizPrompt(prompt string) (QuizPrompt, bool) {
	m := quizPrompt.FindStringSubmatch(prompt)
	if m == nil {
		return QuizPrompt{}, false
	}
	return QuizPrompt{
		Old:           m[1] != "",
		ShownLabel:    m[2],
		Shown:         m[3],
		ExpectedLabel: m[4],
	}, true
}
