// Package console implements the interactive line-based terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vocabdrill/internal/quiz"
)

// Terminal reads answers line by line and writes prompts and messages
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a terminal over the given streams
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes text without a newline and reads one line. A final line
// without a newline is still returned; io.EOF is only reported when nothing
// was typed.
func (t *Terminal) Prompt(text string) (string, error) {
	fmt.Fprint(t.out, text)

	line, err := t.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Show writes one line
func (t *Terminal) Show(text string) {
	fmt.Fprintln(t.out, text)
}

// Confirm asks a yes/no question; only "y" in any case means yes
func Confirm(c quiz.Console, question string) (bool, error) {
	answer, err := c.Prompt(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
