// Package quiz runs the prompt/answer loop over a batch of word pairs.
package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"vocabdrill/internal/domain"

	"go.uber.org/zap"
)

const oldMarker = "{OLD} "

// Item is one entry of a quiz batch
type Item struct {
	Pair   domain.WordPair
	Labels domain.LanguagePair
	// Direction is used when the engine does not pick one at random
	Direction domain.Direction
	// Old marks review items drawn from historical lists; they are never recorded
	Old bool
}

// Engine asks every item of a batch once and collects mistakes
type Engine struct {
	console Console
	rng     *rand.Rand
	logger  *zap.Logger
}

// NewEngine creates a quiz engine
func NewEngine(console Console, rng *rand.Rand, logger *zap.Logger) *Engine {
	return &Engine{
		console: console,
		rng:     rng,
		logger:  logger,
	}
}

// Run visits items in order. With randomDirection each item gets a random
// shown side, otherwise the item's own Direction is used.
func (e *Engine) Run(items []Item, randomDirection bool) (*domain.MistakeSet, error) {
	mistakes := domain.NewMistakeSet()

	for i, item := range items {
		dir := item.Direction
		if randomDirection {
			dir = domain.DirectionFromIndex(e.rng.Intn(2))
		}

		if err := e.ask(i, len(items), item, dir, mistakes); err != nil {
			return nil, err
		}
	}

	return mistakes, nil
}

func (e *Engine) ask(i, total int, item Item, dir domain.Direction, mistakes *domain.MistakeSet) error {
	shown := item.Pair.Side(dir.Shown())
	expected := item.Pair.Side(dir.Expected())

	prefix := ""
	if item.Old {
		prefix = oldMarker
	}
	prompt := fmt.Sprintf("(%3d/%d). %s[%s] %s => [%s] ",
		i+1, total, prefix, item.Labels.Label(dir.Shown()), shown, item.Labels.Label(dir.Expected()))

	answer, err := e.readAnswer(prompt)
	if err != nil {
		return err
	}

	verdict := Classify(answer, expected)
	e.logger.Debug("Answer classified",
		zap.String("shown", shown),
		zap.String("answer", answer),
		zap.String("expected", expected),
		zap.String("direction", dir.String()),
		zap.String("verdict", string(verdict)),
		zap.Bool("old", item.Old),
	)

	switch verdict {
	case domain.VerdictCapitalization:
		e.console.Show(fmt.Sprintf("\tWatch out for capitalisation. Correct was \"%s\"", expected))
	case domain.VerdictSpacing:
		e.console.Show("\tWatch out for extra spaces in the answer")
	case domain.VerdictWrong:
		if !item.Old {
			mistakes.Add(domain.Mistake{
				Shown:     shown,
				Answer:    answer,
				Expected:  expected,
				Direction: dir,
			})
		}
		e.console.Show(fmt.Sprintf("\tWrong! Correct was \"%s\"", expected))
	}

	return nil
}

// readAnswer prompts until a non-blank answer arrives
func (e *Engine) readAnswer(prompt string) (string, error) {
	for {
		answer, err := e.console.Prompt(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		answer = strings.TrimSpace(answer)
		if answer != "" {
			return answer, nil
		}
		e.console.Show("\tYou must enter something...")
	}
}
