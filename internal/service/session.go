package service

import (
	"fmt"
	"math/rand"

	"vocabdrill/internal/console"
	"vocabdrill/internal/domain"
	"vocabdrill/internal/quiz"
	"vocabdrill/internal/repository"
	"vocabdrill/internal/sampler"

	"go.uber.org/zap"
)

// SessionOptions holds per-session settings
type SessionOptions struct {
	Languages domain.LanguagePair
	MaxWords  int
	OldWords  int
}

// Report describes a finished session
type Report struct {
	SampleSize     int
	OldItems       int
	Mistakes       []domain.Mistake
	RetestMistakes int
	Percent        int
	Outcome        RetestOutcome
}

// SessionService runs one drill session: load, build the working set,
// first pass, retest, summary and persisting mistakes
type SessionService struct {
	wordRepo    repository.WordRepository
	mistakeRepo repository.MistakeRepository
	engine      *quiz.Engine
	console     quiz.Console
	rng         *rand.Rand
	opts        SessionOptions
	logger      *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	wordRepo repository.WordRepository,
	mistakeRepo repository.MistakeRepository,
	engine *quiz.Engine,
	con quiz.Console,
	rng *rand.Rand,
	opts SessionOptions,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		wordRepo:    wordRepo,
		mistakeRepo: mistakeRepo,
		engine:      engine,
		console:     con,
		rng:         rng,
		opts:        opts,
		logger:      logger,
	}
}

// Run executes the whole session. Nothing is written unless every prompt was answered.
func (s *SessionService) Run() (*Report, error) {
	pool, err := s.loadPool()
	if err != nil {
		return nil, err
	}

	items, sampleSize, err := s.buildWorkingSet(pool)
	if err != nil {
		return nil, err
	}

	report := &Report{SampleSize: sampleSize, OldItems: len(items) - sampleSize}

	if len(items) == 0 {
		s.console.Show("There are no words to test.")
		s.logger.Warn("Empty word pool, nothing to test")
		return report, nil
	}

	mistakes, err := s.engine.Run(items, true)
	if err != nil {
		return nil, err
	}
	report.Mistakes = mistakes.Items()

	s.logger.Info("First pass finished",
		zap.Int("items", len(items)),
		zap.Int("mistakes", mistakes.Len()),
	)

	s.console.Show("\n")
	if mistakes.Len() == 0 {
		report.Percent = 100
		s.console.Show("Congratulations!!! You got everything right. Keep it up.")
		// Only OLD items were asked; the stored mistakes were never re-asked.
		if sampleSize == 0 {
			return report, nil
		}
		return report, s.persist(report.Mistakes)
	}

	report.Percent = PercentCorrect(mistakes.Len(), sampleSize)
	s.console.Show(fmt.Sprintf("You got %d%% right from %d words with %d mistakes.",
		report.Percent, sampleSize, mistakes.Len()))
	s.console.Show("Let's test only the words you got wrong?\n")

	retest, err := s.retest(report.Mistakes)
	if err != nil {
		return nil, err
	}
	report.RetestMistakes = retest.Len()

	s.summarize(report)

	return report, s.persist(report.Mistakes)
}

// loadPool reads the word list and adds the previous mistakes once more
func (s *SessionService) loadPool() ([]domain.WordPair, error) {
	words, err := s.wordRepo.LoadWords()
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	previous, err := s.mistakeRepo.LoadMistakes()
	if err != nil {
		return nil, fmt.Errorf("failed to load mistakes: %w", err)
	}

	pool, skipped := MergeExtras(words, previous, true)
	for _, p := range skipped {
		s.console.Show(fmt.Sprintf("Words from mistakes not found in the list: %s", p))
		s.logger.Warn("Mistake not found in word list", zap.String("pair", p.String()))
	}

	s.logger.Info("Word pool loaded",
		zap.Int("words", len(words)),
		zap.Int("previous_mistakes", len(previous)),
		zap.Int("skipped", len(skipped)),
	)

	return pool, nil
}

// buildWorkingSet samples the pool, mixes in OLD review pairs and shuffles
// the result. It returns the items and the size of the non-OLD sample.
func (s *SessionService) buildWorkingSet(pool []domain.WordPair) ([]quiz.Item, int, error) {
	count := len(pool)
	if count > s.opts.MaxWords {
		all, err := console.Confirm(s.console,
			fmt.Sprintf("There are %d words. Would you like to test all? [y/n] ", count))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read answer: %w", err)
		}
		if !all {
			count = s.opts.MaxWords
		}
	}

	sample, err := sampler.Sample(s.rng, pool, count)
	if err != nil {
		return nil, 0, err
	}

	old, err := s.LoadHistoricalSample(s.opts.OldWords)
	if err != nil {
		return nil, 0, err
	}

	items := make([]quiz.Item, 0, len(sample)+len(old))
	for _, p := range sample {
		items = append(items, quiz.Item{Pair: p, Labels: s.opts.Languages})
	}
	for _, p := range old {
		items = append(items, quiz.Item{Pair: p, Labels: s.opts.Languages, Old: true})
	}

	return sampler.Shuffle(s.rng, items), len(sample), nil
}

// LoadHistoricalSample draws up to count pairs from the historical word lists
func (s *SessionService) LoadHistoricalSample(count int) ([]domain.WordPair, error) {
	historical, err := s.wordRepo.LoadHistorical()
	if err != nil {
		return nil, fmt.Errorf("failed to load historical words: %w", err)
	}
	return sampler.UpTo(s.rng, historical, count), nil
}

// retest asks the missed pairs again in the direction they were missed in
func (s *SessionService) retest(mistakes []domain.Mistake) (*domain.MistakeSet, error) {
	items := make([]quiz.Item, 0, len(mistakes))
	for _, m := range mistakes {
		items = append(items, quiz.Item{
			Pair:      m.Pair(),
			Labels:    s.opts.Languages,
			Direction: m.Direction,
		})
	}

	retest, err := s.engine.Run(sampler.Shuffle(s.rng, items), false)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Retest finished",
		zap.Int("items", len(items)),
		zap.Int("mistakes", retest.Len()),
	)

	return retest, nil
}

func (s *SessionService) summarize(report *Report) {
	report.Outcome = ClassifyRetest(len(report.Mistakes), report.RetestMistakes)

	s.console.Show("")
	switch report.Outcome {
	case RetestAllCorrect:
		s.console.Show("Very cool! Now you got them all right.")
	case RetestImproved:
		s.console.Show(fmt.Sprintf("This time you got only %d wrong. Keep at it", report.RetestMistakes))
	default:
		s.console.Show(fmt.Sprintf("Still %d mistakes. Here is a summary of all that you got wrong:",
			report.RetestMistakes))
		s.console.Show(FormatMistakeTable(report.Mistakes))
	}
}

func (s *SessionService) persist(mistakes []domain.Mistake) error {
	if err := s.mistakeRepo.SaveMistakes(mistakes); err != nil {
		s.logger.Error("Failed to save mistakes", zap.Error(err))
		return fmt.Errorf("failed to save mistakes: %w", err)
	}

	s.logger.Info("Mistakes saved", zap.Int("count", len(mistakes)))
	return nil
}
