package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"vocabdrill/internal/config"
	"vocabdrill/internal/console"
	"vocabdrill/internal/quiz"
	"vocabdrill/internal/repository/file"
	"vocabdrill/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "drill <who>",
		Short: "Vocabulary drill with mistake review",
		Long: `drill quizzes the word pairs in <who>/words.txt in random direction,
retests the missed ones and keeps them in <who>/mistakes.txt for the next session.
A few pairs from <who>/words_*.txt are mixed in as OLD review items.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Join(cfg.DataDir, args[0])
			logger.Info("Starting drill session", zap.String("dir", dir))

			term := console.NewTerminal(os.Stdin, cmd.OutOrStdout())
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			session := service.NewSessionService(
				file.NewWordRepo(dir),
				file.NewMistakeRepo(dir),
				quiz.NewEngine(term, rng, logger),
				term,
				rng,
				service.SessionOptions{
					Languages: cfg.Languages,
					MaxWords:  cfg.Session.MaxWords,
					OldWords:  cfg.Session.OldWords,
				},
				logger,
			)

			report, err := session.Run()
			if err != nil {
				return err
			}

			logger.Info("Drill session finished",
				zap.Int("sample_size", report.SampleSize),
				zap.Int("mistakes", len(report.Mistakes)),
				zap.Int("retest_mistakes", report.RetestMistakes),
			)
			return nil
		},
	}
}
