package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your learning statistics across all courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			backend, closeBackend, err := newBackend(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeBackend()
			}()

			stats, err := backend.Statistics(cmd.Context())
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			_, _ = bold.Println("Learning statistics")
			fmt.Printf("  Questions learned:  %d\n", stats.LearnedCount)
			fmt.Printf("  Questions mastered: %d\n", stats.MasteredCount)
			fmt.Printf("  Total repetitions:  %d\n", stats.TotalRepetitions)
			fmt.Printf("  Learning days:      %d\n", stats.LearningDays)
			if !stats.LastReviewAt.IsZero() {
				fmt.Printf("  Last review:        %s\n", stats.LastReviewAt.Format("2006-01-02"))
			}
			if !stats.FarthestReviewAt.IsZero() {
				fmt.Printf("  Farthest review:    %s\n", stats.FarthestReviewAt.Format("2006-01-02"))
			}
			if stats.MaxRepetitionQuestion != nil {
				fmt.Printf("  Most repeated:      %s\n", stats.MaxRepetitionQuestion.Summary)
			}
			return nil
		},
	}
}
