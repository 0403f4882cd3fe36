package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quizbank/quizbank/internal/cli"
)

func newStudyCommand() *cobra.Command {
	var newLimit int
	var dueLimit int

	command := &cobra.Command{
		Use:   "study [course id]",
		Short: "Interactive study session: review due questions and learn new ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course id %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if newLimit == 0 {
				newLimit = cfg.Study.NewQuestionLimit
			}
			if dueLimit == 0 {
				dueLimit = cfg.Study.DueQuestionLimit
			}

			backend, closeBackend, err := newBackend(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeBackend()
			}()

			session, err := cli.NewStudySession(cmd.Context(), backend, courseID, newLimit, dueLimit)
			if err != nil {
				return err
			}
			if session.QuestionCount() == 0 {
				fmt.Println("Nothing to study right now. Come back later!")
				return nil
			}

			fmt.Printf("Starting study session with %d questions\n", session.QuestionCount())
			fmt.Println("Grade your recall from 0 (blackout) to 5 (perfect). Type 'q' to quit.")
			fmt.Println()
			return session.Run(cmd.Context())
		},
	}
	command.Flags().IntVar(&newLimit, "new-limit", 0, "maximum new questions to introduce (0 uses the configured limit)")
	command.Flags().IntVar(&dueLimit, "due-limit", 0, "maximum due questions to review (0 uses the configured limit)")

	return command
}
