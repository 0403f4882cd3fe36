package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quizbank/quizbank/internal/export"
	"github.com/quizbank/quizbank/internal/quizbank"
)

func newExportCommand() *cobra.Command {
	var includeAnswers bool

	command := &cobra.Command{
		Use:   "export [course id]",
		Short: "Export a course's questions as a PDF sheet",
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
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := quizbank.NewDBRepository(db)
			course, err := repo.FindCourse(cmd.Context(), courseID)
			if err != nil {
				return err
			}
			questions, err := repo.FindQuestionsByCourse(cmd.Context(), courseID)
			if err != nil {
				return err
			}

			path, err := export.WriteCoursePDF(course, questions, cfg.Exports.Directory, export.Options{
				IncludeAnswers: includeAnswers,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d questions to %s\n", len(questions), path)
			return nil
		},
	}
	command.Flags().BoolVar(&includeAnswers, "include-answers", false, "include answers and explanations in the sheet")

	return command
}
