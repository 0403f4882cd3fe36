package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProgressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress [course id]",
		Short: "Show how far you are through a course",
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
			backend, closeBackend, err := newBackend(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeBackend()
			}()

			progress, err := backend.Progress(cmd.Context(), courseID)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			_, _ = bold.Printf("%s\n", progress.CourseName)
			fmt.Printf("  Not learned: %d\n", progress.NotLearned)
			fmt.Printf("  Reviewing:   %d\n", progress.Reviewing)
			color.Green("  Mastered:    %d", progress.Mastered)
			return nil
		},
	}
}
