package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	userID     int64
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "quizbank",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	registerGlobalFlags(rootCommand.PersistentFlags(), &debugMode)

	rootCommand.AddCommand(
		newStudyCommand(),
		newProgressCommand(),
		newStatsCommand(),
		newExportCommand(),
		newMigrateCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func registerGlobalFlags(flags *pflag.FlagSet, debugMode *bool) {
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.Int64Var(&userID, "user", 1, "user id to study as")
	flags.BoolVar(debugMode, "debug", false, "Enable debug mode")
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
