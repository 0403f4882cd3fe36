package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizbank/quizbank/internal/database"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema and seed data commands",
	}

	migrateCommand.AddCommand(newMigrateDBCommand())
	migrateCommand.AddCommand(newMigrateImportCommand())

	return migrateCommand
}

func newMigrateDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := database.Migrate(db, schemas.Migrations); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Println("Migrations are up to date.")
			return nil
		},
	}
}

func newMigrateImportCommand() *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "import [seed file]",
		Short: "Import courses and questions from a seed YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			seedFile := cfg.Imports.SeedFile
			if len(args) == 1 {
				seedFile = args[0]
			}
			if seedFile == "" {
				return fmt.Errorf("no seed file: pass one as an argument or set imports.seed_file")
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			importer := quizbank.NewImporter(quizbank.NewDBRepository(db), cmd.OutOrStdout())
			result, err := importer.ImportFile(cmd.Context(), seedFile, quizbank.ImportOptions{DryRun: dryRun})
			if err != nil {
				return err
			}

			fmt.Printf("Courses:   %d new, %d skipped\n", result.CoursesNew, result.CoursesSkipped)
			fmt.Printf("Questions: %d new, %d skipped\n", result.QuestionsNew, result.QuestionsSkipped)
			if dryRun {
				fmt.Println("Dry run: nothing was written.")
			}
			return nil
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be imported without writing")

	return command
}
