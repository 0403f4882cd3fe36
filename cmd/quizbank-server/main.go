package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/quizbank/quizbank/internal/bootstrap"
	"github.com/quizbank/quizbank/internal/config"
	"github.com/quizbank/quizbank/internal/database"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
	"github.com/quizbank/quizbank/internal/server"
	"github.com/quizbank/quizbank/schemas"
)

var configFile string

func main() {
	var migrateOnStart bool
	rootCmd := &cobra.Command{
		Use:           "quizbank-server",
		Short:         "Quizbank spaced repetition HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migrateOnStart)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending schema migrations before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateOnStart bool) error {
	app := bootstrap.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	if migrateOnStart {
		if err := database.Migrate(db, schemas.Migrations); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
	}

	service := review.NewService(db, review.NewDBRepository(db), quizbank.NewDBRepository(db))
	handler := server.NewHandler(service, logger, cfg.Study.NewQuestionLimit, cfg.Study.DueQuestionLimit)

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
