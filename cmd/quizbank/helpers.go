package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/quizbank/quizbank/internal/cli"
	"github.com/quizbank/quizbank/internal/client"
	"github.com/quizbank/quizbank/internal/config"
	"github.com/quizbank/quizbank/internal/database"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}

// newBackend picks the study backend: the HTTP client when a server base URL
// is configured, a direct database connection otherwise. The returned close
// function releases whichever resource was opened.
func newBackend(cfg *config.Config) (cli.Backend, func() error, error) {
	if cfg.Client.BaseURL != "" {
		apiClient := client.New(cfg.Client.BaseURL, userID)
		return cli.NewRemoteBackend(apiClient), apiClient.Close, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	service := review.NewService(db, review.NewDBRepository(db), quizbank.NewDBRepository(db))
	return cli.NewLocalBackend(service, userID), db.Close, nil
}
