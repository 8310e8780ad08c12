package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spotbird/spotmix/internal/repositories"
	"github.com/spotbird/spotmix/internal/services"
	"github.com/spotbird/spotmix/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	_ = godotenv.Load()

	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// Local storage being unavailable is non-fatal: the credential store
	// degrades to "no saved token" and everything else keeps working.
	var db *sql.DB
	if opened, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(opened, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(opened); err != nil {
			logger.Warn("migrations failed, disabling local storage", "error", err)
			opened.Close()
		} else {
			db = opened
		}
	} else {
		logger.Warn("local storage unavailable", "error", err)
	}
	if db != nil {
		defer db.Close()
	}

	httpClient := &http.Client{Timeout: time.Duration(config.Server.TimeoutSeconds) * time.Second}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Service:    services.NewAPIService(config.Server.BaseURL, httpClient, logger),
		Store:      repositories.NewCredentialStore(db, logger),
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:           "spotmix",
		Usage:          "Generate Spotify playlists from genre picks",
		Version:        "0.1.0",
		Commands:       runner.register(),
		DefaultCommand: "tui",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
