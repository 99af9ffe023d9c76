package main

import (
	"context"
	"os"

	"github.com/desertthunder/ytimport/internal/repositories"
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/desertthunder/ytimport/internal/tasks"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			logger.Warnf("failed to load config, using defaults: %v", err)
		}
	}

	var youtube services.Service
	if svc, err := services.NewYouTubeService(config.Credentials.YouTube.Map()); err == nil {
		youtube = svc
	}

	var recorder tasks.RunRecorder
	if _, err := os.Stat(config.Database.Path); err == nil {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			recorder = repositories.NewRunRepository(db)
		} else {
			logger.Warnf("failed to open history database: %v", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		YouTube:    youtube,
		Recorder:   recorder,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "ytimport",
		Usage:    "Import video collections into new YouTube playlists",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
