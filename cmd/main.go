package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/services"
	"github.com/zenith-music/zenith/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	backend := services.NewZenithService(config.Backend, nil)
	apiService := services.NewAPIService(config.Backend.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Backend: backend,
		API:     apiService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "zenith",
		Usage:    "Turn a short mood survey into a Spotify playlist",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
