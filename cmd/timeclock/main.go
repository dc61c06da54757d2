package main

import (
	"context"
	"os"

	"github.com/timeclock/internal/cli"
	"github.com/timeclock/internal/config"
	"github.com/timeclock/internal/repository"
	"github.com/timeclock/internal/service"
	"github.com/timeclock/internal/store"
	"github.com/timeclock/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize document store
	st, err := store.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open document store")
	}
	defer st.Close()

	ctx := context.Background()

	// Initialize repositories and seed baseline records on first run
	repos := repository.New(st, log)
	if err := repos.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default records")
	}

	// Initialize services
	services := service.NewServices(repos, log)

	// Dispatch the command
	cmd := cli.New(services, log)
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
