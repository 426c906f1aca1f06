package main

import (
	"context"
	"fmt"

	"github.com/backmeup/credstore/internal/bootstrap"
	"github.com/backmeup/credstore/internal/config"
	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("credstore")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	// The connect timeout bounds only the dial+ping; migrations and seeding
	// run under the parent context so a slow migration is not cancelled by it.
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Storage.DB.ConnectTimeout)
	defer cancel()

	storages, err := store.NewStorages(connectCtx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	defer storages.Close()

	if err := bootstrap.Initialize(ctx, storages.DB, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("error initializing credentials store")
	}

	log.Info().Msg("credentials store initialized")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
