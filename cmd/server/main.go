package main

import (
	"context"
	"fmt"

	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/handler"
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/server"
	"github.com/kmdeakers/go-notes/internal/service"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-notes-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "N/A" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, log)
	sessions := session.NewManager(cfg.App)
	validator := validators.NewFormValidator()

	handlers, err := handler.NewHandlers(services, sessions, validator, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
