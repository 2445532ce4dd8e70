package main

import (
	"context"
	"fmt"

	"github.com/datasciencemap/community-map/internal/config"
	handler "github.com/datasciencemap/community-map/internal/handler/http"
	"github.com/datasciencemap/community-map/internal/logger"
	"github.com/datasciencemap/community-map/internal/mailer"
	"github.com/datasciencemap/community-map/internal/server"
	"github.com/datasciencemap/community-map/internal/service"
	"github.com/datasciencemap/community-map/internal/store"
	"github.com/datasciencemap/community-map/internal/validators"
	"github.com/datasciencemap/community-map/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("community-map-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := mailer.NewMailer(cfg.Mail, cfg.App, log)
	services := service.NewServices(storages, notifier, cfg, log)
	handlers := handler.NewHandler(services, validators.NewRequestValidator(), cfg.App, log)

	backgroundWorkers := workers.NewWorkers(services, cfg.Workers, log)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
