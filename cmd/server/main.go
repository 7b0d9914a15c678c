package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/handler"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/server"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/internal/store"
	"github.com/MKhiriev/go-customer-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("customer-service").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("customer-service", logger.WithLevel(cfg.App.LogLevel))
	log.Debug().Any("server", cfg.Server).Str("dialect", cfg.Storage.DB.Dialect).Str("engine", cfg.Storage.DB.Engine).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// run wires the application and blocks until the server stops. Storages are
// closed on every return path.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
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
