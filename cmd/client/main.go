package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
	"github.com/MKhiriev/go-customer-service/internal/client"
	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-version" {
		printBuildInfo()
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("customer-client", logger.WithOutput(os.Stderr)).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("customer-client",
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		logger.WithConsole(),
	)

	customerAdapter, err := adapter.NewHTTPCustomerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	app := client.NewApp(customerAdapter, tui.New(customerAdapter, log), cfg.Adapter.Token, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
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
