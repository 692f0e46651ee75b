package main

import (
	"fmt"

	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/detector"
	"github.com/MKhiriev/go-qr-scanner/internal/handler"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/server"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qr-detector-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	local := detector.NewLocal(detector.Options{
		TryHarder: cfg.Detector.TryHarder,
		OneD:      cfg.Detector.OneD,
	}, log)

	services, err := service.NewServices(local, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
