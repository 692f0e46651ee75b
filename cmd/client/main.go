package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-scanner/internal/acquisition"
	"github.com/MKhiriev/go-qr-scanner/internal/adapter"
	"github.com/MKhiriev/go-qr-scanner/internal/client"
	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/detector"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
	"github.com/MKhiriev/go-qr-scanner/internal/store"
	"github.com/MKhiriev/go-qr-scanner/internal/tui"
	"github.com/MKhiriev/go-qr-scanner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("qr-scanner-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the ui, logs go to a file
	log := logger.NewClientLogger("qr-scanner-client", cfg.App.LogFile)
	if cfg.ImagePath == "" {
		printBuildInfo()
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	var barcodes service.Detector
	if cfg.Detector.Remote {
		remote, err := adapter.NewHTTPDetectorAdapter(cfg.Detector, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create detector adapter")
		}
		if version, err := remote.Version(context.Background()); err != nil {
			log.Warn().Err(err).Str("address", cfg.Detector.Address).Msg("detector service is not reachable yet")
		} else {
			log.Info().Str("detector_version", version).Msg("using remote detector")
		}
		barcodes = remote
	} else {
		barcodes = detector.NewLocal(detector.Options{
			TryHarder: cfg.Detector.TryHarder,
			OneD:      cfg.Detector.OneD,
		}, log)
	}

	gallery := acquisition.NewGallery(cfg.Gallery)
	services := service.NewClientServices(storages, acquisition.NewCamera(cfg.Camera, log), gallery, barcodes, log)

	var ui client.UI
	if cfg.ImagePath == "" {
		ui, err = tui.New(services, gallery.Dir(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, ui, cfg.ImagePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("client run error")
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
