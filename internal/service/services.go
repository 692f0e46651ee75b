package service

import (
	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
)

// Services groups the detector service's business services.
type Services struct {
	DetectionService DetectionService
	AppInfoService   AppInfoService
}

func NewServices(detector ReaderDetector, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DetectionService: NewDetectionService(detector, logger),
		AppInfoService:   appInfo,
	}, nil
}
