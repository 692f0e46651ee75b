package http

import (
	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
	"github.com/MKhiriev/go-qr-scanner/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
