package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-scanner/internal/detector"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// ReaderDetector detects codes in an image stream.
type ReaderDetector interface {
	DetectReader(ctx context.Context, r io.Reader) ([]models.DetectedCode, error)
}

type detectionService struct {
	detector ReaderDetector
	logger   *logger.Logger
}

// NewDetectionService returns the server-side detection service.
func NewDetectionService(detector ReaderDetector, logger *logger.Logger) DetectionService {
	return &detectionService{
		detector: detector,
		logger:   logger,
	}
}

func (s *detectionService) DetectUpload(ctx context.Context, image io.Reader) ([]models.DetectedCode, error) {
	log := logger.FromContext(ctx)

	codes, err := s.detector.DetectReader(ctx, image)
	if errors.Is(err, detector.ErrImageUndecodable) {
		log.Debug().Err(err).Msg("upload is not an image")
		return nil, fmt.Errorf("%w: %w", ErrImageUndecodable, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*detectionService.DetectUpload").Msg("detection failed")
		return nil, fmt.Errorf("%w: %w", ErrDetectionFailed, err)
	}

	log.Debug().Int("codes", len(codes)).Msg("upload scanned")
	return codes, nil
}
