package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/utils"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// ImageFormField is the multipart field carrying the uploaded image.
const ImageFormField = "image"

type httpDetectorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPDetectorAdapter constructs the HTTP implementation of
// [DetectorAdapter] from the client's detector settings. Returns an error if
// cfg.Address cannot be turned into a base URL.
func NewHTTPDetectorAdapter(cfg config.ClientDetector, logger *logger.Logger) (DetectorAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid detector address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpDetectorAdapter{client: client, logger: logger}, nil
}

// Detect implements [DetectorAdapter]. It POSTs the image file to
// POST /api/scan and decodes the [models.ScanResponse].
func (h *httpDetectorAdapter) Detect(ctx context.Context, ref models.ImageReference) ([]models.DetectedCode, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFile(ImageFormField, ref.Path).
		Post("/api/scan")
	if err != nil {
		return nil, fmt.Errorf("scan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("image", filepath.Base(ref.Path)).Msg("detector service rejected image")
		return nil, err
	}

	var scan models.ScanResponse
	if err = json.Unmarshal(resp.Body(), &scan); err != nil {
		return nil, fmt.Errorf("decode scan response: %w", err)
	}
	if scan.Codes == nil {
		scan.Codes = []models.DetectedCode{}
	}

	return scan.Codes, nil
}

// Version implements [DetectorAdapter] via GET /api/version.
func (h *httpDetectorAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
