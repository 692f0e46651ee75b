// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the detector service.
//
// [DetectorAdapter] hides the transport from the service layer. The package
// ships an HTTP/REST implementation ([NewHTTPDetectorAdapter]) that uploads
// the image as multipart form data.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnprocessable]
// for 422, [ErrRequestTooLarge] for 413).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-scanner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/detector_adapter_mock.go -package=mock

// DetectorAdapter talks to a remote detector service.
type DetectorAdapter interface {
	// Detect uploads the referenced image and returns the codes the service
	// found in it.
	Detect(ctx context.Context, ref models.ImageReference) ([]models.DetectedCode, error)

	// Version returns the service's build version.
	Version(ctx context.Context) (string, error)
}
