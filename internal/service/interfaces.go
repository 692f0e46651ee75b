// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-qr-scanner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Detector finds barcodes in the referenced image. Implemented in-process by
// detector.Local and remotely by the adapter package.
type Detector interface {
	Detect(ctx context.Context, ref models.ImageReference) ([]models.DetectedCode, error)
}

// Camera captures a new image.
type Camera interface {
	Capture(ctx context.Context) (models.ImageReference, error)
}

// Gallery validates files chosen in the picker.
type Gallery interface {
	Select(path string) (models.ImageReference, error)
	Dir() string
}

// PermissionGate answers whether a capability was granted and records the
// user's answer to a request dialog.
type PermissionGate interface {
	HasPermission(ctx context.Context, kind models.PermissionKind) (bool, error)
	Record(ctx context.Context, kinds []models.PermissionKind, granted bool) error
}

// DetectionService runs detection for uploaded images on the server side.
type DetectionService interface {
	DetectUpload(ctx context.Context, image io.Reader) ([]models.DetectedCode, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
