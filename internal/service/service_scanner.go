// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-qr-scanner/internal/acquisition"
	"github.com/MKhiriev/go-qr-scanner/internal/app"
	"github.com/MKhiriev/go-qr-scanner/internal/formatter"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

type scannerService struct {
	permissions PermissionGate
	camera      Camera
	gallery     Gallery
	detector    Detector

	image   models.ImageReference
	result  string
	busy    bool
	pending *models.PermissionRequest

	logger *logger.Logger
}

// NewScannerService wires the controller to its collaborators. It starts with
// no image and an empty result.
func NewScannerService(permissions PermissionGate, camera Camera, gallery Gallery, detector Detector, logger *logger.Logger) Scanner {
	return &scannerService{
		permissions: permissions,
		camera:      camera,
		gallery:     gallery,
		detector:    detector,
		logger:      logger,
	}
}

func (s *scannerService) Image() models.ImageReference { return s.image }
func (s *scannerService) Result() string               { return s.result }
func (s *scannerService) Busy() bool                   { return s.busy }

// UseCamera captures an image once camera and storage are granted, otherwise
// asks for the missing ones.
func (s *scannerService) UseCamera(ctx context.Context) Action {
	missing := s.missing(ctx, models.PermissionCamera, models.PermissionStorage)
	if len(missing) == 0 {
		return s.captureAction()
	}

	request := models.CameraPermissionRequest()
	request.Kinds = missing
	return s.prompt(request)
}

// UseGallery opens the picker once storage is granted, otherwise asks for it.
func (s *scannerService) UseGallery(ctx context.Context) Action {
	if len(s.missing(ctx, models.PermissionStorage)) == 0 {
		return Action{OpenGallery: true}
	}
	return s.prompt(models.StoragePermissionRequest())
}

// Scan runs the detector over the current image.
func (s *scannerService) Scan(_ context.Context) Action {
	if s.image.IsZero() {
		return Action{Notice: app.NoticePickImageFirst, Err: ErrNoImageSelected}
	}
	if s.busy {
		return Action{Notice: app.NoticeScanInProgress, Err: ErrScanInProgress}
	}

	s.busy = true
	image := s.image
	s.logger.Info().Str("image", image.Path).Str("source", string(image.Source)).Msg("scan started")

	return Action{Task: func(ctx context.Context) Event {
		codes, err := s.detector.Detect(ctx, image)
		if err != nil {
			return DetectionFailed{Err: err}
		}
		return DetectionSucceeded{Codes: codes}
	}}
}

// Handle applies the outcome of an asynchronous step.
func (s *scannerService) Handle(ctx context.Context, event Event) Action {
	switch ev := event.(type) {
	case PermissionResult:
		return s.handlePermission(ctx, ev)
	case GalleryPicked:
		return s.handleGalleryPick(ev)
	case ImageAcquired:
		s.image = ev.Image
		s.logger.Info().Str("image", ev.Image.Path).Str("source", string(ev.Image.Source)).Msg("image acquired")
		return Action{}
	case AcquisitionCancelled:
		return cancelledAction(ev.Source)
	case AcquisitionFailed:
		s.logger.Err(ev.Err).Str("source", string(ev.Source)).Msg("image acquisition failed")
		if errors.Is(ev.Err, acquisition.ErrCameraUnavailable) {
			return Action{Notice: app.NoticeCameraUnavailable, Err: ev.Err}
		}
		return Action{Notice: fmt.Sprintf(app.NoticeImageRejectedFormat, ev.Err), Err: ev.Err}
	case DetectionSucceeded:
		s.busy = false
		if text, ok := formatter.Last(ev.Codes); ok {
			s.result = text
		}
		s.logger.Info().Int("codes", len(ev.Codes)).Msg("scan finished")
		return Action{}
	case DetectionFailed:
		s.busy = false
		s.logger.Err(ev.Err).Msg("scan failed")
		return Action{
			Notice: fmt.Sprintf(app.NoticeScanFailureFormat, ev.Err),
			Err:    fmt.Errorf("%w: %w", ErrDetectionFailed, ev.Err),
		}
	default:
		s.logger.Warn().Str("event", fmt.Sprintf("%T", event)).Msg("unknown event ignored")
		return Action{}
	}
}

func (s *scannerService) handlePermission(ctx context.Context, ev PermissionResult) Action {
	if s.pending == nil || s.pending.Code != ev.Code {
		s.logger.Warn().Int("code", int(ev.Code)).Msg("permission result without a matching request")
		return Action{}
	}
	request := *s.pending
	s.pending = nil

	if err := s.permissions.Record(ctx, request.Kinds, ev.Granted); err != nil {
		s.logger.Err(err).Int("code", int(ev.Code)).Msg("error recording permission answer")
	}

	switch request.Code {
	case models.CameraRequestCode:
		if !ev.Granted {
			return Action{Notice: app.NoticeCameraPermissions, Err: ErrPermissionDenied}
		}
		return s.captureAction()
	case models.GalleryRequestCode:
		if !ev.Granted {
			return Action{Notice: app.NoticeStoragePermission, Err: ErrPermissionDenied}
		}
		return Action{OpenGallery: true}
	default:
		return Action{}
	}
}

func (s *scannerService) handleGalleryPick(ev GalleryPicked) Action {
	image, err := s.gallery.Select(ev.Path)
	switch {
	case errors.Is(err, acquisition.ErrCancelled):
		return cancelledAction(models.ImageSourceGallery)
	case err != nil:
		s.logger.Warn().Err(err).Str("path", ev.Path).Msg("gallery selection rejected")
		return Action{
			Notice: fmt.Sprintf(app.NoticeImageRejectedFormat, err),
			Err:    fmt.Errorf("%w: %w", ErrImageRejected, err),
		}
	}

	s.image = image
	s.logger.Info().Str("image", image.Path).Msg("image picked")
	return Action{}
}

func (s *scannerService) captureAction() Action {
	return Action{Task: func(ctx context.Context) Event {
		image, err := s.camera.Capture(ctx)
		switch {
		case errors.Is(err, acquisition.ErrCancelled):
			return AcquisitionCancelled{Source: models.ImageSourceCamera}
		case err != nil:
			return AcquisitionFailed{Source: models.ImageSourceCamera, Err: err}
		}
		return ImageAcquired{Image: image}
	}}
}

func (s *scannerService) prompt(request models.PermissionRequest) Action {
	s.pending = &request
	return Action{Prompt: &request}
}

// missing returns the kinds out of kinds that are not granted. A failing
// lookup counts as not granted.
func (s *scannerService) missing(ctx context.Context, kinds ...models.PermissionKind) []models.PermissionKind {
	var out []models.PermissionKind
	for _, kind := range kinds {
		granted, err := s.permissions.HasPermission(ctx, kind)
		if err != nil {
			s.logger.Warn().Err(err).Str("kind", string(kind)).Msg("error checking permission")
		}
		if !granted && !slices.Contains(out, kind) {
			out = append(out, kind)
		}
	}
	return out
}

func cancelledAction(source models.ImageSource) Action {
	if source == models.ImageSourceCamera {
		return Action{Notice: app.NoticeCameraCaptureCanceled, Err: ErrAcquisitionCancelled}
	}
	return Action{Notice: app.NoticeCancelled, Err: ErrAcquisitionCancelled}
}
