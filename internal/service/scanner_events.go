package service

import (
	"context"

	"github.com/MKhiriev/go-qr-scanner/models"
)

// Scanner is the single-screen controller. Every call returns the [Action]
// the UI has to carry out; asynchronous steps come back through Handle.
// Implementations are not safe for concurrent use and must be driven from
// one event loop.
type Scanner interface {
	UseCamera(ctx context.Context) Action
	UseGallery(ctx context.Context) Action
	Scan(ctx context.Context) Action
	Handle(ctx context.Context, event Event) Action

	// Image is the current image reference, zero when none.
	Image() models.ImageReference
	// Result is the text of the last formatted detection.
	Result() string
	// Busy reports whether a detection is in flight.
	Busy() bool
}

// Task is an asynchronous step started by the controller. It runs off the
// event loop and reports its outcome as exactly one Event.
type Task func(ctx context.Context) Event

// Action tells the UI what to do after a controller call. The zero value
// means nothing to do.
type Action struct {
	// Notice is a transient message for the user.
	Notice string
	// Err is the error behind Notice, if any.
	Err error
	// Prompt asks the UI to show a grant/deny dialog and report the answer
	// as a PermissionResult.
	Prompt *models.PermissionRequest
	// OpenGallery asks the UI to show the file picker and report the
	// outcome as GalleryPicked.
	OpenGallery bool
	// Task must be run and its event passed back to Handle.
	Task Task
}

// Event is the completion of an asynchronous step.
type Event interface {
	event()
}

// PermissionResult is the user's answer to a permission dialog.
type PermissionResult struct {
	Code    models.RequestCode
	Granted bool
}

// GalleryPicked is the picker outcome. An empty Path means dismissed.
type GalleryPicked struct {
	Path string
}

// ImageAcquired carries a freshly captured image.
type ImageAcquired struct {
	Image models.ImageReference
}

// AcquisitionCancelled means the capture was abandoned.
type AcquisitionCancelled struct {
	Source models.ImageSource
}

// AcquisitionFailed means the capture could not run at all.
type AcquisitionFailed struct {
	Source models.ImageSource
	Err    error
}

// DetectionSucceeded carries the detector output, possibly empty.
type DetectionSucceeded struct {
	Codes []models.DetectedCode
}

// DetectionFailed carries the detector error.
type DetectionFailed struct {
	Err error
}

func (PermissionResult) event()     {}
func (GalleryPicked) event()        {}
func (ImageAcquired) event()        {}
func (AcquisitionCancelled) event() {}
func (AcquisitionFailed) event()    {}
func (DetectionSucceeded) event()   {}
func (DetectionFailed) event()      {}
