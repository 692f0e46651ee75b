package service

import "errors"

var (
	// ErrPermissionDenied means the user refused a permission request.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrAcquisitionCancelled means the capture or the picker was dismissed.
	ErrAcquisitionCancelled = errors.New("image acquisition cancelled")
	// ErrNoImageSelected means Scan was requested before any image was picked.
	ErrNoImageSelected = errors.New("no image selected")
	// ErrDetectionFailed wraps the reason the barcode detector gave up.
	ErrDetectionFailed = errors.New("detection failed")
	// ErrScanInProgress means a detection is already running.
	ErrScanInProgress = errors.New("scan already in progress")
	// ErrImageRejected means the acquired file cannot be used.
	ErrImageRejected = errors.New("image rejected")

	// ErrImageUndecodable is returned by the detection service for uploads
	// that are not images.
	ErrImageUndecodable = errors.New("image is not decodable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
