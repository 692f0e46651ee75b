// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer strings used across the
// scanner client and the detector service.
//
// Msg* constants are written into HTTP response bodies by the detector
// service and matched by the client adapter. Notice* constants are the
// transient messages shown to the user by the scanner client.
package app

const (
	// MsgInvalidDataProvided is returned when the multipart form cannot be
	// parsed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgImageRequired is returned when the "image" form field is missing.
	MsgImageRequired = "image file is required"

	// MsgImageTooLarge is returned when the upload exceeds the size limit.
	MsgImageTooLarge = "image is too large"

	// MsgImageUndecodable is returned when the upload is not a supported
	// image.
	MsgImageUndecodable = "image format is not supported"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

const (
	NoticePickImageFirst        = "Pick Image First"
	NoticeCameraCaptureCanceled = "Camera capture canceled."
	NoticeCancelled             = "Cancelled."
	NoticeScanFailureFormat     = "Failure scanning due to %s"
	NoticeCameraPermissions     = "Camera and Storage permissions are required"
	NoticeStoragePermission     = "Storage permission is required"
	NoticeScanInProgress        = "Scan already in progress"
	NoticeCameraUnavailable     = "Camera is not available"
	NoticeImageRejectedFormat   = "Cannot use selected file: %s"
	NoticeNoCodeFound           = "No barcode found"
)
