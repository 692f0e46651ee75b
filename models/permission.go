// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PermissionKind is a capability the user has to grant before the
// application touches a device or the file system.
type PermissionKind string

const (
	PermissionCamera  PermissionKind = "camera"
	PermissionStorage PermissionKind = "storage"
)

// RequestCode identifies a permission request so the answer can be routed
// back to the flow that asked for it.
type RequestCode int

const (
	CameraRequestCode  RequestCode = 100
	GalleryRequestCode RequestCode = 101
)

// PermissionRequest describes one grant/deny dialog shown to the user.
type PermissionRequest struct {
	Code  RequestCode
	Kinds []PermissionKind
}

// CameraPermissionRequest asks for camera and storage together.
func CameraPermissionRequest() PermissionRequest {
	return PermissionRequest{
		Code:  CameraRequestCode,
		Kinds: []PermissionKind{PermissionCamera, PermissionStorage},
	}
}

// StoragePermissionRequest asks for storage only.
func StoragePermissionRequest() PermissionRequest {
	return PermissionRequest{
		Code:  GalleryRequestCode,
		Kinds: []PermissionKind{PermissionStorage},
	}
}

// Grant is a persisted answer to a permission request.
type Grant struct {
	Kind      PermissionKind
	Granted   bool
	UpdatedAt time.Time
}
