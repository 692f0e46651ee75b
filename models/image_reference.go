// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImageSource tells where an [ImageReference] came from.
type ImageSource string

const (
	ImageSourceCamera  ImageSource = "camera"
	ImageSourceGallery ImageSource = "gallery"
)

// ImageReference is an opaque handle to the image currently selected for
// scanning. The image bytes themselves stay on disk.
type ImageReference struct {
	ID     string
	Path   string
	Source ImageSource
}

// IsZero reports whether the reference points at nothing.
func (r ImageReference) IsZero() bool {
	return r.Path == ""
}
