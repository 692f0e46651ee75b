// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package acquisition

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/utils"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// ImageExtensions lists the file types the detector can read.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff"}

// Gallery turns picker selections into image references.
type Gallery struct {
	dir string
	ids *utils.UUIDGenerator
}

// NewGallery returns a gallery rooted at cfg.Dir.
func NewGallery(cfg config.Gallery) *Gallery {
	return &Gallery{dir: cfg.Dir, ids: utils.NewUUIDGenerator()}
}

// Dir is the directory the picker starts in.
func (g *Gallery) Dir() string {
	return g.dir
}

// Select validates path and returns a reference to it. An empty path means
// the picker was dismissed.
func (g *Gallery) Select(path string) (models.ImageReference, error) {
	if path == "" {
		return models.ImageReference{}, ErrCancelled
	}

	if !slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(path))) {
		return models.ImageReference{}, fmt.Errorf("%w: %s", ErrNotAnImage, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.ImageReference{}, fmt.Errorf("stat selected image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return models.ImageReference{}, fmt.Errorf("%w: %s", ErrNotAnImage, filepath.Base(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return models.ImageReference{
		ID:     g.ids.Generate(),
		Path:   abs,
		Source: models.ImageSourceGallery,
	}, nil
}
