// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultCameraTimeout   = 30 * time.Second
	defaultRequestTimeout  = 15 * time.Second
	defaultMaxUploadSize   = 10 << 20
	defaultServerAddress   = "localhost:8080"
	defaultDBFileName      = "qrscanner.db"
	defaultLogFileName     = "qrscanner.log"
	defaultMediaDirName    = "media"
	defaultConfigDirName   = "go-qr-scanner"
	defaultDetectorAddress = "http://" + defaultServerAddress
)

// defaultConfig returns the lowest-priority layer. Paths live under the
// user's config directory, falling back to the working directory.
func defaultConfig() *StructuredConfig {
	base := "."
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, defaultConfigDirName)
	}

	galleryDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		galleryDir = home
	}

	return &StructuredConfig{
		App: App{
			LogFile: filepath.Join(base, defaultLogFileName),
		},
		Camera: Camera{
			MediaDir: filepath.Join(base, defaultMediaDirName),
			Timeout:  defaultCameraTimeout,
		},
		Gallery: Gallery{
			Dir: galleryDir,
		},
		Storage: Storage{
			DB: DB{DSN: filepath.Join(base, defaultDBFileName)},
		},
		Detector: Detector{
			Mode:           DetectorModeLocal,
			Address:        defaultDetectorAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
	}
}
