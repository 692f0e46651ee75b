// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Detector.Remote && (cfg.Detector.Address == "" || cfg.Detector.RequestTimeout <= 0) {
		return ErrInvalidDetectorConfigs
	}

	if cfg.Camera.MediaDir == "" || cfg.Camera.Timeout <= 0 {
		return ErrInvalidCameraConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
