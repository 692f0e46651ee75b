// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for both the
// scanner client and the detector service. It is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Camera holds the capture command used by the "use camera" action and
	// the media directory captured images are written to.
	Camera Camera `envPrefix:"CAMERA_"`

	// Gallery holds the directory the file picker starts in.
	Gallery Gallery `envPrefix:"GALLERY_"`

	// Storage holds the local database used for permission grants.
	Storage Storage `envPrefix:"STORAGE_"`

	// Detector selects and tunes the barcode detector.
	Detector Detector `envPrefix:"DETECTOR_"`

	// Server holds network settings of the detector HTTP service.
	Server Server `envPrefix:"SERVER_"`

	// ImagePath, when set, makes the client scan this file once and print the
	// result instead of starting the terminal UI.
	// Env: IMAGE
	ImagePath string `env:"IMAGE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its logs; the terminal belongs to
	// the UI.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Camera holds settings of the external capture program.
type Camera struct {
	// Command is the capture command line. The {output} placeholder is
	// replaced with the path of the file to write
	// (e.g. "fswebcam --no-banner -r 1280x720 {output}").
	// Env: CAMERA_COMMAND
	Command string `env:"COMMAND"`

	// MediaDir is the directory captured images are stored in.
	// Env: CAMERA_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`

	// Timeout bounds a single capture (e.g. "30s").
	// Env: CAMERA_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Gallery holds settings of the image picker.
type Gallery struct {
	// Dir is the directory the picker opens in.
	// Env: GALLERY_DIR
	Dir string `env:"DIR"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "qrscanner.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Detector selects where barcode detection runs.
type Detector struct {
	// Mode is "local" (in-process decoder) or "remote" (detector service).
	// Env: DETECTOR_MODE
	Mode string `env:"MODE"`

	// Address of the detector service used in remote mode
	// (e.g. "localhost:8080").
	// Env: DETECTOR_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds one remote detection request.
	// Env: DETECTOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TryHarder trades speed for accuracy in the local decoder.
	// Env: DETECTOR_TRY_HARDER
	TryHarder bool `env:"TRY_HARDER"`

	// OneD enables linear (1D) symbologies in addition to 2D ones.
	// Env: DETECTOR_ONE_D
	OneD bool `env:"ONE_D"`
}

// Server holds network and limit settings for the detector HTTP service.
type Server struct {
	// HTTPAddress is the TCP address the service listens on, in "host:port"
	// format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits the size of an uploaded image in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Detector modes.
const (
	DetectorModeLocal  = "local"
	DetectorModeRemote = "remote"
)

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
