package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidDetectorConfigs indicates remote detection without an
	// address or request timeout.
	ErrInvalidDetectorConfigs = errors.New("invalid detector configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCameraConfigs indicates a missing media directory or a
	// non-positive capture timeout.
	ErrInvalidCameraConfigs = errors.New("invalid camera configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or upload
	// limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
