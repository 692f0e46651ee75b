package acquisition

import "errors"

var (
	// ErrCancelled means the user backed out of the capture or the picker.
	ErrCancelled = errors.New("acquisition cancelled")
	// ErrCameraUnavailable means no capture command is configured.
	ErrCameraUnavailable = errors.New("camera is not available")
	// ErrNotAnImage is returned for picker selections that are not images.
	ErrNotAnImage = errors.New("selected file is not a supported image")
)
