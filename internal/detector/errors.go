package detector

import "errors"

var (
	// ErrImageUnreadable is returned when the image file cannot be opened.
	ErrImageUnreadable = errors.New("image cannot be read")
	// ErrImageUndecodable is returned when the bytes are not a supported image.
	ErrImageUndecodable = errors.New("image format is not supported")
	// ErrDecoder wraps unexpected failures of the barcode reader.
	ErrDecoder = errors.New("barcode decoder failure")
)
