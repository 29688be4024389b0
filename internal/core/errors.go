package core

import "errors"

var (
	// ErrNoImageLoaded is returned when an operation needs an image and none was loaded or captured.
	ErrNoImageLoaded = errors.New("no image loaded")
	// ErrDecodeFailure is returned when bytes cannot be parsed as an image.
	ErrDecodeFailure = errors.New("failed to decode image")
	// ErrNoOriginal is returned by Reset before any load or capture.
	ErrNoOriginal = errors.New("no original image available")
	// ErrInvalidImage is returned for empty or out-of-range images.
	ErrInvalidImage = errors.New("invalid image")
)
