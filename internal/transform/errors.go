package transform

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	// ErrInvalidParams marks out-of-range or malformed operation parameters.
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrUnknownOperation is returned when no operation is registered under a name.
	ErrUnknownOperation = errors.New("unknown operation")
)

// MaxDimension bounds the width and height an operation may produce.
const MaxDimension = 16384

// MaxLineWidth bounds the rectangle outline thickness.
const MaxLineWidth = 50

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

func checkInput(img gocv.Mat) error {
	if img.Empty() {
		return invalidf("input image is empty")
	}
	return nil
}
