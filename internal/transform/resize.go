package transform

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Resize resamples img to exactly width x height.
func Resize(img gocv.Mat, width, height int) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	if err := checkDimensions(width, height); err != nil {
		return gocv.NewMat(), err
	}

	// Area averaging for shrinking, linear for enlarging.
	interp := gocv.InterpolationLinear
	if width < img.Cols() && height < img.Rows() {
		interp = gocv.InterpolationArea
	}

	output := gocv.NewMat()
	if err := gocv.Resize(img, &output, image.Pt(width, height), 0, 0, interp); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("resize to %dx%d: %w", width, height, err)
	}
	return output, nil
}

// FitDimensions returns the largest size with the aspect ratio of width x height
// that fits in boundsWidth x boundsHeight. The width constraint is tried first; if
// the scaled height overflows, the height constraint wins.
func FitDimensions(width, height, boundsWidth, boundsHeight int) (int, int) {
	scale := float64(boundsWidth) / float64(width)
	newWidth, newHeight := boundsWidth, int(float64(height)*scale)
	if newHeight > boundsHeight {
		scale = float64(boundsHeight) / float64(height)
		newWidth, newHeight = int(float64(width)*scale), boundsHeight
	}
	return max(newWidth, 1), max(newHeight, 1)
}

// FitToBounds resizes img to fit in the bounds, preserving its aspect ratio.
func FitToBounds(img gocv.Mat, boundsWidth, boundsHeight int) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	if err := checkDimensions(boundsWidth, boundsHeight); err != nil {
		return gocv.NewMat(), err
	}

	width, height := FitDimensions(img.Cols(), img.Rows(), boundsWidth, boundsHeight)
	return Resize(img, width, height)
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return invalidf("dimensions must be at least 1x1, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return invalidf("dimensions %dx%d exceed %d", width, height, MaxDimension)
	}
	return nil
}
