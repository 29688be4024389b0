package transform

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"
)

// Black is the default border fill.
var Black = color.RGBA{A: 255}

// MaxBorder is the thickest border that keeps a width x height image
// within MaxDimension.
func MaxBorder(width, height int) int {
	return max((MaxDimension-max(width, height))/2, 0)
}

// AddBorder pads img on all four sides with thickness pixels of fill.
// A zero thickness returns an identical copy.
func AddBorder(img gocv.Mat, thickness int, fill color.RGBA) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	if thickness < 0 {
		return gocv.NewMat(), invalidf("border thickness must be >= 0, got %d", thickness)
	}
	if limit := MaxBorder(img.Cols(), img.Rows()); thickness > limit {
		return gocv.NewMat(), invalidf("border thickness must be <= %d for a %dx%d image, got %d",
			limit, img.Cols(), img.Rows(), thickness)
	}
	if thickness == 0 {
		return img.Clone(), nil
	}

	output := gocv.NewMat()
	if err := gocv.CopyMakeBorder(img, &output, thickness, thickness, thickness, thickness, gocv.BorderConstant, fill); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("copy make border: %w", err)
	}
	return output, nil
}
