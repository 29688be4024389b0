package transform

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"
)

// DrawRectangle outlines region on a copy of img.
func DrawRectangle(img gocv.Mat, region Region, c color.RGBA, lineWidth int) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	if err := region.Validate(img.Cols(), img.Rows()); err != nil {
		return gocv.NewMat(), err
	}
	if lineWidth < 1 || lineWidth > MaxLineWidth {
		return gocv.NewMat(), invalidf("line width must be between 1 and %d, got %d", MaxLineWidth, lineWidth)
	}

	output := img.Clone()
	// OpenCV treats the second corner as inclusive.
	rect := region.Rect()
	rect.Max.X--
	rect.Max.Y--
	if err := gocv.Rectangle(&output, rect, c, lineWidth); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("draw rectangle %s: %w", region, err)
	}
	return output, nil
}
