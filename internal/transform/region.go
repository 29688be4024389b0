package transform

import (
	"fmt"
	"image"
)

// Region is an axis-aligned rectangle addressing part of an image.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RegionFromRect converts an image.Rectangle to a Region.
func RegionFromRect(r image.Rectangle) Region {
	r = r.Canon()
	return Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Validate checks that the region is non-empty and lies within a width x height image.
func (r Region) Validate(width, height int) error {
	if r.Width < 1 || r.Height < 1 {
		return invalidf("region size must be positive, got %dx%d", r.Width, r.Height)
	}
	// Compared by subtraction so huge coordinates cannot wrap around.
	if r.X < 0 || r.Y < 0 || r.X >= width || r.Y >= height ||
		r.Width > width-r.X || r.Height > height-r.Y {
		return invalidf("region %s exceeds image bounds %dx%d", r, width, height)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
