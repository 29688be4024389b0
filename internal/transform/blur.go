package transform

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// KernelSize derives the Gaussian kernel for a region: a third of each side,
// stepped down to the next odd number and never below 1.
func KernelSize(region Region) image.Point {
	return image.Pt(oddKernel(region.Width/3), oddKernel(region.Height/3))
}

func oddKernel(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < 1 {
		return 1
	}
	return n
}

// BlurRegion applies a strong Gaussian blur inside region only.
func BlurRegion(img gocv.Mat, region Region) (gocv.Mat, error) {
	return BlurRegions(img, []Region{region})
}

// BlurRegions blurs every region of img in a single copy. All regions are
// validated before any pixel is touched.
func BlurRegions(img gocv.Mat, regions []Region) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	for _, region := range regions {
		if err := region.Validate(img.Cols(), img.Rows()); err != nil {
			return gocv.NewMat(), err
		}
	}

	output := img.Clone()
	for _, region := range regions {
		if err := blurInPlace(&output, region); err != nil {
			output.Close()
			return gocv.NewMat(), err
		}
	}
	return output, nil
}

// blurInPlace blurs the region view of img directly, so the result lands in
// img without a copy back.
func blurInPlace(img *gocv.Mat, region Region) error {
	roi := img.Region(region.Rect())
	defer roi.Close()

	if err := gocv.GaussianBlur(roi, &roi, KernelSize(region), 0, 0, gocv.BorderDefault); err != nil {
		return fmt.Errorf("blur region %s: %w", region, err)
	}
	return nil
}
