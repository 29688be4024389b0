// Package detect finds faces with an OpenCV Haar cascade.
package detect

import (
	"fmt"
	"image"
	"sync"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/transform"
)

// Params tunes the cascade search.
type Params struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      image.Point
}

// DefaultParams favours speed on live video.
func DefaultParams() Params {
	return Params{
		ScaleFactor:  1.5,
		MinNeighbors: 5,
		MinSize:      image.Pt(20, 20),
	}
}

// FaceDetector wraps a loaded cascade classifier. Calls are serialized so
// the capture loop and the editor can share one detector.
type FaceDetector struct {
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
	params     Params
	logger     logrus.FieldLogger
}

// NewFaceDetector loads the cascade XML at path.
func NewFaceDetector(path string, params Params, logger logrus.FieldLogger) (*FaceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("error reading cascade file: %s", path)
	}

	logger.WithField("cascade", path).Debug("Face cascade loaded")
	return &FaceDetector{
		classifier: classifier,
		params:     params,
		logger:     logger,
	}, nil
}

// Detect returns face rectangles clipped to the image.
func (d *FaceDetector) Detect(img gocv.Mat) []image.Rectangle {
	if img.Empty() {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	found := d.classifier.DetectMultiScaleWithParams(img,
		d.params.ScaleFactor, d.params.MinNeighbors, 0, d.params.MinSize, image.Point{})
	return ClipRects(found, img.Cols(), img.Rows())
}

// BlurFaces returns a copy of img with every detected face blurred.
func (d *FaceDetector) BlurFaces(img gocv.Mat) (gocv.Mat, error) {
	rects := d.Detect(img)
	d.logger.WithField("faces", len(rects)).Debug("Faces detected")
	return transform.BlurRegions(img, ToRegions(rects))
}

// Close releases the classifier.
func (d *FaceDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classifier.Close()
}

// ClipRects intersects rects with a width x height image and drops any
// that end up empty.
func ClipRects(rects []image.Rectangle, width, height int) []image.Rectangle {
	bounds := image.Rect(0, 0, width, height)
	clipped := make([]image.Rectangle, 0, len(rects))
	for _, r := range rects {
		r = r.Canon().Intersect(bounds)
		if !r.Empty() {
			clipped = append(clipped, r)
		}
	}
	return clipped
}

// ToRegions converts detector hits to blur regions.
func ToRegions(rects []image.Rectangle) []transform.Region {
	regions := make([]transform.Region, len(rects))
	for i, r := range rects {
		regions[i] = transform.RegionFromRect(r)
	}
	return regions
}
