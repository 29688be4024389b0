// Editor is the call boundary between UI events and the image core

package core

import (
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/transform"
)

// FileStore reads encoded images from disk and writes them back.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	SaveImage(mat gocv.Mat, path string) error
}

// TransformFunc produces a new image from the current one.
type TransformFunc func(current gocv.Mat) (gocv.Mat, error)

// Editor runs one operation at a time against an ImageStore. A failed
// operation leaves the store exactly as it was.
type Editor struct {
	store  *ImageStore
	files  FileStore
	logger logrus.FieldLogger
}

func NewEditor(store *ImageStore, files FileStore, logger logrus.FieldLogger) *Editor {
	return &Editor{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// Store exposes the underlying image store.
func (e *Editor) Store() *ImageStore {
	return e.store
}

// HasImage reports whether there is anything to edit.
func (e *Editor) HasImage() bool {
	return e.store.HasImage()
}

// LoadFile reads path and loads it as the new original.
func (e *Editor) LoadFile(path string) error {
	log := e.logger.WithField("path", path)
	log.Debug("Loading image file")

	data, err := e.files.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to read image file")
		return err
	}
	return e.LoadBytes(data, path)
}

// LoadBytes decodes data as the new original.
func (e *Editor) LoadBytes(data []byte, source string) error {
	if err := e.store.Load(data, source); err != nil {
		e.logger.WithError(err).WithField("source", source).Error("Failed to load image")
		return err
	}

	meta := e.store.Metadata()
	e.logger.WithFields(logrus.Fields{
		"source":   source,
		"width":    meta.Width,
		"height":   meta.Height,
		"channels": meta.Channels,
		"bytes":    meta.Size,
	}).Info("Image loaded")
	return nil
}

// Capture stores a camera frame as the new original.
func (e *Editor) Capture(frame gocv.Mat) error {
	if err := e.store.Capture(frame); err != nil {
		e.logger.WithError(err).Error("Failed to store captured frame")
		return err
	}

	e.logger.WithFields(logrus.Fields{
		"width":  frame.Cols(),
		"height": frame.Rows(),
	}).Info("Frame captured")
	return nil
}

// Apply runs a registered operation on the current image.
func (e *Editor) Apply(name string, params transform.Params) error {
	return e.ApplyFunc(name, func(current gocv.Mat) (gocv.Mat, error) {
		return transform.Apply(name, current, params)
	})
}

// ApplyFunc runs fn on a copy of the current image and commits the result.
func (e *Editor) ApplyFunc(label string, fn TransformFunc) error {
	log := e.logger.WithField("operation", label)

	if !e.store.HasImage() {
		log.Warn("Operation requested without an image")
		return ErrNoImageLoaded
	}

	start := time.Now()
	current := e.store.Current()
	defer current.Close()

	result, err := fn(current)
	if err != nil {
		if !result.Empty() {
			result.Close()
		}
		log.WithError(err).Error("Operation failed")
		return fmt.Errorf("%s: %w", label, err)
	}
	defer result.Close()

	if err := e.store.Replace(result); err != nil {
		log.WithError(err).Error("Operation produced an unusable image")
		return fmt.Errorf("%s: %w", label, err)
	}

	log.WithFields(logrus.Fields{
		"input_size":  fmt.Sprintf("%dx%d", current.Cols(), current.Rows()),
		"output_size": fmt.Sprintf("%dx%d", result.Cols(), result.Rows()),
		"duration":    time.Since(start),
	}).Info("Operation applied")
	return nil
}

// FitToBounds scales the current image into a bounding box.
func (e *Editor) FitToBounds(width, height int) error {
	return e.Apply("fit", transform.Params{"width": width, "height": height})
}

// Reset restores the current image from the original.
func (e *Editor) Reset() error {
	restored, err := e.store.Reset()
	if err != nil {
		e.logger.WithError(err).Warn("Reset requested without an original")
		return err
	}
	defer restored.Close()

	e.logger.WithFields(logrus.Fields{
		"width":  restored.Cols(),
		"height": restored.Rows(),
	}).Info("Reset to original image")
	return nil
}

// Parameters describes an operation's arguments for the current image size.
func (e *Editor) Parameters(name string) ([]transform.ParameterInfo, error) {
	op, ok := transform.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", transform.ErrUnknownOperation, name)
	}
	if !e.store.HasImage() {
		return nil, ErrNoImageLoaded
	}
	width, height := e.store.CurrentSize()
	return op.Parameters(width, height), nil
}

// Preview converts the current image for display.
func (e *Editor) Preview() (image.Image, error) {
	if !e.store.HasImage() {
		return nil, ErrNoImageLoaded
	}
	current := e.store.Current()
	defer current.Close()

	img, err := current.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert preview: %w", err)
	}
	return img, nil
}

// SaveFile writes the current image to path.
func (e *Editor) SaveFile(path string) error {
	if !e.store.HasImage() {
		return ErrNoImageLoaded
	}
	current := e.store.Current()
	defer current.Close()

	if err := e.files.SaveImage(current, path); err != nil {
		e.logger.WithError(err).WithField("path", path).Error("Failed to save image")
		return err
	}
	e.logger.WithField("path", path).Info("Image saved")
	return nil
}

// Close releases the stored images.
func (e *Editor) Close() {
	e.store.Close()
}
