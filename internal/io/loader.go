// Package io reads, decodes, encodes and saves image files.
package io

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
	_ "golang.org/x/image/webp"

	"basic-image-editor/internal/core"
)

// ErrUnsupportedFormat is returned for paths outside the extension allow-list.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var readableFormats = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".gif", ".webp"}

var writableFormats = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff"}

// ImageLoader handles image file operations
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// ReadFile returns the raw bytes of an image file with a supported extension.
func (il *ImageLoader) ReadFile(path string) ([]byte, error) {
	if !IsReadable(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	il.logger.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("Image file read")
	return data, nil
}

// Decode turns encoded bytes into a 3-channel BGR image. OpenCV is tried
// first; formats it cannot read go through the pure Go decoders with EXIF
// orientation applied.
func (il *ImageLoader) Decode(data []byte) (gocv.Mat, error) {
	if len(data) == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: no data", core.ErrDecodeFailure)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	mat.Close()

	img, fallbackErr := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if fallbackErr != nil {
		il.logger.WithFields(logrus.Fields{
			"bytes":  len(data),
			"opencv": err,
		}).WithError(fallbackErr).Debug("Image decoding failed")
		return gocv.NewMat(), fmt.Errorf("%w: %v", core.ErrDecodeFailure, fallbackErr)
	}

	mat, err = gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("%w: %v", core.ErrDecodeFailure, err)
	}
	il.logger.WithField("bounds", img.Bounds().String()).Debug("Image decoded without OpenCV")
	return mat, nil
}

// Encode compresses mat in the format named by ext (".png", ".jpg", ...).
func (il *ImageLoader) Encode(mat gocv.Mat, ext string) ([]byte, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("cannot encode empty image")
	}
	ext = strings.ToLower(ext)
	if !contains(writableFormats, ext) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	buf, err := gocv.IMEncode(gocv.FileExt(ext), mat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// SaveImage writes mat to path in the format implied by its extension.
func (il *ImageLoader) SaveImage(mat gocv.Mat, path string) error {
	il.logger.WithField("path", path).Debug("Saving image")

	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}

	if !IsWritable(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}

	il.logger.WithFields(logrus.Fields{
		"path":     path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image saved successfully")
	return nil
}

// ReadableExtensions lists the extensions offered in the open dialog.
func ReadableExtensions() []string {
	return append([]string(nil), readableFormats...)
}

// WritableExtensions lists the extensions offered in the save dialog.
func WritableExtensions() []string {
	return append([]string(nil), writableFormats...)
}

// IsReadable reports whether path has an extension the loader can open.
func IsReadable(path string) bool {
	return contains(readableFormats, strings.ToLower(filepath.Ext(path)))
}

// IsWritable reports whether path has an extension the loader can save.
func IsWritable(path string) bool {
	return contains(writableFormats, strings.ToLower(filepath.Ext(path)))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
