// Package core holds the image being edited and the one it started from,
// and the Editor that applies operations to them.
package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gocv.io/x/gocv"
)

// MaxDimension is the largest width or height the store accepts.
const MaxDimension = 16384

// SourceCamera labels images that came from a capture device.
const SourceCamera = "camera"

// Decoder turns encoded bytes into an image.
type Decoder interface {
	Decode(data []byte) (gocv.Mat, error)
}

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Type     gocv.MatType
	Format   string
	Size     int64 // encoded size in bytes, zero for captured frames
}

// ImageStore holds the current image and the original it was derived from.
// Every image going in or out is cloned; callers own what they receive and
// must Close it.
type ImageStore struct {
	mu       sync.RWMutex
	decoder  Decoder
	original gocv.Mat
	current  gocv.Mat
	hasImage bool
	source   string
	metadata ImageMetadata
}

// NewImageStore creates an empty store that decodes with decoder.
func NewImageStore(decoder Decoder) *ImageStore {
	return &ImageStore{
		decoder:  decoder,
		original: gocv.NewMat(),
		current:  gocv.NewMat(),
	}
}

// Load decodes data and makes it both the current and the original image.
// On failure the store is left as it was.
func (s *ImageStore) Load(data []byte, source string) error {
	if s.decoder == nil {
		return fmt.Errorf("%w: no decoder configured", ErrDecodeFailure)
	}
	mat, err := s.decoder.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeFailure, source, err)
	}
	defer mat.Close()

	if err := ValidateImage(mat); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecodeFailure, source, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOriginal(mat, source, formatFromPath(source), int64(len(data)))
	return nil
}

// Capture makes an already decoded frame both the current and the original image.
func (s *ImageStore) Capture(frame gocv.Mat) error {
	if err := ValidateImage(frame); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOriginal(frame, SourceCamera, SourceCamera, 0)
	return nil
}

func (s *ImageStore) setOriginal(mat gocv.Mat, source, format string, size int64) {
	s.original.Close()
	s.current.Close()

	s.original = mat.Clone()
	s.current = mat.Clone()
	s.hasImage = true
	s.source = source
	s.metadata = ImageMetadata{
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Type:     mat.Type(),
		Format:   format,
		Size:     size,
	}
}

// Replace sets the current image; the original is untouched.
func (s *ImageStore) Replace(mat gocv.Mat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasImage {
		return ErrNoImageLoaded
	}
	if err := ValidateImage(mat); err != nil {
		return err
	}

	s.current.Close()
	s.current = mat.Clone()
	return nil
}

// Reset makes the current image a copy of the original and returns a copy of it.
func (s *ImageStore) Reset() (gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasImage || s.original.Empty() {
		return gocv.NewMat(), ErrNoOriginal
	}

	s.current.Close()
	s.current = s.original.Clone()
	return s.current.Clone(), nil
}

// Current returns a copy of the current image, or an empty Mat.
func (s *ImageStore) Current() gocv.Mat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasImage {
		return gocv.NewMat()
	}
	return s.current.Clone()
}

// Original returns a copy of the original image, or an empty Mat.
func (s *ImageStore) Original() gocv.Mat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasImage {
		return gocv.NewMat()
	}
	return s.original.Clone()
}

// HasImage returns true once an image has been loaded or captured.
func (s *ImageStore) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasImage
}

// Metadata describes the original image.
func (s *ImageStore) Metadata() ImageMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata
}

// CurrentSize returns the dimensions of the current image.
func (s *ImageStore) CurrentSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasImage {
		return 0, 0
	}
	return s.current.Cols(), s.current.Rows()
}

// Source returns the path or label the original came from.
func (s *ImageStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Close releases both images and empties the store.
func (s *ImageStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.original.Close()
	s.current.Close()
	s.original = gocv.NewMat()
	s.current = gocv.NewMat()
	s.hasImage = false
	s.source = ""
	s.metadata = ImageMetadata{}
}

func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

// ValidateImage checks the invariants every stored image satisfies.
func ValidateImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("%w: image is empty", ErrInvalidImage)
	}

	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("%w: invalid dimensions: %dx%d", ErrInvalidImage, mat.Cols(), mat.Rows())
	}

	channels := mat.Channels()
	if channels != 1 && channels != 3 {
		return fmt.Errorf("%w: unsupported channel count: %d", ErrInvalidImage, channels)
	}

	if mat.Cols() > MaxDimension || mat.Rows() > MaxDimension {
		return fmt.Errorf("%w: image too large: %dx%d (max: %d)", ErrInvalidImage, mat.Cols(), mat.Rows(), MaxDimension)
	}

	return nil
}
