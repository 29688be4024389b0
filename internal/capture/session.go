// Package capture runs scoped webcam sessions: open a device, poll frames
// until the caller confirms or cancels, and always release the device.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var (
	// ErrDeviceUnavailable is returned when the device cannot be opened or a frame read fails.
	ErrDeviceUnavailable = errors.New("capture device unavailable")
	// ErrCancelled is returned when the user or the context ends a session without confirming.
	ErrCancelled = errors.New("capture cancelled")
)

// FrameSource yields decoded frames. *gocv.VideoCapture satisfies it.
type FrameSource interface {
	Read(m *gocv.Mat) bool
	Close() error
}

// Opener opens a frame source by device id.
type Opener func(device int) (FrameSource, error)

// Decision is what the frame callback wants the loop to do next.
type Decision int

const (
	Continue Decision = iota
	Confirm
	Cancel
)

// FrameFunc post-processes a frame before it is previewed. It must not
// close its input and returns a new Mat owned by the caller.
type FrameFunc func(frame gocv.Mat) (gocv.Mat, error)

// PreviewFunc sees each frame and decides whether the session goes on. The
// frame is only valid for the duration of the call.
type PreviewFunc func(frame gocv.Mat) Decision

// OpenDevice opens a camera with OpenCV.
func OpenDevice(device int) (FrameSource, error) {
	webcam, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, device, err)
	}
	if !webcam.IsOpened() {
		webcam.Close()
		return nil, fmt.Errorf("%w: device %d did not open", ErrDeviceUnavailable, device)
	}
	return webcam, nil
}

// Session polls one frame source until a decision ends it.
type Session struct {
	source FrameSource
	filter FrameFunc
	logger logrus.FieldLogger
	frames int
}

// NewSession takes ownership of source; it is closed when Run returns.
func NewSession(source FrameSource, logger logrus.FieldLogger) *Session {
	return &Session{
		source: source,
		logger: logger,
	}
}

// SetFilter installs a per-frame transformation applied before preview.
// The confirmed frame is the filtered one.
func (s *Session) SetFilter(filter FrameFunc) {
	s.filter = filter
}

// Frames returns how many frames were read.
func (s *Session) Frames() int {
	return s.frames
}

// Run reads frames and passes them to preview until it returns Confirm or
// Cancel, a read fails, or ctx is done. On Confirm the returned Mat is owned
// by the caller. The source is closed on every path.
func (s *Session) Run(ctx context.Context, preview PreviewFunc) (gocv.Mat, error) {
	defer func() {
		if err := s.source.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to release capture device")
		}
		s.logger.WithField("frames", s.frames).Debug("Capture device released")
	}()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			s.logger.WithError(ctx.Err()).Info("Capture session stopped")
			return gocv.NewMat(), fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		default:
		}

		if ok := s.source.Read(&frame); !ok || frame.Empty() {
			s.logger.WithField("frames", s.frames).Error("Failed to read frame")
			return gocv.NewMat(), fmt.Errorf("%w: frame read failed", ErrDeviceUnavailable)
		}
		s.frames++

		shown, owned, err := s.filtered(frame)
		if err != nil {
			return gocv.NewMat(), err
		}

		switch preview(shown) {
		case Confirm:
			s.logger.WithFields(logrus.Fields{
				"frames": s.frames,
				"width":  shown.Cols(),
				"height": shown.Rows(),
			}).Info("Frame confirmed")
			if !owned {
				return frame.Clone(), nil
			}
			return shown, nil
		case Cancel:
			if owned {
				shown.Close()
			}
			s.logger.WithField("frames", s.frames).Info("Capture cancelled")
			return gocv.NewMat(), ErrCancelled
		}
		if owned {
			shown.Close()
		}
	}
}

// filtered reports whether the returned Mat is a new one the loop must close.
func (s *Session) filtered(frame gocv.Mat) (gocv.Mat, bool, error) {
	if s.filter == nil {
		return frame, false, nil
	}
	out, err := s.filter(frame)
	if err != nil {
		s.logger.WithError(err).Error("Frame filter failed")
		return gocv.NewMat(), false, fmt.Errorf("frame filter: %w", err)
	}
	return out, true, nil
}
