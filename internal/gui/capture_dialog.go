package gui

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/capture"
)

// captureImage opens the configured camera and shows a live preview until
// the user captures a frame or cancels. The device is released on every path.
func (a *Application) captureImage() {
	if a.stopCapture != nil {
		return
	}

	source, err := a.openCamera(a.cfg.CameraDevice)
	if err != nil {
		a.showError("Camera Error", err)
		return
	}

	session := capture.NewSession(source, a.logger.WithField("device", a.cfg.CameraDevice))

	var blurOn atomic.Bool
	if a.detector != nil {
		session.SetFilter(func(frame gocv.Mat) (gocv.Mat, error) {
			if !blurOn.Load() {
				return frame.Clone(), nil
			}
			return a.detector.BlurFaces(frame)
		})
	}

	preview := canvas.NewImageFromImage(nil)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(640, 480))

	blurCheck := widget.NewCheck("Blur faces", func(on bool) { blurOn.Store(on) })
	if a.detector == nil {
		blurCheck.Disable()
	}

	decisions := make(chan capture.Decision, 1)
	decide := func(d capture.Decision) {
		select {
		case decisions <- d:
		default:
		}
	}

	content := container.NewBorder(nil, blurCheck, nil, nil, preview)
	confirm := dialog.NewCustomConfirm("Camera", "Capture", "Cancel", content, func(ok bool) {
		if ok {
			decide(capture.Confirm)
			return
		}
		decide(capture.Cancel)
	}, a.window)
	confirm.Show()

	ctx, cancel := context.WithCancel(context.Background())
	a.stopCapture = cancel
	a.setStatus("Camera preview running")

	interval := a.cfg.FrameInterval
	go func() {
		frame, err := session.Run(ctx, func(shown gocv.Mat) capture.Decision {
			if img, err := shown.ToImage(); err == nil {
				fyne.Do(func() {
					preview.Image = img
					preview.Refresh()
				})
			}

			select {
			case d := <-decisions:
				return d
			case <-ctx.Done():
				return capture.Cancel
			case <-time.After(interval):
				return capture.Continue
			}
		})

		fyne.Do(func() {
			cancel()
			a.stopCapture = nil
			confirm.Hide()

			switch {
			case err == nil:
				a.acceptFrame(frame)
			case errors.Is(err, capture.ErrCancelled):
				frame.Close()
				a.setStatus("Capture cancelled")
			default:
				frame.Close()
				a.showError("Capture Failed", err)
			}
		})
	}()
}
