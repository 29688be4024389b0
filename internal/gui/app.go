// Package gui is the Fyne front end: main window, toolbar, menu, parameter
// dialogs and the camera preview.
package gui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/capture"
	"basic-image-editor/internal/config"
	"basic-image-editor/internal/core"
	"basic-image-editor/internal/detect"
	"basic-image-editor/internal/io"
	"basic-image-editor/internal/transform"
)

// Application represents the main window and the editor behind it.
type Application struct {
	app     fyne.App
	window  fyne.Window
	logger  logrus.FieldLogger
	cfg     config.Config
	version string

	// Core components
	editor     *core.Editor
	loader     *io.ImageLoader
	detector   *detect.FaceDetector
	openCamera capture.Opener

	// GUI components
	canvas      *ImageCanvas
	toolbar     *Toolbar
	infoPanel   *InfoPanel
	menuHandler *MenuHandler
	status      *widget.Label

	stopCapture context.CancelFunc
}

func NewApplication(app fyne.App, cfg config.Config, logger logrus.FieldLogger, version string) *Application {
	window := app.NewWindow("Basic Image Editor")
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	a := &Application{
		app:        app,
		window:     window,
		logger:     logger,
		cfg:        cfg,
		version:    version,
		openCamera: capture.OpenDevice,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()

	return a
}

func (a *Application) initializeCore() {
	a.loader = io.NewImageLoader(a.logger)
	a.editor = core.NewEditor(core.NewImageStore(a.loader), a.loader, a.logger)

	detector, err := detect.NewFaceDetector(a.cfg.CascadePath, detect.DefaultParams(), a.logger)
	if err != nil {
		a.logger.WithError(err).Warn("Face blurring disabled")
		return
	}
	a.detector = detector
}

func (a *Application) actions() Actions {
	return Actions{
		Open:    a.openImage,
		Capture: a.captureImage,
		Save:    a.saveImage,
		Channel: func() { a.promptOperation("channel", "Show Channel") },
		Resize:  func() { a.promptOperation("resize", "Resize") },
		Fit:     a.fitToWindow,
		Border:  func() { a.promptOperation("border", "Add Border") },
		Rectangle: func() {
			a.promptOperation("rectangle", "Draw Rectangle")
		},
		BlurFaces: a.blurFaces,
		Reset:     a.reset,
		Quit:      a.window.Close,
	}
}

func (a *Application) initializeGUI() {
	actions := a.actions()
	a.canvas = NewImageCanvas(a.logger)
	a.toolbar = NewToolbar(actions)
	a.toolbar.SetFaceBlurAvailable(a.detector != nil)
	a.infoPanel = NewInfoPanel()
	a.menuHandler = NewMenuHandler(a.window, actions, a.version)
	a.status = widget.NewLabel("Ready")
}

func (a *Application) setupLayout() {
	content := container.NewBorder(
		container.NewVBox(a.toolbar.GetContainer(), widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), a.status),
		nil,
		container.NewVScroll(a.infoPanel.GetContainer()),
		a.canvas.GetContainer(),
	)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(content)
	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.window.Close()
	})
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")
	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	a.logger.Info("Cleaning up application resources")
	if a.stopCapture != nil {
		a.stopCapture()
	}
	if a.detector != nil {
		a.detector.Close()
	}
	a.editor.Close()
}

func (a *Application) openImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.LoadImageFromPath(reader.URI().Path())
	}, a.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.ReadableExtensions()))
	fileDialog.Show()
}

// LoadImageFromPath loads path as the new original and shows it.
func (a *Application) LoadImageFromPath(path string) {
	if err := a.editor.LoadFile(path); err != nil {
		a.showError("Failed to Load Image", err)
		return
	}
	a.refresh(fmt.Sprintf("Loaded %s", path))
}

func (a *Application) saveImage() {
	if !a.editor.HasImage() {
		a.showError("No Image", core.ErrNoImageLoaded)
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.editor.SaveFile(path); err != nil {
			a.showError("Failed to Save Image", err)
			return
		}
		a.setStatus(fmt.Sprintf("Saved %s", path))
	}, a.window)

	fileDialog.SetFileName("edited.png")
	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.WritableExtensions()))
	fileDialog.Show()
}

// promptOperation shows the parameter dialog for a registered operation,
// with ranges taken from the current image.
func (a *Application) promptOperation(name, title string) {
	infos, err := a.editor.Parameters(name)
	if err != nil {
		a.showError(title, err)
		return
	}
	if name == "rectangle" {
		infos = a.withRectangleDefaults(infos)
	}

	showParameterDialog(title, infos, a.window,
		func(params transform.Params) { a.ApplyOperation(name, params) },
		func(err error) { a.showError(title, err) })
}

func (a *Application) withRectangleDefaults(infos []transform.ParameterInfo) []transform.ParameterInfo {
	for i := range infos {
		switch infos[i].Name {
		case "color":
			infos[i].Default = a.cfg.RectangleColor
		case "line_width":
			infos[i].Default = a.cfg.RectangleLineWidth
		}
	}
	return infos
}

// ApplyOperation runs a registered operation and redisplays the result.
func (a *Application) ApplyOperation(name string, params transform.Params) {
	if err := a.editor.Apply(name, params); err != nil {
		a.showError("Operation Failed", err)
		return
	}
	a.refresh(fmt.Sprintf("Applied %s", transform.FormatSpec(name, params)))
}

func (a *Application) fitToWindow() {
	width, height := a.canvas.ViewportSize()
	if err := a.editor.FitToBounds(width, height); err != nil {
		a.showError("Fit to Window", err)
		return
	}
	a.refresh(fmt.Sprintf("Fitted to %d × %d", width, height))
}

func (a *Application) blurFaces() {
	if a.detector == nil {
		a.showError("Blur Faces", fmt.Errorf("face detection unavailable: cannot load %s", a.cfg.CascadePath))
		return
	}
	if err := a.editor.ApplyFunc("blur_faces", a.detector.BlurFaces); err != nil {
		a.showError("Blur Faces", err)
		return
	}
	a.refresh("Blurred detected faces")
}

func (a *Application) reset() {
	if err := a.editor.Reset(); err != nil {
		a.showError("Reset", err)
		return
	}
	a.refresh("Reset to original image")
}

// acceptFrame stores a confirmed camera frame and takes ownership of it.
func (a *Application) acceptFrame(frame gocv.Mat) {
	defer frame.Close()
	if err := a.editor.Capture(frame); err != nil {
		a.showError("Capture Failed", err)
		return
	}
	a.refresh("Captured frame from camera")
}

func (a *Application) refresh(message string) {
	img, err := a.editor.Preview()
	if err != nil {
		a.canvas.Clear()
		a.infoPanel.Clear()
		a.toolbar.SetImageLoaded(false)
		a.showError("Display Error", err)
		return
	}
	a.canvas.SetImage(img)
	a.toolbar.SetImageLoaded(true)

	store := a.editor.Store()
	width, height := store.CurrentSize()
	a.infoPanel.Update(store.Metadata(), store.Source(), width, height, message)
	a.setStatus(message)
}

func (a *Application) setStatus(message string) {
	a.status.SetText(message)
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	a.setStatus(fmt.Sprintf("Error: %s", userMessage(err)))
	dialog.ShowError(fmt.Errorf("%s: %s", title, userMessage(err)), a.window)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrNoImageLoaded):
		return "load or capture an image first"
	case errors.Is(err, core.ErrNoOriginal):
		return "there is no original image to reset to"
	case errors.Is(err, capture.ErrDeviceUnavailable):
		return "the camera is not available"
	}
	return err.Error()
}
