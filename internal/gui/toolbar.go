package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds one button per editor command. Buttons that need an image
// stay disabled until one is loaded.
type Toolbar struct {
	container *fyne.Container

	openBtn      *widget.Button
	captureBtn   *widget.Button
	saveBtn      *widget.Button
	channelBtn   *widget.Button
	resizeBtn    *widget.Button
	fitBtn       *widget.Button
	borderBtn    *widget.Button
	rectangleBtn *widget.Button
	blurBtn      *widget.Button
	resetBtn     *widget.Button

	imageButtons []*widget.Button
}

func NewToolbar(actions Actions) *Toolbar {
	tb := &Toolbar{}
	tb.initializeUI(actions)
	tb.SetImageLoaded(false)
	return tb
}

func (tb *Toolbar) initializeUI(actions Actions) {
	tb.openBtn = widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), invoke(actions.Open))
	tb.openBtn.Importance = widget.HighImportance
	tb.captureBtn = widget.NewButtonWithIcon("Capture", theme.MediaPhotoIcon(), invoke(actions.Capture))
	tb.saveBtn = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), invoke(actions.Save))

	tb.channelBtn = widget.NewButtonWithIcon("Channel", theme.ColorPaletteIcon(), invoke(actions.Channel))
	tb.resizeBtn = widget.NewButtonWithIcon("Resize", theme.ViewRestoreIcon(), invoke(actions.Resize))
	tb.fitBtn = widget.NewButtonWithIcon("Fit", theme.ZoomFitIcon(), invoke(actions.Fit))
	tb.borderBtn = widget.NewButtonWithIcon("Border", theme.ViewFullScreenIcon(), invoke(actions.Border))
	tb.rectangleBtn = widget.NewButtonWithIcon("Rectangle", theme.CheckButtonIcon(), invoke(actions.Rectangle))
	tb.blurBtn = widget.NewButtonWithIcon("Blur Faces", theme.VisibilityOffIcon(), invoke(actions.BlurFaces))

	tb.resetBtn = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), invoke(actions.Reset))
	tb.resetBtn.Importance = widget.WarningImportance

	tb.imageButtons = []*widget.Button{
		tb.saveBtn, tb.channelBtn, tb.resizeBtn, tb.fitBtn,
		tb.borderBtn, tb.rectangleBtn, tb.blurBtn, tb.resetBtn,
	}

	tb.container = container.NewHBox(
		tb.openBtn,
		tb.captureBtn,
		tb.saveBtn,
		widget.NewSeparator(),
		tb.channelBtn,
		tb.resizeBtn,
		tb.fitBtn,
		tb.borderBtn,
		tb.rectangleBtn,
		tb.blurBtn,
		widget.NewSeparator(),
		tb.resetBtn,
	)
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}

// SetImageLoaded enables or disables the buttons that operate on an image.
func (tb *Toolbar) SetImageLoaded(loaded bool) {
	for _, btn := range tb.imageButtons {
		if loaded {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// SetFaceBlurAvailable disables face blurring when no cascade could be loaded.
func (tb *Toolbar) SetFaceBlurAvailable(available bool) {
	if !available {
		tb.blurBtn.Disable()
		tb.imageButtons = removeButton(tb.imageButtons, tb.blurBtn)
	}
}

func removeButton(buttons []*widget.Button, target *widget.Button) []*widget.Button {
	kept := buttons[:0]
	for _, btn := range buttons {
		if btn != target {
			kept = append(kept, btn)
		}
	}
	return kept
}
