// Image display area

package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// ImageCanvas shows the current image at its real pixel size inside a
// scrollable viewport.
type ImageCanvas struct {
	logger logrus.FieldLogger

	image       *canvas.Image
	placeholder *widget.Label
	scroll      *container.Scroll
	info        *widget.Label
	container   *fyne.Container
}

func NewImageCanvas(logger logrus.FieldLogger) *ImageCanvas {
	ic := &ImageCanvas{logger: logger}
	ic.initializeUI()
	return ic
}

func (ic *ImageCanvas) initializeUI() {
	ic.image = canvas.NewImageFromImage(nil)
	ic.image.FillMode = canvas.ImageFillOriginal
	ic.image.ScaleMode = canvas.ImageScalePixels
	ic.image.Hide()

	ic.placeholder = widget.NewLabelWithStyle("Load an image or capture one from the camera",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	ic.scroll = container.NewScroll(container.NewStack(container.NewCenter(ic.placeholder), ic.image))
	ic.info = widget.NewLabel("")

	ic.container = container.NewBorder(nil, ic.info, nil, nil, ic.scroll)
}

func (ic *ImageCanvas) GetContainer() fyne.CanvasObject {
	return ic.container
}

// SetImage displays img and its dimensions.
func (ic *ImageCanvas) SetImage(img image.Image) {
	bounds := img.Bounds()
	ic.image.Image = img
	ic.image.Show()
	ic.placeholder.Hide()
	ic.image.Refresh()
	ic.scroll.Refresh()
	ic.info.SetText(fmt.Sprintf("%d × %d px", bounds.Dx(), bounds.Dy()))

	ic.logger.WithFields(logrus.Fields{
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	}).Debug("Canvas updated")
}

// Clear removes the displayed image.
func (ic *ImageCanvas) Clear() {
	ic.image.Image = nil
	ic.image.Hide()
	ic.placeholder.Show()
	ic.info.SetText("")
	ic.scroll.Refresh()
}

// Image returns the image on display, or nil.
func (ic *ImageCanvas) Image() image.Image {
	return ic.image.Image
}

// ViewportSize returns the visible area in whole units, at least 1x1.
func (ic *ImageCanvas) ViewportSize() (int, int) {
	size := ic.scroll.Size()
	return max(int(size.Width), 1), max(int(size.Height), 1)
}
