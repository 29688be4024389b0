// Side panel describing the image being edited

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"basic-image-editor/internal/core"
)

// InfoPanel shows the metadata of the loaded image and the last operation.
type InfoPanel struct {
	container *fyne.Container

	imageCard *widget.Card
	form      *widget.Form

	source     *widget.Label
	format     *widget.Label
	original   *widget.Label
	current    *widget.Label
	channels   *widget.Label
	lastAction *widget.Label
}

func NewInfoPanel() *InfoPanel {
	panel := &InfoPanel{}
	panel.initializeUI()
	return panel
}

func (ip *InfoPanel) initializeUI() {
	ip.source = widget.NewLabel("-")
	ip.source.Wrapping = fyne.TextWrapBreak
	ip.format = widget.NewLabel("-")
	ip.original = widget.NewLabel("-")
	ip.current = widget.NewLabel("-")
	ip.channels = widget.NewLabel("-")
	ip.lastAction = widget.NewLabel("-")
	ip.lastAction.Wrapping = fyne.TextWrapWord

	ip.form = widget.NewForm(
		widget.NewFormItem("Source", ip.source),
		widget.NewFormItem("Format", ip.format),
		widget.NewFormItem("Original", ip.original),
		widget.NewFormItem("Current", ip.current),
		widget.NewFormItem("Channels", ip.channels),
		widget.NewFormItem("Last", ip.lastAction),
	)
	ip.imageCard = widget.NewCard("Image", "", ip.form)

	ip.container = container.NewVBox(ip.imageCard)
}

func (ip *InfoPanel) GetContainer() fyne.CanvasObject {
	return ip.container
}

// Update shows the original metadata next to the current size.
func (ip *InfoPanel) Update(meta core.ImageMetadata, source string, width, height int, action string) {
	ip.source.SetText(source)
	ip.format.SetText(meta.Format)
	ip.original.SetText(fmt.Sprintf("%d × %d", meta.Width, meta.Height))
	ip.current.SetText(fmt.Sprintf("%d × %d", width, height))
	ip.channels.SetText(fmt.Sprintf("%d", meta.Channels))
	ip.lastAction.SetText(action)
}

func (ip *InfoPanel) Clear() {
	for _, label := range []*widget.Label{ip.source, ip.format, ip.original, ip.current, ip.channels, ip.lastAction} {
		label.SetText("-")
	}
}
