package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MenuHandler builds the main menu from the shared actions.
type MenuHandler struct {
	window  fyne.Window
	actions Actions
	version string
}

func NewMenuHandler(window fyne.Window, actions Actions, version string) *MenuHandler {
	return &MenuHandler{
		window:  window,
		actions: actions,
		version: version,
	}
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", invoke(mh.actions.Open)),
		fyne.NewMenuItem("Capture from Camera...", invoke(mh.actions.Capture)),
		fyne.NewMenuItem("Save Image...", invoke(mh.actions.Save)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", invoke(mh.actions.Quit)),
	)

	imageMenu := fyne.NewMenu("Image",
		fyne.NewMenuItem("Show Channel...", invoke(mh.actions.Channel)),
		fyne.NewMenuItem("Resize...", invoke(mh.actions.Resize)),
		fyne.NewMenuItem("Fit to Window", invoke(mh.actions.Fit)),
		fyne.NewMenuItem("Add Border...", invoke(mh.actions.Border)),
		fyne.NewMenuItem("Draw Rectangle...", invoke(mh.actions.Rectangle)),
		fyne.NewMenuItem("Blur Faces", invoke(mh.actions.BlurFaces)),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset to Original", invoke(mh.actions.Reset)),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, imageMenu, helpMenu)
}

func (mh *MenuHandler) showAbout() {
	content := container.NewVBox(
		widget.NewLabel("Basic Image Editor "+mh.version),
		widget.NewSeparator(),
		widget.NewLabel("Load or capture an image, then view a channel,"),
		widget.NewLabel("resize, add a border, draw a rectangle or blur faces."),
		widget.NewLabel("Reset returns to the last loaded or captured image."),
		widget.NewSeparator(),
		widget.NewLabel("Built with Go, Fyne and OpenCV"),
	)

	aboutDialog := dialog.NewCustom("About", "Close", content, mh.window)
	aboutDialog.Resize(fyne.NewSize(400, 260))
	aboutDialog.Show()
}
