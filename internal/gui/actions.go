package gui

// Actions are the editor commands shared by the toolbar and the main menu.
type Actions struct {
	Open      func()
	Capture   func()
	Save      func()
	Channel   func()
	Resize    func()
	Fit       func()
	Border    func()
	Rectangle func()
	BlurFaces func()
	Reset     func()
	Quit      func()
}

// invoke guards against actions left unset.
func invoke(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
