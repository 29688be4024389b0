// Parameter dialogs generated from operation descriptors

package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"basic-image-editor/internal/transform"
)

// parameterForm builds one input per parameter and validates it against
// the descriptor's range before the operation ever runs.
type parameterForm struct {
	infos  []transform.ParameterInfo
	values []func() string
	items  []*widget.FormItem
}

func newParameterForm(infos []transform.ParameterInfo) *parameterForm {
	pf := &parameterForm{infos: infos}
	for _, info := range infos {
		pf.addWidget(info)
	}
	return pf
}

func (pf *parameterForm) addWidget(info transform.ParameterInfo) {
	def := fmt.Sprint(info.Default)
	var obj fyne.CanvasObject
	var value func() string

	switch info.Type {
	case transform.ParamEnum:
		sel := widget.NewSelect(info.Options, nil)
		sel.SetSelected(def)
		obj, value = sel, func() string { return sel.Selected }
	case transform.ParamColor:
		entry := widget.NewSelectEntry(info.Options)
		entry.SetText(def)
		entry.Validator = info.Check
		obj, value = entry, func() string { return entry.Text }
	default:
		entry := widget.NewEntry()
		entry.SetText(def)
		entry.Validator = info.Check
		obj, value = entry, func() string { return entry.Text }
	}

	item := widget.NewFormItem(info.Label, obj)
	if info.Type == transform.ParamInt {
		item.HintText = fmt.Sprintf("%d – %d", info.Min, info.Max)
	} else {
		item.HintText = info.Description
	}
	pf.items = append(pf.items, item)
	pf.values = append(pf.values, value)
}

// Params collects the current inputs, failing on the first invalid one.
func (pf *parameterForm) Params() (transform.Params, error) {
	params := transform.Params{}
	for i, info := range pf.infos {
		raw := strings.TrimSpace(pf.values[i]())
		if err := info.Check(raw); err != nil {
			return nil, err
		}
		if info.Type == transform.ParamInt {
			n, _ := strconv.Atoi(raw)
			params[info.Name] = n
		} else {
			params[info.Name] = raw
		}
	}
	return params, nil
}

// showParameterDialog asks for parameters and calls onSubmit with them.
// Dismissing the dialog does nothing.
func showParameterDialog(title string, infos []transform.ParameterInfo, parent fyne.Window, onSubmit func(transform.Params), onError func(error)) {
	form := newParameterForm(infos)
	dlg := dialog.NewForm(title, "Apply", "Cancel", form.items, func(confirmed bool) {
		if !confirmed {
			return
		}
		params, err := form.Params()
		if err != nil {
			onError(err)
			return
		}
		onSubmit(params)
	}, parent)
	dlg.Resize(fyne.NewSize(360, 0))
	dlg.Show()
}
