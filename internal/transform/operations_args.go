package transform

import "image/color"

type border struct {
	thickness int
	fill      color.RGBA
}

type outline struct {
	region    Region
	color     color.RGBA
	lineWidth int
}

func sizeParameters(widthLabel, heightLabel string, width, height int) []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "width",
			Label:       widthLabel,
			Type:        ParamInt,
			Min:         1,
			Max:         MaxDimension,
			Default:     max(width, 1),
			Description: "Target width in pixels",
		},
		{
			Name:        "height",
			Label:       heightLabel,
			Type:        ParamInt,
			Min:         1,
			Max:         MaxDimension,
			Default:     max(height, 1),
			Description: "Target height in pixels",
		},
	}
}

// regionParameters bounds each field by the image size and defaults to the
// centered half of the image.
func regionParameters(width, height int) []ParameterInfo {
	width, height = max(width, 1), max(height, 1)
	return []ParameterInfo{
		{Name: "x", Label: "X", Type: ParamInt, Min: 0, Max: width - 1, Default: width / 4, Description: "Left edge"},
		{Name: "y", Label: "Y", Type: ParamInt, Min: 0, Max: height - 1, Default: height / 4, Description: "Top edge"},
		{Name: "width", Label: "Width", Type: ParamInt, Min: 1, Max: width, Default: max(width/2, 1), Description: "Region width"},
		{Name: "height", Label: "Height", Type: ParamInt, Min: 1, Max: height, Default: max(height/2, 1), Description: "Region height"},
	}
}

func colorParameter(label, def string) ParameterInfo {
	return ParameterInfo{
		Name:        "color",
		Label:       label,
		Type:        ParamColor,
		Default:     def,
		Options:     ColorNames(),
		Description: "Color name or #rrggbb",
	}
}

func sizeArgs(params Params) (int, int, error) {
	w, err := params.RequireInt("width")
	if err != nil {
		return 0, 0, err
	}
	h, err := params.RequireInt("height")
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func regionArg(params Params) (Region, error) {
	var r Region
	var err error
	if r.X, err = params.RequireInt("x"); err != nil {
		return Region{}, err
	}
	if r.Y, err = params.RequireInt("y"); err != nil {
		return Region{}, err
	}
	if r.Width, err = params.RequireInt("width"); err != nil {
		return Region{}, err
	}
	if r.Height, err = params.RequireInt("height"); err != nil {
		return Region{}, err
	}
	if r.X < 0 || r.Y < 0 || r.Width < 1 || r.Height < 1 {
		return Region{}, invalidf("invalid region %s", r)
	}
	return r, nil
}

func colorArg(params Params, def string) (color.RGBA, error) {
	name, err := params.String("color", def)
	if err != nil {
		return color.RGBA{}, err
	}
	return ParseColor(name)
}
