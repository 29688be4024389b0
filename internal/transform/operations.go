package transform

import (
	"gocv.io/x/gocv"
)

type channelOp struct{}

func (channelOp) Name() string        { return "channel" }
func (channelOp) Description() string { return "Show a single color channel" }

func (channelOp) Parameters(width, height int) []ParameterInfo {
	return []ParameterInfo{{
		Name:        "channel",
		Label:       "Channel",
		Type:        ParamEnum,
		Default:     "red",
		Options:     Channels,
		Description: "Channel to keep; the other two are zeroed",
	}}
}

func (op channelOp) Validate(params Params) error {
	_, err := op.channel(params)
	return err
}

func (channelOp) channel(params Params) (Channel, error) {
	name, err := params.String("channel", "")
	if err != nil {
		return 0, err
	}
	if name == "" {
		return 0, invalidf("missing parameter channel")
	}
	return ParseChannel(name)
}

func (op channelOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	c, err := op.channel(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return ExtractChannel(input, c)
}

type resizeOp struct{}

func (resizeOp) Name() string        { return "resize" }
func (resizeOp) Description() string { return "Resize to an exact width and height" }

func (resizeOp) Parameters(width, height int) []ParameterInfo {
	return sizeParameters("Width", "Height", width, height)
}

func (op resizeOp) Validate(params Params) error {
	w, h, err := sizeArgs(params)
	if err != nil {
		return err
	}
	return checkDimensions(w, h)
}

func (resizeOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	w, h, err := sizeArgs(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return Resize(input, w, h)
}

type fitOp struct{}

func (fitOp) Name() string        { return "fit" }
func (fitOp) Description() string { return "Scale to fit a bounding box, keeping the aspect ratio" }

func (fitOp) Parameters(width, height int) []ParameterInfo {
	return sizeParameters("Max width", "Max height", width, height)
}

func (fitOp) Validate(params Params) error {
	w, h, err := sizeArgs(params)
	if err != nil {
		return err
	}
	return checkDimensions(w, h)
}

func (fitOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	w, h, err := sizeArgs(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return FitToBounds(input, w, h)
}

type borderOp struct{}

func (borderOp) Name() string        { return "border" }
func (borderOp) Description() string { return "Pad every side with a solid border" }

func (borderOp) Parameters(width, height int) []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "thickness",
			Label:       "Thickness",
			Type:        ParamInt,
			Min:         0,
			Max:         MaxBorder(width, height),
			Default:     10,
			Description: "Border width in pixels on each side",
		},
		colorParameter("Fill color", "black"),
	}
}

func (op borderOp) Validate(params Params) error {
	_, err := op.args(params)
	return err
}

func (borderOp) args(params Params) (border, error) {
	thickness, err := params.RequireInt("thickness")
	if err != nil {
		return border{}, err
	}
	if thickness < 0 {
		return border{}, invalidf("border thickness must be >= 0, got %d", thickness)
	}
	fill, err := colorArg(params, "black")
	if err != nil {
		return border{}, err
	}
	return border{thickness: thickness, fill: fill}, nil
}

func (op borderOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	b, err := op.args(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return AddBorder(input, b.thickness, b.fill)
}

type rectangleOp struct{}

func (rectangleOp) Name() string        { return "rectangle" }
func (rectangleOp) Description() string { return "Draw a rectangle outline" }

func (rectangleOp) Parameters(width, height int) []ParameterInfo {
	infos := regionParameters(width, height)
	infos = append(infos,
		colorParameter("Color", "red"),
		ParameterInfo{
			Name:        "line_width",
			Label:       "Line width",
			Type:        ParamInt,
			Min:         1,
			Max:         MaxLineWidth,
			Default:     2,
			Description: "Outline thickness in pixels",
		},
	)
	return infos
}

func (op rectangleOp) Validate(params Params) error {
	_, err := op.args(params)
	return err
}

func (rectangleOp) args(params Params) (outline, error) {
	region, err := regionArg(params)
	if err != nil {
		return outline{}, err
	}
	c, err := colorArg(params, "red")
	if err != nil {
		return outline{}, err
	}
	lineWidth, err := params.Int("line_width", 2)
	if err != nil {
		return outline{}, err
	}
	if lineWidth < 1 || lineWidth > MaxLineWidth {
		return outline{}, invalidf("line width must be between 1 and %d, got %d", MaxLineWidth, lineWidth)
	}
	return outline{region: region, color: c, lineWidth: lineWidth}, nil
}

func (op rectangleOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	o, err := op.args(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return DrawRectangle(input, o.region, o.color, o.lineWidth)
}

type blurRegionOp struct{}

func (blurRegionOp) Name() string        { return "blur_region" }
func (blurRegionOp) Description() string { return "Blur a rectangular region" }

func (blurRegionOp) Parameters(width, height int) []ParameterInfo {
	return regionParameters(width, height)
}

func (blurRegionOp) Validate(params Params) error {
	_, err := regionArg(params)
	return err
}

func (blurRegionOp) Apply(input gocv.Mat, params Params) (gocv.Mat, error) {
	region, err := regionArg(params)
	if err != nil {
		return gocv.NewMat(), err
	}
	return BlurRegion(input, region)
}
