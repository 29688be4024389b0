package transform

import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// Channel selects one color component of a 3-channel image.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the selectable channel names in display order.
var Channels = []string{"red", "green", "blue"}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// ParseChannel maps a channel name (case-insensitive) to a Channel.
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, invalidf("unknown channel %q", name)
}

// matIndex is the plane index of the channel in OpenCV's BGR layout.
func (c Channel) matIndex() int {
	switch c {
	case Red:
		return 2
	case Green:
		return 1
	default:
		return 0
	}
}

// ExtractChannel keeps the selected channel and zeroes the other two.
func ExtractChannel(img gocv.Mat, c Channel) (gocv.Mat, error) {
	if err := checkInput(img); err != nil {
		return gocv.NewMat(), err
	}
	if img.Channels() != 3 {
		return gocv.NewMat(), invalidf("channel extraction needs a 3-channel image, got %d", img.Channels())
	}
	if c < Red || c > Blue {
		return gocv.NewMat(), invalidf("unknown channel %s", c)
	}

	// Multiplying by a 0/1 per-plane mask keeps one plane and zeroes the rest.
	keep := [3]float64{}
	keep[c.matIndex()] = 1
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(keep[0], keep[1], keep[2], 0), img.Rows(), img.Cols(), img.Type())
	defer mask.Close()

	output := gocv.NewMat()
	if err := gocv.Multiply(img, mask, &output); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("extract %s channel: %w", c, err)
	}
	return output, nil
}
