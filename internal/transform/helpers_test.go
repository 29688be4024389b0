package transform

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func solidImage(t *testing.T, width, height int, c color.RGBA) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0),
		height, width, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

// patternImage gives every pixel a distinct-ish color so channel and
// geometry mistakes show up.
func patternImage(t *testing.T, width, height int) gocv.Mat {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 7),
				G: uint8(y * 5),
				B: uint8((x + y) * 3),
				A: 255,
			})
		}
	}
	mat, err := gocv.ImageToMatRGB(img)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func checkerImage(t *testing.T, width, height int) gocv.Mat {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	mat, err := gocv.ImageToMatRGB(img)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func rgbAt(m gocv.Mat, x, y int) color.RGBA {
	v := m.GetVecbAt(y, x)
	return color.RGBA{R: v[2], G: v[1], B: v[0], A: 255}
}

func requireSameSize(t *testing.T, m gocv.Mat, width, height int) {
	t.Helper()
	require.Equal(t, width, m.Cols(), "width")
	require.Equal(t, height, m.Rows(), "height")
}

func requireIdentical(t *testing.T, want, got gocv.Mat) {
	t.Helper()
	require.Equal(t, want.Cols(), got.Cols())
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Channels(), got.Channels())
	for y := 0; y < want.Rows(); y++ {
		for x := 0; x < want.Cols(); x++ {
			require.Equal(t, rgbAt(want, x, y), rgbAt(got, x, y), "pixel (%d,%d)", x, y)
		}
	}
}
