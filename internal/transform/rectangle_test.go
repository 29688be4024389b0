package transform

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRectangleOutline(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	src := solidImage(t, 10, 10, white)

	out, err := DrawRectangle(src, Region{X: 2, Y: 2, Width: 6, Height: 6}, red, 1)
	require.NoError(t, err)
	defer out.Close()

	for _, p := range [][2]int{{2, 2}, {7, 2}, {2, 7}, {7, 7}, {4, 2}, {2, 5}} {
		assert.Equal(t, red, rgbAt(out, p[0], p[1]), "outline pixel %v", p)
	}
	for _, p := range [][2]int{{4, 4}, {5, 5}, {1, 1}, {8, 8}, {0, 9}} {
		assert.Equal(t, white, rgbAt(out, p[0], p[1]), "untouched pixel %v", p)
	}

	// the input is never drawn on
	assert.Equal(t, white, rgbAt(src, 2, 2))
}

func TestDrawRectangleFullImage(t *testing.T) {
	src := solidImage(t, 10, 8, color.RGBA{A: 255})

	out, err := DrawRectangle(src, Region{Width: 10, Height: 8}, color.RGBA{G: 255, A: 255}, 1)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, color.RGBA{G: 255, A: 255}, rgbAt(out, 9, 7))
}

func TestDrawRectangleOutOfBounds(t *testing.T) {
	src := solidImage(t, 10, 10, color.RGBA{A: 255})
	red := color.RGBA{R: 255, A: 255}

	regions := []Region{
		{X: 5, Y: 5, Width: 6, Height: 2},
		{X: 0, Y: 0, Width: 11, Height: 10},
		{X: -1, Y: 0, Width: 3, Height: 3},
		{X: 0, Y: 8, Width: 2, Height: 3},
		{X: 0, Y: 0, Width: 0, Height: 3},
	}
	for _, r := range regions {
		_, err := DrawRectangle(src, r, red, 1)
		require.ErrorIs(t, err, ErrInvalidParams, "%s", r)
	}
}

func TestDrawRectangleRejectsLineWidth(t *testing.T) {
	src := solidImage(t, 10, 10, color.RGBA{A: 255})

	for _, width := range []int{0, MaxLineWidth + 1} {
		_, err := DrawRectangle(src, Region{X: 1, Y: 1, Width: 3, Height: 3}, Black, width)
		require.ErrorIs(t, err, ErrInvalidParams, "line width %d", width)
	}
}
