package transform

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelSize(t *testing.T) {
	tests := []struct {
		w, h int
		want image.Point
	}{
		{30, 30, image.Pt(9, 9)},
		{33, 33, image.Pt(11, 11)},
		{31, 60, image.Pt(9, 19)},
		{9, 3, image.Pt(3, 1)},
		{6, 6, image.Pt(1, 1)},
		{2, 1, image.Pt(1, 1)},
	}
	for _, tt := range tests {
		got := KernelSize(Region{Width: tt.w, Height: tt.h})
		assert.Equal(t, tt.want, got, "%dx%d", tt.w, tt.h)
		assert.Equal(t, 1, got.X%2)
		assert.Equal(t, 1, got.Y%2)
	}
}

func TestBlurRegionOnlyTouchesRegion(t *testing.T) {
	src := checkerImage(t, 60, 60)
	region := Region{X: 10, Y: 10, Width: 30, Height: 30}

	out, err := BlurRegion(src, region)
	require.NoError(t, err)
	defer out.Close()

	requireSameSize(t, out, 60, 60)
	inside := region.Rect()
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if image.Pt(x, y).In(inside) {
				continue
			}
			require.Equal(t, rgbAt(src, x, y), rgbAt(out, x, y), "outside pixel (%d,%d)", x, y)
		}
	}

	// a 9x9 kernel over a one-pixel checkerboard lands near mid-gray
	center := rgbAt(out, 25, 25)
	assert.InDelta(t, 127, int(center.R), 40)
	assert.NotEqual(t, rgbAt(src, 25, 25), center)
}

func TestBlurRegionLeavesInputAlone(t *testing.T) {
	src := checkerImage(t, 12, 12)
	before := src.Clone()
	defer before.Close()

	out, err := BlurRegion(src, Region{Width: 12, Height: 12})
	require.NoError(t, err)
	out.Close()

	requireIdentical(t, before, src)
}

func TestBlurRegionRejectsOutOfBounds(t *testing.T) {
	src := checkerImage(t, 20, 20)

	_, err := BlurRegion(src, Region{X: 15, Y: 0, Width: 10, Height: 10})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestBlurRegionsValidatesBeforeDrawing(t *testing.T) {
	src := checkerImage(t, 20, 20)

	_, err := BlurRegions(src, []Region{
		{X: 0, Y: 0, Width: 9, Height: 9},
		{X: 18, Y: 18, Width: 5, Height: 5},
	})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestBlurTinyRegionIsUnchanged(t *testing.T) {
	src := checkerImage(t, 10, 10)

	out, err := BlurRegion(src, Region{X: 1, Y: 1, Width: 2, Height: 2})
	require.NoError(t, err)
	defer out.Close()

	requireIdentical(t, src, out)
}
