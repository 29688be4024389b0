package io

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/core"
)

func newTestLoader() *ImageLoader {
	logger, _ := test.NewNullLogger()
	return NewImageLoader(logger)
}

func testMat(t *testing.T) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 120, 240, 0), 9, 16, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func TestExtensionAllowList(t *testing.T) {
	tests := []struct {
		path     string
		readable bool
		writable bool
	}{
		{"a.png", true, true},
		{"A.JPG", true, true},
		{"dir.v2/b.jpeg", true, true},
		{"scan.tiff", true, true},
		{"anim.gif", true, false},
		{"photo.webp", true, false},
		{"notes.txt", false, false},
		{"noext", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.readable, IsReadable(tt.path), tt.path)
		assert.Equal(t, tt.writable, IsWritable(tt.path), tt.path)
	}
	assert.Contains(t, ReadableExtensions(), ".webp")
	assert.NotContains(t, WritableExtensions(), ".gif")
}

func TestReadFileRejectsUnsupported(t *testing.T) {
	loader := newTestLoader()

	_, err := loader.ReadFile("document.pdf")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = loader.ReadFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	loader := newTestLoader()
	src := testMat(t)

	data, err := loader.Encode(src, ".PNG")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "round.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	read, err := loader.ReadFile(path)
	require.NoError(t, err)

	decoded, err := loader.Decode(read)
	require.NoError(t, err)
	defer decoded.Close()

	assert.Equal(t, 16, decoded.Cols())
	assert.Equal(t, 9, decoded.Rows())
	assert.Equal(t, 3, decoded.Channels())
	assert.Equal(t, []uint8{10, 120, 240}, []uint8(decoded.GetVecbAt(4, 8)))
}

func TestDecodeFailures(t *testing.T) {
	loader := newTestLoader()

	for _, data := range [][]byte{nil, []byte("definitely not an image")} {
		_, err := loader.Decode(data)
		require.ErrorIs(t, err, core.ErrDecodeFailure)
	}
}

func TestDecodeGIF(t *testing.T) {
	loader := newTestLoader()

	palette := color.Palette{color.RGBA{A: 255}, color.RGBA{R: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 6, 4), palette)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))

	decoded, err := loader.Decode(buf.Bytes())
	require.NoError(t, err)
	defer decoded.Close()

	assert.Equal(t, 6, decoded.Cols())
	assert.Equal(t, 4, decoded.Rows())
	assert.Equal(t, 3, decoded.Channels())
	assert.Equal(t, []uint8{0, 0, 255}, []uint8(decoded.GetVecbAt(2, 3)))
}

func TestSaveImage(t *testing.T) {
	loader := newTestLoader()
	src := testMat(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "out.bmp")
	require.NoError(t, loader.SaveImage(src, path))

	data, err := loader.ReadFile(path)
	require.NoError(t, err)
	decoded, err := loader.Decode(data)
	require.NoError(t, err)
	defer decoded.Close()
	assert.Equal(t, []uint8{10, 120, 240}, []uint8(decoded.GetVecbAt(0, 0)))

	require.ErrorIs(t, loader.SaveImage(src, filepath.Join(dir, "out.gif")), ErrUnsupportedFormat)

	empty := gocv.NewMat()
	defer empty.Close()
	require.Error(t, loader.SaveImage(empty, filepath.Join(dir, "empty.png")))
	_, err = loader.Encode(empty, ".png")
	require.Error(t, err)
}

func TestLoaderFeedsImageStore(t *testing.T) {
	loader := newTestLoader()
	src := testMat(t)
	data, err := loader.Encode(src, ".png")
	require.NoError(t, err)

	store := core.NewImageStore(loader)
	defer store.Close()

	require.NoError(t, store.Load(data, "photo.png"))
	assert.Equal(t, "png", store.Metadata().Format)
	require.ErrorIs(t, store.Load([]byte("junk"), "junk.png"), core.ErrDecodeFailure)
	assert.Equal(t, "photo.png", store.Source())
}
