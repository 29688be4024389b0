package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func solidMat(t *testing.T, width, height int, b, g, r float64) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(b, g, r, 0), height, width, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func requireSamePixels(t *testing.T, want, got gocv.Mat) {
	t.Helper()
	require.Equal(t, want.Cols(), got.Cols(), "width")
	require.Equal(t, want.Rows(), got.Rows(), "height")
	for y := 0; y < want.Rows(); y++ {
		for x := 0; x < want.Cols(); x++ {
			require.Equal(t, want.GetVecbAt(y, x), got.GetVecbAt(y, x), "pixel (%d,%d)", x, y)
		}
	}
}

// stubDecoder hands out clones of a fixed image for any input except "bad".
type stubDecoder struct {
	mat gocv.Mat
}

func (d stubDecoder) Decode(data []byte) (gocv.Mat, error) {
	if string(data) == "bad" {
		return gocv.NewMat(), errors.New("not an image")
	}
	return d.mat.Clone(), nil
}

type memFiles struct {
	files map[string][]byte
	saved map[string]gocv.Mat
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string][]byte{}, saved: map[string]gocv.Mat{}}
}

func (m *memFiles) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func (m *memFiles) SaveImage(mat gocv.Mat, path string) error {
	m.saved[path] = mat.Clone()
	return nil
}

func (m *memFiles) Close() {
	for _, mat := range m.saved {
		mat.Close()
	}
}
