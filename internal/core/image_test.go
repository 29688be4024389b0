package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestImageStoreStartsEmpty(t *testing.T) {
	store := NewImageStore(nil)
	defer store.Close()

	assert.False(t, store.HasImage())
	current := store.Current()
	defer current.Close()
	assert.True(t, current.Empty())

	_, err := store.Reset()
	require.ErrorIs(t, err, ErrNoOriginal)

	blue := solidMat(t, 4, 4, 255, 0, 0)
	require.ErrorIs(t, store.Replace(blue), ErrNoImageLoaded)
}

func TestImageStoreLoad(t *testing.T) {
	src := solidMat(t, 20, 10, 10, 20, 30)
	store := NewImageStore(stubDecoder{mat: src})
	defer store.Close()

	require.NoError(t, store.Load([]byte("png bytes"), "/tmp/photo.PNG"))

	assert.True(t, store.HasImage())
	assert.Equal(t, "/tmp/photo.PNG", store.Source())
	assert.Equal(t, ImageMetadata{
		Width:    20,
		Height:   10,
		Channels: 3,
		Type:     gocv.MatTypeCV8UC3,
		Format:   "png",
		Size:     int64(len("png bytes")),
	}, store.Metadata())

	current := store.Current()
	defer current.Close()
	original := store.Original()
	defer original.Close()
	requireSamePixels(t, src, current)
	requireSamePixels(t, src, original)
}

func TestImageStoreLoadFailureKeepsState(t *testing.T) {
	src := solidMat(t, 8, 8, 1, 2, 3)
	store := NewImageStore(stubDecoder{mat: src})
	defer store.Close()

	require.ErrorIs(t, store.Load([]byte("bad"), "first.png"), ErrDecodeFailure)
	assert.False(t, store.HasImage())

	require.NoError(t, store.Load([]byte("ok"), "second.png"))
	require.ErrorIs(t, store.Load([]byte("bad"), "third.png"), ErrDecodeFailure)

	assert.Equal(t, "second.png", store.Source())
	current := store.Current()
	defer current.Close()
	requireSamePixels(t, src, current)
}

func TestImageStoreLoadWithoutDecoder(t *testing.T) {
	store := NewImageStore(nil)
	defer store.Close()

	require.ErrorIs(t, store.Load([]byte("x"), "x.png"), ErrDecodeFailure)
}

func TestImageStoreReplaceKeepsOriginal(t *testing.T) {
	red := solidMat(t, 6, 6, 0, 0, 255)
	green := solidMat(t, 3, 3, 0, 255, 0)
	store := NewImageStore(nil)
	defer store.Close()

	require.NoError(t, store.Capture(red))
	require.NoError(t, store.Replace(green))

	current := store.Current()
	defer current.Close()
	original := store.Original()
	defer original.Close()
	requireSamePixels(t, green, current)
	requireSamePixels(t, red, original)

	w, h := store.CurrentSize()
	assert.Equal(t, [2]int{3, 3}, [2]int{w, h})
	assert.Equal(t, 6, store.Metadata().Width)
}

func TestImageStoreResetRestoresLatestOriginal(t *testing.T) {
	first := solidMat(t, 5, 5, 10, 10, 10)
	second := solidMat(t, 7, 4, 200, 100, 50)
	edited := solidMat(t, 2, 2, 0, 0, 0)
	store := NewImageStore(nil)
	defer store.Close()

	require.NoError(t, store.Capture(first))
	require.NoError(t, store.Replace(edited))
	require.NoError(t, store.Capture(second))
	require.NoError(t, store.Replace(edited))

	restored, err := store.Reset()
	require.NoError(t, err)
	defer restored.Close()
	requireSamePixels(t, second, restored)

	current := store.Current()
	defer current.Close()
	requireSamePixels(t, second, current)
	assert.Equal(t, SourceCamera, store.Source())
	assert.Equal(t, SourceCamera, store.Metadata().Format)
}

func TestImageStoreHandsOutCopies(t *testing.T) {
	src := solidMat(t, 4, 4, 0, 0, 0)
	store := NewImageStore(nil)
	defer store.Close()
	require.NoError(t, store.Capture(src))

	current := store.Current()
	current.SetTo(gocv.NewScalar(255, 255, 255, 0))
	current.Close()

	// mutating the captured Mat after the fact must not leak in either
	src.SetTo(gocv.NewScalar(9, 9, 9, 0))

	again := store.Current()
	defer again.Close()
	assert.Equal(t, []uint8{0, 0, 0}, []uint8(again.GetVecbAt(1, 1)))
}

func TestImageStoreRejectsInvalidImages(t *testing.T) {
	store := NewImageStore(nil)
	defer store.Close()

	empty := gocv.NewMat()
	defer empty.Close()
	require.ErrorIs(t, store.Capture(empty), ErrInvalidImage)

	fourChannel := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC4)
	defer fourChannel.Close()
	require.ErrorIs(t, store.Capture(fourChannel), ErrInvalidImage)
	assert.False(t, store.HasImage())

	src := solidMat(t, 4, 4, 0, 0, 0)
	require.NoError(t, store.Capture(src))
	require.ErrorIs(t, store.Replace(empty), ErrInvalidImage)
}

func TestImageStoreAcceptsGrayscale(t *testing.T) {
	gray := gocv.NewMatWithSize(3, 5, gocv.MatTypeCV8UC1)
	defer gray.Close()
	store := NewImageStore(nil)
	defer store.Close()

	require.NoError(t, store.Capture(gray))
	assert.Equal(t, 1, store.Metadata().Channels)
}

func TestImageStoreClose(t *testing.T) {
	src := solidMat(t, 4, 4, 0, 0, 0)
	store := NewImageStore(nil)
	require.NoError(t, store.Capture(src))

	store.Close()
	assert.False(t, store.HasImage())
	assert.Equal(t, ImageMetadata{}, store.Metadata())
}
