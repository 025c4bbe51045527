package pixel

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(t *testing.T, width, height int) *Buffer {
	t.Helper()

	buf, err := New(width, height)
	require.NoError(t, err)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, RGB(float64(x)/float64(width), float64(y)/float64(height), 0.5))
		}
	}

	return buf
}

func TestNew(t *testing.T) {
	tcs := map[string]struct {
		width, height int
		expectedErr   bool
	}{
		"valid":           {width: 3, height: 2},
		"single pixel":    {width: 1, height: 1},
		"zero width":      {width: 0, height: 2, expectedErr: true},
		"negative height": {width: 2, height: -1, expectedErr: true},
		"overflow":        {width: math.MaxInt, height: 2, expectedErr: true},
		"above max":       {width: MaxPixels/2 + 1, height: 2, expectedErr: true},
		"int32 square":    {width: math.MaxInt32, height: math.MaxInt32, expectedErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			buf, err := New(tc.width, tc.height)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				assert.Nil(t, buf)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.width, buf.Width())
			assert.Equal(t, tc.height, buf.Height())
			for y := 0; y < tc.height; y++ {
				for x := 0; x < tc.width; x++ {
					assert.Equal(t, Black, buf.At(x, y))
				}
			}
		})
	}
}

func TestAtSetBounds(t *testing.T) {
	buf, err := New(2, 2)
	require.NoError(t, err)

	buf.Set(1, 1, RGB(0.2, 0.4, 0.6))
	assert.Equal(t, RGB(0.2, 0.4, 0.6), buf.At(1, 1))

	buf.Set(-1, 0, White)
	buf.Set(2, 0, White)
	buf.Set(0, 5, White)
	assert.Equal(t, Black, buf.At(0, 0))
	assert.Equal(t, Black, buf.At(-1, 0))
	assert.Equal(t, Black, buf.At(0, 2))

	buf.Set(0, 0, RGB(2, -1, 0.5))
	assert.Equal(t, RGB(1, 0, 0.5), buf.At(0, 0))
}

func TestAtClamped(t *testing.T) {
	buf := gradient(t, 3, 3)

	assert.Equal(t, buf.At(0, 0), buf.AtClamped(-5, -1))
	assert.Equal(t, buf.At(2, 0), buf.AtClamped(9, 0))
	assert.Equal(t, buf.At(2, 2), buf.AtClamped(3, 3))
	assert.Equal(t, buf.At(1, 2), buf.AtClamped(1, 4))
}

func TestCopyIsDeep(t *testing.T) {
	buf := gradient(t, 4, 3)
	cp := buf.Copy()

	assert.True(t, buf.Equal(cp, 0))

	cp.Set(0, 0, White)
	assert.NotEqual(t, buf.At(0, 0), cp.At(0, 0))
}

func TestResize(t *testing.T) {
	buf, err := New(2, 2)
	require.NoError(t, err)
	buf.Set(0, 0, RGB(1, 0, 0))
	buf.Set(1, 0, RGB(0, 1, 0))
	buf.Set(0, 1, RGB(0, 0, 1))
	buf.Set(1, 1, White)

	require.NoError(t, buf.Resize(4, 3))
	assert.Equal(t, 4, buf.Width())
	assert.Equal(t, 3, buf.Height())

	// x: 0,1 -> 0 ; 2,3 -> 1. y: 0 -> 0, 1 -> 0 (1*2/3), 2 -> 1 (2*2/3).
	expected := [][]Color{
		{RGB(1, 0, 0), RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 1, 0)},
		{RGB(1, 0, 0), RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 1, 0)},
		{RGB(0, 0, 1), RGB(0, 0, 1), White, White},
	}
	for y, row := range expected {
		for x, c := range row {
			assert.Equal(t, c, buf.At(x, y), "pixel %d,%d", x, y)
		}
	}

	require.NoError(t, buf.Resize(1, 1))
	assert.Equal(t, RGB(1, 0, 0), buf.At(0, 0))
}

func TestResizeInvalid(t *testing.T) {
	buf := gradient(t, 3, 3)
	before := buf.Copy()

	for _, size := range [][2]int{{0, 3}, {3, -1}, {2000000000, 2000000000}, {MaxPixels, 2}} {
		err := buf.Resize(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", size[0], size[1])
		assert.True(t, buf.Equal(before, 0))
	}
}

func TestCrop(t *testing.T) {
	tcs := map[string]struct {
		width, height                 int
		expectedWidth, expectedHeight int
		expectedOK                    bool
	}{
		"smaller":        {width: 2, height: 1, expectedWidth: 2, expectedHeight: 1, expectedOK: true},
		"larger clamped": {width: 10, height: 10, expectedWidth: 4, expectedHeight: 3, expectedOK: true},
		"width clamped":  {width: 10, height: 2, expectedWidth: 4, expectedHeight: 2, expectedOK: true},
		"zero":           {width: 0, height: 2, expectedWidth: 4, expectedHeight: 3},
		"negative":       {width: 2, height: -3, expectedWidth: 4, expectedHeight: 3},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			buf := gradient(t, 4, 3)
			orig := buf.Copy()

			ok := buf.Crop(tc.width, tc.height)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedWidth, buf.Width())
			assert.Equal(t, tc.expectedHeight, buf.Height())

			for y := 0; y < buf.Height(); y++ {
				for x := 0; x < buf.Width(); x++ {
					assert.Equal(t, orig.At(x, y), buf.At(x, y))
				}
			}
		})
	}
}

func TestReplaceAndCopyFrom(t *testing.T) {
	buf := gradient(t, 4, 3)
	other := gradient(t, 2, 2)
	other.Fill(White)

	assert.False(t, buf.CopyFrom(other))

	buf.Replace(other)
	assert.Equal(t, 2, buf.Width())
	assert.Equal(t, 2, buf.Height())
	assert.Equal(t, White, buf.At(1, 1))

	src := gradient(t, 2, 2)
	assert.True(t, buf.CopyFrom(src))
	assert.True(t, buf.Equal(src, 0))
}

func TestEqual(t *testing.T) {
	a := gradient(t, 2, 2)
	b := a.Copy()
	b.Set(0, 0, a.At(0, 0).Add(Gray(0.001)))

	assert.True(t, a.Equal(b, 0.01))
	assert.False(t, a.Equal(b, 0.0001))
	assert.False(t, a.Equal(gradient(t, 2, 3), 1))
	assert.False(t, a.Equal(nil, 1))
}

func TestImageConversion(t *testing.T) {
	buf, err := New(2, 1)
	require.NoError(t, err)
	buf.Set(0, 0, RGB(1, 0, 0))
	buf.Set(1, 0, RGB(0, 0, 1))

	img := buf.Image()
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))

	sub := image.NewRGBA(image.Rect(5, 5, 7, 6))
	sub.SetRGBA(6, 5, color.RGBA{G: 255, A: 255})

	back, err := FromImage(sub)
	require.NoError(t, err)
	assert.Equal(t, 2, back.Width())
	assert.Equal(t, 1, back.Height())
	assert.Equal(t, RGB(0, 1, 0), back.At(1, 0))

	_, err = FromImage(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
