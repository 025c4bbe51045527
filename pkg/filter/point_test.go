package filter

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/imagecraft/pkg/pixel"
)

func TestGrayscale(t *testing.T) {
	img := newBuffer(t, 2, 1)
	img.Set(0, 0, pixel.RGB(1, 0, 0))
	img.Set(1, 0, pixel.RGB(0.2, 0.4, 0.6))

	require.NoError(t, Grayscale{}.Apply(context.Background(), img, 1))
	assert.Equal(t, pixel.Gray(0.299), img.At(0, 0))
	assert.InDelta(t, 0.299*0.2+0.587*0.4+0.114*0.6, img.At(1, 0).G, 1e-12)
}

func TestGrayscaleIdempotent(t *testing.T) {
	once := noisy(t, 6, 5)
	require.NoError(t, Grayscale{}.Apply(context.Background(), once, 1))

	twice := once.Copy()
	require.NoError(t, Grayscale{}.Apply(context.Background(), twice, 1))

	assert.True(t, once.Equal(twice, 1e-9))
}

func TestNegativeInvolution(t *testing.T) {
	img := noisy(t, 7, 3)
	orig := img.Copy()

	require.NoError(t, Negative{}.Apply(context.Background(), img, 1))
	assert.InDelta(t, 1-orig.At(2, 1).R, img.At(2, 1).R, 1e-12)

	require.NoError(t, Negative{}.Apply(context.Background(), img, 1))
	assert.True(t, orig.Equal(img, 1e-12))
}

func TestGrayscaleThenNegativeOnColumns(t *testing.T) {
	img := newBuffer(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x%2 == 1 {
				img.Set(x, y, pixel.White)
			}
		}
	}

	require.NoError(t, Grayscale{}.Apply(context.Background(), img, 1))
	require.NoError(t, Negative{}.Apply(context.Background(), img, 1))

	whiteColumn := 1 - math.Min(1, pixel.White.Luminance())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			expected := 1.0
			if x%2 == 1 {
				expected = whiteColumn
			}

			c := img.At(x, y)
			assert.InDelta(t, expected, c.R, 1e-9, "pixel %d,%d", x, y)
			assert.InDelta(t, expected, c.G, 1e-9, "pixel %d,%d", x, y)
			assert.InDelta(t, expected, c.B, 1e-9, "pixel %d,%d", x, y)
		}
	}
}

func TestSepia(t *testing.T) {
	img := newBuffer(t, 2, 1)
	img.Set(0, 0, pixel.RGB(0.5, 0.25, 0.1))
	img.Set(1, 0, pixel.White)

	require.NoError(t, Sepia{}.Apply(context.Background(), img, 1))

	c := img.At(0, 0)
	assert.InDelta(t, 0.393*0.5+0.769*0.25+0.189*0.1, c.R, 1e-12)
	assert.InDelta(t, 0.349*0.5+0.686*0.25+0.168*0.1, c.G, 1e-12)
	assert.InDelta(t, 0.272*0.5+0.534*0.25+0.131*0.1, c.B, 1e-12)

	// 0.393+0.769+0.189 and 0.349+0.686+0.168 are above one and get clamped.
	white := img.At(1, 0)
	assert.Equal(t, 1.0, white.R)
	assert.Equal(t, 1.0, white.G)
	assert.InDelta(t, 0.937, white.B, 1e-12)
}

func TestVignette(t *testing.T) {
	t.Run("zero intensity is identity", func(t *testing.T) {
		img := noisy(t, 5, 4)
		orig := img.Copy()

		require.NoError(t, Vignette{Intensity: 0}.Apply(context.Background(), img, 1))
		assert.True(t, orig.Equal(img, 0))
	})

	t.Run("centre is untouched", func(t *testing.T) {
		for _, intensity := range []float64{0.3, DefaultVignetteIntensity, 1, 4} {
			img := fill(t, 4, 4, pixel.Gray(0.5))

			require.NoError(t, Vignette{Intensity: intensity}.Apply(context.Background(), img, 1))
			assert.Equal(t, pixel.Gray(0.5), img.At(2, 2))
		}
	})

	t.Run("corner uses the full distance", func(t *testing.T) {
		img := fill(t, 4, 4, pixel.White)

		require.NoError(t, NewVignette().Apply(context.Background(), img, 1))
		assert.InDelta(t, 0.2, img.At(0, 0).R, 1e-9)

		expected := VignetteFactor(math.Hypot(1, 1), math.Hypot(2, 2), DefaultVignetteIntensity)
		assert.InDelta(t, expected, img.At(1, 1).G, 1e-9)
	})

	t.Run("factor never goes negative", func(t *testing.T) {
		img := fill(t, 4, 4, pixel.White)

		require.NoError(t, Vignette{Intensity: 3}.Apply(context.Background(), img, 1))
		assert.Equal(t, pixel.Black, img.At(0, 0))
		assert.Zero(t, VignetteFactor(10, 1, 1))
	})
}
