package filter

import (
	"context"
	"math"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// DefaultVignetteIntensity is the intensity used when none is given.
const DefaultVignetteIntensity = 0.8

// Grayscale replaces every pixel with its luminance.
type Grayscale struct{}

func (Grayscale) Kind() Kind { return KindGrayscale }

func (Grayscale) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	return mapPixels(ctx, img, concurrent, func(_, _ int, c pixel.Color) pixel.Color {
		return pixel.Gray(c.Luminance())
	})
}

// Negative inverts every channel.
type Negative struct{}

func (Negative) Kind() Kind { return KindNegative }

func (Negative) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	return mapPixels(ctx, img, concurrent, func(_, _ int, c pixel.Color) pixel.Color {
		return pixel.RGB(1-c.R, 1-c.G, 1-c.B)
	})
}

// Sepia applies the standard sepia colour matrix.
type Sepia struct{}

func (Sepia) Kind() Kind { return KindSepia }

func (Sepia) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	return mapPixels(ctx, img, concurrent, func(_, _ int, c pixel.Color) pixel.Color {
		return pixel.RGB(
			0.393*c.R+0.769*c.G+0.189*c.B,
			0.349*c.R+0.686*c.G+0.168*c.B,
			0.272*c.R+0.534*c.G+0.131*c.B,
		)
	})
}

// Vignette darkens pixels with their distance to the image centre.
// Each channel is multiplied by max(0, 1 - d/dmax*Intensity) where dmax is the centre to corner
// distance.
type Vignette struct {
	Intensity float64
}

// NewVignette returns a Vignette with the default intensity.
func NewVignette() Vignette {
	return Vignette{Intensity: DefaultVignetteIntensity}
}

func (Vignette) Kind() Kind { return KindVignette }

func (v Vignette) Validate() error {
	if math.IsNaN(v.Intensity) || math.IsInf(v.Intensity, 0) {
		return invalid(KindVignette, "intensity must be finite, got %v", v.Intensity)
	}

	return nil
}

func (v Vignette) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	if v.Validate() != nil {
		return nil
	}

	centerX := float64(img.Width()) / 2
	centerY := float64(img.Height()) / 2
	maxDistance := math.Hypot(centerX, centerY)

	return mapPixels(ctx, img, concurrent, func(x, y int, c pixel.Color) pixel.Color {
		distance := math.Hypot(float64(x)-centerX, float64(y)-centerY)

		return c.Scale(VignetteFactor(distance, maxDistance, v.Intensity))
	})
}

// VignetteFactor is the channel multiplier of a pixel at distance from the centre.
func VignetteFactor(distance, maxDistance, intensity float64) float64 {
	return math.Max(0, 1-distance/maxDistance*intensity)
}
