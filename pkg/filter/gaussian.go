package filter

import (
	"context"
	"math"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// GaussianBlur blurs the image with a separable Gaussian kernel, horizontally then vertically.
type GaussianBlur struct {
	Sigma float64
}

// MaxSigma bounds the blur radius. Its kernel has 6001 taps.
const MaxSigma = 1000

func (GaussianBlur) Kind() Kind { return KindGaussianBlur }

func (g GaussianBlur) Validate() error {
	if !(g.Sigma > 0) || math.IsInf(g.Sigma, 0) {
		return invalid(KindGaussianBlur, "sigma must be positive, got %v", g.Sigma)
	}

	if g.Sigma > MaxSigma {
		return invalid(KindGaussianBlur, "sigma must be at most %d, got %v", MaxSigma, g.Sigma)
	}

	return nil
}

// GaussianKernel returns the normalised 1-D kernel for sigma, or nil when sigma is not in (0, MaxSigma].
// Its length is int(6*sigma) made odd, and at least 3.
func GaussianKernel(sigma float64) []float64 {
	if (GaussianBlur{Sigma: sigma}).Validate() != nil {
		return nil
	}

	size := int(6*sigma) | 1
	if size < 3 {
		size = 3
	}

	half := size / 2
	kernel := make([]float64, size)
	sum := 0.0

	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

func (g GaussianBlur) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	kernel := GaussianKernel(g.Sigma)
	if kernel == nil {
		return nil
	}

	half := len(kernel) / 2
	width := img.Width()
	src := img.Copy()

	err := forEachRow(ctx, img.Height(), concurrent, func(y int) {
		for x := 0; x < width; x++ {
			var sum pixel.Color
			for k := -half; k <= half; k++ {
				sum = sum.Add(src.AtClamped(x+k, y).Scale(kernel[k+half]))
			}

			img.Set(x, y, sum)
		}
	})
	if err != nil {
		return err
	}

	src.CopyFrom(img)

	return forEachRow(ctx, img.Height(), concurrent, func(y int) {
		for x := 0; x < width; x++ {
			var sum pixel.Color
			for k := -half; k <= half; k++ {
				sum = sum.Add(src.AtClamped(x, y+k).Scale(kernel[k+half]))
			}

			img.Set(x, y, sum)
		}
	})
}
