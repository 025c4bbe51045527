package filter

import (
	"context"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// Kernel3x3 is a convolution kernel indexed as [dy+1][dx+1].
type Kernel3x3 [3][3]float64

var (
	// SharpenKernel has a unit weight sum, flat areas are left unchanged.
	SharpenKernel = Kernel3x3{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
	// LaplacianKernel has a zero weight sum, flat areas become black.
	LaplacianKernel = Kernel3x3{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	}
)

// Convolve3x3 convolves img with kernel. Neighbours are read from a snapshot taken before the first
// write, with coordinates clamped to the edge.
func Convolve3x3(ctx context.Context, img *pixel.Buffer, kernel Kernel3x3, concurrent int) error {
	src := img.Copy()
	width := img.Width()

	return forEachRow(ctx, img.Height(), concurrent, func(y int) {
		for x := 0; x < width; x++ {
			var sum pixel.Color

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sum = sum.Add(src.AtClamped(x+kx, y+ky).Scale(kernel[ky+1][kx+1]))
				}
			}

			img.Set(x, y, sum)
		}
	})
}

// Sharpen convolves the image with SharpenKernel.
type Sharpen struct{}

func (Sharpen) Kind() Kind { return KindSharpen }

func (Sharpen) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	return Convolve3x3(ctx, img, SharpenKernel, concurrent)
}

// EdgeDetect converts the image to grayscale, convolves it with LaplacianKernel and turns every pixel
// white when its response is above Threshold, black otherwise.
type EdgeDetect struct {
	Threshold float64
}

func (EdgeDetect) Kind() Kind { return KindEdgeDetect }

func (e EdgeDetect) Validate() error {
	if !(e.Threshold >= 0 && e.Threshold <= 1) {
		return invalid(KindEdgeDetect, "threshold must be in [0, 1], got %v", e.Threshold)
	}

	return nil
}

func (e EdgeDetect) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	err := Grayscale{}.Apply(ctx, img, concurrent)
	if err != nil {
		return err
	}

	err = Convolve3x3(ctx, img, LaplacianKernel, concurrent)
	if err != nil {
		return err
	}

	// Every channel holds the same value after grayscale.
	return mapPixels(ctx, img, concurrent, func(_, _ int, c pixel.Color) pixel.Color {
		if c.R > e.Threshold {
			return pixel.White
		}

		return pixel.Black
	})
}
