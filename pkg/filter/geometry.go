package filter

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// Crop keeps the top-left Width x Height rectangle. The size is clamped to the image, which never
// grows.
type Crop struct {
	Width  int
	Height int
}

func (Crop) Kind() Kind { return KindCrop }

func (c Crop) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid(KindCrop, "width and height must be positive, got %dx%d", c.Width, c.Height)
	}

	return nil
}

func (c Crop) Apply(ctx context.Context, img *pixel.Buffer, _ int) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "crop")
	}

	img.Crop(c.Width, c.Height)

	return nil
}

// Resize resamples the image to Width x Height with nearest-neighbour sampling.
type Resize struct {
	Width  int
	Height int
}

func (Resize) Kind() Kind { return KindResize }

func (r Resize) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return invalid(KindResize, "width and height must be positive, got %dx%d", r.Width, r.Height)
	}

	return nil
}

func (r Resize) Apply(ctx context.Context, img *pixel.Buffer, _ int) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "resize")
	}

	if r.Validate() != nil {
		return nil
	}

	// Only an allocation failure is left, which leaves img untouched like any invalid parameter.
	_ = img.Resize(r.Width, r.Height)

	return nil
}
