package filter

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// forEachRow calls rowFn for every row in [0, height).
// With concurrent > 1 the rows are split into contiguous bands processed by at most concurrent
// goroutines. rowFn must only write to its own row and only read from data no other row writes.
func forEachRow(ctx context.Context, height, concurrent int, rowFn func(y int)) error {
	if concurrent <= 1 || height == 1 {
		return sequentialRows(ctx, 0, height, rowFn)
	}

	return concurrentRows(ctx, height, concurrent, rowFn)
}

func sequentialRows(ctx context.Context, from, to int, rowFn func(y int)) error {
	for y := from; y < to; y++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "row %d", y)
		}

		rowFn(y)
	}

	return nil
}

func concurrentRows(ctx context.Context, height, concurrent int, rowFn func(y int)) error {
	concurrent = min(concurrent, height)
	band := (height + concurrent - 1) / concurrent

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)

	for from := 0; from < height; from += band {
		from, to := from, min(from+band, height)
		errGrp.Go(func() error {
			return sequentialRows(dCtx, from, to, rowFn)
		})
	}

	return errGrp.Wait()
}

// mapPixels replaces every pixel with pixelFn applied to its current value.
func mapPixels(ctx context.Context, img *pixel.Buffer, concurrent int, pixelFn func(x, y int, c pixel.Color) pixel.Color) error {
	width := img.Width()

	return forEachRow(ctx, img.Height(), concurrent, func(y int) {
		for x := 0; x < width; x++ {
			img.Set(x, y, pixelFn(x, y, img.At(x, y)))
		}
	})
}
