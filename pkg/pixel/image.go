package pixel

import (
	"image"
)

// Image converts b to an opaque *image.RGBA using the same truncation as the bitmap encoder.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(b.Bounds())

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, b.At(x, y).RGBA())
		}
	}

	return img
}

// FromImage copies any image into a new Buffer. The source bounds are translated to the origin.
func FromImage(src image.Image) (*Buffer, error) {
	bounds := src.Bounds()

	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			buf.Set(x-bounds.Min.X, y-bounds.Min.Y, FromColor(src.At(x, y)))
		}
	}

	return buf, nil
}
