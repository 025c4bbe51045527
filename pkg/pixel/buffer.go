package pixel

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a buffer cannot be built for the requested size.
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// MaxPixels is the largest number of pixels a Buffer may hold, about 3 GiB of colours.
const MaxPixels = 1 << 27

// Buffer is a width x height grid of colours stored row-major.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// New creates a black buffer.
func New(width, height int) (*Buffer, error) {
	pix, err := allocate(width, height)
	if err != nil {
		return nil, err
	}

	return &Buffer{width: width, height: height, pix: pix}, nil
}

// CheckDimensions returns an error wrapping ErrInvalidDimensions when a width x height buffer cannot be
// built: a dimension is not positive or the pixel count is above MaxPixels.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "width and height must be greater than 0, got %dx%d", width, height)
	}

	if width > MaxPixels/height {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d is above %d pixels", width, height, MaxPixels)
	}

	return nil
}

func allocate(width, height int) ([]Color, error) {
	err := CheckDimensions(width, height)
	if err != nil {
		return nil, err
	}

	return make([]Color, width*height), nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// In reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the colour at (x, y), or black outside the buffer.
func (b *Buffer) At(x, y int) Color {
	if !b.In(x, y) {
		return Black
	}

	return b.pix[y*b.width+x]
}

// AtClamped returns the colour of the pixel nearest to (x, y), clamping each coordinate to the edge.
func (b *Buffer) AtClamped(x, y int) Color {
	return b.pix[ClampIndex(y, b.height)*b.width+ClampIndex(x, b.width)]
}

// Set stores the clamped colour at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.In(x, y) {
		return
	}

	b.pix[y*b.width+x] = c.Clamp()
}

// Copy returns a deep clone of b.
func (b *Buffer) Copy() *Buffer {
	pix := make([]Color, len(b.pix))
	copy(pix, b.pix)

	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// CopyFrom overwrites the pixels of b with the pixels of src. Both buffers must have the same size,
// otherwise b is left untouched and false is returned.
func (b *Buffer) CopyFrom(src *Buffer) bool {
	if src.width != b.width || src.height != b.height {
		return false
	}

	copy(b.pix, src.pix)

	return true
}

// Replace makes b adopt the dimensions and pixels of src. src must not be used afterwards.
func (b *Buffer) Replace(src *Buffer) {
	b.width = src.width
	b.height = src.height
	b.pix = src.pix
}

// Resize resamples b to newWidth x newHeight with nearest-neighbour sampling.
// The source pixel for destination (x, y) is (x*oldW/newW, y*oldH/newH) using integer division.
func (b *Buffer) Resize(newWidth, newHeight int) error {
	pix, err := allocate(newWidth, newHeight)
	if err != nil {
		return errors.Wrap(err, "unable to resize")
	}

	for y := 0; y < newHeight; y++ {
		srcY := min(y*b.height/newHeight, b.height-1)
		for x := 0; x < newWidth; x++ {
			srcX := min(x*b.width/newWidth, b.width-1)
			pix[y*newWidth+x] = b.pix[srcY*b.width+srcX]
		}
	}

	b.width, b.height, b.pix = newWidth, newHeight, pix

	return nil
}

// Crop keeps the top-left width x height rectangle of b. The requested size is clamped to the current
// one, so a buffer never grows. It returns false and leaves b untouched when a resulting dimension is
// not positive.
func (b *Buffer) Crop(width, height int) bool {
	width = min(width, b.width)
	height = min(height, b.height)

	if width <= 0 || height <= 0 {
		return false
	}

	pix := make([]Color, width*height)
	for y := 0; y < height; y++ {
		copy(pix[y*width:(y+1)*width], b.pix[y*b.width:y*b.width+width])
	}

	b.width, b.height, b.pix = width, height, pix

	return true
}

// Row returns the pixels of row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []Color {
	return b.pix[y*b.width : (y+1)*b.width]
}

// Equal reports whether both buffers have the same size and every channel differs by at most
// tolerance.
func (b *Buffer) Equal(other *Buffer, tolerance float64) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}

	for i, c := range b.pix {
		o := other.pix[i]
		if math.Abs(c.R-o.R) > tolerance || math.Abs(c.G-o.G) > tolerance || math.Abs(c.B-o.B) > tolerance {
			return false
		}
	}

	return true
}

// Fill sets every pixel to the clamped colour c.
func (b *Buffer) Fill(c Color) {
	c = c.Clamp()
	for i := range b.pix {
		b.pix[i] = c
	}
}

// ClampIndex maps i into [0, n-1].
func ClampIndex(i, n int) int {
	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	}

	return i
}
