package bitmap

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// Decode reads a 24-bit uncompressed bitmap from r.
//
// Rows are always read bottom-up: the first stored row becomes the last buffer row, whatever the sign
// of the stored height. Padding bytes at the end of each row are skipped.
func Decode(r io.Reader) (*pixel.Buffer, error) {
	fh, ih, err := ReadHeaders(r)
	if err != nil {
		return nil, err
	}

	err = ih.Validate()
	if err != nil {
		return nil, err
	}

	if fh.DataOffset < HeadersSize {
		return nil, formatError(errors.Wrapf(ErrBadOffset, "offset %d", fh.DataOffset), "")
	}

	_, err = io.CopyN(io.Discard, r, int64(fh.DataOffset)-HeadersSize)
	if err != nil {
		return nil, readError(err, "gap before pixel data")
	}

	width, height := ih.Dimensions()

	err = pixel.CheckDimensions(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "unable to allocate image")
	}

	data, err := readPixelData(r, width, height)
	if err != nil {
		return nil, err
	}

	buf, err := pixel.New(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "unable to allocate image")
	}

	decodePixels(data, buf)

	return buf, nil
}

// readPixelData reads the stored rows. The slice grows with the data actually present, so a header
// declaring a large image over a short stream fails with ErrTruncated without allocating the image.
// Padding of the last stored row may be missing, the pixels are all there.
func readPixelData(r io.Reader, width, height int) ([]byte, error) {
	rowSize := int64(RowSize(width))
	size := rowSize * int64(height)
	required := size - int64(RowPadding(width))

	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, readError(err, "pixel data")
	}

	if int64(len(data)) < required {
		return nil, formatError(errors.Wrapf(ErrTruncated, "got %d of %d bytes", len(data), required), "pixel data")
	}

	return data, nil
}

// decodePixels converts the stored BGR rows to buf. The first stored row is the last buffer row.
func decodePixels(data []byte, buf *pixel.Buffer) {
	width, height := buf.Width(), buf.Height()
	rowSize := RowSize(width)

	for y := height - 1; y >= 0; y-- {
		row := data[(height-1-y)*rowSize:]

		for x := 0; x < width; x++ {
			px := row[x*bytesPerPixel:]
			buf.Set(x, y, pixel.RGB(float64(px[2])/255, float64(px[1])/255, float64(px[0])/255))
		}
	}
}

// Encode writes buf to w as a 24-bit uncompressed bitmap with bottom-up rows.
//
// Channels are stored as uint8(c*255), truncated. Nothing is rolled back when a write fails, so w may
// hold a partial bitmap afterwards.
func Encode(w io.Writer, buf *pixel.Buffer) error {
	if buf == nil {
		return ErrImageMustBeSet
	}

	width, height := buf.Width(), buf.Height()

	fh, ih, err := newHeaders(width, height)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	err = binary.Write(bw, binary.LittleEndian, fh)
	if err != nil {
		return &IOError{Op: "write file header", Err: err}
	}

	err = binary.Write(bw, binary.LittleEndian, ih)
	if err != nil {
		return &IOError{Op: "write info header", Err: err}
	}

	row := make([]byte, RowSize(width))
	for y := height - 1; y >= 0; y-- {
		for x, c := range buf.Row(y) {
			px := row[x*bytesPerPixel:]
			px[0] = uint8(c.B * 255)
			px[1] = uint8(c.G * 255)
			px[2] = uint8(c.R * 255)
		}

		_, err = bw.Write(row)
		if err != nil {
			return &IOError{Op: "write pixel data", Err: err}
		}
	}

	err = bw.Flush()
	if err != nil {
		return &IOError{Op: "flush", Err: err}
	}

	return nil
}

// LooksLikeBitmap reports whether data starts with the BM signature. It is a cheap pre-check: a file
// that passes may still be rejected by Decode.
func LooksLikeBitmap(data []byte) bool {
	return len(data) >= 2 && binary.LittleEndian.Uint16(data) == Signature
}

// Sniff reads the first two bytes of r and reports whether they are the BM signature. A stream shorter
// than two bytes is not a bitmap and is not an error.
func Sniff(r io.Reader) (bool, error) {
	var magic [2]byte

	_, err := io.ReadFull(r, magic[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}

	if err != nil {
		return false, &IOError{Op: "read signature", Err: err}
	}

	return LooksLikeBitmap(magic[:]), nil
}
