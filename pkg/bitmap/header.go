package bitmap

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// Signature is "BM" read as a little-endian uint16.
	Signature = 0x4D42

	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeadersSize    = FileHeaderSize + InfoHeaderSize

	BitsPerPixel = 24

	// PixelsPerMeter is written on encode for both axes, about 72 DPI.
	PixelsPerMeter = 2835

	bytesPerPixel  = BitsPerPixel / 8
	compressionRGB = 0
)

// FileHeader is the 14 byte BITMAPFILEHEADER.
type FileHeader struct {
	Signature  uint16
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// InfoHeader is the 40 byte BITMAPINFOHEADER.
type InfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ImportantColors uint32
}

// RowSize is the stored byte length of one row of width pixels, padding included.
func RowSize(width int) int {
	return width*bytesPerPixel + RowPadding(width)
}

// RowPadding is the number of zero bytes that align a row of width pixels to 4 bytes.
func RowPadding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// ReadHeaders reads the file and info headers from r. Only the signature is validated; use Validate on
// the info header to check that the pixel format is supported.
func ReadHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	var (
		fh FileHeader
		ih InfoHeader
	)

	err := binary.Read(r, binary.LittleEndian, &fh)
	if err != nil {
		return fh, ih, readError(err, "file header")
	}

	if fh.Signature != Signature {
		return fh, ih, formatError(ErrBadSignature, "")
	}

	err = binary.Read(r, binary.LittleEndian, &ih)
	if err != nil {
		return fh, ih, readError(err, "info header")
	}

	return fh, ih, nil
}

// Validate checks that the header describes a 24-bit uncompressed bitmap.
func (ih InfoHeader) Validate() error {
	if ih.BitsPerPixel != BitsPerPixel {
		return formatError(errors.Wrapf(ErrUnsupportedDepth, "got %d", ih.BitsPerPixel), "")
	}

	if ih.Compression != compressionRGB {
		return formatError(errors.Wrapf(ErrUnsupportedCompression, "got %d", ih.Compression), "")
	}

	return nil
}

// Dimensions returns the buffer size described by the header. The stored height sign only selects the
// row order on disk and is dropped.
func (ih InfoHeader) Dimensions() (int, int) {
	height := int(ih.Height)
	if height < 0 {
		height = -height
	}

	return int(ih.Width), height
}

func newHeaders(width, height int) (FileHeader, InfoHeader, error) {
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return FileHeader{}, InfoHeader{}, formatError(errors.Errorf("%dx%d does not fit in a bitmap", width, height), "")
	}

	imageSize := uint64(RowSize(width)) * uint64(height)
	if imageSize > math.MaxUint32-HeadersSize {
		return FileHeader{}, InfoHeader{}, formatError(errors.Errorf("%dx%d does not fit in a bitmap", width, height), "")
	}

	fh := FileHeader{
		Signature:  Signature,
		FileSize:   uint32(HeadersSize + imageSize),
		DataOffset: HeadersSize,
	}
	ih := InfoHeader{
		HeaderSize:      InfoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitsPerPixel:    BitsPerPixel,
		Compression:     compressionRGB,
		ImageSize:       uint32(imageSize),
		XPixelsPerMeter: PixelsPerMeter,
		YPixelsPerMeter: PixelsPerMeter,
	}

	return fh, ih, nil
}

func readError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return formatError(errors.Wrap(ErrTruncated, err.Error()), what)
	}

	return &IOError{Op: "read " + what, Err: err}
}
