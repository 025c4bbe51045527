package bitmap

import (
	"image"
	"image/color"
	"io"
)

// FormatName is the name this codec is registered under with the image package.
const FormatName = "bmp24"

func init() {
	image.RegisterFormat(FormatName, "BM", decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	buf, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return buf.Image(), nil
}

// DecodeConfig returns the dimensions of a supported bitmap without reading its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	_, ih, err := ReadHeaders(r)
	if err != nil {
		return image.Config{}, err
	}

	err = ih.Validate()
	if err != nil {
		return image.Config{}, err
	}

	width, height := ih.Dimensions()

	return image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}, nil
}
