package pixel

import (
	"image/color"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"
)

// Color is a linear RGB triple. Each channel is nominally in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	// Black is the zero Color.
	Black = Color{}
	// White has every channel at full intensity.
	White = Color{R: 1, G: 1, B: 1}
)

// RGB creates a Color from its channels. Out-of-range values are kept as is.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray creates a Color with the same value on every channel.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Add returns the channel-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the channel-wise difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Luminance is the ITU-R BT.601 weighted brightness of c.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGBA converts c to an opaque 8-bit colour. Channels are clamped then truncated, the same way the
// bitmap encoder stores them.
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()

	return color.RGBA{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: 0xff}
}

// FromColor converts any standard library colour to a Color. Alpha is ignored.
func FromColor(src color.Color) Color {
	r, g, b, _ := color.NRGBAModel.Convert(src).RGBA()

	return Color{R: float64(r>>8) / 255, G: float64(g>>8) / 255, B: float64(b>>8) / 255}
}

// Hex renders c as #rrggbb.
func (c Color) Hex() string {
	rgba := c.RGBA()

	rgb, err := colors.RGB(rgba.R, rgba.G, rgba.B)
	if err != nil {
		return "#000000"
	}

	return rgb.ToHEX().String()
}

// ParseHex parses a #rgb or #rrggbb string.
func ParseHex(s string) (Color, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return Black, errors.Wrapf(err, "unable to parse colour %q", s)
	}

	rgb := hex.ToRGB()

	return Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
