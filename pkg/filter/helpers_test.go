package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/imagecraft/pkg/pixel"
)

func newBuffer(t *testing.T, width, height int) *pixel.Buffer {
	t.Helper()

	buf, err := pixel.New(width, height)
	require.NoError(t, err)

	return buf
}

func fill(t *testing.T, width, height int, c pixel.Color) *pixel.Buffer {
	t.Helper()

	buf := newBuffer(t, width, height)
	buf.Fill(c)

	return buf
}

// noisy returns a deterministic buffer with every channel varying between neighbours.
func noisy(t *testing.T, width, height int) *pixel.Buffer {
	t.Helper()

	buf := newBuffer(t, width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, pixel.RGB(
				float64((x*31+y*17)%101)/100,
				float64((x*7+y*53)%89)/88,
				float64((x*x+y*3)%13)/12,
			))
		}
	}

	return buf
}
