package filter

import (
	"context"
	"sort"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// Median replaces every pixel with the per-channel median of its Window x Window neighbourhood.
//
// Channels are sorted independently, so the result can be a colour that does not appear in the
// neighbourhood. Window must be odd and positive, otherwise Apply does nothing.
type Median struct {
	Window int
}

func (Median) Kind() Kind { return KindMedian }

func (m Median) Validate() error {
	if m.Window < 1 || m.Window%2 == 0 {
		return invalid(KindMedian, "window must be an odd positive integer, got %d", m.Window)
	}

	return nil
}

func (m Median) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	if m.Validate() != nil {
		return nil
	}

	src := img.Copy()
	width := img.Width()
	half := m.Window / 2
	count := m.Window * m.Window

	return forEachRow(ctx, img.Height(), concurrent, func(y int) {
		reds := make([]float64, count)
		greens := make([]float64, count)
		blues := make([]float64, count)

		for x := 0; x < width; x++ {
			i := 0
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					c := src.AtClamped(x+dx, y+dy)
					reds[i], greens[i], blues[i] = c.R, c.G, c.B
					i++
				}
			}

			sort.Float64s(reds)
			sort.Float64s(greens)
			sort.Float64s(blues)

			img.Set(x, y, pixel.RGB(reds[count/2], greens[count/2], blues[count/2]))
		}
	})
}
