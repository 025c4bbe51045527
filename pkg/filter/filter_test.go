package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	params := Params{Width: 3, Height: 2, Window: 5, Threshold: 0.25, Sigma: 1.5, Intensity: 0.6}

	expected := map[Kind]Filter{
		KindCrop:         Crop{Width: 3, Height: 2},
		KindGrayscale:    Grayscale{},
		KindNegative:     Negative{},
		KindSharpen:      Sharpen{},
		KindEdgeDetect:   EdgeDetect{Threshold: 0.25},
		KindMedian:       Median{Window: 5},
		KindGaussianBlur: GaussianBlur{Sigma: 1.5},
		KindSepia:        Sepia{},
		KindVignette:     Vignette{Intensity: 0.6},
		KindResize:       Resize{Width: 3, Height: 2},
	}
	require.Len(t, Kinds(), len(expected))

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			f, err := New(kind, params)
			require.NoError(t, err)
			assert.Equal(t, expected[kind], f)
			assert.Equal(t, kind, f.Kind())
			assert.NoError(t, Validate(f))
		})
	}

	_, err := New("blur", params)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		filter      Filter
		expectedErr bool
	}{
		"grayscale has no parameters": {filter: Grayscale{}},
		"crop zero width":             {filter: Crop{Width: 0, Height: 3}, expectedErr: true},
		"crop larger than image":      {filter: Crop{Width: 1e6, Height: 1e6}},
		"edge threshold above one":    {filter: EdgeDetect{Threshold: 1.5}, expectedErr: true},
		"edge threshold negative":     {filter: EdgeDetect{Threshold: -0.1}, expectedErr: true},
		"median even window":          {filter: Median{Window: 4}, expectedErr: true},
		"median zero window":          {filter: Median{Window: 0}, expectedErr: true},
		"median window one":           {filter: Median{Window: 1}},
		"blur zero sigma":             {filter: GaussianBlur{Sigma: 0}, expectedErr: true},
		"blur negative sigma":         {filter: GaussianBlur{Sigma: -2}, expectedErr: true},
		"blur max sigma":              {filter: GaussianBlur{Sigma: MaxSigma}},
		"blur huge sigma":             {filter: GaussianBlur{Sigma: 1e9}, expectedErr: true},
		"vignette default":            {filter: NewVignette()},
		"resize negative":             {filter: Resize{Width: -1, Height: 2}, expectedErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.filter)
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestInvalidParametersAreNoOps(t *testing.T) {
	for name, f := range map[string]Filter{
		"crop":      Crop{Width: 0, Height: 2},
		"median":    Median{Window: 2},
		"blur":      GaussianBlur{Sigma: 0},
		"huge blur": GaussianBlur{Sigma: 1e9},
		"resize":    Resize{Width: 3, Height: 0},
	} {
		t.Run(name, func(t *testing.T) {
			img := noisy(t, 5, 4)
			before := img.Copy()

			require.NoError(t, f.Apply(context.Background(), img, 1))
			assert.True(t, before.Equal(img, 0))
		})
	}
}

func TestConcurrentMatchesSequential(t *testing.T) {
	filters := []Filter{
		Grayscale{}, Negative{}, Sepia{}, NewVignette(), Sharpen{},
		EdgeDetect{Threshold: 0.1}, Median{Window: 3}, Median{Window: 5},
		GaussianBlur{Sigma: 1.2}, Crop{Width: 9, Height: 7}, Resize{Width: 30, Height: 4},
	}

	for _, f := range filters {
		t.Run(string(f.Kind()), func(t *testing.T) {
			sequential := noisy(t, 17, 13)
			concurrent := sequential.Copy()

			require.NoError(t, f.Apply(context.Background(), sequential, 1))
			require.NoError(t, f.Apply(context.Background(), concurrent, 4))
			assert.True(t, sequential.Equal(concurrent, 0))
		})
	}
}

func TestApplyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, concurrent := range []int{1, 3} {
		for _, f := range []Filter{Grayscale{}, Sharpen{}, Median{Window: 3}, GaussianBlur{Sigma: 1}, Crop{Width: 1, Height: 1}} {
			err := f.Apply(ctx, noisy(t, 8, 8), concurrent)
			assert.ErrorIs(t, err, context.Canceled, "%s with %d goroutines", f.Kind(), concurrent)
		}
	}
}
