package filter

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/pixel"
)

var (
	ErrUnknownKind      = errors.New("unknown filter kind")
	ErrInvalidParameter = errors.New("invalid filter parameter")
)

// Kind identifies a filter variant. Its value is also the default display name of the filter.
type Kind string

const (
	KindCrop         Kind = "crop"
	KindGrayscale    Kind = "grayscale"
	KindNegative     Kind = "negative"
	KindSharpen      Kind = "sharpening"
	KindEdgeDetect   Kind = "edge_detection"
	KindMedian       Kind = "median"
	KindGaussianBlur Kind = "gaussian_blur"
	KindSepia        Kind = "sepia"
	KindVignette     Kind = "vignette"
	KindResize       Kind = "resize"
)

// Kinds lists every filter kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindCrop, KindGrayscale, KindNegative, KindSharpen, KindEdgeDetect,
		KindMedian, KindGaussianBlur, KindSepia, KindVignette, KindResize,
	}
}

// Filter mutates an image in place.
//
// Apply only fails when ctx is cancelled. A filter holding parameters outside its domain leaves the
// image untouched and returns nil. concurrent is the maximum number of goroutines the filter may use;
// values below 2 run sequentially.
type Filter interface {
	Kind() Kind
	Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error
}

// Validator is implemented by filters that take parameters.
type Validator interface {
	// Validate returns an error wrapping ErrInvalidParameter when the parameters are outside the
	// domain of the filter.
	Validate() error
}

// Validate checks the parameters of f, if it has any.
func Validate(f Filter) error {
	v, ok := f.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// Params carries the parameters of any filter kind. Each kind reads only the fields it needs.
type Params struct {
	Width     int
	Height    int
	Window    int
	Threshold float64
	Sigma     float64
	Intensity float64
}

// New builds the filter of the given kind.
func New(kind Kind, params Params) (Filter, error) {
	switch kind {
	case KindCrop:
		return Crop{Width: params.Width, Height: params.Height}, nil
	case KindGrayscale:
		return Grayscale{}, nil
	case KindNegative:
		return Negative{}, nil
	case KindSharpen:
		return Sharpen{}, nil
	case KindEdgeDetect:
		return EdgeDetect{Threshold: params.Threshold}, nil
	case KindMedian:
		return Median{Window: params.Window}, nil
	case KindGaussianBlur:
		return GaussianBlur{Sigma: params.Sigma}, nil
	case KindSepia:
		return Sepia{}, nil
	case KindVignette:
		return Vignette{Intensity: params.Intensity}, nil
	case KindResize:
		return Resize{Width: params.Width, Height: params.Height}, nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

func invalid(kind Kind, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, "%s: "+format, append([]interface{}{kind}, args...)...)
}
