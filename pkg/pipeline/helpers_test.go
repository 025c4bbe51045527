package pipeline_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/imagecraft/pkg/filter"
	"github.com/askiada/imagecraft/pkg/pipeline/model"
	"github.com/askiada/imagecraft/pkg/pixel"
)

func newImage(t *testing.T, width, height int, c pixel.Color) *pixel.Buffer {
	t.Helper()

	img, err := pixel.New(width, height)
	require.NoError(t, err)
	img.Fill(c)

	return img
}

func gradient(t *testing.T, width, height int) *pixel.Buffer {
	t.Helper()

	img, err := pixel.New(width, height)
	require.NoError(t, err)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, pixel.RGB(float64(x)/float64(width), float64(y)/float64(height), float64((x*7+y*3)%11)/10))
		}
	}

	return img
}

// recordingFilter appends its name to calls when applied.
type recordingFilter struct {
	name  string
	mu    *sync.Mutex
	calls *[]string
	err   error
}

func (recordingFilter) Kind() filter.Kind { return "" }

func (f recordingFilter) Apply(ctx context.Context, img *pixel.Buffer, concurrent int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	*f.calls = append(*f.calls, f.name)

	return f.err
}

// recordingOption records every hook call.
type recordingOption struct {
	calls   []string
	failOn  string
	durs    []time.Duration
	pixels  []int
	lastEnd string
}

func (o *recordingOption) record(call string) error {
	o.calls = append(o.calls, call)
	if call == o.failOn {
		return fmt.Errorf("failed on %s", call)
	}

	return nil
}

func (o *recordingOption) New() error {
	return o.record("new")
}

func (o *recordingOption) PrepareFilter(parentFilter, filter *model.FilterInfo) error {
	return o.record("prepare " + parentFilter.ID() + " -> " + filter.ID())
}

func (o *recordingOption) OnFilterOutput(parentFilter, filter *model.FilterInfo, computationDuration time.Duration, pixels int) error {
	o.durs = append(o.durs, computationDuration)
	o.pixels = append(o.pixels, pixels)

	return o.record("output " + filter.ID())
}

func (o *recordingOption) AfterApply(lastFilter *model.FilterInfo, totalDuration time.Duration) error {
	o.lastEnd = lastFilter.ID()

	return o.record("after " + lastFilter.ID())
}

func (o *recordingOption) Finish() error {
	return o.record("finish")
}

var _ model.PipelineOption = (*recordingOption)(nil)
