package measure_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/imagecraft/pkg/filter"
	"github.com/askiada/imagecraft/pkg/pipeline"
	"github.com/askiada/imagecraft/pkg/pipeline/measure"
	"github.com/askiada/imagecraft/pkg/pixel"
)

func TestAddMetricReturnsSameMetric(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	first := m.AddMetric("grayscale")
	second := m.AddMetric("grayscale")

	assert.Same(t, first, second)
	assert.Same(t, first, m.GetMetric("grayscale"))
	assert.Nil(t, m.GetMetric("unknown"))
	assert.Len(t, m.AllMetrics(), 1)
}

func TestMetric(t *testing.T) {
	t.Parallel()

	mt := measure.NewDefaultMeasure().AddMetric("blur")
	assert.Equal(t, time.Duration(0), mt.AVGDuration())
	assert.Zero(t, mt.Throughput())

	mt.AddDuration(2*time.Second, 1000)
	mt.AddDuration(4*time.Second, 1000)

	assert.Equal(t, int64(2), mt.Runs())
	assert.Equal(t, 3*time.Second, mt.AVGDuration())
	assert.InDelta(t, 2000.0/6, mt.Throughput(), 1e-9)

	mt.SetTotalDuration(time.Minute)
	assert.Equal(t, time.Minute, mt.GetTotalDuration())
}

func TestMetricConcurrentUse(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				m.AddMetric("median").AddDuration(time.Millisecond, 1)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(800), m.GetMetric("median").Runs())
	assert.Equal(t, time.Millisecond, m.GetMetric("median").AVGDuration())
}

func TestPipelineMeasure(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()

	pipe, err := pipeline.New(pipeline.WithHooks(measure.PipelineMeasure(m)))
	require.NoError(t, err)
	pipe.Add(filter.Grayscale{}, "")
	pipe.Add(filter.Grayscale{}, "")
	pipe.Add(filter.Sharpen{}, "")

	img, err := pixel.New(4, 4)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = pipe.Apply(context.Background(), img)
		require.NoError(t, err)
	}

	all := m.AllMetrics()
	assert.Len(t, all, 5)

	for _, name := range []string{"1. grayscale", "2. grayscale", "3. sharpening"} {
		require.Contains(t, all, name)
		assert.Equal(t, int64(2), all[name].Runs(), name)
	}

	assert.Equal(t, int64(0), all["start"].Runs())
	assert.Greater(t, all["end"].GetTotalDuration(), time.Duration(0))
}
