package measure

import (
	"time"

	"github.com/askiada/imagecraft/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartFilter.ID())
	pm.AddMetric(model.EndFilter.ID())

	return nil
}

func (pm *pipelineMeasure) PrepareFilter(parentFilter, filter *model.FilterInfo) error {
	pm.AddMetric(filter.ID())

	return nil
}

func (pm *pipelineMeasure) OnFilterOutput(parentFilter, filter *model.FilterInfo, computationDuration time.Duration, pixels int) error {
	pm.AddMetric(filter.ID()).AddDuration(computationDuration, pixels)

	return nil
}

func (pm *pipelineMeasure) AfterApply(lastFilter *model.FilterInfo, totalDuration time.Duration) error {
	pm.AddMetric(model.EndFilter.ID()).SetTotalDuration(totalDuration)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records the duration of every filter into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
