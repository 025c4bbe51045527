package drawer

import (
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/pipeline/measure"
	"github.com/askiada/imagecraft/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m     measure.Measure
	total time.Duration
}

func (pd *pipelineDrawer) addStep(name string) error {
	err := pd.AddStep(name)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) addLink(parentName, childName string) error {
	err := pd.AddLink(parentName, childName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) New() error {
	err := pd.addStep(model.StartFilter.ID())
	if err != nil {
		return errors.Wrap(err, "unable to add start filter to drawer")
	}

	err = pd.addStep(model.EndFilter.ID())
	if err != nil {
		return errors.Wrap(err, "unable to add end filter to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareFilter(parentFilter, filter *model.FilterInfo) error {
	err := pd.addStep(filter.ID())
	if err != nil {
		return err
	}

	return pd.addLink(parentFilter.ID(), filter.ID())
}

func (pd *pipelineDrawer) OnFilterOutput(parentFilter, filter *model.FilterInfo, computationDuration time.Duration, pixels int) error {
	return nil
}

func (pd *pipelineDrawer) AfterApply(lastFilter *model.FilterInfo, totalDuration time.Duration) error {
	pd.total = totalDuration

	return pd.addLink(lastFilter.ID(), model.EndFilter.ID())
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.SetTotalTime(model.EndFilter.ID(), pd.total)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the pipeline after every apply. measure may be nil.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
