package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineFilterOption
	pipelineApplyOption

	// Finish runs after every apply of the pipeline.
	Finish() error
}

// pipelineFilterOption defines the interface for filter options at the pipeline level.
type pipelineFilterOption interface {
	// PrepareFilter runs before the filter is applied. parentFilter is the filter applied just before,
	// or StartFilter.
	PrepareFilter(parentFilter, filter *FilterInfo) error
	// OnFilterOutput runs once the filter has mutated the image.
	OnFilterOutput(parentFilter, filter *FilterInfo, computationDuration time.Duration, pixels int) error
}

// pipelineApplyOption defines the interface for options run once all the filters are applied.
type pipelineApplyOption interface {
	// AfterApply runs after the last filter. lastFilter is StartFilter when the pipeline is empty.
	AfterApply(lastFilter *FilterInfo, totalDuration time.Duration) error
}
