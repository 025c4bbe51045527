package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/filter"
	"github.com/askiada/imagecraft/pkg/pipeline/model"
	"github.com/askiada/imagecraft/pkg/pixel"
)

const unnamed = "unnamed"

type entry struct {
	filter filter.Filter
	info   *model.FilterInfo
}

// Pipeline is an ordered list of filters.
type Pipeline struct {
	entries    []entry
	opts       []model.PipelineOption
	logger     *slog.Logger
	concurrent int
}

// New creates an empty pipeline.
func New(opts ...Option) (*Pipeline, error) {
	pipe := &Pipeline{concurrent: 1}
	for _, opt := range opts {
		opt(pipe)
	}

	for _, opt := range pipe.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// Add appends f to the pipeline. An empty name defaults to the filter kind. A nil filter is ignored.
func (p *Pipeline) Add(f filter.Filter, name string) {
	if f == nil {
		return
	}

	if name == "" {
		name = string(f.Kind())
	}

	if name == "" {
		name = unnamed
	}

	p.entries = append(p.entries, entry{
		filter: f,
		info: &model.FilterInfo{
			Index: len(p.entries) + 1,
			Name:  name,
			Kind:  string(f.Kind()),
		},
	})
}

// AddKind builds the filter of the given kind and appends it under its kind name.
func (p *Pipeline) AddKind(kind filter.Kind, params filter.Params) error {
	f, err := filter.New(kind, params)
	if err != nil {
		return errors.Wrap(err, "unable to add filter")
	}

	p.Add(f, "")

	return nil
}

// Len returns the number of filters.
func (p *Pipeline) Len() int {
	return len(p.entries)
}

// Names returns the filter names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.info.Name
	}

	return names
}

// Clear removes every filter.
func (p *Pipeline) Clear() {
	p.entries = nil
}

func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}

	return Logger()
}

// Apply runs every filter on img in the order they were added and returns img.
func (p *Pipeline) Apply(ctx context.Context, img *pixel.Buffer) (*pixel.Buffer, error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if img == nil {
		return nil, ErrImageMustBeSet
	}

	startTime := time.Now()
	parent := model.StartFilter

	for _, e := range p.entries {
		err := p.applyFilter(ctx, parent, e, img)
		if err != nil {
			return nil, err
		}

		parent = e.info
	}

	for _, opt := range p.opts {
		err := opt.AfterApply(parent, time.Since(startTime))
		if err != nil {
			return nil, errors.Wrap(err, "unable to run after apply function")
		}
	}

	err := p.finishRun()
	if err != nil {
		return nil, err
	}

	return img, nil
}

func (p *Pipeline) applyFilter(ctx context.Context, parent *model.FilterInfo, e entry, img *pixel.Buffer) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "filter %s", e.info.ID())
	}

	p.log().InfoContext(ctx, "applying filter", slog.Int("index", e.info.Index), slog.String("name", e.info.Name))

	for _, opt := range p.opts {
		err := opt.PrepareFilter(parent, e.info)
		if err != nil {
			return errors.Wrap(err, "unable to run before filter function")
		}
	}

	startFn := time.Now()

	err := e.filter.Apply(ctx, img, p.concurrent)
	if err != nil {
		return errors.Wrapf(err, "filter %s", e.info.ID())
	}

	endFn := time.Since(startFn)
	pixels := img.Width() * img.Height()

	p.log().DebugContext(ctx, "filter applied",
		slog.Int("index", e.info.Index),
		slog.String("name", e.info.Name),
		slog.Duration("elapsed", endFn),
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()),
	)

	for _, opt := range p.opts {
		err := opt.OnFilterOutput(parent, e.info, endFn, pixels)
		if err != nil {
			return errors.Wrap(err, "unable to run after filter function")
		}
	}

	return nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
