// Package recipe loads ordered filter lists from YAML files.
//
//	filters:
//	  - kind: crop
//	    width: 800
//	    height: 600
//	  - kind: gaussian_blur
//	    sigma: 1.5
//	  - kind: vignette
//	    name: soft vignette
//	    intensity: 0.5
package recipe

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/imagecraft/pkg/filter"
)

// Recipe is an ordered list of filters.
type Recipe struct {
	Filters []Step `yaml:"filters"`
}

// Step describes one filter. Only the fields used by Kind are read.
type Step struct {
	Kind      filter.Kind `yaml:"kind"`
	Name      string      `yaml:"name,omitempty"`
	Width     int         `yaml:"width,omitempty"`
	Height    int         `yaml:"height,omitempty"`
	Window    int         `yaml:"window,omitempty"`
	Threshold float64     `yaml:"threshold,omitempty"`
	Sigma     float64     `yaml:"sigma,omitempty"`
	// Intensity defaults to filter.DefaultVignetteIntensity.
	Intensity *float64 `yaml:"intensity,omitempty"`
}

// Entry is a built filter with its display name. An empty name stands for the filter kind.
type Entry struct {
	Name   string
	Filter filter.Filter
}

// Load reads and parses the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read recipe %s", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "recipe %s", path)
	}

	return r, nil
}

// Parse parses a recipe document. Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	r := &Recipe{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "unable to decode recipe")
	}

	return r, nil
}

// Build creates and validates the filters of r in order.
func (r *Recipe) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(r.Filters))

	for i, step := range r.Filters {
		f, err := step.filter()
		if err != nil {
			return nil, errors.Wrapf(err, "filter %d", i+1)
		}

		entries = append(entries, Entry{Name: step.Name, Filter: f})
	}

	return entries, nil
}

func (s Step) filter() (filter.Filter, error) {
	intensity := filter.DefaultVignetteIntensity
	if s.Intensity != nil {
		intensity = *s.Intensity
	}

	f, err := filter.New(s.Kind, filter.Params{
		Width:     s.Width,
		Height:    s.Height,
		Window:    s.Window,
		Threshold: s.Threshold,
		Sigma:     s.Sigma,
		Intensity: intensity,
	})
	if err != nil {
		return nil, err
	}

	err = filter.Validate(f)
	if err != nil {
		return nil, err
	}

	return f, nil
}
