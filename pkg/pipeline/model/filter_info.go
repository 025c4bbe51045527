package model

import "strconv"

// FilterInfo describes a filter registered in a pipeline.
type FilterInfo struct {
	// Index is the 1-based position of the filter, 0 for the start and end markers.
	Index int
	Name  string
	Kind  string
}

// ID identifies the filter in a pipeline, two filters may share the same name.
func (fi *FilterInfo) ID() string {
	if fi.Index == 0 {
		return fi.Name
	}

	return strconv.Itoa(fi.Index) + ". " + fi.Name
}

var (
	StartFilter = &FilterInfo{Name: "start"}
	EndFilter   = &FilterInfo{Name: "end"}
)
