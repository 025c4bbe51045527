// Package pipeline provides an ordered pipeline of image filters.
//
// A pipeline holds filters in the order they were added and applies them one after the other to the
// same pixel.Buffer. Each filter sees the output of the previous one. Filters that change the image
// size, such as crop, replace the buffer content in place so the caller keeps a single buffer.
//
// Before running a filter the pipeline logs its 1-based position and its name at info level through
// log/slog. The package logger is silent until SetLogger is called; WithLogger overrides it for one
// pipeline.
//
// Options implementing model.PipelineOption are notified before and after every filter. The measure
// package uses these hooks to time filters and the drawer package to render the executed pipeline as
// a graph.
//
// A filter with parameters outside its domain leaves the image untouched instead of failing the run.
// Apply only fails when its context is cancelled, a filter returns an error or an option hook fails.
package pipeline
