// Package filter implements the pixel filters of imagecraft.
//
// Every filter mutates a pixel.Buffer in place. Neighbourhood filters (sharpening, edge detection,
// median and gaussian blur) read from a snapshot taken before writing and clamp neighbour coordinates
// to the image edge, so running rows on several goroutines gives the same result as a sequential run.
//
// Filters never fail because of their parameters: a value outside the domain of a filter turns it into
// a no-op. Callers that want to report such values use Validate before running the filter.
package filter
