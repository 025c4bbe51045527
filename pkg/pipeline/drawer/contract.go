package drawer

import (
	"time"

	"github.com/askiada/imagecraft/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a filter to the pipeline drawer.
	AddStep(name string) error
	// AddLink adds a link between two consecutive filters.
	AddLink(parentName, childName string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
	// SetTotalTime sets the total time displayed next to a filter.
	SetTotalTime(name string, total time.Duration) error
	// AddMeasure adds a measure to the pipeline drawer.
	AddMeasure(measure measure.Measure) error
}
