package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/imagecraft/internal/store"
	"github.com/askiada/imagecraft/pkg/pipeline/measure"
)

// DOTDrawer is a drawer that writes the pipeline graph in the Graphviz DOT language.
// Filters are listed in the order they were added.
type DOTDrawer struct {
	store       *store.OrderedStore[string, string]
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	st := store.NewOrderedStore[string, string]()

	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       st,
		graph:       graph.NewWithStore(graph.StringHash, graph.Store[string, string](st), graph.Directed()),
	}
}

// AddStep adds a filter to the pipeline graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name, graph.VertexAttribute("shape", "box"))
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between two consecutive filters.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates the DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.dotFileName)
	}

	return errors.Wrapf(file.Close(), "unable to close file %s", d.dotFileName)
}

// Render writes the pipeline graph to wrt.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	return dot[string, string](d.store, d.graph.Traits().IsDirected, wrt, GraphAttribute("rankdir", "LR"))
}

// SetTotalTime sets the total time displayed next to a filter.
func (d *DOTDrawer) SetTotalTime(name string, total time.Duration) error {
	err := d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "total: " + total.String()
	})
	if err != nil {
		return errors.Wrapf(err, "unable to set total time of %s", name)
	}

	return nil
}

const maxRGB = 240

// AddMeasure colours every filter from blue (fastest) to red (slowest) and labels it with its
// average duration.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var minValue, maxValue time.Duration

	first := true

	for _, metric := range metrics {
		avg := metric.AVGDuration()
		if metric.Runs() == 0 {
			continue
		}

		if first || avg < minValue {
			minValue = avg
		}

		if first || avg > maxValue {
			maxValue = avg
		}

		first = false
	}

	for name, metric := range metrics {
		if metric.Runs() == 0 {
			continue
		}

		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(metric.AVGDuration()-minValue) / float64(maxValue-minValue)
		}

		colour, err := heatColour(fraction)
		if err != nil {
			return err
		}

		err = d.updateMetric(name, metric, colour)
		if err != nil {
			return errors.Wrap(err, "unable to update metrics")
		}
	}

	return nil
}

func heatColour(fraction float64) (string, error) {
	red := maxRGB * fraction
	blue := maxRGB - red

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

func (d *DOTDrawer) updateMetric(name string, metric measure.Metric, colour string) error {
	err := d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
		label := metric.AVGDuration().String()
		if metric.Runs() > 1 {
			label += fmt.Sprintf(" x%d", metric.Runs())
		}

		if throughput := metric.Throughput(); throughput > 0 {
			label += fmt.Sprintf(", %.1f Mpx/s", throughput/1e6)
		}

		p.Attributes["xlabel"] = label
		p.Attributes["color"] = colour
		p.Attributes["fontcolor"] = colour
	})
	if errors.Is(err, graph.ErrVertexNotFound) {
		return nil
	}

	return errors.Wrapf(err, "unable to update vertex %s", name)
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](st graph.Store[K, T], directed bool, wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(st, directed, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the DOT description.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](st graph.Store[K, T], directed bool, options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if directed {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	vertices, err := st.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}

	for _, vertex := range vertices {
		_, sourceProperties, err := st.Vertex(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, v)

				continue
			}

			sourceAttributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})
	}

	edges, err := st.ListEdges()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list edges")
	}

	for _, edge := range edges {
		desc.Statements = append(desc.Statements, statement{
			Source:         edge.Source,
			Target:         edge.Target,
			EdgeWeight:     edge.Properties.Weight,
			EdgeAttributes: edge.Properties.Attributes,
		})
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
