// Package cli parses the imagecraft command line.
//
// Filters use an ordered single-dash syntax where each filter may consume the following tokens as
// parameters, for example "-crop 800 600 -gs -blur 1.5". They are extracted first, in order, and the
// remaining arguments go through a pflag.FlagSet.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/askiada/imagecraft/pkg/filter"
)

var (
	ErrHelp               = errors.New("help requested")
	ErrUnknownFilter      = errors.New("unknown filter")
	ErrMissingValue       = errors.New("missing filter parameter")
	ErrBadValue           = errors.New("bad filter parameter")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrMissingFiles       = errors.New("input and output files are required")
)

// Args holds the parsed command line.
type Args struct {
	Input  string
	Output string
	// Filters are in command-line order.
	Filters     []filter.Filter
	Recipe      string
	Graph       string
	Concurrency int
	Verbose     bool
	Quiet       bool
}

type filterFlag struct {
	kind  filter.Kind
	usage string
	parse func(f filterFlag, tokens []string) (filter.Filter, int, error)
}

var filterFlags = map[string]filterFlag{
	"-crop":     {kind: filter.KindCrop, usage: "-crop <width> <height>", parse: parseCrop},
	"-gs":       {kind: filter.KindGrayscale, usage: "-gs", parse: parseNoValue},
	"-neg":      {kind: filter.KindNegative, usage: "-neg", parse: parseNoValue},
	"-sharp":    {kind: filter.KindSharpen, usage: "-sharp", parse: parseNoValue},
	"-edge":     {kind: filter.KindEdgeDetect, usage: "-edge <threshold>", parse: parseEdge},
	"-med":      {kind: filter.KindMedian, usage: "-med <window_size>", parse: parseMedian},
	"-blur":     {kind: filter.KindGaussianBlur, usage: "-blur <sigma>", parse: parseBlur},
	"-sepia":    {kind: filter.KindSepia, usage: "-sepia", parse: parseNoValue},
	"-vignette": {kind: filter.KindVignette, usage: "-vignette [intensity]", parse: parseVignette},
	"-resize":   {kind: filter.KindResize, usage: "-resize <width> <height>", parse: parseResize},
}

// filterOrder is the order filters are listed in the help text.
var filterOrder = []string{"-crop", "-gs", "-neg", "-sharp", "-edge", "-med", "-blur", "-sepia", "-vignette", "-resize"}

var filterHelp = map[string]string{
	"-crop":     "Crop image",
	"-gs":       "Convert to grayscale",
	"-neg":      "Convert to negative",
	"-sharp":    "Apply sharpening",
	"-edge":     "Edge detection",
	"-med":      "Median filter",
	"-blur":     "Gaussian blur",
	"-sepia":    "Apply sepia tone",
	"-vignette": "Apply vignette effect (default: 0.8)",
	"-resize":   "Resize image (nearest neighbour)",
}

// NewFlagSet returns the flag set holding the non-filter flags, bound to args.
func NewFlagSet(args *Args) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("imagecraft", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&args.Recipe, "recipe", "", "YAML recipe file, its filters run before the command-line ones")
	flagSet.StringVar(&args.Graph, "graph", "", "write the executed pipeline as a DOT graph to this file")
	flagSet.IntVar(&args.Concurrency, "concurrency", 1, "maximum number of goroutines used by each filter")
	flagSet.BoolVar(&args.Verbose, "verbose", false, "log the duration of every filter")
	flagSet.BoolVar(&args.Quiet, "quiet", false, "only print errors")
	flagSet.BoolP("help", "h", false, "show help")

	return flagSet
}

// Parse parses the command line, without the program name. It returns ErrHelp when -h or --help is
// given. Every filter is validated.
func Parse(arguments []string) (*Args, error) {
	args := &Args{}
	flagSet := NewFlagSet(args)

	rest, err := args.extractFilters(arguments)
	if err != nil {
		return nil, err
	}

	if err := flagSet.Parse(rest); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}

		return nil, errors.Wrap(err, "unable to parse flags")
	}

	if help, _ := flagSet.GetBool("help"); help {
		return nil, ErrHelp
	}

	positional := flagSet.Args()
	if len(positional) > 2 {
		return nil, errors.Wrap(ErrUnexpectedArgument, positional[2])
	}

	if len(positional) < 2 {
		return nil, ErrMissingFiles
	}

	args.Input, args.Output = positional[0], positional[1]

	if args.Verbose && args.Quiet {
		return nil, errors.New("--verbose and --quiet are mutually exclusive")
	}

	return args, nil
}

// extractFilters moves the filter tokens into args.Filters and returns the other tokens.
func (args *Args) extractFilters(arguments []string) ([]string, error) {
	var rest []string

	for i := 0; i < len(arguments); i++ {
		token := arguments[i]

		if token == "--" {
			rest = append(rest, arguments[i:]...)

			break
		}

		ff, ok := filterFlags[token]
		if !ok {
			if isSingleDash(token) && token != "-h" {
				return nil, errors.Wrap(ErrUnknownFilter, token)
			}

			rest = append(rest, token)

			continue
		}

		f, consumed, err := ff.parse(ff, arguments[i+1:])
		if err != nil {
			return nil, errors.Wrapf(err, "%s", ff.usage)
		}

		if err := filter.Validate(f); err != nil {
			return nil, errors.Wrapf(err, "%s", token)
		}

		args.Filters = append(args.Filters, f)
		i += consumed
	}

	return rest, nil
}

func isSingleDash(token string) bool {
	return len(token) > 1 && token[0] == '-' && token[1] != '-'
}

func parseNoValue(ff filterFlag, _ []string) (filter.Filter, int, error) {
	f, err := filter.New(ff.kind, filter.Params{})

	return f, 0, err
}

func parseCrop(ff filterFlag, tokens []string) (filter.Filter, int, error) {
	width, height, err := parseSize(tokens)
	if err != nil {
		return nil, 0, err
	}

	return filter.Crop{Width: width, Height: height}, 2, nil
}

func parseResize(ff filterFlag, tokens []string) (filter.Filter, int, error) {
	width, height, err := parseSize(tokens)
	if err != nil {
		return nil, 0, err
	}

	return filter.Resize{Width: width, Height: height}, 2, nil
}

func parseSize(tokens []string) (int, int, error) {
	if len(tokens) < 2 {
		return 0, 0, ErrMissingValue
	}

	width, err := parseInt(tokens[0])
	if err != nil {
		return 0, 0, err
	}

	height, err := parseInt(tokens[1])
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

func parseEdge(_ filterFlag, tokens []string) (filter.Filter, int, error) {
	threshold, err := firstFloat(tokens)
	if err != nil {
		return nil, 0, err
	}

	return filter.EdgeDetect{Threshold: threshold}, 1, nil
}

func parseMedian(_ filterFlag, tokens []string) (filter.Filter, int, error) {
	if len(tokens) == 0 {
		return nil, 0, ErrMissingValue
	}

	window, err := parseInt(tokens[0])
	if err != nil {
		return nil, 0, err
	}

	return filter.Median{Window: window}, 1, nil
}

func parseBlur(_ filterFlag, tokens []string) (filter.Filter, int, error) {
	sigma, err := firstFloat(tokens)
	if err != nil {
		return nil, 0, err
	}

	return filter.GaussianBlur{Sigma: sigma}, 1, nil
}

// parseVignette reads the optional intensity, present when the next token is a number or does not
// start with '-'.
func parseVignette(_ filterFlag, tokens []string) (filter.Filter, int, error) {
	if len(tokens) == 0 || (strings.HasPrefix(tokens[0], "-") && !isNumber(tokens[0])) {
		return filter.NewVignette(), 0, nil
	}

	intensity, err := firstFloat(tokens)
	if err != nil {
		return nil, 0, err
	}

	return filter.Vignette{Intensity: intensity}, 1, nil
}

func isNumber(token string) bool {
	_, err := strconv.ParseFloat(token, 64)

	return err == nil
}

func firstFloat(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrMissingValue
	}

	v, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadValue, "%q is not a number", tokens[0])
	}

	return v, nil
}

func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Wrapf(ErrBadValue, "%q is not an integer", token)
	}

	return v, nil
}

// PrintHelp writes the usage of imagecraft to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `ImageCraft - Image Processing Tool

Usage:
  imagecraft <input.bmp> <output.bmp> [filters...] [flags]
  imagecraft info <input.bmp>

Filters, applied in the order given:
`)

	for _, name := range filterOrder {
		fmt.Fprintf(w, "  %-26s%s\n", filterFlags[name].usage, filterHelp[name])
	}

	fmt.Fprint(w, `
Examples:
  imagecraft input.bmp output.bmp -crop 800 600 -gs
  imagecraft input.bmp output.bmp -blur 0.5 -sharp
  imagecraft input.bmp output.bmp -edge 0.1
  imagecraft input.bmp output.bmp --recipe recipe.yaml -vignette 0.5

Flags:
`)

	flagSet := NewFlagSet(&Args{})
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
