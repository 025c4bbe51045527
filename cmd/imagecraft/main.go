// imagecraft reads a 24-bit BMP image, applies an ordered list of filters and writes the result as a
// 24-bit BMP image.
//
//	imagecraft input.bmp output.bmp -crop 800 600 -gs
//	imagecraft info input.bmp
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/internal/cli"
	"github.com/askiada/imagecraft/internal/recipe"
	"github.com/askiada/imagecraft/pkg/bitmap"
	"github.com/askiada/imagecraft/pkg/pipeline"
	"github.com/askiada/imagecraft/pkg/pipeline/drawer"
	"github.com/askiada/imagecraft/pkg/pipeline/measure"
	"github.com/askiada/imagecraft/pkg/pipeline/model"
)

var errNotBitmap = errors.New("not a valid BMP file")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, arguments []string, stdout, stderr io.Writer) error {
	if len(arguments) == 0 {
		cli.PrintHelp(stdout)

		return cli.ErrMissingFiles
	}

	if arguments[0] == "info" {
		return runInfo(arguments[1:], stdout)
	}

	args, err := cli.Parse(arguments)
	if errors.Is(err, cli.ErrHelp) {
		cli.PrintHelp(stdout)

		return nil
	}

	if err != nil {
		return err
	}

	logger := newLogger(stderr, args)

	pipe, err := buildPipeline(args, logger)
	if err != nil {
		return err
	}

	ok, err := bitmap.SniffFile(args.Input)
	if err != nil {
		return err
	}

	if !ok {
		return errors.Wrap(errNotBitmap, args.Input)
	}

	logger.InfoContext(ctx, "reading image", slog.String("path", args.Input))

	img, err := bitmap.ReadFile(args.Input)
	if err != nil {
		return errors.Wrapf(err, "cannot read image from %s", args.Input)
	}

	logger.InfoContext(ctx, fmt.Sprintf("Image loaded: %d x %d pixels", img.Width(), img.Height()))

	if pipe.Len() > 0 {
		logger.InfoContext(ctx, fmt.Sprintf("Applying %d filter(s)", pipe.Len()))
	} else {
		logger.InfoContext(ctx, "No filters specified, saving original image")
	}

	// An empty pipeline still runs so the graph option sees start and end.
	img, err = pipe.Apply(ctx, img)
	if err != nil {
		return errors.Wrap(err, "unable to apply filters")
	}

	logger.InfoContext(ctx, "saving image", slog.String("path", args.Output))

	err = bitmap.WriteFile(args.Output, img)
	if err != nil {
		return errors.Wrapf(err, "cannot save image to %s", args.Output)
	}

	if !args.Quiet {
		fmt.Fprintln(stdout, "Done!")
	}

	return nil
}

func newLogger(w io.Writer, args *cli.Args) *slog.Logger {
	level := slog.LevelInfo

	switch {
	case args.Verbose:
		level = slog.LevelDebug
	case args.Quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func buildPipeline(args *cli.Args, logger *slog.Logger) (*pipeline.Pipeline, error) {
	var entries []recipe.Entry

	if args.Recipe != "" {
		r, err := recipe.Load(args.Recipe)
		if err != nil {
			return nil, err
		}

		entries, err = r.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "recipe %s", args.Recipe)
		}
	}

	for _, f := range args.Filters {
		entries = append(entries, recipe.Entry{Filter: f})
	}

	var hooks []model.PipelineOption

	if args.Graph != "" {
		m := measure.NewDefaultMeasure()
		hooks = append(hooks, measure.PipelineMeasure(m), drawer.PipelineDrawer(drawer.NewDOTDrawer(args.Graph), m))
	}

	pipe, err := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithConcurrency(args.Concurrency),
		pipeline.WithHooks(hooks...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	for _, e := range entries {
		pipe.Add(e.Filter, e.Name)
	}

	return pipe, nil
}

func runInfo(arguments []string, stdout io.Writer) error {
	if len(arguments) != 1 {
		return errors.Wrap(cli.ErrMissingFiles, "usage: imagecraft info <input.bmp>")
	}

	path := arguments[0]

	fh, ih, err := bitmap.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read headers of %s", path)
	}

	width, height := ih.Dimensions()
	rowOrder := "bottom-up"

	if ih.Height < 0 {
		rowOrder = "top-down"
	}

	fmt.Fprintf(stdout, "File:         %s\n", path)
	fmt.Fprintf(stdout, "Size:         %d bytes\n", fh.FileSize)
	fmt.Fprintf(stdout, "Data offset:  %d\n", fh.DataOffset)
	fmt.Fprintf(stdout, "Dimensions:   %d x %d pixels\n", width, height)
	fmt.Fprintf(stdout, "Row order:    %s\n", rowOrder)
	fmt.Fprintf(stdout, "Bits/pixel:   %d\n", ih.BitsPerPixel)
	fmt.Fprintf(stdout, "Compression:  %d\n", ih.Compression)
	fmt.Fprintf(stdout, "Resolution:   %d x %d pixels/m\n", ih.XPixelsPerMeter, ih.YPixelsPerMeter)

	if err := ih.Validate(); err != nil {
		fmt.Fprintf(stdout, "Supported:    no (%v)\n", err)

		return nil
	}

	fmt.Fprintln(stdout, "Supported:    yes")

	return nil
}
