package cli

import (
	"context"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	modelio "github.com/mtkb13/framegen/pkg/io"
	"github.com/mtkb13/framegen/pkg/model"
	"github.com/mtkb13/framegen/pkg/render/elevation"
	"github.com/mtkb13/framegen/pkg/render/schematic"
)

const defaultPNGScale = 2.0 // raster scale for PNG output

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "dot", "pdf", "png"
	labels  bool     // annotate joints with their identifiers
	scale   float64  // schematic scale factor, model units to layout inches
	ascii   bool     // print a terminal elevation instead of writing files
}

// newRenderCmd creates the render command for drawing saved models.
// It reads a model JSON document and renders a wireframe schematic in
// one or more output formats.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a model file as a wireframe schematic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "annotate joints with their identifiers")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "schematic scale factor (default 0.5)")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "print a terminal elevation instead of writing files")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "dot": true, "pdf": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// format extension, that extension is stripped. Used when generating multiple
// files (e.g. frame.svg, frame.pdf).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the model from input and renders it to the requested formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	m, err := modelio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s model: %d joints, %d members, %d plates",
		m.Kind, len(m.Joints), len(m.Members), len(m.Plates))

	if opts.ascii {
		fmt.Print(elevation.Draw(m, elevation.Options{}))
		return nil
	}

	if len(opts.formats) == 1 {
		return renderSingle(ctx, m, opts.formats[0], input, opts)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		if err := renderAndWrite(ctx, m, format, fmt.Sprintf("%s.%s", base, format), opts); err != nil {
			return err
		}
	}
	return nil
}

// renderSingle renders one format to a single output file. If opts.output is
// empty, the output path is derived from the input file name.
func renderSingle(ctx context.Context, m *model.Model, format, input string, opts *renderOpts) error {
	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + format
	}
	return renderAndWrite(ctx, m, format, outputPath, opts)
}

// renderAndWrite renders one format and writes it to path.
func renderAndWrite(ctx context.Context, m *model.Model, format, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderModel(ctx, m, format, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", format, err)
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	logger.Infof("Generated %s", path)
	return nil
}

// renderModel dispatches to the schematic renderer for the given format.
func renderModel(ctx context.Context, m *model.Model, format string, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	dot := schematic.ToDOT(m, schematic.Options{Labels: opts.labels, Scale: opts.scale})

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		logger.Info("Rendering schematic SVG")
		return schematic.RenderSVG(dot)
	case "pdf":
		logger.Info("Rendering schematic PDF")
		return schematic.RenderPDF(dot)
	case "png":
		logger.Info("Rendering schematic PNG")
		return schematic.RenderPNG(dot, defaultPNGScale)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ goio.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (goio.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
