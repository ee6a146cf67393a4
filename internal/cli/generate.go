package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mtkb13/framegen/pkg/cache"
	"github.com/mtkb13/framegen/pkg/export/staad"
	modelio "github.com/mtkb13/framegen/pkg/io"
	"github.com/mtkb13/framegen/pkg/model"
	"github.com/mtkb13/framegen/pkg/render/elevation"
	"github.com/mtkb13/framegen/pkg/render/schematic"
	"github.com/mtkb13/framegen/pkg/topology"
)

// Output formats for the generate command.
const (
	formatJSON  = "json"
	formatSTAAD = "staad"
	formatDOT   = "dot"
	formatSVG   = "svg"
)

// formatExts maps output formats to file extensions.
var formatExts = map[string]string{
	formatJSON:  "json",
	formatSTAAD: "std",
	formatDOT:   "dot",
	formatSVG:   "svg",
}

// generateOpts holds the flags shared by every generate subcommand.
type generateOpts struct {
	output  string // output file path, derived from kind and format when empty
	format  string // output format: json, staad, dot, svg
	ascii   bool   // print a terminal elevation of the result
	preset  string // preset reference: path or path#name
	noCache bool   // bypass the generation cache
	zUp     bool   // STAAD export with Z as the vertical axis
	support string // STAAD support type: pinned or fixed
}

// addGenerateFlags registers the shared flags on a generate subcommand.
func addGenerateFlags(cmd *cobra.Command, opts *generateOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <kind>.<ext>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, staad, dot, svg")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "print a terminal elevation preview")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "load parameters from a TOML preset (path or path#name)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the generation cache")
	cmd.Flags().BoolVar(&opts.zUp, "z-up", false, "export STAAD with Z as the vertical axis")
	cmd.Flags().StringVar(&opts.support, "support", "pinned", "STAAD support type: pinned, fixed")
}

// newGenerateCmd creates the generate command with one subcommand per
// topology kind.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a structural topology",
		Long: `Generate synthesizes a structural model from parameters.

Each topology kind is a subcommand with its own dimension flags. The
result is written as model JSON by default; --format selects STAAD input
text or schematic output instead, and --ascii prints a terminal
elevation for a quick look.`,
	}

	for _, kind := range []topology.Kind{
		topology.KindWarren, topology.KindPratt, topology.KindHowe, topology.KindBowstring,
	} {
		cmd.AddCommand(newTrussCmd(kind))
	}
	cmd.AddCommand(newPortalCmd())
	cmd.AddCommand(newWarehouseCmd())
	cmd.AddCommand(newGridCmd())
	cmd.AddCommand(newPlateCmd())

	return cmd
}

func newTrussCmd(kind topology.Kind) *cobra.Command {
	var opts generateOpts
	p := topology.Params{Kind: kind, Span: 24, Height: 3, Panels: 6}

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Generate a %s truss", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.Flags(), p, &opts)
		},
	}

	cmd.Flags().Float64Var(&p.Span, "span", p.Span, "truss span")
	cmd.Flags().Float64Var(&p.Height, "height", p.Height, "truss height")
	cmd.Flags().IntVar(&p.Panels, "panels", p.Panels, "panel count")
	addGenerateFlags(cmd, &opts)
	return cmd
}

func newPortalCmd() *cobra.Command {
	var opts generateOpts
	p := topology.Params{Kind: topology.KindPortal, Span: 6, Height: 4}

	cmd := &cobra.Command{
		Use:   string(topology.KindPortal),
		Short: "Generate a single portal frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.Flags(), p, &opts)
		},
	}

	cmd.Flags().Float64Var(&p.Span, "span", p.Span, "frame span")
	cmd.Flags().Float64Var(&p.Height, "height", p.Height, "column height")
	addGenerateFlags(cmd, &opts)
	return cmd
}

func newWarehouseCmd() *cobra.Command {
	var opts generateOpts
	p := topology.Params{
		Kind: topology.KindWarehouse,
		Bays: 4, BaySpacing: 25, Width: 60, EaveHeight: 20, RidgeHeight: 28,
	}

	cmd := &cobra.Command{
		Use:   string(topology.KindWarehouse),
		Short: "Generate a multi-bay gabled warehouse frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.Flags(), p, &opts)
		},
	}

	cmd.Flags().IntVar(&p.Bays, "bays", p.Bays, "bay count along the building")
	cmd.Flags().Float64Var(&p.BaySpacing, "bay-spacing", p.BaySpacing, "frame spacing")
	cmd.Flags().Float64Var(&p.Width, "width", p.Width, "building width")
	cmd.Flags().Float64Var(&p.EaveHeight, "eave-height", p.EaveHeight, "eave height")
	cmd.Flags().Float64Var(&p.RidgeHeight, "ridge-height", p.RidgeHeight, "ridge height")
	cmd.Flags().BoolVar(&p.Purlins, "purlins", false, "add intermediate roof purlin lines")
	cmd.Flags().Float64Var(&p.PurlinSpacing, "purlin-spacing", 0, "purlin spacing along the slope")
	cmd.Flags().BoolVar(&p.Bracing, "bracing", false, "add roof bracing")
	addGenerateFlags(cmd, &opts)
	return cmd
}

func newGridCmd() *cobra.Command {
	var opts generateOpts
	p := topology.Params{
		Kind:  topology.KindGrid,
		BaysX: 3, BaysZ: 2, Stories: 4, BayWidth: 6, BayDepth: 5, StoryHeight: 3.2,
	}

	cmd := &cobra.Command{
		Use:   string(topology.KindGrid),
		Short: "Generate a multi-story building grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.Flags(), p, &opts)
		},
	}

	cmd.Flags().IntVar(&p.BaysX, "bays-x", p.BaysX, "bay count along x")
	cmd.Flags().IntVar(&p.BaysZ, "bays-z", p.BaysZ, "bay count along z")
	cmd.Flags().IntVar(&p.Stories, "stories", p.Stories, "story count")
	cmd.Flags().Float64Var(&p.BayWidth, "bay-width", p.BayWidth, "bay width along x")
	cmd.Flags().Float64Var(&p.BayDepth, "bay-depth", p.BayDepth, "bay depth along z")
	cmd.Flags().Float64Var(&p.StoryHeight, "story-height", p.StoryHeight, "story height")
	addGenerateFlags(cmd, &opts)
	return cmd
}

func newPlateCmd() *cobra.Command {
	var opts generateOpts
	p := topology.Params{
		Kind:       topology.KindPlate,
		WallHeight: 4, WallWidth: 6, SlabLength: 8, SlabWidth: 3,
	}

	cmd := &cobra.Command{
		Use:   string(topology.KindPlate),
		Short: "Generate a wall and slab plate mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.Flags(), p, &opts)
		},
	}

	cmd.Flags().Float64Var(&p.WallHeight, "wall-height", p.WallHeight, "wall height")
	cmd.Flags().Float64Var(&p.WallWidth, "wall-width", p.WallWidth, "wall width")
	cmd.Flags().Float64Var(&p.SlabLength, "slab-length", p.SlabLength, "slab length")
	cmd.Flags().Float64Var(&p.SlabWidth, "slab-width", p.SlabWidth, "slab width")
	addGenerateFlags(cmd, &opts)
	return cmd
}

// runGenerate resolves the final parameter set, generates (or loads from
// cache), and writes the requested output.
func runGenerate(ctx context.Context, flags *pflag.FlagSet, p topology.Params, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	ext, ok := formatExts[opts.format]
	if !ok {
		return fmt.Errorf("invalid format: %s (must be 'json', 'staad', 'dot', or 'svg')", opts.format)
	}

	if opts.preset != "" {
		merged, err := applyPreset(p, opts.preset, flags)
		if err != nil {
			return err
		}
		p = merged
		logger.Debugf("Applied preset %s", opts.preset)
	}

	prog := newProgress(logger)
	m, cached, err := generateCached(ctx, p, opts.noCache)
	if err != nil {
		printError("%s", err)
		return err
	}
	prog.done(fmt.Sprintf("Generated %s: %d joints, %d members", m.Kind, len(m.Joints), len(m.Members)))

	output := opts.output
	if output == "" {
		output = fmt.Sprintf("%s.%s", p.Kind, ext)
	}
	if err := writeOutput(m, output, opts); err != nil {
		return err
	}

	printSuccess("Generated %s model", m.Kind)
	printStats(len(m.Joints), len(m.Members), len(m.Plates), cached)
	printFile(output)

	if opts.ascii {
		fmt.Println()
		fmt.Print(elevation.Draw(m, elevation.Options{}))
	}
	return nil
}

// generateCached returns the model for p, loading the cached document when
// one exists. The second return reports whether the cache was hit.
func generateCached(ctx context.Context, p topology.Params, noCache bool) (*model.Model, bool, error) {
	c := newCache(noCache)
	defer c.Close()

	key := cache.ParamsKey(p)
	if doc, ok, err := c.Get(ctx, key); err == nil && ok {
		var m model.Model
		if err := json.Unmarshal(doc, &m); err == nil {
			return &m, true, nil
		}
	}

	m, err := topology.Generate(p)
	if err != nil {
		return nil, false, err
	}
	if doc, err := json.Marshal(m); err == nil {
		_ = c.Set(ctx, key, doc, 0)
	}
	return m, false, nil
}

// writeOutput serializes the model in the requested format.
func writeOutput(m *model.Model, path string, opts *generateOpts) error {
	switch opts.format {
	case formatJSON:
		return modelio.ExportJSON(m, path)
	case formatSTAAD:
		staadOpts := staad.Options{Support: staad.Support(strings.ToUpper(opts.support))}
		if opts.zUp {
			staadOpts.VerticalAxis = staad.AxisZ
		}
		return staad.Export(m, path, staadOpts)
	case formatDOT:
		return os.WriteFile(path, []byte(schematic.ToDOT(m, schematic.Options{})), 0644)
	case formatSVG:
		svg, err := schematic.RenderSVG(schematic.ToDOT(m, schematic.Options{}))
		if err != nil {
			return err
		}
		return os.WriteFile(path, svg, 0644)
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
