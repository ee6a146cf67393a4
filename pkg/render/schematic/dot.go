package schematic

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mtkb13/framegen/pkg/model"
	"github.com/mtkb13/framegen/pkg/render"
)

// Options configures schematic rendering.
type Options struct {
	// Labels draws joint ids next to each joint.
	// When false, joints are bare points.
	Labels bool

	// Scale sets drawing units per model unit. Zero means 0.5, which
	// renders a 30-unit truss about 15 inches wide.
	Scale float64
}

// roleColors maps each member role to its line color. Chords and primary
// frame members draw dark, web and secondary members lighter, so the load
// path reads at a glance.
var roleColors = map[model.Role]string{
	model.RoleChordTop:    "#1a5fb4",
	model.RoleChordBottom: "#26a269",
	model.RoleDiagonal:    "#e66100",
	model.RoleVertical:    "#c64600",
	model.RoleColumn:      "#241f31",
	model.RoleRafter:      "#813d9c",
	model.RolePurlin:      "#986a44",
	model.RoleBracing:     "#9a9996",
	model.RolePlateEdge:   "#77767b",
}

// cabinet projection constants: half-scale receding axis at 35 degrees.
var (
	recedeX = math.Cos(35*math.Pi/180) / 2
	recedeY = math.Sin(35*math.Pi/180) / 2
)

// project maps a joint to flat drawing coordinates.
func project(j model.Joint) (px, py float64) {
	return j.X + j.Z*recedeX, j.Y + j.Z*recedeY
}

// ToDOT converts a model to Graphviz DOT format with every joint pinned at
// its projected position. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(m *model.Model, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = 0.5
	}

	var buf bytes.Buffer
	buf.WriteString("graph model {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.06, color=\"#241f31\"];\n")
	buf.WriteString("  edge [penwidth=1.6];\n")
	buf.WriteString("\n")

	for _, j := range m.Joints {
		px, py := project(j)
		fmt.Fprintf(&buf, "  %d [pos=\"%.3f,%.3f!\"", j.ID, px*scale, py*scale)
		if opts.Labels {
			fmt.Fprintf(&buf, ", shape=plaintext, label=\"%d\", fontsize=10", j.ID)
		}
		buf.WriteString("];\n")
	}

	buf.WriteString("\n")
	for _, mb := range m.Members {
		fmt.Fprintf(&buf, "  %d -- %d [color=%q];\n", mb.Start, mb.End, roleColors[mb.Role])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT schematic to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT schematic as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT schematic as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
