// Package schematic renders structural models as line schematics.
//
// # Overview
//
// This package produces member-line drawings using Graphviz: joints appear
// as points pinned at their projected coordinates and members as lines
// colored by role. Because every node carries a fixed position the diagram
// is a true-to-geometry schematic, not an abstract graph layout.
//
// # Usage
//
// Convert a model to DOT format, then render to SVG:
//
//	dot := schematic.ToDOT(m, schematic.Options{})
//	svg, err := schematic.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := schematic.RenderPDF(dot)
//	png, err := schematic.RenderPNG(dot, 2.0)  // 2x scale
//
// # Projection
//
// Models are three dimensional; the schematic is flat. The cabinet
// projection maps (x, y, z) to (x + z·cos35°/2, y + z·sin35°/2), which
// leaves planar models (trusses, portal frames) undistorted and gives
// spatial models (warehouse frames, building grids) a readable oblique
// view.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source with neato layout and
// pinned node positions, so it can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package schematic
