// Package render provides visualization rendering for structural models.
//
// # Overview
//
// This package contains the rendering pipeline that turns generated models
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Geometry-true line schematics (in [schematic] subpackage)
//   - Terminal elevation drawings (in [elevation] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The schematic renderer
// uses these for its PDF and PNG outputs.
//
//	dot := schematic.ToDOT(m, schematic.Options{})
//	svg, err := schematic.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Schematics
//
// The [schematic] subpackage renders models through Graphviz with every
// joint pinned at its projected coordinate, producing a line drawing of
// the actual geometry with members colored by role.
//
// # Elevations
//
// The [elevation] subpackage draws a model's XY elevation as plain text
// for terminal preview, used by the interactive designer and the
// generate command's ASCII output.
//
// [schematic]: github.com/mtkb13/framegen/pkg/render/schematic
// [elevation]: github.com/mtkb13/framegen/pkg/render/elevation
package render
