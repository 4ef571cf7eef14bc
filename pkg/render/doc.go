// Package render draws projects as SVG and converts SVG to PDF and PNG.
//
// # SVG
//
// [RenderSVG] writes every element on a visible layer in z order, bottom
// first. Coordinates are drawing units with y pointing down, so arcs sweep
// with SVG's positive-angle flag set:
//
//	svg := render.RenderSVG(project, render.WithBackground("#ffffff"))
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
package render
