// Package render turns layout documents into visual outputs.
//
// # Overview
//
// Rendering works on [document.Layout] values rather than live layout
// results, so stored or cached layouts can be re-rendered at any time.
//
//   - [sink]: SVG drawing of every frame and the JSON document
//   - [treeview]: Graphviz view of the frame tree (sections, headers,
//     cells, footers)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(doc, sink.WithLabels())
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [document.Layout]: github.com/matzehuels/mosaic/pkg/document.Layout
package render
