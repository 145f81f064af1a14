// Package sink provides output format renderers for mosaic layouts.
//
// # Overview
//
// A "sink" transforms a [document.Layout] into a final output format:
//
//   - SVG: one rectangle per cell, header and footer
//   - JSON: the layout document itself
//
// # SVG Output
//
// [RenderSVG] draws every frame in content coordinates. Cells are coloured
// by tile size in the [Simple] style; the [Wireframe] style draws outlines
// only, which is handy when checking spacing and insets.
//
//	svg := sink.RenderSVG(doc,
//	    sink.WithStyle(sink.Wireframe{}),
//	    sink.WithLabels(),
//	    sink.WithSectionFrames(),
//	)
//
// # JSON Output
//
// [RenderJSON] serializes the document, optionally recording the style
// name used for rendering.
//
// [document.Layout]: github.com/matzehuels/mosaic/pkg/document.Layout
package sink
