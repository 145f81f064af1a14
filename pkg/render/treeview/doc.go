// Package treeview renders the frame tree of a layout as a Graphviz diagram.
//
// The diagram has one node for the layout, one per section and one per
// header, cell and footer, connected top-down in the order a renderer
// would visit them. It is a debugging aid: it shows how items were grouped,
// which tile size each one received and, in detailed mode, the frames.
//
//	dot := treeview.ToDOT(doc, treeview.Options{Detailed: true})
//	svg, err := treeview.RenderSVG(ctx, dot)
package treeview
