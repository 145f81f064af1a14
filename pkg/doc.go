// Package pkg holds the mosaic libraries.
//
// # Overview
//
// Mosaic lays out sectioned, vertically scrolling collections on a tile
// grid. Items are packed as 1x1 squares, 2x2 squares, full-width banners or
// custom-height rows, then converted to pixel frames with section headers,
// footers, insets and spacing.
//
// # Architecture
//
//	scene file (JSON, TOML, YAML)
//	         ↓
//	    [scene] decode + validate
//	         ↓
//	    [layout] Builder → [grid] placement → [frame] composition
//	         ↓
//	    [document] serializable layout
//	         ↓
//	    [render] SVG, JSON, DOT, tree, PDF, PNG
//
// [pipeline] runs these steps with caching from [cache]; [server] exposes
// them over HTTP with [storage] for saved layouts; [observability] carries
// the hooks both report through.
//
// # Quick Start
//
//	sc, _ := scene.Load("photos.toml")
//	res, _ := sc.Builder().Prepare()
//	for _, a := range res.FramesIntersecting(geom.NewRect(0, 0, 375, 800)) {
//		fmt.Println(a.Kind, a.Path, a.Frame)
//	}
package pkg
