// Package layout computes a complete mosaic layout for a sectioned,
// vertically scrolling collection and answers frame queries against it.
//
// # Overview
//
// A [Builder] is created from a [DataSource] (section and item counts plus
// the viewport width) and a set of [Option] hooks that supply per-section
// and per-item overrides. Every hook has a default, so a bare data source is
// enough to produce a layout:
//
//	b := layout.New(layout.Counts(300, 12, 4),
//	    layout.WithInterItemSpacing(func(int) float64 { return 2 }),
//	    layout.WithHeaderSize(func(int) (geom.Size, bool) { return geom.Size{Height: 40}, true }),
//	)
//	res, err := b.Prepare()
//
// # Layout Pass
//
// [Builder.Prepare] runs one full pass:
//
//  1. For each item a candidate tile size is chosen. Items with a declared
//     custom size become [grid.CustomOverride]; otherwise one big square is
//     placed for every grid-width items consumed. The candidate is then
//     checked against the item's allowed sizes, falling back to the first
//     allowed size.
//  2. Each section is packed with [grid.Place] and converted to pixels with
//     [frame.Compose], stacking sections top to bottom.
//  3. Item frames are indexed by their top edge for range queries.
//
// # Queries
//
// Prepare returns an immutable [*Result]. All query methods are safe on a
// nil Result and return empty values, so a caller that queries before the
// first pass completes gets an empty layout rather than a panic.
//
// [Result.FramesIntersecting] binary-searches the index over a window that
// starts one probe height above the probe rectangle, so tall items anchored
// above the viewport are still reported.
package layout
