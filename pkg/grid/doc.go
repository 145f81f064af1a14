// Package grid packs mosaic tiles onto an integer grid.
//
// # Overview
//
// A section of a mosaic is a column of fixed width (three grid units by
// default) that grows downward as items are added. Every item carries a
// [TileSize] that fixes its footprint in grid units:
//
//   - [SmallSquare]: 1×1
//   - [BigSquare]: 2×2
//   - [SmallBanner]: the full grid width × 1
//   - [CustomOverride]: same footprint as a banner; its pixel size is
//     supplied later by the caller
//
// [Place] maps an ordered list of [CellItem] values to an ordered list of
// [Rect] values, one per item and in the same order. Positions are found by
// shelf packing: each tile takes the first free slot scanning left to right,
// top to bottom, so holes left by big tiles are filled by later small ones.
//
// # Alternation
//
// Big squares alternate between the left and right edge of the grid. When a
// big square would land on the same edge as the previous one, the engine
// tries the opposite edge. If exactly one small square blocks that slot the
// small square is bumped and re-placed after the big square lands; otherwise
// the big square moves to the nearest free slot on the opposite edge.
//
// # Determinism
//
// [Place] is a pure function of its inputs. The same items and grid width
// always produce the same rectangles, and no two returned rectangles
// overlap.
package grid
