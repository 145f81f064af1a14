// Package frame converts packed grid sections into pixel geometry and
// aggregates them into an immutable frame tree.
//
// # Composing a Section
//
// [Compose] scales one [grid.Section] to pixels. The grid unit is
//
//	scale = (contentWidth - inset.Left - inset.Right - interItem*(gridWidth-1)) / gridWidth
//
// and a grid rectangle (gx, gy, gw, gh) maps to
//
//	x = inset.Left + gx*(scale+interItem)
//	y = cellsTop + gy*(scale+line) + shift
//	w = gw*scale + (gw-1)*interItem
//	h = gh*scale + (gh-1)*line
//
// where cellsTop sits below the header and the top inset. A custom-sized
// item keeps exactly its declared pixel size; every cell on a later grid row
// is pushed down by the difference between that height and the height the
// grid would have given it. The push is applied once per custom item.
//
// The header is placed at the section's top edge, the footer below the
// lowest cell plus the bottom inset.
//
// # Frame Tree
//
// A [Section] frame is always the union of its header, cells and footer,
// and a [Tree] frame is the union of its section frames. Both are derived on
// construction and never set directly, so adding a child can only grow a
// container. [Tree.Append] and [Tree.Replace] return new trees; existing
// values are never modified and may be shared across goroutines.
package frame
