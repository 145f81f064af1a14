package layout

import (
	"github.com/matzehuels/mosaic/pkg/frame"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

// Result is the immutable outcome of one layout pass. It is safe for
// concurrent readers. Every method accepts a nil receiver and then reports
// an empty layout.
type Result struct {
	tree         frame.Tree
	grids        []*grid.Section
	index        []indexEntry
	contentSize  geom.Size
	contentWidth float64
	gridWidth    int
}

// Tree returns the frame tree.
func (r *Result) Tree() frame.Tree {
	if r == nil {
		return frame.Tree{}
	}
	return r.tree
}

// Sections returns the packed grid of every section.
func (r *Result) Sections() []*grid.Section {
	if r == nil {
		return nil
	}
	return r.grids
}

// GridWidth returns the grid width used for the pass.
func (r *Result) GridWidth() int {
	if r == nil {
		return 0
	}
	return r.gridWidth
}

// ContentWidth returns the width available to sections.
func (r *Result) ContentWidth() float64 {
	if r == nil {
		return 0
	}
	return r.contentWidth
}

// ItemCount returns the total number of items across sections.
func (r *Result) ItemCount() int {
	if r == nil {
		return 0
	}
	return len(r.index)
}

// ContentSize returns the scrollable size of the layout: the far corner of
// the frame tree's union. Insets below or right of the last frame do not
// count, and a layout without frames has zero size.
func (r *Result) ContentSize() geom.Size {
	if r == nil {
		return geom.Size{}
	}
	return r.contentSize
}

// FrameForItem returns the frame of the item at path.
func (r *Result) FrameForItem(path IndexPath) (geom.Rect, bool) {
	if r == nil {
		return geom.Rect{}, false
	}
	sec, ok := r.tree.Section(path.Section)
	if !ok {
		return geom.Rect{}, false
	}
	return sec.Cell(path.Item)
}

// FrameForSupplementary returns the header or footer frame of a section.
// It reports false with a zero rect when the section has none.
func (r *Result) FrameForSupplementary(kind Kind, section int) (geom.Rect, bool) {
	if r == nil {
		return geom.Rect{}, false
	}
	sec, ok := r.tree.Section(section)
	if !ok {
		return geom.Rect{}, false
	}
	switch kind {
	case KindHeader:
		return sec.Header()
	case KindFooter:
		return sec.Footer()
	}
	return geom.Rect{}, false
}

// ContainerFrame returns the frame of a whole section, header and footer
// included.
func (r *Result) ContainerFrame(section int) (geom.Rect, bool) {
	if r == nil {
		return geom.Rect{}, false
	}
	sec, ok := r.tree.Section(section)
	if !ok {
		return geom.Rect{}, false
	}
	return sec.Frame(), true
}

// FramesIntersecting returns the elements visible in rect. Cells are
// selected by top edge over [rect.MinY()-rect.Height, rect.MaxY()] in index
// order; headers and footers that intersect rect follow in section order.
func (r *Result) FramesIntersecting(rect geom.Rect) []Attributes {
	if r == nil {
		return nil
	}
	var out []Attributes
	for _, e := range window(r.index, rect.MinY()-rect.Height, rect.MaxY()) {
		out = append(out, Attributes{Kind: KindCell, Path: e.path, Frame: e.frame})
	}
	for s, sec := range r.tree.Sections() {
		if h, ok := sec.Header(); ok && h.Intersects(rect) {
			out = append(out, Attributes{Kind: KindHeader, Path: IndexPath{Section: s}, Frame: h})
		}
		if f, ok := sec.Footer(); ok && f.Intersects(rect) {
			out = append(out, Attributes{Kind: KindFooter, Path: IndexPath{Section: s}, Frame: f})
		}
	}
	return out
}

// All returns every element of the layout in section order: header, cells,
// footer.
func (r *Result) All() []Attributes {
	if r == nil {
		return nil
	}
	var out []Attributes
	for s, sec := range r.tree.Sections() {
		if h, ok := sec.Header(); ok {
			out = append(out, Attributes{Kind: KindHeader, Path: IndexPath{Section: s}, Frame: h})
		}
		for i, c := range sec.Cells() {
			out = append(out, Attributes{Kind: KindCell, Path: IndexPath{Section: s, Item: i}, Frame: c})
		}
		if f, ok := sec.Footer(); ok {
			out = append(out, Attributes{Kind: KindFooter, Path: IndexPath{Section: s}, Frame: f})
		}
	}
	return out
}
