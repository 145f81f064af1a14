package frame

import (
	"slices"

	"github.com/matzehuels/mosaic/pkg/geom"
)

// Section is the pixel geometry of one section: a frame per cell plus
// optional header and footer frames. The zero value is an empty section.
type Section struct {
	cells  []geom.Rect
	header geom.Rect
	footer geom.Rect
	frame  geom.Rect
	extent float64
}

// NewSection derives a section from its children. A header or footer with
// no area is treated as absent.
func NewSection(cells []geom.Rect, header, footer geom.Rect) Section {
	s := Section{
		cells:  slices.Clone(cells),
		header: header,
		footer: footer,
	}
	s.frame = geom.UnionAll(header, footer)
	for _, c := range s.cells {
		s.frame = s.frame.Union(c)
	}
	s.extent = s.frame.MaxY()
	return s
}

// Frame returns the union of all children.
func (s Section) Frame() geom.Rect { return s.frame }

// Extent returns the y coordinate where the next section starts. It
// includes the bottom inset, so it can lie below Frame().MaxY().
func (s Section) Extent() float64 { return s.extent }

// Len returns the number of cells.
func (s Section) Len() int { return len(s.cells) }

// Cell returns the frame of item i.
func (s Section) Cell(i int) (geom.Rect, bool) {
	if i < 0 || i >= len(s.cells) {
		return geom.Rect{}, false
	}
	return s.cells[i], true
}

// Cells returns a copy of all cell frames in item order.
func (s Section) Cells() []geom.Rect { return slices.Clone(s.cells) }

// Header returns the header frame, if the section has one.
func (s Section) Header() (geom.Rect, bool) { return present(s.header) }

// Footer returns the footer frame, if the section has one.
func (s Section) Footer() (geom.Rect, bool) { return present(s.footer) }

func present(r geom.Rect) (geom.Rect, bool) {
	if r.IsEmpty() {
		return geom.Rect{}, false
	}
	return r, true
}
