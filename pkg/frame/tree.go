package frame

import (
	"slices"

	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
)

// Tree is the immutable aggregate of all section frames.
type Tree struct {
	sections []Section
	frame    geom.Rect
}

// NewTree builds a tree from sections in scroll order.
func NewTree(sections ...Section) Tree {
	t := Tree{sections: slices.Clone(sections)}
	t.reunion()
	return t
}

func (t *Tree) reunion() {
	t.frame = geom.Rect{}
	for _, s := range t.sections {
		t.frame = t.frame.Union(s.Frame())
	}
}

// Append returns a new tree with s added after the existing sections.
func (t Tree) Append(s Section) Tree {
	out := Tree{sections: append(slices.Clip(t.sections), s)}
	out.frame = t.frame.Union(s.Frame())
	return out
}

// Replace returns a new tree with section i swapped for s. The frame is
// recomputed from scratch.
func (t Tree) Replace(i int, s Section) (Tree, error) {
	if i < 0 || i >= len(t.sections) {
		return t, errs.New(errs.ErrCodeInvalidInput, "section %d out of range [0,%d)", i, len(t.sections))
	}
	out := Tree{sections: slices.Clone(t.sections)}
	out.sections[i] = s
	out.reunion()
	return out, nil
}

// Frame returns the union of all section frames.
func (t Tree) Frame() geom.Rect { return t.frame }

// ContentSize returns the extent of the tree measured from the origin.
func (t Tree) ContentSize() geom.Size {
	if t.frame.IsEmpty() {
		return geom.Size{}
	}
	return geom.Size{Width: t.frame.MaxX(), Height: t.frame.MaxY()}
}

// Len returns the number of sections.
func (t Tree) Len() int { return len(t.sections) }

// Section returns section i.
func (t Tree) Section(i int) (Section, bool) {
	if i < 0 || i >= len(t.sections) {
		return Section{}, false
	}
	return t.sections[i], true
}

// Sections returns a copy of the section list.
func (t Tree) Sections() []Section { return slices.Clone(t.sections) }
