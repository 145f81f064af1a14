package layout

import (
	"cmp"
	"slices"
	"sort"

	"github.com/matzehuels/mosaic/pkg/frame"
	"github.com/matzehuels/mosaic/pkg/geom"
)

type indexEntry struct {
	path  IndexPath
	frame geom.Rect
}

// buildIndex flattens every cell frame and sorts by top edge. Ties keep
// item order.
func buildIndex(tree frame.Tree) []indexEntry {
	var entries []indexEntry
	for s, sec := range tree.Sections() {
		for i, f := range sec.Cells() {
			entries = append(entries, indexEntry{path: IndexPath{Section: s, Item: i}, frame: f})
		}
	}
	slices.SortStableFunc(entries, func(a, b indexEntry) int {
		return cmp.Compare(a.frame.MinY(), b.frame.MinY())
	})
	return entries
}

// window returns the entries whose top edge lies in [lo, hi].
func window(entries []indexEntry, lo, hi float64) []indexEntry {
	start := sort.Search(len(entries), func(i int) bool { return entries[i].frame.MinY() >= lo })
	end := sort.Search(len(entries), func(i int) bool { return entries[i].frame.MinY() > hi })
	if start >= end {
		return nil
	}
	return entries[start:end]
}
