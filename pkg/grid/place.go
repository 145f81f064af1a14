package grid

import (
	errs "github.com/matzehuels/mosaic/pkg/errors"
)

const (
	// DefaultWidth is the grid width used when none is configured.
	DefaultWidth = 3
	// MinWidth is the narrowest grid that fits a banner next to nothing and a
	// big square next to a small one.
	MinWidth = 3
)

// ValidateWidth checks that a grid of the given width can hold every tile.
func ValidateWidth(gridWidth int) error {
	if gridWidth < MinWidth {
		return errs.New(errs.ErrCodeInvalidGrid, "grid width %d is below minimum %d", gridWidth, MinWidth)
	}
	return nil
}

// Place assigns a grid rectangle to every item. The result has the same
// length and order as items.
//
// Placement is first-fit in scan order (x then y). Big squares additionally
// try to alternate between the left and right edges; see the package
// documentation.
func Place(items []CellItem, gridWidth int) ([]Rect, error) {
	if err := ValidateWidth(gridWidth); err != nil {
		return nil, err
	}
	p := &placer{
		width:  gridWidth,
		items:  items,
		placed: make([]Rect, len(items)),
	}
	p.run()
	return p.placed, nil
}

// placer holds one run of the packing algorithm. Slots for items that have
// not been placed yet (or were bumped) hold the zero Rect, which never
// intersects anything.
type placer struct {
	width  int
	items  []CellItem
	placed []Rect
}

func (p *placer) run() {
	if len(p.items) == 0 {
		return
	}

	// The first big square is expected on the right unless the section opens
	// with a small square.
	last := AlignRight
	if p.items[0].Size() == SmallSquare {
		last = AlignLeft
	}

	for i, item := range p.items {
		natural := p.nextFree(i)
		if item.Size() != BigSquare {
			p.placed[i] = natural
			continue
		}

		align := alignmentOf(natural.X, p.width)
		switch align {
		case AlignNone:
			p.placed[i] = natural
		case last:
			last = p.alternate(i, natural, align.Opposite())
		default:
			p.placed[i] = natural
			last = align
		}
	}
}

// nextFree scans for the first slot where item i fits.
func (p *placer) nextFree(i int) Rect {
	w, h := p.items[i].Size().GridSize(p.width)
	cand := Rect{W: w, H: h}
	for p.occupied(cand) {
		cand.X++
		if cand.X+cand.W > p.width {
			cand.X = 0
			cand.Y++
		}
	}
	return cand
}

func (p *placer) occupied(r Rect) bool {
	for _, q := range p.placed {
		if q.Intersects(r) {
			return true
		}
	}
	return false
}

func (p *placer) hits(r Rect) []int {
	var out []int
	for j, q := range p.placed {
		if q.Intersects(r) {
			out = append(out, j)
		}
	}
	return out
}

// alternate places big square i against the target edge. A left target is
// tried on the natural row; a right target one row up. If that slot is
// blocked by a single small square, the small square is bumped and
// re-placed. Otherwise the big square takes the first free slot on the
// target edge starting one row down (left) or on the natural row (right).
func (p *placer) alternate(i int, natural Rect, target Alignment) Alignment {
	adjusted := natural
	adjusted.X = bigX(target, p.width)
	if target == AlignRight {
		adjusted.Y--
	}

	if adjusted.Y >= 0 {
		if hit := p.hits(adjusted); len(hit) == 1 && p.items[hit[0]].Size() == SmallSquare {
			j := hit[0]
			p.placed[j] = Rect{}
			p.placed[i] = adjusted
			p.placed[j] = p.nextFree(j)
			return target
		}
	}

	fallback := natural
	fallback.X = bigX(target, p.width)
	if target == AlignLeft {
		fallback.Y++
	}
	for p.occupied(fallback) {
		fallback.Y++
	}
	p.placed[i] = fallback
	return target
}
