package grid

import (
	"slices"

	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// CellItem is one item's resolved tile size together with the sizes its
// owner allows. An empty allowed set means any size is acceptable.
//
// The zero value is a valid unrestricted SmallSquare.
type CellItem struct {
	size    TileSize
	allowed []TileSize
}

// NewCellItem returns an item of the given size. It fails with
// INTERNAL_ERROR when allowed is non-empty and does not contain size: callers
// are expected to resolve candidates against the allowed set first, so a
// mismatch is a bug in the caller.
func NewCellItem(size TileSize, allowed ...TileSize) (CellItem, error) {
	if !size.Valid() {
		return CellItem{}, errs.New(errs.ErrCodeInternal, "invalid tile size %d", int(size))
	}
	if len(allowed) > 0 && !slices.Contains(allowed, size) {
		return CellItem{}, errs.New(errs.ErrCodeInternal,
			"tile size %s not in allowed set %v", size, allowed)
	}
	return CellItem{size: size, allowed: slices.Clone(allowed)}, nil
}

// MustCellItem is like NewCellItem but panics on error. Intended for tests
// and fixed tables.
func MustCellItem(size TileSize, allowed ...TileSize) CellItem {
	c, err := NewCellItem(size, allowed...)
	if err != nil {
		panic(err)
	}
	return c
}

// Items builds unrestricted items for a list of sizes.
func Items(sizes ...TileSize) []CellItem {
	out := make([]CellItem, len(sizes))
	for i, s := range sizes {
		out[i] = CellItem{size: s}
	}
	return out
}

// Size returns the resolved tile size.
func (c CellItem) Size() TileSize { return c.size }

// Allowed returns a copy of the allowed set.
func (c CellItem) Allowed() []TileSize { return slices.Clone(c.allowed) }

// Permits reports whether size may be assigned to c.
func (c CellItem) Permits(size TileSize) bool {
	return len(c.allowed) == 0 || slices.Contains(c.allowed, size)
}

// WithSize returns a copy of c resolved to size, validated against the same
// allowed set.
func (c CellItem) WithSize(size TileSize) (CellItem, error) {
	return NewCellItem(size, c.allowed...)
}

// Resolve picks the size for a candidate under an allowed set: the
// candidate itself when permitted, otherwise the first allowed size.
func Resolve(candidate TileSize, allowed []TileSize) TileSize {
	if len(allowed) == 0 || slices.Contains(allowed, candidate) {
		return candidate
	}
	return allowed[0]
}
