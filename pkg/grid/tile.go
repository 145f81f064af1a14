package grid

import (
	"fmt"
	"strings"
)

// TileSize is the shape class of a mosaic item.
type TileSize int

const (
	// SmallSquare occupies one grid unit.
	SmallSquare TileSize = iota
	// BigSquare occupies a 2×2 block.
	BigSquare
	// SmallBanner spans the full grid width and one row.
	SmallBanner
	// CustomOverride is placed like a banner, but its pixel size comes from
	// the caller instead of the grid scale.
	CustomOverride
)

// AllTileSizes lists the catalog in declaration order.
var AllTileSizes = []TileSize{SmallSquare, BigSquare, SmallBanner, CustomOverride}

var tileNames = map[TileSize]string{
	SmallSquare:    "small_square",
	BigSquare:      "big_square",
	SmallBanner:    "small_banner",
	CustomOverride: "custom",
}

func (s TileSize) String() string {
	if name, ok := tileNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TileSize(%d)", int(s))
}

// Valid reports whether s is one of the catalog sizes.
func (s TileSize) Valid() bool {
	_, ok := tileNames[s]
	return ok
}

// ParseTileSize converts a tile name such as "big_square" to a TileSize.
// Matching ignores case and accepts hyphens in place of underscores.
func ParseTileSize(name string) (TileSize, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for size, n := range tileNames {
		if n == norm {
			return size, nil
		}
	}
	return 0, fmt.Errorf("unknown tile size %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s TileSize) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid tile size %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TileSize) UnmarshalText(text []byte) error {
	v, err := ParseTileSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// GridSize returns the footprint of s in grid units for a grid of the given
// width.
func (s TileSize) GridSize(gridWidth int) (w, h int) {
	switch s {
	case SmallSquare:
		return 1, 1
	case BigSquare:
		return 2, 2
	default:
		return gridWidth, 1
	}
}

// Alignment is the horizontal edge a big square sits against.
type Alignment int

const (
	// AlignNone marks a big square that touches neither edge.
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other edge. AlignNone has no opposite.
func (a Alignment) Opposite() Alignment {
	switch a {
	case AlignLeft:
		return AlignRight
	case AlignRight:
		return AlignLeft
	default:
		return AlignNone
	}
}

// alignmentOf classifies the x offset of a big square.
func alignmentOf(x, gridWidth int) Alignment {
	switch x {
	case 0:
		return AlignLeft
	case gridWidth - 2:
		return AlignRight
	default:
		return AlignNone
	}
}

// bigX returns the x offset of a big square against edge a.
func bigX(a Alignment, gridWidth int) int {
	if a == AlignRight {
		return gridWidth - 2
	}
	return 0
}
