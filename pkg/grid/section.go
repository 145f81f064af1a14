package grid

import (
	"fmt"
	"strings"
)

// Section is one packed section: its items, the grid width and the placed
// rectangles, index-aligned with Items.
type Section struct {
	Items []CellItem
	Width int
	Rects []Rect
}

// NewSection packs items on a grid of the given width.
func NewSection(items []CellItem, gridWidth int) (*Section, error) {
	rects, err := Place(items, gridWidth)
	if err != nil {
		return nil, err
	}
	return &Section{Items: items, Width: gridWidth, Rects: rects}, nil
}

// Len returns the number of items.
func (s *Section) Len() int { return len(s.Items) }

// Rows returns the number of grid rows the section occupies.
func (s *Section) Rows() int {
	rows := 0
	for _, r := range s.Rects {
		rows = max(rows, r.MaxY())
	}
	return rows
}

// Sizes returns the resolved tile size of every item.
func (s *Section) Sizes() []TileSize {
	out := make([]TileSize, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.Size()
	}
	return out
}

// Diagram draws the occupancy of the section, one line per row, with every
// unit labelled by the 1-based ordinal of the item covering it. Free units
// print as a dot.
func (s *Section) Diagram() string {
	rows := s.Rows()
	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, s.Width)
	}
	for i, r := range s.Rects {
		for y := r.Y; y < r.MaxY(); y++ {
			for x := r.X; x < r.MaxX() && x < s.Width; x++ {
				cells[y][x] = i + 1
			}
		}
	}

	cellWidth := len(fmt.Sprint(len(s.Items))) + 1
	var b strings.Builder
	for _, row := range cells {
		for _, n := range row {
			label := "."
			if n > 0 {
				label = fmt.Sprint(n)
			}
			fmt.Fprintf(&b, "%*s", cellWidth, label)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
