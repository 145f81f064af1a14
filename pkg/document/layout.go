package document

import (
	"encoding/json"
	"fmt"
	"os"

	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/layout"
)

// =============================================================================
// Layout - Serialized Layout Pass
// =============================================================================

// Layout is the serialized result of one layout pass.
type Layout struct {
	Name         string  `json:"name,omitempty" bson:"name,omitempty"`
	Viewport     float64 `json:"viewport_width" bson:"viewport_width"`
	GridWidth    int     `json:"grid_width" bson:"grid_width"`
	ContentWidth float64 `json:"content_width" bson:"content_width"`
	Style        string  `json:"style,omitempty" bson:"style,omitempty"`

	// Content size of the whole layout.
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Sections []Section `json:"sections" bson:"sections"`
}

// Section is one section's grid and pixel geometry.
type Section struct {
	Index  int        `json:"index" bson:"index"`
	Frame  geom.Rect  `json:"frame" bson:"frame"`
	Rows   int        `json:"rows" bson:"rows"`
	Header *geom.Rect `json:"header,omitempty" bson:"header,omitempty"`
	Footer *geom.Rect `json:"footer,omitempty" bson:"footer,omitempty"`
	Cells  []Cell     `json:"cells" bson:"cells"`
}

// Cell is one positioned item.
type Cell struct {
	Item  int       `json:"item" bson:"item"`
	Size  string    `json:"size" bson:"size"`
	Grid  grid.Rect `json:"grid" bson:"grid"`
	Frame geom.Rect `json:"frame" bson:"frame"`
}

// Meta carries the inputs a Result does not remember.
type Meta struct {
	Name     string
	Viewport float64
}

// =============================================================================
// Conversion
// =============================================================================

// FromResult exports a layout result. A nil result gives an empty document.
func FromResult(res *layout.Result, meta Meta) Layout {
	size := res.ContentSize()
	doc := Layout{
		Name:         meta.Name,
		Viewport:     meta.Viewport,
		GridWidth:    res.GridWidth(),
		ContentWidth: res.ContentWidth(),
		Width:        size.Width,
		Height:       size.Height,
		Sections:     []Section{},
	}

	grids := res.Sections()
	for i, sec := range res.Tree().Sections() {
		g := grids[i]
		out := Section{
			Index: i,
			Frame: sec.Frame(),
			Rows:  g.Rows(),
			Cells: make([]Cell, sec.Len()),
		}
		if h, ok := sec.Header(); ok {
			out.Header = &h
		}
		if f, ok := sec.Footer(); ok {
			out.Footer = &f
		}
		for j, f := range sec.Cells() {
			out.Cells[j] = Cell{
				Item:  j,
				Size:  g.Items[j].Size().String(),
				Grid:  g.Rects[j],
				Frame: f,
			}
		}
		doc.Sections = append(doc.Sections, out)
	}
	return doc
}

// ItemCount returns the number of cells across sections.
func (l *Layout) ItemCount() int {
	n := 0
	for _, s := range l.Sections {
		n += len(s.Cells)
	}
	return n
}

// Cell returns the cell at section, item.
func (l *Layout) Cell(section, item int) (Cell, bool) {
	if section < 0 || section >= len(l.Sections) {
		return Cell{}, false
	}
	cells := l.Sections[section].Cells
	if item < 0 || item >= len(cells) {
		return Cell{}, false
	}
	return cells[item], true
}

// Validate checks structural consistency after decoding.
func (l *Layout) Validate() error {
	if l.Width < 0 || l.Height < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "layout size must not be negative")
	}
	if len(l.Sections) > 0 {
		if err := grid.ValidateWidth(l.GridWidth); err != nil {
			return err
		}
	}
	for i, s := range l.Sections {
		if s.Index != i {
			return errs.New(errs.ErrCodeInvalidInput, "section %d has index %d", i, s.Index)
		}
		for j, c := range s.Cells {
			if c.Item != j {
				return errs.New(errs.ErrCodeInvalidInput, "section %d: cell %d has item %d", i, j, c.Item)
			}
			if _, err := grid.ParseTileSize(c.Size); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidInput, err, "section %d: cell %d", i, j)
			}
		}
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes and validates JSON bytes.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "unmarshal layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "layout %s", path)
		}
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
