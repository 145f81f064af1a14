package frame

import (
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

// SectionInput is everything Compose needs for one section.
type SectionInput struct {
	Grid *grid.Section

	// Top is the y coordinate where the section starts.
	Top float64
	// ContentWidth is the usable width of the scroll container.
	ContentWidth float64

	Inset            geom.Insets
	InterItemSpacing float64
	LineSpacing      float64

	// Header and Footer sizes; a zero height means none. A zero width
	// stretches to ContentWidth.
	Header geom.Size
	Footer geom.Size

	// CustomSizes holds pixel sizes for custom items, index-aligned with
	// Grid.Items. Missing or zero entries fall back to grid geometry.
	CustomSizes []geom.Size
}

// Scale returns the pixel length of one grid unit.
func (in SectionInput) Scale() float64 {
	gw := float64(in.Grid.Width)
	available := in.ContentWidth - in.Inset.Horizontal()
	return (available - in.InterItemSpacing*(gw-1)) / gw
}

func (in SectionInput) customSize(i int) (geom.Size, bool) {
	if i >= len(in.CustomSizes) || in.Grid.Items[i].Size() != grid.CustomOverride {
		return geom.Size{}, false
	}
	cs := in.CustomSizes[i]
	return cs, !cs.IsZero()
}

// rowShift pushes every grid row from row onward down by delta.
type rowShift struct {
	row   int
	delta float64
}

// Compose lays out one section in pixels.
func Compose(in SectionInput) Section {
	scale := in.Scale()
	unitX := scale + in.InterItemSpacing
	unitY := scale + in.LineSpacing

	var header geom.Rect
	if in.Header.Height > 0 {
		header = geom.NewRect(0, in.Top, stretch(in.Header.Width, in.ContentWidth), in.Header.Height)
	}
	cellsTop := in.Top + header.Height + in.Inset.Top

	rects := in.Grid.Rects
	var shifts []rowShift
	for i, r := range rects {
		if cs, ok := in.customSize(i); ok {
			gridH := float64(r.H)*scale + float64(r.H-1)*in.LineSpacing
			shifts = append(shifts, rowShift{row: r.MaxY(), delta: cs.Height - gridH})
		}
	}

	cells := make([]geom.Rect, len(rects))
	bottom := cellsTop
	for i, r := range rects {
		x := in.Inset.Left + float64(r.X)*unitX
		y := cellsTop + float64(r.Y)*unitY + shiftFor(shifts, r.Y)

		var size geom.Size
		if cs, ok := in.customSize(i); ok {
			size = cs
		} else {
			size = geom.Size{
				Width:  float64(r.W)*scale + float64(r.W-1)*in.InterItemSpacing,
				Height: float64(r.H)*scale + float64(r.H-1)*in.LineSpacing,
			}
		}
		cells[i] = geom.RectFrom(geom.Point{X: x, Y: y}, size)
		bottom = max(bottom, cells[i].MaxY())
	}

	var footer geom.Rect
	if in.Footer.Height > 0 {
		footer = geom.NewRect(0, bottom+in.Inset.Bottom, stretch(in.Footer.Width, in.ContentWidth), in.Footer.Height)
	}

	s := NewSection(cells, header, footer)
	s.extent = max(footer.MaxY(), bottom+in.Inset.Bottom)
	return s
}

func shiftFor(shifts []rowShift, row int) float64 {
	var d float64
	for _, s := range shifts {
		if row >= s.row {
			d += s.delta
		}
	}
	return d
}

func stretch(w, full float64) float64 {
	if w == 0 {
		return full
	}
	return w
}
