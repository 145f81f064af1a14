// Package geom provides the pixel-space value types used by the layout engine.
//
// All coordinates are float64 with the origin at the top-left of the content
// area and Y increasing in the scroll direction. Values are immutable: every
// operation returns a new value.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in content coordinates.
type Point struct {
	X float64 `json:"x" toml:"x" yaml:"x" bson:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y" bson:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" toml:"width" yaml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height" bson:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Insets are margins applied inside a container, in CSS order.
type Insets struct {
	Top    float64 `json:"top" toml:"top" yaml:"top" bson:"top"`
	Left   float64 `json:"left" toml:"left" yaml:"left" bson:"left"`
	Bottom float64 `json:"bottom" toml:"bottom" yaml:"bottom" bson:"bottom"`
	Right  float64 `json:"right" toml:"right" yaml:"right" bson:"right"`
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Rect is an axis-aligned rectangle given by origin and size.
type Rect struct {
	X      float64 `json:"x" toml:"x" yaml:"x" bson:"x"`
	Y      float64 `json:"y" toml:"y" yaml:"y" bson:"y"`
	Width  float64 `json:"width" toml:"width" yaml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height" bson:"height"`
}

// NewRect is shorthand for a Rect literal.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFrom builds a rectangle from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersects reports whether r and o share interior area.
// Rectangles that only touch along an edge do not intersect, and empty
// rectangles intersect nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Union returns the smallest rectangle containing both r and o.
// An empty operand is ignored, so the zero Rect is the identity; two empty
// operands give the zero Rect.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsEmpty() && o.IsEmpty():
		return Rect{}
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// UnionAll folds Union over rects.
func UnionAll(rects ...Rect) Rect {
	var u Rect
	for _, r := range rects {
		u = u.Union(r)
	}
	return u
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.X, r.Y, r.Width, r.Height)
}
