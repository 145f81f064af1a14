package grid

import "fmt"

// Rect is a rectangle in grid units.
type Rect struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
	W int `json:"w" bson:"w"`
	H int `json:"h" bson:"h"`
}

// R is shorthand for a Rect literal.
func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) MaxX() int { return r.X + r.W }
func (r Rect) MaxY() int { return r.Y + r.H }

// IsEmpty reports whether r covers no grid units.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether r and o share at least one grid unit. Shared
// edges do not count, and empty rectangles never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H)
}
