package geom

import "testing"

func TestRect_Intersects(t *testing.T) {
	type tc struct {
		a, b Rect
		want bool
	}

	tests := map[string]tc{
		"overlapping":       {NewRect(0, 0, 20, 20), NewRect(10, 10, 20, 20), true},
		"same rect":         {NewRect(5, 5, 10, 10), NewRect(5, 5, 10, 10), true},
		"one inside other":  {NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), true},
		"touching edge":     {NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		"touching corner":   {NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), false},
		"disjoint":          {NewRect(0, 0, 10, 10), NewRect(50, 50, 10, 10), false},
		"empty never hits":  {NewRect(0, 0, 0, 0), NewRect(0, 0, 10, 10), false},
		"zero height strip": {NewRect(0, 5, 10, 0), NewRect(0, 0, 10, 10), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"disjoint cells":  {NewRect(0, 0, 50, 50), NewRect(50, 100, 75, 35), NewRect(0, 0, 125, 135)},
		"contained":       {NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), NewRect(0, 0, 100, 100)},
		"empty left":      {Rect{}, NewRect(3, 4, 5, 6), NewRect(3, 4, 5, 6)},
		"empty right":     {NewRect(3, 4, 5, 6), Rect{}, NewRect(3, 4, 5, 6)},
		"negative origin": {NewRect(-10, -10, 5, 5), NewRect(0, 0, 5, 5), NewRect(-10, -10, 15, 15)},
		"both empty":      {NewRect(5, 5, 0, 10), NewRect(-6.5, -3, -3, -3), Rect{}},
		"empty with zero": {Rect{}, NewRect(1, 2, -4, 4), Rect{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnionAll_Degenerate(t *testing.T) {
	got := UnionAll(NewRect(0, 0, -6.67, -6.67), NewRect(-3.33, -3.33, -3.33, 0))
	if got != (Rect{}) {
		t.Errorf("UnionAll() = %v, want zero rect", got)
	}
}

func TestUnionAll(t *testing.T) {
	got := UnionAll(NewRect(0, 0, 10, 10), Rect{}, NewRect(20, 5, 10, 30))
	want := NewRect(0, 0, 30, 35)
	if got != want {
		t.Errorf("UnionAll() = %v, want %v", got, want)
	}
	if got := UnionAll(); got != (Rect{}) {
		t.Errorf("UnionAll() of nothing = %v, want zero", got)
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.MaxX() != 40 {
		t.Errorf("MaxX() = %v, want 40", r.MaxX())
	}
	if r.MaxY() != 60 {
		t.Errorf("MaxY() = %v, want 60", r.MaxY())
	}
	if r.Origin() != (Point{X: 10, Y: 20}) {
		t.Errorf("Origin() = %v", r.Origin())
	}
	if r.Size() != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %v", r.Size())
	}
	if got := r.Offset(5, -5); got != NewRect(15, 15, 30, 40) {
		t.Errorf("Offset() = %v", got)
	}
	if RectFrom(r.Origin(), r.Size()) != r {
		t.Error("RectFrom(Origin, Size) should round trip")
	}
	if !r.Contains(NewRect(10, 20, 30, 40)) || r.Contains(NewRect(0, 0, 5, 5)) {
		t.Error("Contains() mismatch")
	}
	if got := r.String(); got != "(10,20,30,40)" {
		t.Errorf("String() = %q", got)
	}
}

func TestInsets(t *testing.T) {
	in := Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if in.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", in.Horizontal())
	}
	if in.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", in.Vertical())
	}
}
