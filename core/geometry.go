package core

// Point represents a 2D pixel coordinate
type Point struct {
	X, Y int
}

// Rect is a half-open pixel rectangle: [X0,X1) x [Y0,Y1)
type Rect struct {
	X0, Y0, X1, Y1 int
}

// NewRect builds a rectangle from origin and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Contains reports whether the pixel at (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Empty reports whether the rectangle covers no pixels
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	if r.X1 < r.X0 {
		return 0
	}
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() int {
	if r.Y1 < r.Y0 {
		return 0
	}
	return r.Y1 - r.Y0
}

// Intersect clamps the rectangle to another
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}
