package components

// Rect is an axis-aligned rectangle given by two inclusive corners
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from a corner and a size
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Intersect reports whether the rectangles overlap, touching edges included
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the integer center point
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}
