package pixedit

// Rect represents a rectangular region in pixel coordinates.
// A Rect with W <= 0 or H <= 0 is empty and covers no pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Dimensions
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle contributes nothing to the union.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.W, s.X+s.W)
	y1 := max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the largest rectangle contained in both r and s.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clip clamps the rectangle against a surface of the given dimensions.
func (r Rect) Clip(width, height int) Rect {
	return r.Intersect(Rect{X: 0, Y: 0, W: width, H: height})
}
