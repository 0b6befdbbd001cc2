package pixedit

// dirtyRegion accumulates the union bounding rectangle of pixels touched
// during an in-progress edit. It only ever grows; Reset starts a new
// accumulation. Coordinates are not validated against any surface: callers
// clip against surface bounds when the rectangle is finally read.
type dirtyRegion struct {
	rect Rect
}

// Reset clears the accumulated region.
func (d *dirtyRegion) Reset() {
	d.rect = Rect{}
}

// ExpandByPoint grows the region to include a square of the given radius
// centered on (x, y). A radius of zero still covers the single pixel.
func (d *dirtyRegion) ExpandByPoint(x, y, radius int) {
	if radius < 0 {
		radius = 0
	}
	d.ExpandByRect(x-radius, y-radius, radius*2+1, radius*2+1)
}

// ExpandByRect grows the region to include the given rectangle.
func (d *dirtyRegion) ExpandByRect(x, y, w, h int) {
	d.rect = d.rect.Union(Rect{X: x, Y: y, W: w, H: h})
}

// Current returns the accumulated rectangle. Empty means nothing touched.
func (d *dirtyRegion) Current() Rect {
	return d.rect
}
