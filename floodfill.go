package pixedit

// FloodFill fills the connected region of pixels similar to the seed
// color at (x0, y0) with fill, and returns a patch describing exactly
// what changed. The patch's LayerIndex is left zero; callers editing a
// layer stack tag it with the owning layer (Engine.FloodFill does this).
//
// Two colors are considered the same when the sum of their absolute
// per-channel differences (R, G, B, A) is at most tolerance.
//
// Returns nil when the seed is out of bounds, when tolerance is zero and
// the seed pixel already equals fill exactly, or when the fill writes
// only values identical to the existing pixels (the surface is then
// byte-for-byte unchanged).
func FloodFill(p *Pixmap, x0, y0 int, fill RGBA, tolerance int) *Patch {
	before, bounds, ok := floodFillCore(p, x0, y0, fill, tolerance)
	if !ok {
		return nil
	}
	changed := changedRect(before, p, bounds)
	if changed.Empty() {
		return nil
	}
	return newPatch(0, changed, before, p)
}

// floodFillCore performs a non-recursive scanline flood fill, mutating p.
// It returns a full-surface snapshot of the original pixels, the union
// bounding box of all written pixels, and whether the fill ran at all.
//
// The algorithm pops a seed, walks left and right along its row filling
// every matching pixel, and while sweeping the row pushes at most one
// seed per contiguous matching run in the rows above and below. Stack
// growth is therefore bounded by the number of row-runs, not pixels.
func floodFillCore(p *Pixmap, x0, y0 int, fill RGBA, tolerance int) (before *Pixmap, bounds Rect, ok bool) {
	w, h := p.Width(), p.Height()
	if x0 < 0 || x0 >= w || y0 < 0 || y0 >= h {
		return nil, Rect{}, false
	}
	if tolerance < 0 {
		tolerance = 0
	}

	fr, fg, fb, fa := fill.bytes()
	tr, tg, tb, ta := p.GetPixelRGBA(x0, y0)
	if tolerance == 0 && tr == fr && tg == fg && tb == fb && ta == fa {
		// Seed already has the fill color exactly; nothing to do.
		return nil, Rect{}, false
	}

	before = p.Clone()
	src := before.Data()
	dst := p.Data()
	filled := make([]bool, w*h)

	// matches tests the original pixel value so that written pixels can
	// never re-match, which keeps the fill terminating for any tolerance.
	matches := func(x, y int) bool {
		i := y*w + x
		if filled[i] {
			return false
		}
		o := i * 4
		d := absDiff(src[o], tr) + absDiff(src[o+1], tg) +
			absDiff(src[o+2], tb) + absDiff(src[o+3], ta)
		return d <= tolerance
	}

	type seed struct{ x, y int }
	stack := []seed{{x0, y0}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !matches(s.x, s.y) {
			continue
		}

		// Extend the span left and right from the seed.
		xl, xr := s.x, s.x
		for xl > 0 && matches(xl-1, s.y) {
			xl--
		}
		for xr < w-1 && matches(xr+1, s.y) {
			xr++
		}

		// Fill the span and queue one seed per contiguous run above/below.
		spanUp, spanDown := false, false
		for x := xl; x <= xr; x++ {
			i := s.y*w + x
			filled[i] = true
			o := i * 4
			dst[o+0] = fr
			dst[o+1] = fg
			dst[o+2] = fb
			dst[o+3] = fa

			if s.y > 0 {
				if matches(x, s.y-1) {
					if !spanUp {
						stack = append(stack, seed{x, s.y - 1})
						spanUp = true
					}
				} else {
					spanUp = false
				}
			}
			if s.y < h-1 {
				if matches(x, s.y+1) {
					if !spanDown {
						stack = append(stack, seed{x, s.y + 1})
						spanDown = true
					}
				} else {
					spanDown = false
				}
			}
		}
		bounds = bounds.Union(Rect{X: xl, Y: s.y, W: xr - xl + 1, H: 1})
	}

	return before, bounds, true
}

// changedRect returns the tight bounding box of pixels inside within that
// differ between before and after. The rectangle is clipped against the
// surface bounds first; an empty result means no pixel changed.
func changedRect(before, after *Pixmap, within Rect) Rect {
	c := within.Clip(after.Width(), after.Height())
	if c.Empty() {
		return Rect{}
	}
	w := after.Width()
	src := before.Data()
	dst := after.Data()

	minX, minY := c.X+c.W, c.Y+c.H
	maxX, maxY := c.X-1, c.Y-1
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			o := (y*w + x) * 4
			if src[o] == dst[o] && src[o+1] == dst[o+1] &&
				src[o+2] == dst[o+2] && src[o+3] == dst[o+3] {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
