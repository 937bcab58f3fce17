package selection

// Clamp constrains a rectangle to lie within bounds.
//
// With keepSize the rectangle is translated without resizing; if it is
// larger than the bounds on an axis it is pinned to the bounds' minimum on
// that axis. Without keepSize each coordinate is clipped independently,
// which may shrink the rectangle but never inverts it (callers guarantee
// canonical order on input).
func Clamp(r Rect, bounds Rect, keepSize bool) Rect {
	if keepSize {
		w := r.Width()
		h := r.Height()
		r.X1 = clampf(r.X1, bounds.X1, bounds.X2-w)
		r.Y1 = clampf(r.Y1, bounds.Y1, bounds.Y2-h)
		r.X2 = r.X1 + w
		r.Y2 = r.Y1 + h
		return r
	}
	r.X1 = clampf(r.X1, bounds.X1, bounds.X2)
	r.X2 = clampf(r.X2, bounds.X1, bounds.X2)
	r.Y1 = clampf(r.Y1, bounds.Y1, bounds.Y2)
	r.Y2 = clampf(r.Y2, bounds.Y1, bounds.Y2)
	return r
}

// clampf bounds v to [lo, hi]. When hi < lo (rectangle larger than the
// bounds) the result pins to hi, so at most one edge can end up outside.
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
