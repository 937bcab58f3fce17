package selection

import "math"

// HitTest classifies a pointer position against a rectangle: outside,
// inside, or within HandleSize of one or more edges. The returned edge set
// is empty unless the region is RegionEdge.
func HitTest(x, y float64, r Rect) (Edges, Region) {
	if !r.Contains(x, y) {
		return Edges{}, RegionOutside
	}
	e := Edges{
		Left:   math.Abs(x-r.X1) <= HandleSize,
		Right:  math.Abs(x-r.X2) <= HandleSize,
		Top:    math.Abs(y-r.Y1) <= HandleSize,
		Bottom: math.Abs(y-r.Y2) <= HandleSize,
	}
	if !e.Any() {
		return Edges{}, RegionInside
	}
	return e, RegionEdge
}

// resizeFree moves each active edge to the pointer coordinate on its axis.
// An edge never crosses the opposite edge minus MinSize.
func resizeFree(r Rect, e Edges, x, y float64) Rect {
	if e.Left {
		r.X1 = math.Min(x, r.X2-MinSize)
	}
	if e.Right {
		r.X2 = math.Max(x, r.X1+MinSize)
	}
	if e.Top {
		r.Y1 = math.Min(y, r.Y2-MinSize)
	}
	if e.Bottom {
		r.Y2 = math.Max(y, r.Y1+MinSize)
	}
	return r
}

// resizeRatio applies a ratio-locked resize on top of the free result.
//
// For a corner drag the corner opposite the grabbed one is the fixed
// anchor: the raw pointer-to-anchor distances give a candidate size, and
// whichever dimension is small relative to the ratio is grown to match.
// For a single-edge drag the dragged axis is authoritative and the other
// axis is re-derived about the rectangle's center.
func resizeRatio(r Rect, e Edges, x, y, ratio float64) Rect {
	r = resizeFree(r, e, x, y)
	if e.Corner() {
		anchorX := r.X1
		if e.Left {
			anchorX = r.X2
		}
		anchorY := r.Y1
		if e.Top {
			anchorY = r.Y2
		}
		w := math.Max(MinSize, math.Abs(x-anchorX))
		h := math.Max(MinSize, math.Abs(y-anchorY))
		if w/h > ratio {
			h = w / ratio
		} else {
			w = h * ratio
		}
		if e.Left {
			r.X1, r.X2 = anchorX-w, anchorX
		} else {
			r.X1, r.X2 = anchorX, anchorX+w
		}
		if e.Top {
			r.Y1, r.Y2 = anchorY-h, anchorY
		} else {
			r.Y1, r.Y2 = anchorY, anchorY+h
		}
		return r
	}
	if e.Left || e.Right {
		w := math.Max(MinSize, r.Width())
		h := w / ratio
		_, cy := r.Center()
		r.Y1, r.Y2 = cy-h/2, cy+h/2
	}
	if e.Top || e.Bottom {
		h := math.Max(MinSize, r.Height())
		w := h * ratio
		cx, _ := r.Center()
		r.X1, r.X2 = cx-w/2, cx+w/2
	}
	return r
}

// resizeFixed slides a dimension-locked rectangle: the dragged edge tracks
// the pointer and the opposite edge sits at the locked size from it,
// irrespective of the actual pointer distance. The rectangle can therefore
// jump when grabbing an edge far from the pointer; this mirrors the
// tool's long-standing behavior.
func resizeFixed(r Rect, e Edges, x, y, w, h float64) Rect {
	if e.Left {
		r.X1 = x
		r.X2 = r.X1 + w
	}
	if e.Right {
		r.X2 = x
		r.X1 = r.X2 - w
	}
	if e.Top {
		r.Y1 = y
		r.Y2 = r.Y1 + h
	}
	if e.Bottom {
		r.Y2 = y
		r.Y1 = r.Y2 - h
	}
	return r
}
