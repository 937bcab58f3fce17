// Package selection implements the crop-rectangle geometry engine: the
// coordinate mapping between the on-screen canvas and PDF user space, the
// constraint modes governing the rectangle's shape, the pointer gesture
// state machine, and boundary clamping. It has no UI dependencies and every
// operation is a synchronous function of its inputs.
package selection

// Canvas-unit tuning constants, matching the interactive feel of the tool.
const (
	// HandleSize is the distance (in canvas units) from an edge within
	// which a press starts a resize instead of a move.
	HandleSize = 6.0
	// MinSize is the smallest width/height (in canvas units) a free
	// resize may produce.
	MinSize = 10.0
)

// Unit conversion factors.
const (
	PointsPerInch = 72.0
	PointsPerCM   = PointsPerInch / 2.54
)

// Rect is an axis-aligned rectangle in canvas space (origin top-left, Y
// down). All public operations of this package return rectangles in
// canonical order: X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Width returns X2-X1.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y2-Y1.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Canon returns the rectangle with coordinates swapped into canonical
// order.
func (r Rect) Canon() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// centered returns the rectangle of the given size centered at (cx, cy).
func centered(cx, cy, w, h float64) Rect {
	return Rect{X1: cx - w/2, Y1: cy - h/2, X2: cx + w/2, Y2: cy + h/2}
}

// Edges identifies which rectangle edges are under active resize. A corner
// resize sets two adjacent fields.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether at least one edge is set.
func (e Edges) Any() bool { return e.Left || e.Right || e.Top || e.Bottom }

// Corner reports whether the set describes a corner drag (one horizontal
// and one vertical edge).
func (e Edges) Corner() bool {
	return (e.Left || e.Right) && (e.Top || e.Bottom)
}

// DragMode enumerates the gesture states of the engine.
type DragMode int

const (
	DragNone DragMode = iota
	DragMove
	DragResize
)

func (d DragMode) String() string {
	switch d {
	case DragNone:
		return "none"
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Region classifies a pointer position relative to the rectangle.
type Region int

const (
	RegionOutside Region = iota
	RegionInside
	RegionEdge
)

func (r Region) String() string {
	switch r {
	case RegionOutside:
		return "outside"
	case RegionInside:
		return "inside"
	case RegionEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Mode is the active constraint governing permissible rectangle shapes.
// Exactly one mode is active at a time; a mode whose parameters are not
// positive behaves as Freeform until corrected.
type Mode interface {
	isMode()
}

// Freeform places no constraint on the rectangle.
type Freeform struct{}

// AspectRatio locks the rectangle to Ratio = width/height.
type AspectRatio struct {
	Ratio float64
}

// FixedDims locks the rectangle to an exact physical size in PDF points.
type FixedDims struct {
	Width, Height float64
}

func (Freeform) isMode()    {}
func (AspectRatio) isMode() {}
func (FixedDims) isMode()   {}

// ratioOf returns the aspect ratio if m is a valid ratio lock.
func ratioOf(m Mode) (float64, bool) {
	if a, ok := m.(AspectRatio); ok && a.Ratio > 0 {
		return a.Ratio, true
	}
	return 0, false
}

// fixedOf returns the locked dimensions in points if m is a valid
// dimension lock.
func fixedOf(m Mode) (w, h float64, ok bool) {
	if f, ok := m.(FixedDims); ok && f.Width > 0 && f.Height > 0 {
		return f.Width, f.Height, true
	}
	return 0, 0, false
}
