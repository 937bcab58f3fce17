package selection

import "seehuhn.de/go/pdf"

// Default selection size, a 4in x 6in label.
const (
	defaultWidthPts  = 4 * PointsPerInch
	defaultHeightPts = 6 * PointsPerInch
)

// Engine owns the selection state for one interactive session: the current
// rectangle, the active constraint mode, the display geometry and the
// in-flight pointer gesture. It is driven from a single event source and
// performs no locking.
type Engine struct {
	geom PageGeometry
	rect Rect
	mode Mode

	drag             DragMode
	edges            Edges
	anchorX, anchorY float64
}

// New creates an engine with the default rectangle: 4in x 6in at the
// current scale, shrunk proportionally if larger than the page image, and
// centered on it.
func New(geom PageGeometry) *Engine {
	w := defaultWidthPts * geom.Scale
	h := defaultHeightPts * geom.Scale
	if w > 0 && h > 0 {
		fit := 1.0
		if f := geom.ImageWidth / w; f < fit {
			fit = f
		}
		if f := geom.ImageHeight / h; f < fit {
			fit = f
		}
		w *= fit
		h *= fit
	}
	cx := geom.ImageX0 + geom.ImageWidth/2
	cy := geom.ImageY0 + geom.ImageHeight/2
	return &Engine{
		geom: geom,
		rect: centered(cx, cy, w, h),
		mode: Freeform{},
	}
}

// Rect returns the current rectangle in canvas space.
func (e *Engine) Rect() Rect { return e.rect }

// Geometry returns the current display geometry.
func (e *Engine) Geometry() PageGeometry { return e.geom }

// Mode returns the active constraint mode.
func (e *Engine) Mode() Mode { return e.mode }

// Dragging returns the current gesture state.
func (e *Engine) Dragging() DragMode { return e.drag }

// ActiveEdges returns the edge set of an in-flight resize gesture.
func (e *Engine) ActiveEdges() Edges { return e.edges }

// SetMode switches the constraint mode and projects the current rectangle
// onto it. Invalid parameters leave the rectangle untouched (the mode
// degrades to freeform behavior).
func (e *Engine) SetMode(m Mode) {
	if m == nil {
		m = Freeform{}
	}
	e.mode = m
	e.rect = ApplyMode(m, e.rect, e.geom)
}

// SetViewport recomputes the display geometry for a new canvas size and
// carries the rectangle over so that it keeps its position relative to the
// page. The engine accepts any sequence of resize notifications and is
// consistent after the last one.
func (e *Engine) SetViewport(canvasW, canvasH float64) {
	old := e.geom
	e.geom = FitPage(old.PageWidth, old.PageHeight, canvasW, canvasH)
	e.rect = Reproject(e.rect, old, e.geom)
}

// Press starts a gesture. A press outside the rectangle is ignored; within
// HandleSize of an edge it starts a resize, otherwise a move. The returned
// mode reports what started.
func (e *Engine) Press(x, y float64) DragMode {
	edges, region := HitTest(x, y, e.rect)
	switch region {
	case RegionOutside:
		return DragNone
	case RegionEdge:
		e.drag = DragResize
		e.edges = edges
	default:
		e.drag = DragMove
		e.edges = Edges{}
	}
	e.anchorX, e.anchorY = x, y
	return e.drag
}

// Drag advances the active gesture to the given pointer position. Moves
// translate by the delta since the previous event (the anchor advances
// every call, so there is no drift); resizes track the pointer directly.
func (e *Engine) Drag(x, y float64) {
	switch e.drag {
	case DragMove:
		dx := x - e.anchorX
		dy := y - e.anchorY
		r := Rect{X1: e.rect.X1 + dx, Y1: e.rect.Y1 + dy, X2: e.rect.X2 + dx, Y2: e.rect.Y2 + dy}
		e.rect = Clamp(r, e.geom.ImageBounds(), true)
	case DragResize:
		e.rect = e.resize(x, y)
	default:
		return
	}
	e.anchorX, e.anchorY = x, y
}

// resize produces the new rectangle for a resize gesture, honoring the
// active constraint. Constrained sizes are authoritative, so their clamp
// preserves size; a free resize is allowed to shrink at the boundary.
func (e *Engine) resize(x, y float64) Rect {
	bounds := e.geom.ImageBounds()
	if w, h, ok := fixedOf(e.mode); ok {
		cw, ch := fixedCanvasSize(w, h, e.geom)
		return Clamp(resizeFixed(e.rect, e.edges, x, y, cw, ch), bounds, true)
	}
	if ratio, ok := ratioOf(e.mode); ok {
		return Clamp(resizeRatio(e.rect, e.edges, x, y, ratio), bounds, true)
	}
	return Clamp(resizeFree(e.rect, e.edges, x, y), bounds, false)
}

// Release ends the gesture and returns the engine to idle.
func (e *Engine) Release() {
	e.drag = DragNone
	e.edges = Edges{}
	e.anchorX, e.anchorY = 0, 0
}

// Confirm converts the current rectangle to document space. This is the
// record handed to persistence when the user accepts the selection.
func (e *Engine) Confirm() pdf.Rectangle {
	return e.geom.ToDocument(e.rect)
}
