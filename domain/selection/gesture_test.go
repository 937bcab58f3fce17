package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHitTest(t *testing.T) {
	r := Rect{X1: 100, Y1: 100, X2: 300, Y2: 200}
	tests := []struct {
		name   string
		x, y   float64
		edges  Edges
		region Region
	}{
		{"far outside", 0, 0, Edges{}, RegionOutside},
		{"just outside left", 99, 150, Edges{}, RegionOutside},
		{"center", 200, 150, Edges{}, RegionInside},
		{"left edge", 103, 150, Edges{Left: true}, RegionEdge},
		{"right edge", 298, 150, Edges{Right: true}, RegionEdge},
		{"top edge", 200, 104, Edges{Top: true}, RegionEdge},
		{"bottom edge", 200, 197, Edges{Bottom: true}, RegionEdge},
		{"top-left corner", 102, 103, Edges{Left: true, Top: true}, RegionEdge},
		{"bottom-right corner", 297, 196, Edges{Right: true, Bottom: true}, RegionEdge},
	}
	for _, tc := range tests {
		edges, region := HitTest(tc.x, tc.y, r)
		if region != tc.region || edges != tc.edges {
			t.Errorf("%s: HitTest(%g,%g) = %+v/%v, want %+v/%v",
				tc.name, tc.x, tc.y, edges, region, tc.edges, tc.region)
		}
	}
}

func TestPressOutsideStaysIdle(t *testing.T) {
	e := New(FitPage(612, 792, 800, 1000))
	if got := e.Press(1, 1); got != DragNone {
		t.Fatalf("press outside started %v", got)
	}
	if e.Dragging() != DragNone {
		t.Fatalf("engine not idle after outside press")
	}
}

func TestMovePreservesSize(t *testing.T) {
	e := New(FitPage(612, 792, 800, 1000))
	r0 := e.Rect()
	cx, cy := r0.Center()

	if got := e.Press(cx, cy); got != DragMove {
		t.Fatalf("center press started %v, want move", got)
	}
	// Wander around, including far outside the page image.
	for _, p := range [][2]float64{{cx + 40, cy - 13}, {cx - 900, cy + 2}, {cx + 5000, cy + 5000}, {cx + 17, cy + 31}} {
		e.Drag(p[0], p[1])
		r := e.Rect()
		if diff := cmp.Diff(r0.Width(), r.Width(), approx); diff != "" {
			t.Fatalf("width changed during move (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(r0.Height(), r.Height(), approx); diff != "" {
			t.Fatalf("height changed during move (-want +got):\n%s", diff)
		}
		assertInside(t, r, e.Geometry().ImageBounds())
	}
	e.Release()
	if e.Dragging() != DragNone {
		t.Fatalf("engine not idle after release")
	}
}

func TestFreeEdgeResizeHonorsMinSize(t *testing.T) {
	e := New(FitPage(612, 792, 800, 1000))
	r0 := e.Rect()

	// Grab the left edge and drag it far past the right edge.
	if got := e.Press(r0.X1+1, (r0.Y1+r0.Y2)/2); got != DragResize {
		t.Fatalf("edge press started %v, want resize", got)
	}
	e.Drag(r0.X2+500, (r0.Y1+r0.Y2)/2)
	r := e.Rect()
	if r.Width() < MinSize-1e-9 {
		t.Fatalf("width %g under min size", r.Width())
	}
	if diff := cmp.Diff(r0.X2, r.X2, approx); diff != "" {
		t.Fatalf("opposite edge moved during left-edge drag (-want +got):\n%s", diff)
	}
}

func TestFreeResizeShrinksAtBoundary(t *testing.T) {
	g := FitPage(612, 792, 800, 1000)
	e := New(g)
	r0 := e.Rect()
	b := g.ImageBounds()

	// Drag the right edge past the image: it must stop at the bound.
	e.Press(r0.X2-1, (r0.Y1+r0.Y2)/2)
	e.Drag(b.X2+300, (r0.Y1+r0.Y2)/2)
	r := e.Rect()
	if diff := cmp.Diff(b.X2, r.X2, approx); diff != "" {
		t.Fatalf("right edge not clipped to image bound (-want +got):\n%s", diff)
	}
	assertInside(t, r, b)
}

func TestRatioCornerDragTieBreak(t *testing.T) {
	g := wideGeom
	e := New(g)
	e.SetMode(AspectRatio{Ratio: 2})
	r0 := e.Rect()

	// Grab the bottom-right corner; the top-left corner is the anchor.
	e.Press(r0.X2-1, r0.Y2-1)
	if !e.ActiveEdges().Corner() {
		t.Fatalf("expected corner edge set, got %+v", e.ActiveEdges())
	}
	// Pointer 400 right, 100 down from the anchor: width/height = 4 > 2,
	// so the height grows to width/ratio.
	e.Drag(r0.X1+400, r0.Y1+100)
	r := e.Rect()
	if diff := cmp.Diff(400.0, r.Width(), approx); diff != "" {
		t.Errorf("width (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(200.0, r.Height(), approx); diff != "" {
		t.Errorf("height (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r0.X1, r.X1, approx); diff != "" {
		t.Errorf("anchor corner X moved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r0.Y1, r.Y1, approx); diff != "" {
		t.Errorf("anchor corner Y moved (-want +got):\n%s", diff)
	}
}

func TestRatioEdgeDragRederivesOtherAxis(t *testing.T) {
	e := New(wideGeom)
	e.SetMode(AspectRatio{Ratio: 2})
	r0 := e.Rect()

	e.Press(r0.X2-1, (r0.Y1+r0.Y2)/2)
	e.Drag(r0.X2+100, (r0.Y1+r0.Y2)/2)
	r := e.Rect()
	if diff := cmp.Diff(r.Width()/2, r.Height(), approx); diff != "" {
		t.Errorf("ratio broken after edge drag (-want +got):\n%s", diff)
	}
}

func TestFixedDimsEdgeDragSlides(t *testing.T) {
	e := New(wideGeom)
	mode := FixedDims{Width: 200, Height: 100}
	e.SetMode(mode)
	r0 := e.Rect()
	if diff := cmp.Diff(200.0, r0.Width(), approx); diff != "" {
		t.Fatalf("mode not applied (-want +got):\n%s", diff)
	}

	// Dragging the left edge keeps the size: the right edge follows at
	// exactly the locked width from the pointer.
	e.Press(r0.X1+1, (r0.Y1+r0.Y2)/2)
	e.Drag(r0.X1-50, (r0.Y1+r0.Y2)/2)
	r := e.Rect()
	if diff := cmp.Diff(200.0, r.Width(), approx); diff != "" {
		t.Errorf("width changed under dimension lock (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r0.X1-50, r.X1, approx); diff != "" {
		t.Errorf("left edge does not track pointer (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(100.0, r.Height(), approx); diff != "" {
		t.Errorf("height changed under dimension lock (-want +got):\n%s", diff)
	}
}

func assertInside(t *testing.T, r, bounds Rect) {
	t.Helper()
	const eps = 1e-9
	if r.X1 < bounds.X1-eps || r.Y1 < bounds.Y1-eps || r.X2 > bounds.X2+eps || r.Y2 > bounds.Y2+eps {
		t.Fatalf("rect %+v escapes bounds %+v", r, bounds)
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		t.Fatalf("rect %+v not canonical", r)
	}
}
