package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRectScenarioLetter(t *testing.T) {
	// US Letter in an 800x1000 canvas: scale = 1000/792 and the default
	// 4in x 6in label becomes roughly 363.6 x 545.5 canvas units.
	g := FitPage(612, 792, 800, 1000)
	e := New(g)
	r := e.Rect()

	scale := 1000.0 / 792.0
	if diff := cmp.Diff(288*scale, r.Width(), approx); diff != "" {
		t.Errorf("default width (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(432*scale, r.Height(), approx); diff != "" {
		t.Errorf("default height (-want +got):\n%s", diff)
	}
	cx, cy := r.Center()
	if diff := cmp.Diff(g.ImageX0+g.ImageWidth/2, cx, approx); diff != "" {
		t.Errorf("default center x (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.ImageY0+g.ImageHeight/2, cy, approx); diff != "" {
		t.Errorf("default center y (-want +got):\n%s", diff)
	}
	assertInside(t, r, g.ImageBounds())
}

func TestDefaultRectFitShrinks(t *testing.T) {
	// A tiny canvas: the default label is larger than the page image and
	// must shrink proportionally to fit.
	g := FitPage(200, 200, 100, 100)
	e := New(g)
	r := e.Rect()
	assertInside(t, r, g.ImageBounds())

	wantRatio := defaultWidthPts / defaultHeightPts
	if diff := cmp.Diff(wantRatio, r.Width()/r.Height(), approx); diff != "" {
		t.Errorf("fit shrink distorted the default aspect (-want +got):\n%s", diff)
	}
}

func TestSetViewportReprojects(t *testing.T) {
	e := New(FitPage(612, 792, 800, 1000))
	doc := e.Confirm()

	e.SetViewport(400, 500)
	if diff := cmp.Diff(doc, e.Confirm(), approx); diff != "" {
		t.Errorf("resize changed the document-space selection (-want +got):\n%s", diff)
	}
	assertInside(t, e.Rect(), e.Geometry().ImageBounds())

	// A burst of resize notifications must leave a consistent state.
	for _, wh := range [][2]float64{{900, 100}, {120, 1300}, {640, 480}, {800, 1000}} {
		e.SetViewport(wh[0], wh[1])
	}
	if diff := cmp.Diff(doc, e.Confirm(), approx); diff != "" {
		t.Errorf("selection drifted across resizes (-want +got):\n%s", diff)
	}
}

func TestSetModeProjectsCurrentRect(t *testing.T) {
	e := New(wideGeom)
	e.SetMode(AspectRatio{Ratio: 1})
	r := e.Rect()
	if diff := cmp.Diff(r.Width(), r.Height(), approx); diff != "" {
		t.Errorf("square lock not applied (-want +got):\n%s", diff)
	}

	// Switching to an invalid mode keeps the rectangle.
	e.SetMode(AspectRatio{Ratio: -3})
	if got := e.Rect(); got != r {
		t.Errorf("invalid mode changed the rect: %+v", got)
	}

	e.SetMode(nil)
	if _, ok := e.Mode().(Freeform); !ok {
		t.Errorf("nil mode should degrade to freeform, got %T", e.Mode())
	}
}

func TestConfirmDocumentSpace(t *testing.T) {
	g := FitPage(612, 792, 612, 792) // scale 1, no letterboxing
	e := New(g)
	r := e.Rect()
	doc := e.Confirm()

	if diff := cmp.Diff(r.Width(), doc.URx-doc.LLx, approx); diff != "" {
		t.Errorf("document width (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r.Height(), doc.URy-doc.LLy, approx); diff != "" {
		t.Errorf("document height (-want +got):\n%s", diff)
	}
	// Canvas bottom maps to the smaller document Y.
	if doc.LLy >= doc.URy {
		t.Errorf("document rect not bottom-up: %+v", doc)
	}
}
