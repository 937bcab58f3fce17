package selection

import "testing"

var bounds = Rect{X1: 10, Y1: 20, X2: 510, Y2: 420}

func TestClampKeepSizeTranslates(t *testing.T) {
	r := Rect{X1: -40, Y1: 0, X2: 60, Y2: 100}
	got := Clamp(r, bounds, true)
	if got.Width() != r.Width() || got.Height() != r.Height() {
		t.Fatalf("keepSize clamp changed size: %+v", got)
	}
	if got.X1 != bounds.X1 || got.Y1 != bounds.Y1 {
		t.Errorf("expected pin to top-left bound, got %+v", got)
	}

	r = Rect{X1: 480, Y1: 390, X2: 580, Y2: 490}
	got = Clamp(r, bounds, true)
	if got.X2 != bounds.X2 || got.Y2 != bounds.Y2 {
		t.Errorf("expected pin to bottom-right bound, got %+v", got)
	}
}

func TestClampKeepSizeOversized(t *testing.T) {
	// Wider than the bounds: pinned so that at most one edge is outside.
	r := Rect{X1: 0, Y1: 100, X2: 700, Y2: 200}
	got := Clamp(r, bounds, true)
	if got.Width() != 700 {
		t.Fatalf("oversized rect must keep its size, got %+v", got)
	}
	inside := func(v, lo, hi float64) bool { return v >= lo && v <= hi }
	if !inside(got.X1, bounds.X1, bounds.X2) && !inside(got.X2, bounds.X1, bounds.X2) {
		t.Errorf("both horizontal edges outside bounds: %+v", got)
	}
}

func TestClampShrinkClips(t *testing.T) {
	r := Rect{X1: -100, Y1: 0, X2: 600, Y2: 500}
	got := Clamp(r, bounds, false)
	if got != bounds {
		t.Errorf("expected clip to bounds %+v, got %+v", bounds, got)
	}

	// A rect already inside is untouched.
	r = Rect{X1: 50, Y1: 60, X2: 70, Y2: 80}
	if got := Clamp(r, bounds, false); got != r {
		t.Errorf("inside rect modified: %+v", got)
	}
}

func TestClampNeverInverts(t *testing.T) {
	rects := []Rect{
		{X1: -500, Y1: -500, X2: -400, Y2: -400},
		{X1: 600, Y1: 500, X2: 700, Y2: 600},
		{X1: 0, Y1: 0, X2: 1000, Y2: 1000},
	}
	for _, r := range rects {
		for _, keep := range []bool{true, false} {
			got := Clamp(r, bounds, keep)
			if got.X1 > got.X2 || got.Y1 > got.Y2 {
				t.Errorf("Clamp(%+v, keep=%v) inverted: %+v", r, keep, got)
			}
		}
	}
}
