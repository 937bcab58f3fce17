package images

import (
	"image"
	"testing"
)

func TestScaleToFitShrinks(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	got := ScaleToFit(src, 50, 50)
	b := got.Bounds()
	if b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("scaled to %dx%d, want 50x25", b.Dx(), b.Dy())
	}
}

func TestScaleToFitNoop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	if got := ScaleToFit(src, 50, 50); got != src {
		t.Error("image already within bounds should be returned unchanged")
	}
}

func TestEncodePNG(t *testing.T) {
	if b := EncodePNG(image.NewRGBA(image.Rect(0, 0, 4, 4))); len(b) == 0 {
		t.Error("empty PNG output")
	}
	if b := EncodePNG(nil); b != nil {
		t.Error("nil image should produce nil output")
	}
}
