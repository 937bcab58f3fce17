package selection

import "seehuhn.de/go/pdf"

// PageGeometry describes how a document page is displayed inside a canvas:
// the page size in points, the scale factor fitting the page into the
// canvas, and the position of the rendered page image (which is centered
// and may be letterboxed).
type PageGeometry struct {
	PageWidth  float64 // points
	PageHeight float64 // points

	Scale float64 // canvas units per point

	CanvasWidth  float64
	CanvasHeight float64

	ImageX0     float64 // top-left of the page image within the canvas
	ImageY0     float64
	ImageWidth  float64
	ImageHeight float64
}

// FitPage computes the geometry that fits a page of the given size into a
// canvas, preserving aspect ratio and centering the result. Canvas
// dimensions are floored at 1 so a not-yet-mapped window still yields a
// usable geometry.
func FitPage(pageW, pageH, canvasW, canvasH float64) PageGeometry {
	if canvasW < 1 {
		canvasW = 1
	}
	if canvasH < 1 {
		canvasH = 1
	}
	scale := canvasW / pageW
	if s := canvasH / pageH; s < scale {
		scale = s
	}
	g := PageGeometry{
		PageWidth:    pageW,
		PageHeight:   pageH,
		Scale:        scale,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
		ImageWidth:   pageW * scale,
		ImageHeight:  pageH * scale,
	}
	g.ImageX0 = (canvasW - g.ImageWidth) / 2
	g.ImageY0 = (canvasH - g.ImageHeight) / 2
	return g
}

// ImageBounds returns the rendered page-image rectangle in canvas space.
// This is the clamping target for all rectangle operations; the page may
// not fill the whole canvas.
func (g PageGeometry) ImageBounds() Rect {
	return Rect{
		X1: g.ImageX0,
		Y1: g.ImageY0,
		X2: g.ImageX0 + g.ImageWidth,
		Y2: g.ImageY0 + g.ImageHeight,
	}
}

// ToDocument converts a canvas-space rectangle to PDF user space.
// Canvas Y runs top-down while document Y runs bottom-up, so the vertical
// coordinates invert: the canvas bottom edge becomes LLy.
func (g PageGeometry) ToDocument(r Rect) pdf.Rectangle {
	return pdf.Rectangle{
		LLx: (r.X1 - g.ImageX0) / g.Scale,
		LLy: g.PageHeight - (r.Y2-g.ImageY0)/g.Scale,
		URx: (r.X2 - g.ImageX0) / g.Scale,
		URy: g.PageHeight - (r.Y1-g.ImageY0)/g.Scale,
	}
}

// ToCanvas converts a document-space rectangle back to canvas space. It is
// the inverse of ToDocument up to floating-point error.
func (g PageGeometry) ToCanvas(b pdf.Rectangle) Rect {
	return Rect{
		X1: g.ImageX0 + b.LLx*g.Scale,
		Y1: g.ImageY0 + (g.PageHeight-b.URy)*g.Scale,
		X2: g.ImageX0 + b.URx*g.Scale,
		Y2: g.ImageY0 + (g.PageHeight-b.LLy)*g.Scale,
	}
}

// Reproject carries a rectangle from an old display geometry to a new one,
// preserving its position relative to the page rather than its absolute
// canvas coordinates. The result is clamped (size preserved) to the new
// image bounds.
func Reproject(r Rect, old, new PageGeometry) Rect {
	s := old.Scale
	if s == 0 {
		s = 1
	}
	out := Rect{
		X1: new.ImageX0 + (r.X1-old.ImageX0)/s*new.Scale,
		Y1: new.ImageY0 + (r.Y1-old.ImageY0)/s*new.Scale,
		X2: new.ImageX0 + (r.X2-old.ImageX0)/s*new.Scale,
		Y2: new.ImageY0 + (r.Y2-old.ImageY0)/s*new.Scale,
	}
	return Clamp(out, new.ImageBounds(), true)
}
