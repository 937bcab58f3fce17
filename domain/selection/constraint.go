package selection

import (
	"strconv"
	"strings"
)

// ApplyMode projects a rectangle onto the active constraint mode and
// returns the result clamped (size preserved) to the image bounds. The
// projected size is authoritative; only the position may move to stay
// in-bounds. Freeform, and any mode with invalid parameters, is the
// identity.
func ApplyMode(m Mode, r Rect, g PageGeometry) Rect {
	if ratio, ok := ratioOf(m); ok {
		return Clamp(applyRatio(r, ratio), g.ImageBounds(), true)
	}
	if wPts, hPts, ok := fixedOf(m); ok {
		return Clamp(applyFixed(r, wPts, hPts, g), g.ImageBounds(), true)
	}
	return r
}

// applyRatio recomputes the rectangle about its center so that
// width/height == ratio, shrinking whichever dimension currently exceeds
// the target. A degenerate height counts as one canvas unit.
func applyRatio(r Rect, ratio float64) Rect {
	cx, cy := r.Center()
	w := r.Width()
	h := r.Height()
	if h == 0 {
		h = 1
	}
	if w/h > ratio {
		w = h * ratio
	} else {
		h = w / ratio
	}
	return centered(cx, cy, w, h)
}

// applyFixed sets the rectangle about its center to the locked physical
// size, converted to canvas units at the current scale and capped at the
// canvas dimensions.
func applyFixed(r Rect, wPts, hPts float64, g PageGeometry) Rect {
	w, h := fixedCanvasSize(wPts, hPts, g)
	cx, cy := r.Center()
	return centered(cx, cy, w, h)
}

// fixedCanvasSize converts locked point dimensions to canvas units, capped
// at the canvas size so an oversized target still yields a displayable
// rectangle.
func fixedCanvasSize(wPts, hPts float64, g PageGeometry) (w, h float64) {
	w = wPts * g.Scale
	h = hPts * g.Scale
	if w > g.CanvasWidth {
		w = g.CanvasWidth
	}
	if h > g.CanvasHeight {
		h = g.CanvasHeight
	}
	return w, h
}

// ParseAspectRatio parses user input of the form "W x H", "W:H", "W/H" or
// a bare ratio value. It reports false for empty, malformed or
// non-positive input.
func ParseAspectRatio(text string) (float64, bool) {
	value := strings.ToLower(strings.TrimSpace(text))
	if value == "" {
		return 0, false
	}
	for _, sep := range []string{"x", ":", "/"} {
		if !strings.Contains(value, sep) {
			continue
		}
		parts := strings.SplitN(value, sep, 2)
		w, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		h, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			return 0, false
		}
		return w / h, true
	}
	ratio, err := strconv.ParseFloat(value, 64)
	if err != nil || ratio <= 0 {
		return 0, false
	}
	return ratio, true
}

// UnitToPoints converts a value in the named unit to PDF points. Pixels
// are treated as points (1 px == 1 pt). Unknown units report false.
func UnitToPoints(v float64, unit string) (float64, bool) {
	switch normalizeUnit(unit) {
	case "in":
		return v * PointsPerInch, true
	case "cm":
		return v * PointsPerCM, true
	case "pt", "px":
		return v, true
	default:
		return 0, false
	}
}

// PointsToUnit converts a value in PDF points to the named unit.
func PointsToUnit(v float64, unit string) (float64, bool) {
	switch normalizeUnit(unit) {
	case "in":
		return v / PointsPerInch, true
	case "cm":
		return v / PointsPerCM, true
	case "pt", "px":
		return v, true
	default:
		return 0, false
	}
}

func normalizeUnit(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "in", "inch", "inches":
		return "in"
	case "cm", "centimeter", "centimeters":
		return "cm"
	case "pt", "pts", "point", "points":
		return "pt"
	case "px", "pixel", "pixels":
		return "px"
	default:
		return ""
	}
}
