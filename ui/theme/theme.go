package theme

// Centralized theming for the crop tool UI: palette constants shared by
// the widgets and the preview compositor, plus InitStyles to activate a
// base theme.

import (
	"image/color"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Widget palette.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorBorder    = "#d0d7de"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Preview compositor palette.
var (
	// CanvasBg fills the letterbox area around the page image.
	CanvasBg = color.RGBA{R: 0xd0, G: 0xd7, B: 0xde, A: 0xff}
	// Outline is the crop rectangle color.
	Outline = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
)

// InitStyles activates the base theme and applies the app background.
func InitStyles() {
	_ = ActivateTheme("azure light")
	App.Configure(Background(ColorBg))
}
