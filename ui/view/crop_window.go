package view

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/labelcrop/domain/selection"
	"github.com/soocke/labelcrop/ui/images"
	"github.com/soocke/labelcrop/ui/model"
	"github.com/soocke/labelcrop/ui/presenter"
	"github.com/soocke/labelcrop/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	initialW = 900
	initialH = 760

	// Height reserved for the toolbar row; the preview gets the rest of
	// the window.
	toolbarHeight = 40

	outlineWidth = 2

	// Window managers emit bursts of <Configure> events while the user
	// drags a corner; re-rendering the page is deferred until they stop.
	resizeDebounce = 150 * time.Millisecond
)

var unitNames = []string{"in", "cm", "pt", "px"}

// Callbacks wires user actions to the presenter layer.
type Callbacks struct {
	Press, Drag, Release func(x, y float64)
	Motion               func(x, y float64)
	Leave                func()
	ViewportResized      func(w, h float64)
	ModeChanged          func(name string)
	FieldsCommitted      func(ratio, width, height string)
	UnitsChanged         func(widthUnit, heightUnit string)
	PageImage            func() (img image.Image, geom selection.PageGeometry, ok bool)
	Done                 func()
}

// CropWindow is the interactive selector: a toolbar with the constraint
// controls and a preview label showing the first page with the crop
// rectangle drawn on top.
type CropWindow struct {
	logger *slog.Logger
	cb     Callbacks

	preview     *LabelWidget
	ratioEntry  *TextWidget
	widthEntry  *TextWidget
	heightEntry *TextWidget
	widthUnit   *TComboboxWidget
	heightUnit  *TComboboxWidget

	base       *image.RGBA // letterboxed page composite at the current viewport
	rect       selection.Rect
	haveRect   bool
	prevPhoto  *Img // last Tk photo instance, disposed before replacing
	lastCursor presenter.Cursor

	resizeAfter string
	lastGeom    string
}

func NewCropWindow(logger *slog.Logger) *CropWindow {
	return &CropWindow{logger: logger, lastCursor: -1}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (w *CropWindow) Build(cb Callbacks) {
	if w == nil {
		return
	}
	w.cb = cb
	App.WmTitle("Label Crop")
	theme.InitStyles()

	toolbar := Frame()
	Grid(toolbar, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	modeSelect := TCombobox(Values(presenter.ModeNames()), Width(18))
	Grid(modeSelect, In(toolbar), Row(0), Column(0), Sticky("w"), Padx("0.3m"), Pady("0.2m"))
	modeSelect.Current(0)
	Bind(modeSelect, "<<ComboboxSelected>>", Command(func() {
		names := presenter.ModeNames()
		if name, ok := comboValue(modeSelect, names); ok {
			if w.cb.ModeChanged != nil {
				w.cb.ModeChanged(name)
			}
		} else if w.logger != nil {
			w.logger.Error("mode selection parse error")
		}
	}))

	commit := func() {
		if w.cb.FieldsCommitted != nil {
			w.cb.FieldsCommitted(w.text(w.ratioEntry), w.text(w.widthEntry), w.text(w.heightEntry))
		}
	}
	col := 1
	makeField := func(label string, width int) *TextWidget {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(toolbar), Row(0), Column(col), Sticky("w"), Padx("0.3m"), Pady("0.2m"))
		col++
		entry := Text(Height(1), Width(width))
		Grid(entry, In(toolbar), Row(0), Column(col), Sticky("w"), Padx("0.3m"), Pady("0.2m"))
		col++
		Bind(entry, "<Return>", Command(commit))
		Bind(entry, "<FocusOut>", Command(commit))
		return entry
	}
	makeUnit := func() *TComboboxWidget {
		unit := TCombobox(Values(unitNames), Width(4))
		Grid(unit, In(toolbar), Row(0), Column(col), Sticky("w"), Padx("0.3m"), Pady("0.2m"))
		col++
		unit.Current(0)
		Bind(unit, "<<ComboboxSelected>>", Command(func() { w.unitsChanged() }))
		return unit
	}
	w.ratioEntry = makeField("Ratio", 8)
	w.widthEntry = makeField("W", 8)
	w.widthUnit = makeUnit()
	w.heightEntry = makeField("H", 8)
	w.heightUnit = makeUnit()

	done := Button(Txt("Done"), Command(func() {
		if w.cb.Done != nil {
			w.cb.Done()
		}
	}))
	Grid(done, In(toolbar), Row(0), Column(col), Sticky("e"), Padx("0.4m"), Pady("0.2m"))

	placeholder := image.NewRGBA(image.Rect(0, 0, initialW, initialH-toolbarHeight))
	draw.Draw(placeholder, placeholder.Bounds(), &image.Uniform{theme.CanvasBg}, image.Point{}, draw.Src)
	w.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	w.preview = Label(Image(w.prevPhoto), Borderwidth(0))
	Grid(w.preview, Row(1), Column(0), Sticky("nw"))
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	Bind(w.preview, "<ButtonPress-1>", Command(func(e *Event) {
		if w.cb.Press != nil {
			w.cb.Press(float64(e.X), float64(e.Y))
		}
	}))
	Bind(w.preview, "<B1-Motion>", Command(func(e *Event) {
		if w.cb.Drag != nil {
			w.cb.Drag(float64(e.X), float64(e.Y))
		}
	}))
	Bind(w.preview, "<ButtonRelease-1>", Command(func(e *Event) {
		if w.cb.Release != nil {
			w.cb.Release(float64(e.X), float64(e.Y))
		}
	}))
	Bind(w.preview, "<Motion>", Command(func(e *Event) {
		if w.cb.Motion != nil {
			w.cb.Motion(float64(e.X), float64(e.Y))
		}
	}))
	Bind(w.preview, "<Leave>", Command(func() {
		if w.cb.Leave != nil {
			w.cb.Leave()
		}
	}))
	Bind(App, "<Configure>", Command(func() { w.scheduleResize() }))
}

// Run places the window, draws the initial page and enters the Tk event
// loop. It returns when the window is destroyed.
func (w *CropWindow) Run() {
	screenW, screenH := 1920, 1080
	x, y := (screenW-initialW)/2, (screenH-initialH)/2
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+%d", initialW, initialH, x, y))
	WmProtocol(App, "WM_DELETE_WINDOW", w.Close)
	w.lastGeom = fmt.Sprintf("%dx%d", initialW, initialH)
	w.applyViewport(initialW, initialH-toolbarHeight)
	App.Wait()
}

// Close cancels any pending redraw and destroys the window.
func (w *CropWindow) Close() {
	if w.resizeAfter != "" {
		TclAfterCancel(w.resizeAfter)
		w.resizeAfter = ""
	}
	Destroy(App)
}

// --- SelectionPresenter view contract methods ---

// SetRect redraws the crop rectangle at the given canvas position.
func (w *CropWindow) SetRect(r selection.Rect) {
	if w == nil {
		return
	}
	w.rect = r
	w.haveRect = true
	w.redrawOverlay()
}

// SetFields replaces the toolbar entry texts.
func (w *CropWindow) SetFields(f model.FieldValues) {
	if w == nil {
		return
	}
	setText(w.ratioEntry, f.Ratio)
	setText(w.widthEntry, f.Width)
	setText(w.heightEntry, f.Height)
}

// SetCursor switches the pointer shape over the preview.
func (w *CropWindow) SetCursor(c presenter.Cursor) {
	if w == nil || w.preview == nil || c == w.lastCursor {
		return
	}
	w.lastCursor = c
	name := cursorNames[c]
	// guard against cursor names missing on this platform
	func() {
		defer func() { _ = recover() }()
		w.preview.Configure(Cursor(name))
	}()
}

var cursorNames = map[presenter.Cursor]string{
	presenter.CursorDefault:    "",
	presenter.CursorMove:       "fleur",
	presenter.CursorResizeH:    "sb_h_double_arrow",
	presenter.CursorResizeV:    "sb_v_double_arrow",
	presenter.CursorResizeNWSE: "top_left_corner",
	presenter.CursorResizeNESW: "top_right_corner",
}

func (w *CropWindow) unitsChanged() {
	if w.cb.UnitsChanged == nil {
		return
	}
	widthUnit, _ := comboValue(w.widthUnit, unitNames)
	heightUnit, _ := comboValue(w.heightUnit, unitNames)
	w.cb.UnitsChanged(widthUnit, heightUnit)
}

func (w *CropWindow) scheduleResize() {
	if w.resizeAfter != "" {
		TclAfterCancel(w.resizeAfter)
	}
	w.resizeAfter = TclAfter(resizeDebounce, func() {
		w.resizeAfter = ""
		w.commitResize()
	})
}

// commitResize reads the window geometry and, if the size changed since
// the last redraw, re-renders the page at the new viewport.
func (w *CropWindow) commitResize() {
	width, height, ok := parseGeometry(WmGeometry(App))
	if !ok {
		return
	}
	key := fmt.Sprintf("%dx%d", width, height)
	if key == w.lastGeom {
		return
	}
	w.lastGeom = key
	w.applyViewport(width, height-toolbarHeight)
}

func (w *CropWindow) applyViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if w.cb.ViewportResized != nil {
		w.cb.ViewportResized(float64(width), float64(height))
	}
	w.redrawPage()
}

// redrawPage rebuilds the letterboxed page composite for the current
// geometry and repaints the overlay on top of it.
func (w *CropWindow) redrawPage() {
	if w.cb.PageImage == nil {
		return
	}
	img, geom, ok := w.cb.PageImage()
	if !ok {
		return
	}
	base := image.NewRGBA(image.Rect(0, 0, int(geom.CanvasWidth), int(geom.CanvasHeight)))
	draw.Draw(base, base.Bounds(), &image.Uniform{theme.CanvasBg}, image.Point{}, draw.Src)
	if img != nil {
		// The renderer works in whole pixels and can be off by one from
		// the letterbox slot.
		scaled := images.ScaleToFit(img, int(geom.ImageWidth+0.5), int(geom.ImageHeight+0.5))
		b := scaled.Bounds()
		x0, y0 := int(geom.ImageX0+0.5), int(geom.ImageY0+0.5)
		draw.Draw(base, image.Rect(x0, y0, x0+b.Dx(), y0+b.Dy()), scaled, b.Min, draw.Src)
	}
	w.base = base
	w.redrawOverlay()
}

// redrawOverlay paints the crop rectangle onto a copy of the page
// composite and swaps it into the preview label.
func (w *CropWindow) redrawOverlay() {
	if w.base == nil || w.preview == nil {
		return
	}
	frame := image.NewRGBA(w.base.Bounds())
	draw.Draw(frame, frame.Bounds(), w.base, image.Point{}, draw.Src)
	if w.haveRect {
		drawOutline(frame, w.rect, theme.Outline, outlineWidth)
	}
	if w.prevPhoto != nil {
		w.prevPhoto.Delete()
	}
	w.prevPhoto = NewPhoto(Data(images.EncodePNG(frame)))
	w.preview.Configure(Image(w.prevPhoto))
}

// drawOutline fills four strips forming the rectangle border, clipped to
// the frame.
func drawOutline(dst *image.RGBA, r selection.Rect, c color.RGBA, width int) {
	x1, y1 := int(r.X1+0.5), int(r.Y1+0.5)
	x2, y2 := int(r.X2+0.5), int(r.Y2+0.5)
	u := &image.Uniform{c}
	b := dst.Bounds()
	strip := func(rc image.Rectangle) {
		draw.Draw(dst, rc.Intersect(b), u, image.Point{}, draw.Src)
	}
	strip(image.Rect(x1, y1, x2, y1+width))
	strip(image.Rect(x1, y2-width, x2, y2))
	strip(image.Rect(x1, y1, x1+width, y2))
	strip(image.Rect(x2-width, y1, x2, y2))
}

func (w *CropWindow) text(t *TextWidget) string {
	if t == nil {
		return ""
	}
	return strings.Join(t.Get("1.0", END), "")
}

func setText(t *TextWidget, s string) {
	if t == nil {
		return
	}
	t.Delete("1.0", END)
	t.Insert("1.0", s)
}

// comboValue maps a combobox selection index back to its value.
func comboValue(cb *TComboboxWidget, values []string) (string, bool) {
	idx, err := strconv.Atoi(cb.Current(nil))
	if err != nil || idx < 0 || idx >= len(values) {
		return "", false
	}
	return values[idx], true
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string into width and height.
func parseGeometry(g string) (width, height int, ok bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return 0, 0, false
	}
	width, _ = strconv.Atoi(m[1])
	height, _ = strconv.Atoi(m[2])
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
