package presenter

import (
	"log/slog"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf"

	"github.com/soocke/labelcrop/domain/selection"
	"github.com/soocke/labelcrop/ui/model"
)

// Mode names shown in the toolbar dropdown.
const (
	ModeFreeform = "Freeform"
	ModeRatio    = "Force Aspect Ratio"
	ModeDims     = "Force Dimensions"
)

// ModeNames lists the dropdown entries in display order.
func ModeNames() []string { return []string{ModeFreeform, ModeRatio, ModeDims} }

// Cursor identifies the pointer affordance the view should present.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeH
	CursorResizeV
	CursorResizeNWSE
	CursorResizeNESW
)

// SelectionView is the subset of view operations the presenter drives.
type SelectionView interface {
	SetRect(r selection.Rect)
	SetFields(f model.FieldValues)
	SetCursor(c Cursor)
}

// SelectionPresenter owns presentation logic for the interactive crop
// selection. It translates pointer and toolbar events into engine calls
// and pushes the resulting rectangle and field readouts to the view. The
// engine is created on the first viewport notification, once the canvas
// size is known.
type SelectionPresenter struct {
	logger *slog.Logger
	view   SelectionView
	model  *model.SelectionModel

	pageW, pageH float64
	engine       *selection.Engine

	modeName   string
	ratioText  string
	widthText  string
	heightText string
}

func NewSelectionPresenter(pageW, pageH float64, view SelectionView, m *model.SelectionModel, logger *slog.Logger) *SelectionPresenter {
	return &SelectionPresenter{
		logger:   logger,
		view:     view,
		model:    m,
		pageW:    pageW,
		pageH:    pageH,
		modeName: ModeFreeform,
	}
}

// ViewportResized recomputes the display geometry for a new canvas size.
// The first call creates the engine and its default selection.
func (p *SelectionPresenter) ViewportResized(w, h float64) {
	if p == nil || p.view == nil {
		return
	}
	if p.engine == nil {
		p.engine = selection.New(selection.FitPage(p.pageW, p.pageH, w, h))
	} else {
		p.engine.SetViewport(w, h)
	}
	p.push()
}

// Geometry reports the current display geometry. It reports false before
// the first viewport notification.
func (p *SelectionPresenter) Geometry() (selection.PageGeometry, bool) {
	if p == nil || p.engine == nil {
		return selection.PageGeometry{}, false
	}
	return p.engine.Geometry(), true
}

func (p *SelectionPresenter) PointerPress(x, y float64) {
	if p == nil || p.engine == nil {
		return
	}
	if p.engine.Press(x, y) != selection.DragNone {
		p.view.SetCursor(p.gestureCursor())
	}
}

func (p *SelectionPresenter) PointerDrag(x, y float64) {
	if p == nil || p.engine == nil || p.engine.Dragging() == selection.DragNone {
		return
	}
	p.engine.Drag(x, y)
	p.push()
}

func (p *SelectionPresenter) PointerRelease(x, y float64) {
	if p == nil || p.engine == nil {
		return
	}
	p.engine.Release()
	p.view.SetCursor(p.hoverCursor(x, y))
}

// PointerMove updates the cursor affordance while no gesture is active.
func (p *SelectionPresenter) PointerMove(x, y float64) {
	if p == nil || p.engine == nil || p.engine.Dragging() != selection.DragNone {
		return
	}
	p.view.SetCursor(p.hoverCursor(x, y))
}

func (p *SelectionPresenter) PointerLeave() {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetCursor(CursorDefault)
}

// ModeChanged switches the constraint mode named in the dropdown.
func (p *SelectionPresenter) ModeChanged(name string) {
	if p == nil {
		return
	}
	p.modeName = name
	p.applyConstraints()
}

// FieldsCommitted re-applies the active constraint with the entered
// parameters. Unparseable input degrades the mode to freeform behavior
// without touching the rectangle.
func (p *SelectionPresenter) FieldsCommitted(ratio, width, height string) {
	if p == nil {
		return
	}
	p.ratioText = strings.TrimSpace(ratio)
	p.widthText = strings.TrimSpace(width)
	p.heightText = strings.TrimSpace(height)
	p.applyConstraints()
}

// UnitsChanged switches the display units and reformats the fields.
func (p *SelectionPresenter) UnitsChanged(widthUnit, heightUnit string) {
	if p == nil || p.engine == nil {
		return
	}
	p.model.SetUnits(widthUnit, heightUnit)
	p.pushFields()
}

// Confirm returns the selection in document space. It reports false when
// no engine exists yet.
func (p *SelectionPresenter) Confirm() (pdf.Rectangle, bool) {
	if p == nil || p.engine == nil {
		return pdf.Rectangle{}, false
	}
	return p.engine.Confirm(), true
}

func (p *SelectionPresenter) applyConstraints() {
	if p.engine == nil {
		return
	}
	p.engine.SetMode(p.currentMode())
	p.push()
}

// currentMode derives the engine mode from the dropdown selection and the
// committed field texts.
func (p *SelectionPresenter) currentMode() selection.Mode {
	switch p.modeName {
	case ModeRatio:
		if ratio, ok := selection.ParseAspectRatio(p.ratioText); ok {
			return selection.AspectRatio{Ratio: ratio}
		}
		if p.logger != nil && p.ratioText != "" {
			p.logger.Debug("unusable ratio input", "text", p.ratioText)
		}
	case ModeDims:
		widthUnit, heightUnit := p.model.Units()
		w, okW := fieldPoints(p.widthText, widthUnit)
		h, okH := fieldPoints(p.heightText, heightUnit)
		if okW && okH {
			return selection.FixedDims{Width: w, Height: h}
		}
	}
	return selection.Freeform{}
}

func (p *SelectionPresenter) push() {
	p.view.SetRect(p.engine.Rect())
	p.pushFields()
}

// pushFields formats the document-space extent of the selection for the
// toolbar and keeps the committed texts in sync with what is displayed.
func (p *SelectionPresenter) pushFields() {
	doc := p.engine.Confirm()
	f := p.model.Fields(doc.URx-doc.LLx, doc.URy-doc.LLy)
	p.ratioText = f.Ratio
	p.widthText = f.Width
	p.heightText = f.Height
	p.view.SetFields(f)
}

func (p *SelectionPresenter) hoverCursor(x, y float64) Cursor {
	edges, region := selection.HitTest(x, y, p.engine.Rect())
	switch region {
	case selection.RegionEdge:
		return cursorForEdges(edges)
	case selection.RegionInside:
		return CursorMove
	}
	return CursorDefault
}

func (p *SelectionPresenter) gestureCursor() Cursor {
	switch p.engine.Dragging() {
	case selection.DragMove:
		return CursorMove
	case selection.DragResize:
		return cursorForEdges(p.engine.ActiveEdges())
	}
	return CursorDefault
}

// cursorForEdges picks the resize affordance for an edge set. Opposing
// diagonals share a cursor.
func cursorForEdges(e selection.Edges) Cursor {
	horizontal := e.Left || e.Right
	vertical := e.Top || e.Bottom
	switch {
	case horizontal && vertical:
		if (e.Left && e.Top) || (e.Right && e.Bottom) {
			return CursorResizeNWSE
		}
		return CursorResizeNESW
	case horizontal:
		return CursorResizeH
	case vertical:
		return CursorResizeV
	}
	return CursorDefault
}

func fieldPoints(text, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return selection.UnitToPoints(v, unit)
}
