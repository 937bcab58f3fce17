package model

import (
	"fmt"

	"github.com/soocke/labelcrop/domain/selection"
)

// SelectionModel holds the UI-facing state of the crop toolbar: the
// display unit chosen for each dimension field. The rectangle itself
// lives in the selection engine; this model only formats values for the
// widgets. No synchronization needed: updates occur on the UI thread.
type SelectionModel struct {
	widthUnit  string
	heightUnit string
}

// NewSelectionModel returns a model with both fields displaying inches.
func NewSelectionModel() *SelectionModel {
	return &SelectionModel{widthUnit: "in", heightUnit: "in"}
}

// SetUnits switches the display units. Unknown unit names keep the
// previous unit for that field.
func (m *SelectionModel) SetUnits(widthUnit, heightUnit string) {
	if m == nil {
		return
	}
	if _, ok := selection.UnitToPoints(1, widthUnit); ok {
		m.widthUnit = widthUnit
	}
	if _, ok := selection.UnitToPoints(1, heightUnit); ok {
		m.heightUnit = heightUnit
	}
}

// Units returns the active display units for the width and height fields.
func (m *SelectionModel) Units() (widthUnit, heightUnit string) {
	if m == nil {
		return "in", "in"
	}
	return m.widthUnit, m.heightUnit
}

// FieldValues carries formatted strings for the toolbar entries.
type FieldValues struct {
	Ratio  string
	Width  string
	Height string
}

// Fields formats a selection extent (in PDF points) for display. A
// degenerate height leaves the ratio field empty.
func (m *SelectionModel) Fields(widthPts, heightPts float64) FieldValues {
	if m == nil {
		return FieldValues{}
	}
	var f FieldValues
	if heightPts > 0 {
		f.Ratio = formatField(widthPts / heightPts)
	}
	if w, ok := selection.PointsToUnit(widthPts, m.widthUnit); ok {
		f.Width = formatField(w)
	}
	if h, ok := selection.PointsToUnit(heightPts, m.heightUnit); ok {
		f.Height = formatField(h)
	}
	return f
}

func formatField(v float64) string { return fmt.Sprintf("%.6g", v) }
