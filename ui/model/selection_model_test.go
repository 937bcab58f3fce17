package model

import "testing"

func TestFieldsDefaultInches(t *testing.T) {
	m := NewSelectionModel()
	f := m.Fields(288, 432) // 4in x 6in label
	if f.Width != "4" {
		t.Errorf("width = %q, want 4", f.Width)
	}
	if f.Height != "6" {
		t.Errorf("height = %q, want 6", f.Height)
	}
	if f.Ratio != "0.666667" {
		t.Errorf("ratio = %q, want 0.666667", f.Ratio)
	}
}

func TestFieldsPerFieldUnits(t *testing.T) {
	m := NewSelectionModel()
	m.SetUnits("pt", "cm")
	f := m.Fields(288, 432)
	if f.Width != "288" {
		t.Errorf("width = %q, want 288", f.Width)
	}
	if f.Height != "15.24" {
		t.Errorf("height = %q, want 15.24", f.Height)
	}
}

func TestFieldsDegenerateHeight(t *testing.T) {
	m := NewSelectionModel()
	if f := m.Fields(100, 0); f.Ratio != "" {
		t.Errorf("ratio for zero height = %q, want empty", f.Ratio)
	}
}

func TestSetUnitsRejectsUnknown(t *testing.T) {
	m := NewSelectionModel()
	m.SetUnits("furlong", "cm")
	w, h := m.Units()
	if w != "in" {
		t.Errorf("width unit = %q, want in (unknown unit must be ignored)", w)
	}
	if h != "cm" {
		t.Errorf("height unit = %q, want cm", h)
	}
}

func TestNilModelIsSafe(t *testing.T) {
	var m *SelectionModel
	m.SetUnits("cm", "cm")
	if f := m.Fields(10, 10); f != (FieldValues{}) {
		t.Errorf("nil model Fields = %+v, want zero", f)
	}
}
