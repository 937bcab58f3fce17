// Package app assembles the interactive crop selector: PDF rendering,
// the selection presenter and the Tk window.
package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/labelcrop/config"
	"github.com/soocke/labelcrop/domain/pdfops"
	"github.com/soocke/labelcrop/domain/selection"
	"github.com/soocke/labelcrop/ui/model"
	"github.com/soocke/labelcrop/ui/presenter"
	"github.com/soocke/labelcrop/ui/view"
)

// session wires the interactive selector together for one input file.
type session struct {
	logger    *slog.Logger
	input     string
	cfgPath   string
	presenter *presenter.SelectionPresenter
	window    *view.CropWindow
	err       error
}

// Run opens the interactive crop selector for the given PDF and blocks
// until the window closes. A confirmed selection is written to cfgPath.
func Run(input, cfgPath string, logger *slog.Logger) error {
	pageW, pageH, err := pdfops.PageSize(input)
	if err != nil {
		return err
	}
	logger.Info("page loaded", "input", input, "width_pts", pageW, "height_pts", pageH)

	win := view.NewCropWindow(logger)
	p := presenter.NewSelectionPresenter(pageW, pageH, win, model.NewSelectionModel(), logger)
	s := &session{logger: logger, input: input, cfgPath: cfgPath, presenter: p, window: win}

	win.Build(view.Callbacks{
		Press:           p.PointerPress,
		Drag:            p.PointerDrag,
		Release:         p.PointerRelease,
		Motion:          p.PointerMove,
		Leave:           p.PointerLeave,
		ViewportResized: p.ViewportResized,
		ModeChanged:     p.ModeChanged,
		FieldsCommitted: p.FieldsCommitted,
		UnitsChanged:    p.UnitsChanged,
		PageImage:       s.pageImage,
		Done:            s.confirm,
	})
	win.Run()
	return s.err
}

// pageImage renders the first page at exactly the displayed size: the
// fit scale times 72 dpi yields one pixel per canvas unit.
func (s *session) pageImage() (image.Image, selection.PageGeometry, bool) {
	geom, ok := s.presenter.Geometry()
	if !ok {
		return nil, geom, false
	}
	img, err := pdfops.RenderPage(s.input, 1, geom.Scale*selection.PointsPerInch)
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		return nil, geom, false
	}
	return img, geom, true
}

// confirm persists the selection and closes the window.
func (s *session) confirm() {
	box, ok := s.presenter.Confirm()
	if !ok {
		return
	}
	data := &config.CropData{
		BottomLeft: config.Point{X: box.LLx, Y: box.LLy},
		TopRight:   config.Point{X: box.URx, Y: box.URy},
	}
	if err := data.Save(s.cfgPath); err != nil {
		s.logger.Error("crop data save failed", "error", err, "path", s.cfgPath)
		s.err = err
		s.window.Close()
		return
	}
	fmt.Println("Selected rectangle in PDF points:")
	fmt.Printf("  Bottom-left: (%.2f, %.2f)\n", box.LLx, box.LLy)
	fmt.Printf("  Top-right:   (%.2f, %.2f)\n", box.URx, box.URy)
	fmt.Printf("  Width: %.2f, Height: %.2f\n", box.URx-box.LLx, box.URy-box.LLy)
	fmt.Printf("Crop data saved to %s\n", s.cfgPath)
	s.window.Close()
}
