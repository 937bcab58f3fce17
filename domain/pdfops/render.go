package pdfops

import (
	"fmt"
	"image"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/converter"
	"seehuhn.de/go/pdf/pagetree"
)

// PageSize returns the extent of the first page's MediaBox in points.
func PageSize(path string) (w, h float64, err error) {
	doc, err := pdf.Open(path, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer doc.Close()

	_, pageDict, err := pagetree.GetPage(doc, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get page 1: %w", err)
	}
	box, err := pdf.GetRectangle(doc, pageDict["MediaBox"])
	if err != nil {
		return 0, 0, err
	}
	if box == nil {
		return 0, 0, fmt.Errorf("%s: page 1 has no MediaBox", path)
	}
	return box.URx - box.LLx, box.URy - box.LLy, nil
}

// RenderPage rasterizes one page (1-based) of the document. The dpi
// controls the pixel density; 72 dpi yields one pixel per point, so the
// interactive selector passes scale*72 to obtain the page image at
// exactly the displayed size.
func RenderPage(path string, pageNum int, dpi float64) (image.Image, error) {
	doc, err := pdf.Open(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer doc.Close()

	conv := converter.NewConverter(doc)
	img, err := conv.RenderPageToImage(pageNum, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageNum, err)
	}
	return img, nil
}
