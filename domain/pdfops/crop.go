// Package pdfops applies a confirmed crop rectangle to PDF files: it
// rewrites every page's boundary boxes, optionally rotates the pages, and
// renders page previews for the interactive selector.
package pdfops

import (
	"fmt"
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Crop writes a copy of the input PDF in which every page's MediaBox and
// CropBox are replaced verbatim with the given rectangle.
func Crop(in, out string, box pdf.Rectangle) error {
	return rewrite(in, out, box, 0, false)
}

// CropRotate crops as [Crop] does and additionally rotates every page by
// the given clockwise angle. The angle must be a multiple of 90 degrees;
// it composes with any rotation the page already carries.
func CropRotate(in, out string, box pdf.Rectangle, angle int) error {
	if angle%90 != 0 {
		return fmt.Errorf("rotation angle %d is not a multiple of 90 degrees", angle)
	}
	return rewrite(in, out, box, angle, true)
}

// rewrite copies all pages of the input document into a new file, setting
// the boundary boxes and, when requested, the page rotation.
func rewrite(in, out string, box pdf.Rectangle, angle int, rotate bool) error {
	doc, err := pdf.Open(in, nil)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", in, err)
	}
	defer doc.Close()
	metaIn := doc.GetMeta()

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := pdf.NewWriter(f, metaIn.Version, nil)
	if err != nil {
		return fmt.Errorf("failed to create PDF writer: %w", err)
	}

	rm := pdf.NewResourceManager(w)
	pageTreeOut := pagetree.NewWriter(w, rm)
	copier := pdf.NewCopier(w, doc)

	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		return fmt.Errorf("failed to count pages: %w", err)
	}

	for pageNo := 0; pageNo < numPages; pageNo++ {
		refIn, pageIn, err := pagetree.GetPage(doc, pageNo)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", pageNo+1, err)
		}

		baseRotation := 0
		if rotate {
			if rot, err := pdf.GetInt(doc, pageIn["Rotate"]); err == nil {
				baseRotation = int(rot)
			}
		}

		// The copier would otherwise drag the old page tree and
		// annotation graphs into the output.
		delete(pageIn, "Parent")
		delete(pageIn, "Annots")

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return fmt.Errorf("failed to copy page %d: %w", pageNo+1, err)
		}

		mediaBox := box
		cropBox := box
		pageOut["MediaBox"] = &mediaBox
		pageOut["CropBox"] = &cropBox
		if rotate {
			pageOut["Rotate"] = pdf.Integer(normalizeRotation(baseRotation + angle))
		}

		refOut := w.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}
		if err := pageTreeOut.AppendPageDict(refOut, pageOut); err != nil {
			return fmt.Errorf("failed to append page %d: %w", pageNo+1, err)
		}
	}

	treeRef, err := pageTreeOut.Close()
	if err != nil {
		return fmt.Errorf("failed to close page tree: %w", err)
	}
	if err := rm.Close(); err != nil {
		return fmt.Errorf("failed to close resource manager: %w", err)
	}

	metaOut := w.GetMeta()
	metaOut.Catalog.Pages = treeRef
	metaOut.Info = metaIn.Info

	return w.Close()
}

// normalizeRotation folds an arbitrary multiple of 90 into the /Rotate
// domain {0, 90, 180, 270}.
func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
