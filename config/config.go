// Package config persists the selected crop rectangle between the
// interactive and batch invocations of the tool.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// DefaultPath is the crop-data file used when no override is given. It
// lives in the working directory so a selection made next to the input
// document is picked up by the following crop run.
const DefaultPath = "crop_data.cfg"

// Point is a position in PDF points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CropData is the persisted crop rectangle in document space (origin
// bottom-left, Y up, PDF points). It is written once on confirmation in
// the interactive mode and read back by the cropping modes.
type CropData struct {
	BottomLeft Point `json:"bottom_left"`
	TopRight   Point `json:"top_right"`
}

// Width returns the horizontal extent in points.
func (d *CropData) Width() float64 { return d.TopRight.X - d.BottomLeft.X }

// Height returns the vertical extent in points.
func (d *CropData) Height() float64 { return d.TopRight.Y - d.BottomLeft.Y }

// Validate checks that the rectangle is finite and not empty.
func (d *CropData) Validate() error {
	for _, v := range []float64{d.BottomLeft.X, d.BottomLeft.Y, d.TopRight.X, d.TopRight.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("crop rectangle contains a non-finite coordinate")
		}
	}
	if d.Width() <= 0 || d.Height() <= 0 {
		return fmt.Errorf("crop rectangle is empty: %.2f x %.2f pt", d.Width(), d.Height())
	}
	return nil
}

// Load reads crop data from the given JSON file. A missing file is an
// error; the caller decides how to report it.
func Load(path string) (*CropData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := &CropData{}
	dec := json.NewDecoder(f)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes the crop data to the given path in JSON format.
func (d *CropData) Save(path string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	return enc.Encode(d)
}
