package converter

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gen2brain/go-fitz"

	"github.com/Lesaloon/MR-Label-Converter/label"
)

// fitzRasterizer renders source pages to grayscale rasters through MuPDF.
// It exists only for auto-detection; composition never rasterizes.
type fitzRasterizer struct {
	doc *fitz.Document
}

func openRasterizer(path string) (*fitzRasterizer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for rendering: %w", path, err)
	}
	return &fitzRasterizer{doc: doc}, nil
}

func (r *fitzRasterizer) Close() error {
	return r.doc.Close()
}

// Raster renders the page (0-based) at the given DPI and converts it to
// a single-channel grayscale buffer.
func (r *fitzRasterizer) Raster(pageIndex int, dpi float64) (*label.Raster, error) {
	img, err := r.doc.ImageDPI(pageIndex, dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", pageIndex, err)
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)

	return &label.Raster{
		Width:  gray.Bounds().Dx(),
		Height: gray.Bounds().Dy(),
		Pix:    gray.Pix,
	}, nil
}

// autoDetector adapts the rasterizer to the clip planner's detector
// contract.
type autoDetector struct {
	rast *fitzRasterizer
	dpi  float64
	opts label.DetectOptions
}

func (d *autoDetector) LeftRatio(pageIndex int) (float64, error) {
	raster, err := d.rast.Raster(pageIndex, d.dpi)
	if err != nil {
		return 0, err
	}
	return label.DetectLeftRatio(raster, d.opts), nil
}
