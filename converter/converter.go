// Package converter sequences the label geometry engine over whole PDF
// documents: clip planning and placement per source page, composition of
// the results into a new document through pdfcpu.
package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Lesaloon/MR-Label-Converter/label"
	"github.com/Lesaloon/MR-Label-Converter/types"
)

// ErrSourceNotFound marks a missing input document.
var ErrSourceNotFound = errors.New("input PDF not found")

// detectDPI is the analysis resolution for the blank-margin scan.
const detectDPI = 150.0

type Converter struct {
	logger *slog.Logger
	comp   *compositor
	dpi    float64
}

func New() *Converter {
	return &Converter{
		logger: slog.Default(),
		comp:   newCompositor(),
		dpi:    detectDPI,
	}
}

// source is one open input document: the pdfcpu context for composition
// plus a clip planner (backed by a rasterizer when the ratio is
// auto-detected).
type source struct {
	path    string
	ctx     *model.Context
	planner *label.ClipPlanner
	close   func()
}

func (c *Converter) openSource(path string, cfg types.ConversionConfig) (*source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.LeftRatio != nil {
		return &source{
			path:    path,
			ctx:     ctx,
			planner: &label.ClipPlanner{FixedRatio: cfg.LeftRatio},
			close:   func() {},
		}, nil
	}

	rast, err := openRasterizer(path)
	if err != nil {
		return nil, err
	}
	det := &autoDetector{rast: rast, dpi: c.dpi, opts: detectOptions(cfg)}
	return &source{
		path:    path,
		ctx:     ctx,
		planner: &label.ClipPlanner{Detector: det},
		close:   func() { rast.Close() },
	}, nil
}

// placedPage runs the per-page pipeline: clip, place, compose. pageNr is
// 1-based (pdfcpu numbering); the detector receives the 0-based index.
func (c *Converter) placedPage(src *source, pageNr int, target label.Rect, size label.PageSize, cfg types.ConversionConfig) ([]byte, error) {
	box, err := pageBox(src.ctx, pageNr)
	if err != nil {
		return nil, fmt.Errorf("page %d of %s: %w", pageNr, src.path, err)
	}

	clip, err := src.planner.Clip(box, pageNr-1)
	if err != nil {
		return nil, fmt.Errorf("page %d of %s: %w", pageNr, src.path, err)
	}

	pl := label.PlaceLabel(clip, target, placeOptions(cfg))

	seg, err := c.comp.placePage(src.ctx, pageNr, clip, pl, target, size, cfg.DebugBoxes)
	if err != nil {
		return nil, fmt.Errorf("compose page %d of %s: %w", pageNr, src.path, err)
	}
	return seg, nil
}

// ConvertFile rewrites one label PDF: every source page is cropped to
// its keep ratio, rotated and scaled into the target rectangle on a
// fresh destination page.
func (c *Converter) ConvertFile(inputPath, outputPath string, cfg types.ConversionConfig) error {
	size, err := label.ParsePageSize(cfg.Page)
	if err != nil {
		return err
	}
	size = size.Portrait()
	target := label.TargetRect(size, cfg.Margin)

	src, err := c.openSource(inputPath, cfg)
	if err != nil {
		return err
	}
	defer src.close()

	c.logger.Info("converting label PDF", "input", inputPath, "pages", src.ctx.PageCount)

	segments := make([][]byte, 0, src.ctx.PageCount)
	for pageNr := 1; pageNr <= src.ctx.PageCount; pageNr++ {
		seg, err := c.placedPage(src, pageNr, target, size, cfg)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
	}

	return c.write(segments, outputPath)
}

// ConvertCombined imposes the pages of several label PDFs two per
// destination page. The target area is split into top and bottom halves
// with half an outer margin on each side of the boundary, so the gutter
// between the two labels equals the page margin. An odd last label goes
// into the top half alone.
func (c *Converter) ConvertCombined(inputPaths []string, outputPath string, cfg types.ConversionConfig) error {
	if len(inputPaths) == 0 {
		return errors.New("no input PDFs given")
	}

	size, err := label.ParsePageSize(cfg.Page)
	if err != nil {
		return err
	}
	size = size.Portrait()

	topTarget, bottomTarget := combinedTargets(size, cfg.Margin)

	sources := make([]*source, 0, len(inputPaths))
	defer func() {
		for _, s := range sources {
			s.close()
		}
	}()

	type entry struct {
		src    *source
		pageNr int
	}
	var entries []entry
	for _, path := range inputPaths {
		s, err := c.openSource(path, cfg)
		if err != nil {
			return err
		}
		sources = append(sources, s)
		for pageNr := 1; pageNr <= s.ctx.PageCount; pageNr++ {
			entries = append(entries, entry{src: s, pageNr: pageNr})
		}
	}

	c.logger.Info("combining labels two per page", "inputs", len(inputPaths), "labels", len(entries))

	workDir, err := os.MkdirTemp("", "label-combine-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	var segments [][]byte
	for i := 0; i < len(entries); i += 2 {
		top, err := c.placedPage(entries[i].src, entries[i].pageNr, topTarget, size, cfg)
		if err != nil {
			return err
		}

		if i+1 >= len(entries) {
			segments = append(segments, top)
			break
		}

		bottom, err := c.placedPage(entries[i+1].src, entries[i+1].pageNr, bottomTarget, size, cfg)
		if err != nil {
			return err
		}

		basePath := filepath.Join(workDir, fmt.Sprintf("pair-%d-base.pdf", i/2))
		stampPath := filepath.Join(workDir, fmt.Sprintf("pair-%d-stamp.pdf", i/2))
		if err := os.WriteFile(basePath, top, 0644); err != nil {
			return err
		}
		if err := os.WriteFile(stampPath, bottom, 0644); err != nil {
			return err
		}
		if err := c.comp.overlay(basePath, stampPath); err != nil {
			return err
		}
		combined, err := os.ReadFile(basePath)
		if err != nil {
			return err
		}
		segments = append(segments, combined)
	}

	return c.write(segments, outputPath)
}

func (c *Converter) write(segments [][]byte, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := c.comp.merge(segments, out); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// combinedTargets splits the destination page into two sub-targets: the
// outer margin stays on all four page edges and each half cedes half a
// margin at the boundary.
func combinedTargets(size label.PageSize, margin float64) (label.Rect, label.Rect) {
	halfH := (size.H - 3*margin) / 2
	top := label.NewRect(margin, margin, size.W-margin, margin+halfH)
	bottom := label.NewRect(margin, size.H-margin-halfH, size.W-margin, size.H-margin)
	return top, bottom
}

func placeOptions(cfg types.ConversionConfig) label.PlaceOptions {
	return label.PlaceOptions{
		Rotation:     cfg.Rotate,
		Fit:          label.ParseFitMode(cfg.Fit),
		Scale:        cfg.Scale,
		FillWidth:    cfg.FillWidth,
		HAlign:       label.ParseHAlign(cfg.HAlign),
		HAlignOffset: cfg.HAlignOffset,
		HAlignBleed:  cfg.HAlignBleed,
		VAlign:       label.ParseVAlign(cfg.VAlign),
	}
}

func detectOptions(cfg types.ConversionConfig) label.DetectOptions {
	opts := label.DefaultDetectOptions()
	opts.MinRatio = cfg.AutoLeftMin
	opts.BlankRunPx = cfg.AutoLeftGap
	opts.ExtraMarginPx = cfg.AutoLeftMargin
	return opts
}
