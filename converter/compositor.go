package converter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/Lesaloon/MR-Label-Converter/label"
)

// compositor drives pdfcpu to place clipped source regions onto fresh
// destination pages. All geometric decisions come in precomputed; this
// layer only translates them into content-stream operators.
type compositor struct {
	conf *model.Configuration
}

func newCompositor() *compositor {
	return &compositor{conf: model.NewDefaultConfiguration()}
}

// normalizedRotation reduces a /Rotate attribute to [0,360).
func normalizedRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	return r
}

// pageBox returns the visible box of a source page in the space the
// composed content stream uses. Pages carrying a /Rotate attribute get
// their rotation folded into the content (see placePage), which lands
// the page in a box of the visual dimensions anchored at the origin; the
// returned box reflects that, so clip planning, detection rasters and
// placement all agree on one orientation.
func pageBox(src *model.Context, pageNr int) (label.Rect, error) {
	_, _, inh, err := src.PageDict(pageNr, false)
	if err != nil {
		return label.Rect{}, err
	}
	box := inh.CropBox
	if box == nil {
		box = inh.MediaBox
	}
	if box == nil {
		return label.Rect{}, fmt.Errorf("page %d has no geometry", pageNr)
	}

	rot := normalizedRotation(inh.Rotate)
	if rot == 0 {
		return label.NewRect(box.LL.X, box.LL.Y, box.UR.X, box.UR.Y), nil
	}
	w, h := box.Width(), box.Height()
	if rot == 90 || rot == 270 {
		w, h = h, w
	}
	return label.NewRect(0, 0, w, h), nil
}

// placementMatrix maps the clip rectangle (PDF user space of the source
// page) onto the placement's destination rectangle (top-down page
// coordinates) on an output page of height pageH, rotating clockwise by
// the placement's rotation. Clip and destination centers coincide, so
// the uniform scale and the 90/270 footprint swap land the region
// exactly on the destination rectangle.
func placementMatrix(clip label.Rect, pl label.Placement, pageH float64) label.Matrix {
	sw := clip.Width()
	if pl.Rotation == 90 || pl.Rotation == 270 {
		sw = clip.Height()
	}
	scale := 1.0
	if sw > 0 {
		scale = pl.Dest.Width() / sw
	}

	ccx := (clip.X0 + clip.X1) / 2
	ccy := (clip.Y0 + clip.Y1) / 2
	dcx := (pl.Dest.X0 + pl.Dest.X1) / 2
	dcy := pageH - (pl.Dest.Y0+pl.Dest.Y1)/2

	// Clockwise on the page means a negative angle in y-up user space.
	angle := -float64(pl.Rotation) * math.Pi / 180

	return label.Identity().
		Multiply(label.Translate(-ccx, -ccy)).
		Multiply(label.Rotate(angle)).
		Multiply(label.Scale(scale, scale)).
		Multiply(label.Translate(dcx, dcy))
}

// placePage extracts one source page and rewrites it into a single-page
// document of the given size, with the clipped region transformed into
// the placement's destination rectangle. Returns the document bytes.
func (c *compositor) placePage(src *model.Context, pageNr int, clip label.Rect, pl label.Placement, target label.Rect, size label.PageSize, debug bool) ([]byte, error) {
	ctxPage, err := pdfcpu.ExtractPages(src, []int{pageNr}, false)
	if err != nil {
		return nil, err
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return nil, err
	}

	pageDict, _, inh, err := ctxPage.PageDict(1, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d extraction failed", pageNr)
	}

	content, err := ctxPage.PageContent(pageDict, 1)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return nil, err
	}

	newBox := types.RectForWidthAndHeight(0, 0, size.W, size.H)
	pageDict["MediaBox"] = newBox.Array()
	pageDict["CropBox"] = newBox.Array()

	// The source rotation is folded into the content below; keeping the
	// attribute would rotate the destination page too.
	pageDict.Delete("Rotate")

	m := placementMatrix(clip, pl, size.H)

	var buf bytes.Buffer
	buf.WriteString("q ")

	if debug {
		drawOutline(&buf, target, size.H)
		drawOutline(&buf, pl.Dest, size.H)
	}

	fmt.Fprintf(&buf, "q %.5f %.5f %.5f %.5f %.5f %.5f cm ", m[0], m[1], m[2], m[3], m[4], m[5])
	fmt.Fprintf(&buf, "%.5f %.5f %.5f %.5f re W n ", clip.X0, clip.Y0, clip.Width(), clip.Height())

	if rot := normalizedRotation(inh.Rotate); rot != 0 {
		baseBox := inh.MediaBox
		if baseBox == nil {
			baseBox = newBox
		}
		buf.Write(model.ContentBytesForPageRotation(rot, baseBox.Width(), baseBox.Height()))
	}

	buf.Write(content)
	buf.WriteString(" Q Q ")

	streamDict, err := ctxPage.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, err
	}
	if err := streamDict.Encode(); err != nil {
		return nil, err
	}
	indRef, err := ctxPage.IndRefForNewObject(*streamDict)
	if err != nil {
		return nil, err
	}
	pageDict["Contents"] = *indRef

	var out bytes.Buffer
	if err := api.WriteContext(ctxPage, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// drawOutline strokes an unfilled rectangle given in top-down page
// coordinates. Matches the historical 0.6pt debug frames.
func drawOutline(buf *bytes.Buffer, r label.Rect, pageH float64) {
	fmt.Fprintf(buf, "q 0.6 w %.2f %.2f %.2f %.2f re S Q ",
		r.X0, pageH-r.Y1, r.Width(), r.Height())
}

// overlay stamps page 1 of stampPath onto every page of basePath in
// place. Both documents share the output page size, so a centered
// full-scale stamp aligns their coordinate systems exactly.
func (c *compositor) overlay(basePath, stampPath string) error {
	wm, err := pdfcpu.ParsePDFWatermarkDetails(stampPath, "sc:1 abs, pos:c, rot:0", true, types.POINTS)
	if err != nil {
		return fmt.Errorf("parse stamp %s: %w", stampPath, err)
	}
	if err := api.AddWatermarksFile(basePath, "", nil, wm, c.conf); err != nil {
		return fmt.Errorf("stamp %s onto %s: %w", stampPath, basePath, err)
	}
	return nil
}

// merge concatenates single-page documents into one and writes it to w.
func (c *compositor) merge(segments [][]byte, w io.Writer) error {
	if len(segments) == 0 {
		return errors.New("nothing to merge")
	}
	if len(segments) == 1 {
		_, err := w.Write(segments[0])
		return err
	}
	readers := make([]io.ReadSeeker, len(segments))
	for i, seg := range segments {
		readers[i] = bytes.NewReader(seg)
	}
	return api.MergeRaw(readers, w, false, c.conf)
}
