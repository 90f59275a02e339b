package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/Lesaloon/MR-Label-Converter/label"
	"github.com/Lesaloon/MR-Label-Converter/types"
)

func TestConvertFileMissingInput(t *testing.T) {
	conv := New()
	out := filepath.Join(t.TempDir(), "out.pdf")

	err := conv.ConvertFile(filepath.Join(t.TempDir(), "nope.pdf"), out, types.DefaultConversionConfig())
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestConvertFileInvalidPageSize(t *testing.T) {
	conv := New()
	cfg := types.DefaultConversionConfig()
	cfg.Page = "gigantic"

	err := conv.ConvertFile("whatever.pdf", filepath.Join(t.TempDir(), "out.pdf"), cfg)
	if !errors.Is(err, label.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
}

func TestConvertFileRotatedSource(t *testing.T) {
	in := writeSinglePageFixture(t, 90)
	out := filepath.Join(t.TempDir(), "out.pdf")

	cfg := types.DefaultConversionConfig()
	cfg.Page = "595x842"
	ratio := 1.0
	cfg.LeftRatio = &ratio

	conv := New()
	if err := conv.ConvertFile(in, out, cfg); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	ctx, err := api.ReadContextFile(out)
	if err != nil {
		t.Fatalf("output is not a readable PDF: %v", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		t.Fatalf("output page count: %v", err)
	}
	if ctx.PageCount != 1 {
		t.Fatalf("page count = %d, want 1", ctx.PageCount)
	}

	// The destination page keeps the requested size and carries no
	// rotation of its own: the source rotation was folded into content.
	box, err := pageBox(ctx, 1)
	if err != nil {
		t.Fatalf("output pageBox: %v", err)
	}
	if box.Width() != 595 || box.Height() != 842 {
		t.Errorf("output box %gx%g, want 595x842", box.Width(), box.Height())
	}
}

// TestConvertFileSample runs the full pipeline against an on-disk label
// when one is present. Drop a real label PDF into testdata/ to enable it.
func TestConvertFileSample(t *testing.T) {
	sample := filepath.Join("testdata", "label.pdf")
	if _, err := os.Stat(sample); err != nil {
		t.Skip("no sample label PDF in testdata")
	}

	conv := New()
	out := filepath.Join(t.TempDir(), "out.pdf")
	cfg := types.DefaultConversionConfig()

	if err := conv.ConvertFile(sample, out, cfg); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	srcCtx, err := api.ReadContextFile(sample)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if err := srcCtx.EnsurePageCount(); err != nil {
		t.Fatalf("sample page count: %v", err)
	}
	outCtx, err := api.ReadContextFile(out)
	if err != nil {
		t.Fatalf("output is not a readable PDF: %v", err)
	}
	if err := outCtx.EnsurePageCount(); err != nil {
		t.Fatalf("output page count: %v", err)
	}
	if outCtx.PageCount != srcCtx.PageCount {
		t.Errorf("page count = %d, want %d", outCtx.PageCount, srcCtx.PageCount)
	}
}

func TestConvertCombinedNoInputs(t *testing.T) {
	conv := New()

	err := conv.ConvertCombined(nil, filepath.Join(t.TempDir(), "out.pdf"), types.DefaultConversionConfig())
	if err == nil {
		t.Fatal("expected an error for an empty input list")
	}
}
