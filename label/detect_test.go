package label

import "testing"

// synthRaster builds a white raster and lets the caller darken columns.
func synthRaster(width, height int) *Raster {
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = 255
	}
	return &Raster{Width: width, Height: height, Pix: pix}
}

func darkenColumn(r *Raster, x int) {
	for y := 0; y < r.Height; y++ {
		r.Pix[y*r.Width+x] = 0
	}
}

func TestDetectLeftRatioAllDark(t *testing.T) {
	r := synthRaster(100, 50)
	for x := 0; x < r.Width; x++ {
		darkenColumn(r, x)
	}
	if got := DetectLeftRatio(r, DefaultDetectOptions()); got != 1.0 {
		t.Errorf("all-dark page: got %g, want 1.0", got)
	}
}

func TestDetectLeftRatioAllBlank(t *testing.T) {
	// No content at all: the leading blank run must not produce a
	// near-zero ratio.
	r := synthRaster(100, 50)
	if got := DetectLeftRatio(r, DefaultDetectOptions()); got != 1.0 {
		t.Errorf("all-blank page: got %g, want 1.0", got)
	}
}

func TestDetectLeftRatioContentThenBlank(t *testing.T) {
	r := synthRaster(100, 50)
	for x := 0; x < 40; x++ {
		darkenColumn(r, x)
	}
	got := DetectLeftRatio(r, DefaultDetectOptions())
	// Blank run starts at column 40, margin 8 -> cut at 48, ratio 0.48,
	// above the 0.45 floor.
	if got != 0.48 {
		t.Errorf("got %g, want 0.48", got)
	}
}

func TestDetectLeftRatioFloorClamp(t *testing.T) {
	r := synthRaster(1000, 50)
	for x := 0; x < 40; x++ {
		darkenColumn(r, x)
	}
	got := DetectLeftRatio(r, DefaultDetectOptions())
	// Cut at 48/1000 would be 0.048; the floor wins.
	if got != 0.45 {
		t.Errorf("got %g, want floor 0.45", got)
	}
}

func TestDetectLeftRatioStrayPixelResetsRun(t *testing.T) {
	r := synthRaster(100, 50)
	for x := 0; x < 40; x++ {
		darkenColumn(r, x)
	}
	// A single dark pixel 10 columns into the blank region. The run
	// before it is shorter than the gap, so it must reset the counter
	// and move the detected blank start past it.
	r.Pix[5*r.Width+50] = 0
	got := DetectLeftRatio(r, DefaultDetectOptions())
	// New run starts at column 51, cut at 59.
	if got != 0.59 {
		t.Errorf("got %g, want 0.59", got)
	}
}

func TestDetectLeftRatioRunShorterThanGap(t *testing.T) {
	r := synthRaster(100, 50)
	for x := 0; x < 40; x++ {
		darkenColumn(r, x)
	}
	// Content resumes before the run reaches the 25-column gap, and the
	// page ends inside the second run before it qualifies either.
	darkenColumn(r, 60)
	opts := DefaultDetectOptions()
	opts.BlankRunPx = 40
	if got := DetectLeftRatio(r, opts); got != 1.0 {
		t.Errorf("got %g, want conservative fallback 1.0", got)
	}
}

func TestDetectLeftRatioBlankBudget(t *testing.T) {
	r := synthRaster(100, 50)
	for x := 0; x < 40; x++ {
		darkenColumn(r, x)
	}
	// Two dark pixels per column across the "blank" region: noise the
	// budget is meant to absorb.
	for x := 40; x < 100; x++ {
		r.Pix[3*r.Width+x] = 0
		r.Pix[7*r.Width+x] = 0
	}

	opts := DefaultDetectOptions()
	if got := DetectLeftRatio(r, opts); got != 1.0 {
		t.Errorf("zero budget: got %g, want 1.0", got)
	}

	opts.BlankRatio = 0.05 // 2 of 50 rows allowed
	if got := DetectLeftRatio(r, opts); got != 0.48 {
		t.Errorf("budget 0.05: got %g, want 0.48", got)
	}
}

func TestDetectLeftRatioCutClampedToWidth(t *testing.T) {
	r := synthRaster(60, 50)
	for x := 0; x < 30; x++ {
		darkenColumn(r, x)
	}
	opts := DefaultDetectOptions()
	opts.ExtraMarginPx = 500
	if got := DetectLeftRatio(r, opts); got != 1.0 {
		t.Errorf("oversized margin: got %g, want 1.0", got)
	}
}

func TestDetectLeftRatioEmptyRaster(t *testing.T) {
	if got := DetectLeftRatio(nil, DefaultDetectOptions()); got != 1.0 {
		t.Errorf("nil raster: got %g, want 1.0", got)
	}
	if got := DetectLeftRatio(&Raster{}, DefaultDetectOptions()); got != 1.0 {
		t.Errorf("empty raster: got %g, want 1.0", got)
	}
}
