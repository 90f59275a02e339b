package label

// Raster is a single-channel grayscale bitmap, row-major, one byte per
// pixel (0 = black, 255 = white).
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// DetectOptions tunes the blank-margin scan.
type DetectOptions struct {
	// Threshold is the grayscale value below which a pixel counts as dark.
	Threshold uint8
	// BlankRatio is the fraction of a column's height allowed to be dark
	// while the column still counts as blank. 0 means strictly blank.
	BlankRatio float64
	// MinRatio is the floor on the returned keep ratio.
	MinRatio float64
	// BlankRunPx is the minimum contiguous run of blank columns that
	// identifies the separation between label and margin.
	BlankRunPx float64
	// ExtraMarginPx is added to the right of the detected blank start
	// before converting to a ratio.
	ExtraMarginPx float64
}

// DefaultDetectOptions matches the historical auto-detect parameters.
func DefaultDetectOptions() DetectOptions {
	return DetectOptions{
		Threshold:     245,
		BlankRatio:    0,
		MinRatio:      0.45,
		BlankRunPx:    25,
		ExtraMarginPx: 8,
	}
}

// DetectLeftRatio scans raster columns left to right and returns the
// fraction of the width to keep. The cut is placed where a sustained run
// of blank columns begins after content has been seen, padded by
// ExtraMarginPx and clamped to [MinRatio, 1].
//
// A blank run before any content does not count: an all-blank page keeps
// its full width. A stray dark pixel resets the run, so isolated noise
// never truncates the label. When no qualifying run exists the result is
// 1.0; when detection is unsure we never crop.
func DetectLeftRatio(r *Raster, opts DetectOptions) float64 {
	if r == nil || r.Width == 0 || r.Height == 0 {
		return 1.0
	}

	runThreshold := int(opts.BlankRunPx)
	if runThreshold < 1 {
		runThreshold = 1
	}
	blankBudget := int(float64(r.Height) * opts.BlankRatio)
	if blankBudget < 0 {
		blankBudget = 0
	}

	blanks := 0
	seenContent := false
	blankStart := r.Width

	for x := 0; x < r.Width; x++ {
		darkPixels := 0
		offset := x
		for y := 0; y < r.Height; y++ {
			if r.Pix[offset] < opts.Threshold {
				darkPixels++
			}
			offset += r.Width
		}

		if darkPixels <= blankBudget {
			if !seenContent {
				continue
			}
			if blanks == 0 {
				blankStart = x
			}
			blanks++
			if blanks >= runThreshold {
				cut := blankStart + int(opts.ExtraMarginPx)
				if cut > r.Width {
					cut = r.Width
				}
				ratio := float64(cut) / float64(r.Width)
				if ratio > 1.0 {
					ratio = 1.0
				}
				if ratio < opts.MinRatio {
					ratio = opts.MinRatio
				}
				return ratio
			}
		} else {
			seenContent = true
			blanks = 0
		}
	}

	return 1.0
}
