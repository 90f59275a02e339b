package types

import "time"

// ConversionConfig is the immutable configuration snapshot for one
// conversion run. String-typed options (page, fit, alignments) are parsed
// at the engine boundary; unknown values there select documented
// defaults instead of failing.
type ConversionConfig struct {
	// LeftRatio fixes the fraction of the source width to keep.
	// nil means auto-detect per page.
	LeftRatio *float64 `json:"left_ratio,omitempty" validate:"omitempty,gt=0,lte=1"`
	// AutoLeftMin floors the auto-detected ratio.
	AutoLeftMin float64 `json:"auto_left_min" validate:"gte=0,lte=1"`
	// AutoLeftMargin is extra margin in analysis pixels added after the
	// detected blank start.
	AutoLeftMargin float64 `json:"auto_left_margin" validate:"gte=0"`
	// AutoLeftGap is the minimum blank run in analysis pixels that
	// identifies the separation.
	AutoLeftGap float64 `json:"auto_left_gap" validate:"gte=1"`
	// Rotate is the rotation in degrees, normalized to 0/90/180/270.
	Rotate int `json:"rotate"`
	// Page is a size preset or explicit WIDTHxHEIGHT in points.
	Page string `json:"page" validate:"required"`
	// Margin is the outer margin on the destination page, in points.
	Margin float64 `json:"margin" validate:"gte=0"`
	// Fit is "contain" or "cover".
	Fit string `json:"fit"`
	// Scale is an extra multiplicative zoom on top of the fit scale.
	Scale float64 `json:"scale" validate:"gt=0"`
	// FillWidth prefers using the full target width when possible.
	FillWidth bool `json:"fill_width"`

	HAlign       string  `json:"halign"`
	HAlignOffset float64 `json:"halign_offset"`
	HAlignBleed  float64 `json:"halign_bleed" validate:"gte=0"`
	VAlign       string  `json:"valign"`

	// DebugBoxes draws the target and destination rectangles as
	// unfilled outlines for diagnosis.
	DebugBoxes bool `json:"debug_boxes"`
}

// DefaultConversionConfig returns the historical defaults for Mondial
// Relay / InPost labels.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		AutoLeftMin:    0.45,
		AutoLeftMargin: 8.0,
		AutoLeftGap:    25.0,
		Rotate:         90,
		Page:           "a4",
		Margin:         12.0,
		Fit:            "contain",
		Scale:          2.0,
		FillWidth:      true,
		HAlign:         "auto",
		HAlignOffset:   -6.0,
		HAlignBleed:    30.0,
		VAlign:         "top",
		DebugBoxes:     false,
	}
}

// Config holds the hot-folder watcher settings.
type Config struct {
	SettleTime time.Duration
	SourceDir  string
	OutputDir  string
	ArchiveDir string
	BadDir     string
	Conversion ConversionConfig
}
