package label

import "strings"

// FitMode selects how the uniform scale factor is chosen against the
// target rectangle.
type FitMode int

const (
	// FitContain fits the whole label inside the target.
	FitContain FitMode = iota
	// FitCover fills the target, allowing overflow.
	FitCover
)

// ParseFitMode maps a fit-mode string to its variant. Unknown strings
// select FitContain; garbage input is defined fallback behavior here,
// not an error.
func ParseFitMode(s string) FitMode {
	if strings.ToLower(strings.TrimSpace(s)) == "cover" {
		return FitCover
	}
	return FitContain
}

// HAlign is the horizontal alignment policy inside the target rectangle.
type HAlign int

const (
	// HAlignAuto centers when the label fits, otherwise anchors left so
	// overflow bleeds right instead of off both edges.
	HAlignAuto HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// ParseHAlign maps an alignment string to its variant, defaulting to
// HAlignAuto on unknown input.
func ParseHAlign(s string) HAlign {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return HAlignLeft
	case "center":
		return HAlignCenter
	case "right":
		return HAlignRight
	default:
		return HAlignAuto
	}
}

// VAlign is the vertical alignment policy inside the target rectangle.
type VAlign int

const (
	VAlignCenter VAlign = iota
	VAlignTop
	VAlignBottom
)

// ParseVAlign maps an alignment string to its variant, defaulting to
// VAlignCenter on unknown input.
func ParseVAlign(s string) VAlign {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return VAlignTop
	case "bottom":
		return VAlignBottom
	default:
		return VAlignCenter
	}
}

// NormalizeRotation maps a rotation in degrees onto {0, 90, 180, 270}.
// Anything outside the set after normalization becomes 90, the label
// orientation this pipeline exists for.
func NormalizeRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	switch r {
	case 0, 90, 180, 270:
		return r
	default:
		return 90
	}
}

// PlaceOptions controls one placement computation.
type PlaceOptions struct {
	Rotation     int
	Fit          FitMode
	Scale        float64 // extra uniform zoom on top of the fit scale
	FillWidth    bool
	HAlign       HAlign
	HAlignOffset float64
	HAlignBleed  float64
	VAlign       VAlign
}

// Placement is the resolved destination rectangle and effective rotation
// for one page. It is consumed immediately by the compositor.
type Placement struct {
	Dest     Rect
	Rotation int
}

// PlaceLabel computes where a cropped source region lands inside the
// target rectangle. Coordinates are top-down: Y0 is the top edge.
//
// The fit scale is chosen per opts.Fit, except that with FillWidth set a
// contain fit uses the width scale whenever width is the tighter axis,
// trading strict vertical containment for full width utilization. The
// horizontal position is clamped so the label never exceeds the target's
// horizontal edges by more than HAlignBleed; no vertical clamp applies.
func PlaceLabel(clip, target Rect, opts PlaceOptions) Placement {
	cw, ch := clip.Width(), clip.Height()
	tw, th := target.Width(), target.Height()

	rot := NormalizeRotation(opts.Rotation)

	sw, sh := cw, ch
	if rot == 90 || rot == 270 {
		sw, sh = ch, cw
	}

	widthScale := tw / sw
	heightScale := th / sh

	var scale float64
	if opts.Fit == FitCover {
		scale = widthScale
		if heightScale > scale {
			scale = heightScale
		}
	} else {
		scale = widthScale
		if heightScale < scale {
			scale = heightScale
		}
		if opts.FillWidth && widthScale <= heightScale {
			scale = widthScale
		}
	}
	scale *= opts.Scale

	nw := sw * scale
	nh := sh * scale

	var x0 float64
	switch opts.HAlign {
	case HAlignLeft:
		x0 = target.X0
	case HAlignRight:
		x0 = target.X1 - nw
	case HAlignCenter:
		x0 = target.X0 + (tw-nw)/2
	default:
		if nw <= tw {
			x0 = target.X0 + (tw-nw)/2
		} else {
			x0 = target.X0
		}
	}

	x0 += opts.HAlignOffset

	// Bleed window. A degenerate window (label wider than target plus
	// both bleeds) collapses to its lower bound.
	minX := target.X0 - opts.HAlignBleed
	maxX := target.X1 - nw + opts.HAlignBleed
	if maxX < minX {
		maxX = minX
	}
	if x0 < minX {
		x0 = minX
	}
	if x0 > maxX {
		x0 = maxX
	}

	var y0 float64
	switch opts.VAlign {
	case VAlignTop:
		y0 = target.Y0
	case VAlignBottom:
		y0 = target.Y1 - nh
	default:
		y0 = target.Y0 + (th-nh)/2
	}

	return Placement{
		Dest:     Rect{X0: x0, Y0: y0, X1: x0 + nw, Y1: y0 + nh},
		Rotation: rot,
	}
}
