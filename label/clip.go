package label

import (
	"errors"
	"fmt"
)

// ErrInvalidRatio marks a fixed keep ratio outside (0, 1].
var ErrInvalidRatio = errors.New("left ratio must be within (0, 1]")

// RatioDetector supplies the keep ratio for one source page when no
// fixed ratio is configured. Implementations rasterize the page and run
// DetectLeftRatio over it.
type RatioDetector interface {
	LeftRatio(pageIndex int) (float64, error)
}

// ClipPlanner derives the clip rectangle per source page: either a fixed
// keep ratio or the detector's result, applied to the page's own bounds.
type ClipPlanner struct {
	// FixedRatio, when non-nil, bypasses detection. Must be in (0, 1].
	FixedRatio *float64
	Detector   RatioDetector
}

// Clip returns the region of the page to keep: the full page height and
// the computed fraction of its width, anchored at the page's own origin
// so pages whose boxes do not start at (0,0) clip correctly.
func (p *ClipPlanner) Clip(page Rect, pageIndex int) (Rect, error) {
	var ratio float64
	if p.FixedRatio != nil {
		ratio = *p.FixedRatio
		if ratio <= 0 || ratio > 1 {
			return Rect{}, fmt.Errorf("%w: %g", ErrInvalidRatio, ratio)
		}
	} else {
		r, err := p.Detector.LeftRatio(pageIndex)
		if err != nil {
			return Rect{}, fmt.Errorf("detect keep ratio for page %d: %w", pageIndex, err)
		}
		ratio = r
	}

	keepW := page.Width() * ratio
	return Rect{X0: page.X0, Y0: page.Y0, X1: page.X0 + keepW, Y1: page.Y1}, nil
}
