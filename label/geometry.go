// Package label implements the geometry engine for shipping-label
// conversion: locating the boundary between label content and the blank
// right-hand margin on a source page, and computing the rotation, scale
// and alignment needed to fit the cropped region into a target rectangle.
package label

import "math"

// Rect is an axis-aligned rectangle. The engine itself never assumes a
// vertical direction; callers decide whether Y grows up (PDF user space)
// or down (raster space).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// PageSize is a physical page size in points.
type PageSize struct {
	W, H float64
}

// Portrait returns the size with the longer edge as height.
func (s PageSize) Portrait() PageSize {
	if s.H < s.W {
		return PageSize{W: s.H, H: s.W}
	}
	return s
}

// TargetRect is the usable destination rectangle on an output page:
// the page inset by the outer margin on all four edges.
func TargetRect(size PageSize, margin float64) Rect {
	return Rect{X0: margin, Y0: margin, X1: size.W - margin, Y1: size.H - margin}
}

// Matrix is an affine transform [a b c d e f], row-vector convention:
// p' = (x*a + y*c + e, x*b + y*d + f).
type Matrix [6]float64

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

// Multiply returns m followed by o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }
func Scale(sx, sy float64) Matrix     { return Matrix{sx, 0, 0, sy, 0, 0} }

// Rotate rotates counterclockwise by angle radians.
func Rotate(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}
