// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import (
	"fmt"

	"cogentcore.org/core/math32"
	"golang.org/x/image/math/fixed"
)

// Transform transforms src into dst and returns dst. If dst is nil, a new
// point is allocated with the factory (which must then be non-nil),
// preserving the identifier, on-curve flag, and texture coordinate of src.
// The z coordinate of src passes through unchanged.
func (t *AffineTransform) Transform(src, dst Point) Point {
	if dst == nil {
		dst = t.factory.NewPoint(src.ID(), src.OnCurve(), src.TexCoord())
	}
	x := src.X()
	y := src.Y()
	dst.SetCoord(x*t.xx+y*t.xy+t.x0, x*t.yx+y*t.yy+t.y0, src.Z())
	return dst
}

// TransformPoints transforms length consecutive points of src starting at
// srcOff into the corresponding slots of dst starting at dstOff. All
// destination slots must be pre-allocated: a nil slot returns an error
// wrapping [ErrNilDestination], with slots before the failing index
// already written.
func (t *AffineTransform) TransformPoints(src []Point, srcOff int, dst []Point, dstOff, length int) error {
	for ; length > 0; length-- {
		sp := src[srcOff]
		srcOff++
		dp := dst[dstOff]
		if dp == nil {
			return fmt.Errorf("%w: dst[%d]", ErrNilDestination, dstOff)
		}
		x := sp.X()
		y := sp.Y()
		dp.SetCoord(x*t.xx+y*t.xy+t.x0, x*t.yx+y*t.yy+t.y0, sp.Z())
		dstOff++
	}
	return nil
}

// TransformXY transforms the point (x, y).
func (t *AffineTransform) TransformXY(x, y float32) (tx, ty float32) {
	tx = x*t.xx + y*t.xy + t.x0
	ty = x*t.yx + y*t.yy + t.y0
	return
}

// TransformVec2 transforms the point v.
func (t *AffineTransform) TransformVec2(v math32.Vector2) math32.Vector2 {
	x, y := t.TransformXY(v.X, v.Y)
	return math32.Vec2(x, y)
}

// TransformCoord transforms the single (x, y) pair at src[srcOff] into
// dst[dstOff]. src and dst are flat coordinate slices of interleaved
// x, y values.
func (t *AffineTransform) TransformCoord(src []float32, srcOff int, dst []float32, dstOff int) {
	x := src[srcOff]
	y := src[srcOff+1]
	dst[dstOff] = x*t.xx + y*t.xy + t.x0
	dst[dstOff+1] = x*t.yx + y*t.yy + t.y0
}

// TransformCoords transforms length consecutive (x, y) pairs of the flat
// coordinate slice src starting at srcOff into dst starting at dstOff.
//
// src and dst may be the same slice with overlapping ranges: when the
// destination range starts inside the source range, the pairs are
// processed from highest index down so that no source pair is overwritten
// before it is read. Overlap through distinct slices of the same array is
// not detected.
func (t *AffineTransform) TransformCoords(src []float32, srcOff int, dst []float32, dstOff, length int) {
	step := 2
	if len(src) > 0 && len(dst) > 0 && &src[0] == &dst[0] &&
		srcOff < dstOff && dstOff < srcOff+length*2 {
		srcOff += length*2 - 2
		dstOff += length*2 - 2
		step = -2
	}
	for ; length > 0; length-- {
		x := src[srcOff]
		y := src[srcOff+1]
		dst[dstOff] = x*t.xx + y*t.xy + t.x0
		dst[dstOff+1] = x*t.yx + y*t.yy + t.y0
		srcOff += step
		dstOff += step
	}
}

// DeltaTransform transforms src as a direction vector, ignoring the
// translation component, into dst and returns dst. Destination allocation
// follows the same rules as [AffineTransform.Transform].
func (t *AffineTransform) DeltaTransform(src, dst Point) Point {
	if dst == nil {
		dst = t.factory.NewPoint(src.ID(), src.OnCurve(), src.TexCoord())
	}
	x := src.X()
	y := src.Y()
	dst.SetCoord(x*t.xx+y*t.xy, x*t.yx+y*t.yy, src.Z())
	return dst
}

// DeltaTransformXY transforms (x, y) as a direction vector,
// ignoring the translation component.
func (t *AffineTransform) DeltaTransformXY(x, y float32) (tx, ty float32) {
	tx = x*t.xx + y*t.xy
	ty = x*t.yx + y*t.yy
	return
}

// DeltaTransformVec2 transforms v as a direction vector,
// ignoring the translation component.
func (t *AffineTransform) DeltaTransformVec2(v math32.Vector2) math32.Vector2 {
	x, y := t.DeltaTransformXY(v.X, v.Y)
	return math32.Vec2(x, y)
}

// DeltaTransformCoords transforms length consecutive (x, y) pairs of the
// flat coordinate slice src starting at srcOff into dst starting at
// dstOff, as direction vectors, ignoring the translation component.
// The slices are assumed not to overlap.
func (t *AffineTransform) DeltaTransformCoords(src []float32, srcOff int, dst []float32, dstOff, length int) {
	for ; length > 0; length-- {
		x := src[srcOff]
		srcOff++
		y := src[srcOff]
		srcOff++
		dst[dstOff] = x*t.xx + y*t.xy
		dstOff++
		dst[dstOff] = x*t.yx + y*t.yy
		dstOff++
	}
}

// InverseTransform applies the inverse of this transform to src, into dst,
// and returns dst. It returns [ErrNonInvertible] if the determinant is
// effectively zero, before any output is written. Destination allocation
// follows the same rules as [AffineTransform.Transform].
func (t *AffineTransform) InverseTransform(src, dst Point) (Point, error) {
	det := t.Determinant()
	if math32.Abs(det) < zero {
		return nil, ErrNonInvertible
	}
	if dst == nil {
		dst = t.factory.NewPoint(src.ID(), src.OnCurve(), src.TexCoord())
	}
	x := src.X() - t.x0
	y := src.Y() - t.y0
	dst.SetCoord((x*t.yy-y*t.xy)/det, (y*t.xx-x*t.yx)/det, src.Z())
	return dst, nil
}

// InverseTransformXY applies the inverse of this transform to (x, y).
// It returns [ErrNonInvertible] if the determinant is effectively zero.
func (t *AffineTransform) InverseTransformXY(x, y float32) (tx, ty float32, err error) {
	det := t.Determinant()
	if math32.Abs(det) < zero {
		return 0, 0, ErrNonInvertible
	}
	x -= t.x0
	y -= t.y0
	return (x*t.yy - y*t.xy) / det, (y*t.xx - x*t.yx) / det, nil
}

// InverseTransformVec2 applies the inverse of this transform to v.
// It returns [ErrNonInvertible] if the determinant is effectively zero.
func (t *AffineTransform) InverseTransformVec2(v math32.Vector2) (math32.Vector2, error) {
	x, y, err := t.InverseTransformXY(v.X, v.Y)
	if err != nil {
		return math32.Vector2{}, err
	}
	return math32.Vec2(x, y), nil
}

// InverseTransformCoords applies the inverse of this transform to length
// consecutive (x, y) pairs of the flat coordinate slice src starting at
// srcOff, into dst starting at dstOff. It returns [ErrNonInvertible] if
// the determinant is effectively zero, before any output is written.
// The slices are assumed not to overlap.
func (t *AffineTransform) InverseTransformCoords(src []float32, srcOff int, dst []float32, dstOff, length int) error {
	det := t.Determinant()
	if math32.Abs(det) < zero {
		return ErrNonInvertible
	}
	for ; length > 0; length-- {
		x := src[srcOff] - t.x0
		srcOff++
		y := src[srcOff] - t.y0
		srcOff++
		dst[dstOff] = (x*t.yy - y*t.xy) / det
		dstOff++
		dst[dstOff] = (y*t.xx - x*t.yx) / det
		dstOff++
	}
	return nil
}

// TransformFixed transforms v and returns the result as a fixed-point
// 26.6 point, for rasterizer consumers.
func (t *AffineTransform) TransformFixed(v math32.Vector2) fixed.Point26_6 {
	x, y := t.TransformXY(v.X, v.Y)
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
