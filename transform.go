// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The classification, composition, and inversion logic is adapted from
// the Apache Harmony java.awt.geom.AffineTransform implementation.
// Copyright Apache Software Foundation, Apache License, Version 2.0.

// Package plane implements 2D affine transforms for path and vector
// geometry: 2x3 float32 matrices with a lazily computed geometric
// classification, composition and inversion, and forward / delta /
// inverse transform operations on points, point slices, and flat
// coordinate slices.
package plane

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// ErrNonInvertible is returned when a transform cannot be inverted because
// the determinant of its linear part is effectively zero.
var ErrNonInvertible = errors.New("Determinant is zero")

// ErrNilDestination is returned by batch point transforms when a required
// pre-allocated destination point is nil.
var ErrNilDestination = errors.New("nil destination point")

const (
	// zero is the threshold below which absolute values are treated as
	// zero in determinant comparisons.
	zero = 1e-10

	// trigEps is the snapping threshold for near-axis rotations.
	// float32 sin/cos land within about 1e-7 of zero at quadrant angles,
	// so the determinant threshold is far too tight for snapping.
	trigEps = 1e-6
)

// AffineTransform is a 2x3 affine transform matrix
//
//	xx xy x0
//	yx yy y0
//
// mapping the point (x, y) to (xx*x + xy*y + x0, yx*x + yy*y + y0).
// It caches a lazily computed [TransformTypes] classification, returned by
// [AffineTransform.Type]; every coefficient mutation either sets the
// resulting classification directly or invalidates the cache.
//
// The zero value is not usable: use [New] or one of the other constructors.
// An AffineTransform is not safe for concurrent use; even read-only
// operations can update the classification cache.
type AffineTransform struct {
	xx, yx, xy, yy, x0, y0 float32

	// cached classification, typeUnknown when it must be recomputed
	types TransformTypes

	// borrowed factory for transforms that allocate destination points
	factory PointFactory
}

// New returns a new identity transform using the given [PointFactory],
// which may be nil if no transform operation will need to allocate
// destination points.
func New(factory PointFactory) *AffineTransform {
	t := &AffineTransform{factory: factory}
	t.SetIdentity()
	return t
}

// NewMatrix returns a new transform with the given coefficients,
// in the column-major order xx, yx, xy, yy, x0, y0.
// The classification of the result is initially unknown.
func NewMatrix(factory PointFactory, xx, yx, xy, yy, x0, y0 float32) *AffineTransform {
	return &AffineTransform{
		xx: xx, yx: yx, xy: xy, yy: yy, x0: x0, y0: y0,
		types:   typeUnknown,
		factory: factory,
	}
}

// NewTranslate returns a new transform translating by (mx, my).
func NewTranslate(factory PointFactory, mx, my float32) *AffineTransform {
	t := New(factory)
	t.SetTranslation(mx, my)
	return t
}

// NewScale returns a new transform scaling by (sx, sy).
func NewScale(factory PointFactory, sx, sy float32) *AffineTransform {
	t := New(factory)
	t.SetScale(sx, sy)
	return t
}

// NewShear returns a new transform shearing by (shx, shy).
func NewShear(factory PointFactory, shx, shy float32) *AffineTransform {
	t := New(factory)
	t.SetShear(shx, shy)
	return t
}

// NewRotate returns a new transform rotating by angle radians
// about the origin.
func NewRotate(factory PointFactory, angle float32) *AffineTransform {
	t := New(factory)
	t.SetRotation(angle)
	return t
}

// NewRotateAbout returns a new transform rotating by angle radians
// about the pivot point (px, py).
func NewRotateAbout(factory PointFactory, angle, px, py float32) *AffineTransform {
	t := New(factory)
	t.SetRotationAbout(angle, px, py)
	return t
}

// Factory returns the [PointFactory] of this transform, which may be nil.
func (t *AffineTransform) Factory() PointFactory { return t.factory }

// Type returns the [TransformTypes] classification of this transform,
// computing and caching it if the cache is stale.
//
// The transformed basis vectors are (xx, yx) and (xy, yy), and the
// translation vector is (x0, y0). If the basis vectors are not orthogonal,
// the transform is classified as [GeneralTransform] alone, with no
// translation or other flags reported.
func (t *AffineTransform) Type() TransformTypes {
	if t.types != typeUnknown {
		return t.types
	}

	var tt TransformTypes

	if t.xx*t.xy+t.yx*t.yy != 0 {
		tt.SetFlag(true, GeneralTransform)
		t.types = tt
		return tt
	}

	if t.x0 != 0 || t.y0 != 0 {
		tt.SetFlag(true, Translation)
	} else if t.xx == 1 && t.yy == 1 && t.xy == 0 && t.yx == 0 {
		t.types = Identity
		return Identity
	}

	if t.xx*t.yy-t.xy*t.yx < 0 {
		tt.SetFlag(true, Flip)
	}

	dx := t.xx*t.xx + t.yx*t.yx
	dy := t.xy*t.xy + t.yy*t.yy
	if dx != dy {
		tt.SetFlag(true, GeneralScale)
	} else if dx != 1 {
		tt.SetFlag(true, UniformScale)
	}

	if (t.xx == 0 && t.yy == 0) ||
		(t.yx == 0 && t.xy == 0 && (t.xx < 0 || t.yy < 0)) {
		tt.SetFlag(true, QuadrantRotation)
	} else if t.xy != 0 || t.yx != 0 {
		tt.SetFlag(true, GeneralRotation)
	}

	t.types = tt
	return tt
}

// IsIdentity returns whether this transform maps every point to itself.
func (t *AffineTransform) IsIdentity() bool {
	return t.Type() == Identity
}

// ScaleX returns the xx coefficient.
func (t *AffineTransform) ScaleX() float32 { return t.xx }

// ScaleY returns the yy coefficient.
func (t *AffineTransform) ScaleY() float32 { return t.yy }

// ShearX returns the xy coefficient.
func (t *AffineTransform) ShearX() float32 { return t.xy }

// ShearY returns the yx coefficient.
func (t *AffineTransform) ShearY() float32 { return t.yx }

// TranslateX returns the x0 coefficient.
func (t *AffineTransform) TranslateX() float32 { return t.x0 }

// TranslateY returns the y0 coefficient.
func (t *AffineTransform) TranslateY() float32 { return t.y0 }

// Coeffs returns the six coefficients in the column-major order
// xx, yx, xy, yy, x0, y0.
func (t *AffineTransform) Coeffs() [6]float32 {
	return [6]float32{t.xx, t.yx, t.xy, t.yy, t.x0, t.y0}
}

// Matrix2 returns this transform as a [math32.Matrix2].
func (t *AffineTransform) Matrix2() math32.Matrix2 {
	return math32.Matrix2{XX: t.xx, YX: t.yx, XY: t.xy, YY: t.yy, X0: t.x0, Y0: t.y0}
}

// Determinant returns the determinant of the linear part of this transform.
func (t *AffineTransform) Determinant() float32 {
	return t.xx*t.yy - t.xy*t.yx
}

// SetTransform sets all six coefficients, in the column-major order
// xx, yx, xy, yy, x0, y0, and invalidates the classification cache.
func (t *AffineTransform) SetTransform(xx, yx, xy, yy, x0, y0 float32) {
	t.types = typeUnknown
	t.xx = xx
	t.yx = yx
	t.xy = xy
	t.yy = yy
	t.x0 = x0
	t.y0 = y0
}

// SetFrom sets the coefficients and classification from the given
// transform, leaving the factory of this transform unchanged.
func (t *AffineTransform) SetFrom(o *AffineTransform) {
	t.SetTransform(o.xx, o.yx, o.xy, o.yy, o.x0, o.y0)
	t.types = o.types
}

// SetMatrix2 sets the coefficients from a [math32.Matrix2]
// and invalidates the classification cache.
func (t *AffineTransform) SetMatrix2(m math32.Matrix2) {
	t.SetTransform(m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

// SetIdentity sets this transform to the identity.
func (t *AffineTransform) SetIdentity() {
	t.types = Identity
	t.xx, t.yy = 1, 1
	t.yx, t.xy, t.x0, t.y0 = 0, 0, 0, 0
}

// SetTranslation sets this transform to a translation by (mx, my).
func (t *AffineTransform) SetTranslation(mx, my float32) {
	t.xx, t.yy = 1, 1
	t.yx, t.xy = 0, 0
	t.x0 = mx
	t.y0 = my
	if mx == 0 && my == 0 {
		t.types = Identity
	} else {
		t.types = 0
		t.types.SetFlag(true, Translation)
	}
}

// SetScale sets this transform to a scale by (sx, sy).
func (t *AffineTransform) SetScale(sx, sy float32) {
	t.xx = sx
	t.yy = sy
	t.yx, t.xy, t.x0, t.y0 = 0, 0, 0, 0
	if sx != 1 || sy != 1 {
		t.types = typeUnknown
	} else {
		t.types = Identity
	}
}

// SetShear sets this transform to a shear by (shx, shy).
func (t *AffineTransform) SetShear(shx, shy float32) {
	t.xx, t.yy = 1, 1
	t.x0, t.y0 = 0, 0
	t.xy = shx
	t.yx = shy
	if shx != 0 || shy != 0 {
		t.types = typeUnknown
	} else {
		t.types = Identity
	}
}

// SetRotation sets this transform to a rotation by angle radians about
// the origin. Near-axis rotations are snapped so that exact multiples of
// 90 degrees produce exact coefficients.
func (t *AffineTransform) SetRotation(angle float32) {
	sin := math32.Sin(angle)
	cos := math32.Cos(angle)
	if math32.Abs(cos) < trigEps {
		cos = 0
		if sin > 0 {
			sin = 1
		} else {
			sin = -1
		}
	} else if math32.Abs(sin) < trigEps {
		sin = 0
		if cos > 0 {
			cos = 1
		} else {
			cos = -1
		}
	}
	t.xx, t.yy = cos, cos
	t.xy = -sin
	t.yx = sin
	t.x0, t.y0 = 0, 0
	t.types = typeUnknown
}

// SetRotationAbout sets this transform to a rotation by angle radians
// about the pivot point (px, py), which the resulting transform leaves
// fixed.
func (t *AffineTransform) SetRotationAbout(angle, px, py float32) {
	t.SetRotation(angle)
	t.x0 = px*(1-t.xx) + py*t.yx
	t.y0 = py*(1-t.xx) - px*t.yx
	t.types = typeUnknown
}

// Multiply returns the matrix product of the two transforms: the result
// applies t1 first, then t2. The result uses t1's factory.
func Multiply(t1, t2 *AffineTransform) *AffineTransform {
	return NewMatrix(t1.factory,
		t1.xx*t2.xx+t1.yx*t2.xy,
		t1.xx*t2.yx+t1.yx*t2.yy,
		t1.xy*t2.xx+t1.yy*t2.xy,
		t1.xy*t2.yx+t1.yy*t2.yy,
		t1.x0*t2.xx+t1.y0*t2.xy+t2.x0,
		t1.x0*t2.yx+t1.y0*t2.yy+t2.y0)
}

// Concat composes o onto this transform so that o applies before it:
// the new mapping is the current mapping following o.
func (t *AffineTransform) Concat(o *AffineTransform) {
	t.SetFrom(Multiply(o, t))
}

// PreConcat composes o onto this transform so that o applies after it:
// the new mapping is o following the current mapping.
func (t *AffineTransform) PreConcat(o *AffineTransform) {
	t.SetFrom(Multiply(t, o))
}

// Translate composes a translation by (mx, my) before this transform.
func (t *AffineTransform) Translate(mx, my float32) {
	t.Concat(NewTranslate(t.factory, mx, my))
}

// Scale composes a scale by (sx, sy) before this transform.
func (t *AffineTransform) Scale(sx, sy float32) {
	t.Concat(NewScale(t.factory, sx, sy))
}

// Shear composes a shear by (shx, shy) before this transform.
func (t *AffineTransform) Shear(shx, shy float32) {
	t.Concat(NewShear(t.factory, shx, shy))
}

// Rotate composes a rotation by angle radians about the origin
// before this transform.
func (t *AffineTransform) Rotate(angle float32) {
	t.Concat(NewRotate(t.factory, angle))
}

// RotateAbout composes a rotation by angle radians about the pivot
// point (px, py) before this transform.
func (t *AffineTransform) RotateAbout(angle, px, py float32) {
	t.Concat(NewRotateAbout(t.factory, angle, px, py))
}

// Inverse returns a new transform that is the inverse of this one,
// sharing the same factory. It returns [ErrNonInvertible] if the
// determinant is effectively zero.
func (t *AffineTransform) Inverse() (*AffineTransform, error) {
	det := t.Determinant()
	if math32.Abs(det) < zero {
		return nil, ErrNonInvertible
	}
	return NewMatrix(t.factory,
		t.yy/det,
		-t.yx/det,
		-t.xy/det,
		t.xx/det,
		(t.xy*t.y0-t.yy*t.x0)/det,
		(t.yx*t.x0-t.xx*t.y0)/det), nil
}

// Clone returns an independent copy of this transform.
// The coefficients and classification are copied;
// the factory reference is shared.
func (t *AffineTransform) Clone() *AffineTransform {
	c := *t
	return &c
}

// Equals returns whether the two transforms have exactly equal
// coefficients. The classification cache and factory do not participate.
func (t *AffineTransform) Equals(o *AffineTransform) bool {
	return t.xx == o.xx && t.xy == o.xy && t.x0 == o.x0 &&
		t.yx == o.yx && t.yy == o.yy && t.y0 == o.y0
}

// String returns the transform in row-major form
// [[xx, xy, x0], [yx, yy, y0]].
func (t *AffineTransform) String() string {
	return fmt.Sprintf("[[%g, %g, %g], [%g, %g, %g]]",
		t.xx, t.xy, t.x0, t.yx, t.yy, t.y0)
}
