// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

//go:generate core generate

// TransformTypes are bit flags classifying the geometric effect of an
// [AffineTransform] on the standard basis. The flags are cumulative:
// a transform can, for example, translate, scale, and rotate at once.
// The zero value [Identity] means the transform has no effect at all.
type TransformTypes int64 //enums:bitflag

const (
	// Translation indicates a non-zero translation component.
	Translation TransformTypes = iota

	// UniformScale indicates that the basis vectors are scaled equally,
	// by a factor other than one.
	UniformScale

	// GeneralScale indicates that the basis vectors are scaled unequally.
	GeneralScale

	// QuadrantRotation indicates rotation by an exact multiple of 90 degrees.
	QuadrantRotation

	// GeneralRotation indicates rotation by an arbitrary angle.
	GeneralRotation

	// GeneralTransform indicates that the transformed basis vectors are not
	// orthogonal, so the transform is not a composition of translation,
	// rotation, and scale. It is always reported alone, with no other flags.
	GeneralTransform

	// Flip indicates that the orientation of the basis is reversed
	// (the determinant of the linear part is negative).
	Flip
)

// Identity is the [TransformTypes] value with no flags set: the transform
// maps every point to itself.
const Identity TransformTypes = 0

// typeUnknown marks a stale classification cache; [AffineTransform.Type]
// recomputes the classification when it finds this sentinel.
const typeUnknown TransformTypes = -1

// Combined flag masks.
const (
	// ScaleMask selects both scale flags.
	ScaleMask TransformTypes = 1<<UniformScale | 1<<GeneralScale

	// RotationMask selects both rotation flags.
	RotationMask TransformTypes = 1<<QuadrantRotation | 1<<GeneralRotation
)

// HasScale returns whether either scale flag is set.
func (tt TransformTypes) HasScale() bool {
	return tt&ScaleMask != 0
}

// HasRotation returns whether either rotation flag is set.
func (tt TransformTypes) HasRotation() bool {
	return tt&RotationMask != 0
}
