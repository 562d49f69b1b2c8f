// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

// Shape is implemented by path types that can produce a copy of themselves
// with every point mapped through an affine transform, delegating the
// point-by-point work back to [AffineTransform.Transform] and its variants.
type Shape interface {

	// TransformedShape returns a new shape that is this shape
	// transformed by the given transform.
	TransformedShape(t *AffineTransform) Shape
}

// TransformShape returns src transformed by this transform,
// or nil if src is nil.
func (t *AffineTransform) TransformShape(src Shape) Shape {
	if src == nil {
		return nil
	}
	return src.TransformedShape(t)
}
