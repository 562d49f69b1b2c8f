// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import "cogentcore.org/core/math32"

// Point is the path point capability consumed by [AffineTransform]:
// a 2D point with an identifier, an on-curve flag, a texture coordinate,
// and a z coordinate, all of which transforms carry through unchanged
// (transforms are 2D only and never modify z).
type Point interface {

	// X returns the x coordinate.
	X() float32

	// Y returns the y coordinate.
	Y() float32

	// Z returns the z coordinate.
	Z() float32

	// SetCoord sets all three coordinates.
	SetCoord(x, y, z float32)

	// ID returns the point identifier.
	ID() int

	// OnCurve reports whether the point lies on the curve,
	// as opposed to being an off-curve control point.
	OnCurve() bool

	// TexCoord returns the texture coordinate.
	TexCoord() math32.Vector2
}

// PointFactory produces new [Point] values. Transform operations use it to
// allocate a destination point when none is supplied, preserving the source
// point's identifier, on-curve flag, and texture coordinate. A transform
// holds its factory as a borrowed reference: it is shared with clones and
// derived transforms, never owned.
type PointFactory interface {

	// NewPoint returns a new point with the given metadata
	// and zero coordinates.
	NewPoint(id int, onCurve bool, tex math32.Vector2) Point
}

// PathPoint is the standard [Point] implementation,
// used by path and glyph outline code.
type PathPoint struct {
	pos     math32.Vector3
	tex     math32.Vector2
	id      int
	onCurve bool
}

// NewPathPoint returns a new [PathPoint] with the given metadata
// and zero coordinates.
func NewPathPoint(id int, onCurve bool, tex math32.Vector2) *PathPoint {
	return &PathPoint{id: id, onCurve: onCurve, tex: tex}
}

func (p *PathPoint) X() float32 { return p.pos.X }

func (p *PathPoint) Y() float32 { return p.pos.Y }

func (p *PathPoint) Z() float32 { return p.pos.Z }

func (p *PathPoint) SetCoord(x, y, z float32) {
	p.pos.Set(x, y, z)
}

func (p *PathPoint) ID() int { return p.id }

func (p *PathPoint) OnCurve() bool { return p.onCurve }

func (p *PathPoint) TexCoord() math32.Vector2 { return p.tex }

// Pos returns the position as a [math32.Vector3].
func (p *PathPoint) Pos() math32.Vector3 { return p.pos }

// PathPointFactory is the [PointFactory] producing [PathPoint] values.
type PathPointFactory struct{}

func (PathPointFactory) NewPoint(id int, onCurve bool, tex math32.Vector2) Point {
	return NewPathPoint(id, onCurve, tex)
}
