// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestTransformPoint(t *testing.T) {
	f := PathPointFactory{}
	m := NewTranslate(f, 10, 20)

	src := NewPathPoint(7, true, math32.Vec2(0.25, 0.5))
	src.SetCoord(1, 2, 3)

	// with no destination, a new point is allocated via the factory,
	// preserving metadata and passing z through unchanged
	dst := m.Transform(src, nil)
	assert.Equal(t, 7, dst.ID())
	assert.True(t, dst.OnCurve())
	assert.Equal(t, math32.Vec2(0.25, 0.5), dst.TexCoord())
	assert.Equal(t, float32(11), dst.X())
	assert.Equal(t, float32(22), dst.Y())
	assert.Equal(t, float32(3), dst.Z())

	// a supplied destination is used as-is
	out := NewPathPoint(0, false, math32.Vector2{})
	got := m.Transform(src, out)
	assert.Same(t, out, got)
	assert.Equal(t, float32(11), out.X())
	assert.Equal(t, float32(22), out.Y())
}

func TestTransformPoints(t *testing.T) {
	f := PathPointFactory{}
	m := NewScale(f, 2, 3)

	src := make([]Point, 4)
	dst := make([]Point, 4)
	for i := range src {
		p := NewPathPoint(i, true, math32.Vector2{})
		p.SetCoord(float32(i+1), float32(i+1), 0)
		src[i] = p
		dst[i] = NewPathPoint(0, false, math32.Vector2{})
	}

	assert.NoError(t, m.TransformPoints(src, 0, dst, 0, 4))
	assert.Equal(t, float32(6), dst[2].X())
	assert.Equal(t, float32(9), dst[2].Y())

	// a nil destination slot fails, leaving earlier slots written
	for i := range dst {
		dst[i] = NewPathPoint(0, false, math32.Vector2{})
	}
	dst[2] = nil
	err := m.TransformPoints(src, 0, dst, 0, 4)
	assert.ErrorIs(t, err, ErrNilDestination)
	assert.Equal(t, float32(4), dst[1].X())

	// offsets address independent windows
	dst2 := []Point{nil, NewPathPoint(0, false, math32.Vector2{})}
	assert.NoError(t, m.TransformPoints(src, 3, dst2, 1, 1))
	assert.Equal(t, float32(8), dst2[1].X())
	assert.Equal(t, float32(12), dst2[1].Y())
}

func TestDeltaTransform(t *testing.T) {
	f := PathPointFactory{}
	m := NewRotateAbout(f, math32.DegToRad(90), 5, 5)

	// translation is ignored for direction vectors
	x, y := m.DeltaTransformXY(1, 0)
	tolAssertEqualXY(t, standardTol, 0, 1, x, y)

	v := NewTranslate(f, 100, 100).DeltaTransformVec2(math32.Vec2(1, 2))
	assert.Equal(t, math32.Vec2(1, 2), v)

	src := NewPathPoint(1, false, math32.Vec2(1, 0))
	src.SetCoord(1, 0, 9)
	dst := m.DeltaTransform(src, nil)
	assert.Equal(t, float32(9), dst.Z())
	assert.Equal(t, 1, dst.ID())
	tolAssertEqualXY(t, standardTol, 0, 1, dst.X(), dst.Y())

	sc := []float32{1, 0, 0, 2}
	out := make([]float32, 4)
	m.DeltaTransformCoords(sc, 0, out, 0, 2)
	tolAssertEqualXY(t, standardTol, 0, 1, out[0], out[1])
	tolAssertEqualXY(t, standardTol, -2, 0, out[2], out[3])
}

func TestInverseTransformCoords(t *testing.T) {
	f := PathPointFactory{}
	m := NewRotateAbout(f, 0.4, 1, 2)
	m.Scale(2, 2)

	src := []float32{0, 0, 1, 0, -2, 3.5}
	fwd := make([]float32, 6)
	m.TransformCoords(src, 0, fwd, 0, 3)

	back := make([]float32, 6)
	assert.NoError(t, m.InverseTransformCoords(fwd, 0, back, 0, 3))
	for i := range src {
		tolassert.EqualTol(t, src[i], back[i], 1e-4)
	}

	// singular: fails before writing anything
	s := NewMatrix(f, 1, 2, 2, 4, 0, 0)
	out := []float32{99, 99, 99, 99}
	assert.ErrorIs(t, s.InverseTransformCoords(src, 0, out, 0, 2), ErrNonInvertible)
	assert.Equal(t, []float32{99, 99, 99, 99}, out)
}

func TestTransformCoord(t *testing.T) {
	m := NewTranslate(nil, 1, -1)
	src := []float32{0, 0, 5, 6}
	dst := make([]float32, 4)
	m.TransformCoord(src, 2, dst, 0)
	assert.Equal(t, []float32{6, 5, 0, 0}, dst)
}

func TestTransformCoordsAliasing(t *testing.T) {
	m := NewMatrix(nil, 2, 0.5, -1, 3, 4, -2)
	src := []float32{1, 2, -3, 4, 5, -6, 7, 8}

	// reference: transform into a disjoint buffer
	want := make([]float32, 8)
	m.TransformCoords(src, 0, want, 0, 4)

	// same slice, destination starting inside the source range:
	// must iterate in reverse so no pair is clobbered before it is read
	buf := append([]float32(nil), src...)
	buf = append(buf, 0, 0)
	m.TransformCoords(buf, 0, buf, 2, 4)
	assert.Equal(t, want, buf[2:10])

	// same slice, destination before the source: forward order is safe
	buf2 := append([]float32{0, 0}, src...)
	m.TransformCoords(buf2, 2, buf2, 0, 4)
	assert.Equal(t, want, buf2[0:8])

	// same slice, fully in place
	buf3 := append([]float32(nil), src...)
	m.TransformCoords(buf3, 0, buf3, 0, 4)
	assert.Equal(t, want, buf3)

	// disjoint slices
	dst := make([]float32, 8)
	m.TransformCoords(src, 0, dst, 0, 4)
	assert.Equal(t, want, dst)
}

func TestTransformFixed(t *testing.T) {
	m := NewTranslate(nil, 1, 0.5)
	assert.Equal(t, fixed.Point26_6{X: 128, Y: 96}, m.TransformFixed(math32.Vec2(1, 1)))
}

type polyline struct {
	pts []math32.Vector2
}

func (p *polyline) TransformedShape(t *AffineTransform) Shape {
	out := &polyline{pts: make([]math32.Vector2, len(p.pts))}
	for i, v := range p.pts {
		out.pts[i] = t.TransformVec2(v)
	}
	return out
}

func TestTransformShape(t *testing.T) {
	m := NewTranslate(nil, 1, 1)
	assert.Nil(t, m.TransformShape(nil))

	sh := m.TransformShape(&polyline{pts: []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 2}}})
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 1}, {X: 2, Y: 3}}, sh.(*polyline).pts)
}
