// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geom

import (
	"math"
	"testing"
)

func TestVectorNormalize(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	u := v.Normalize()
	if math.Abs(u.Length()-1) > 1e-12 {
		t.Fatalf("Normalize: got length %v, want 1", u.Length())
	}

	zero := Vector{}
	if zero.Normalize() != zero {
		t.Fatalf("Normalize of zero vector should return zero unchanged")
	}
}

func TestVectorRotate(t *testing.T) {
	v := Vector{X: 1, Y: 0}
	ccw := v.RotateCCW()
	if ccw != (Vector{X: 0, Y: 1}) {
		t.Fatalf("RotateCCW: got %v, want (0,1)", ccw)
	}
	cw := v.RotateCW()
	if cw != (Vector{X: 0, Y: -1}) {
		t.Fatalf("RotateCW: got %v, want (0,-1)", cw)
	}
}

func TestVectorIsClockwise(t *testing.T) {
	v := Vector{X: 1, Y: 0}
	w := Vector{X: 0, Y: 1}
	if v.IsClockwise(w) {
		t.Fatalf("(1,0)->(0,1) should be counter-clockwise")
	}
	if !v.IsClockwise(Vector{X: 0, Y: -1}) {
		t.Fatalf("(1,0)->(0,-1) should be clockwise")
	}
}

func TestRectApply(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 5}
	m := Translate(3, 4)
	got := r.Apply(m)
	want := Rect{X: 3, Y: 4, W: 10, H: 5}
	if got != want {
		t.Fatalf("Apply: got %v, want %v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 1, H: 1}
	b := Rect{X: 2, Y: 2, W: 1, H: 1}
	u := a.Union(b)
	want := Rect{X: 0, Y: 0, W: 3, H: 3}
	if u != want {
		t.Fatalf("Union: got %v, want %v", u, want)
	}
}

func TestMatrixMul(t *testing.T) {
	m := Scale(2, 2).Mul(Translate(1, 1))
	p := m.Apply(Point{X: 1, Y: 1})
	want := Point{X: 3, Y: 3}
	if p != want {
		t.Fatalf("Mul: got %v, want %v", p, want)
	}
}

func TestMatrixIsUnitScale(t *testing.T) {
	if !Identity.IsUnitScale() {
		t.Fatalf("Identity should be unit scale")
	}
	if Scale(2, 1).IsUnitScale() {
		t.Fatalf("Scale(2,1) should not be unit scale")
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 40}
	if got := FromNRGBA(c.NRGBA()); got != c {
		t.Fatalf("NRGBA round trip: got %v, want %v", got, c)
	}
}
