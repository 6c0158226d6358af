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

// Package geom defines the small value types shared by every other package
// in this module: points, direction vectors, rectangles, affine matrices,
// and colors.
package geom

import "math"

// Point is a device- or user-space coordinate pair.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Vector is a 2-D direction or offset.
type Vector struct {
	X, Y float64
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector { return Vector{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the Z component of the 3-D cross product of v and w,
// i.e. the signed area of the parallelogram they span. Positive means w
// is counter-clockwise from v.
func (v Vector) Cross(w Vector) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	n := v.Length()
	if n == 0 {
		return v
	}
	return v.Mul(1 / n)
}

// RotateCCW rotates v by +90 degrees, (x,y) -> (-y,x): counter-clockwise
// with the Y axis pointing up, clockwise on screen in a Y-down device
// space.
func (v Vector) RotateCCW() Vector { return Vector{-v.Y, v.X} }

// RotateCW rotates v by -90 degrees: (x,y) -> (y,-x).
func (v Vector) RotateCW() Vector { return Vector{v.Y, -v.X} }

// IsClockwise reports whether the turn from v to w is clockwise, i.e.
// whether w lies to the right of v.
func (v Vector) IsClockwise(w Vector) bool { return v.Cross(w) < 0 }

// PointVector returns the vector from a to b.
func PointVector(a, b Point) Vector { return Vector{b.X - a.X, b.Y - a.Y} }

// Displace returns the point p moved by v.
func (p Point) Displace(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }
