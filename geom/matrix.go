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

// Matrix is a 2x3 affine transform:
//
//	x' = Sx*x + Kx*y + Tx
//	y' = Ky*x + Sy*y + Ty
type Matrix struct {
	Sx, Kx, Ky, Sy, Tx, Ty float64
}

// Identity is the identity transform.
var Identity = Matrix{Sx: 1, Sy: 1}

// Apply transforms the point p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.Sx*p.X + m.Kx*p.Y + m.Tx,
		Y: m.Ky*p.X + m.Sy*p.Y + m.Ty,
	}
}

// ApplyVector transforms the vector v by the linear part of m only
// (translation is ignored).
func (m Matrix) ApplyVector(v Vector) Vector {
	return Vector{
		X: m.Sx*v.X + m.Kx*v.Y,
		Y: m.Ky*v.X + m.Sy*v.Y,
	}
}

// Mul returns the matrix that applies m first, then n: (m.Mul(n)).Apply(p)
// == n.Apply(m.Apply(p)).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		Sx: m.Sx*n.Sx + m.Ky*n.Kx,
		Kx: m.Kx*n.Sx + m.Sy*n.Kx,
		Ky: m.Sx*n.Ky + m.Ky*n.Sy,
		Sy: m.Kx*n.Ky + m.Sy*n.Sy,
		Tx: m.Tx*n.Sx + m.Ty*n.Kx + n.Tx,
		Ty: m.Tx*n.Ky + m.Ty*n.Sy + n.Ty,
	}
}

// Translate returns a translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{Sx: 1, Sy: 1, Tx: dx, Ty: dy}
}

// Scale returns a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{Sx: sx, Sy: sy}
}

// IsUnitScale reports whether m has no scaling or skew component, only
// translation — used by the device to pick the width==1 fast stroke path
// (spec §4.7).
func (m Matrix) IsUnitScale() bool {
	return m.Sx == 1 && m.Sy == 1 && m.Kx == 0 && m.Ky == 0
}
