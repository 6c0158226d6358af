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

package stroke

import (
	"math"

	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

// kappa is tan(pi/8), the quadratic control-point factor for a 45-degree
// circular arc (spec §4.2, §4.4): every round joiner arc is split into
// steps of at most 90 degrees, each approximated by one quad per half step.
// Round caps use cubicArc instead.
var kappa = math.Tan(math.Pi / 4 / 2)

// arcTo appends a round-joiner arc to dst, starting at dst's current point
// (center + from*radius) and sweeping to center + to*radius the short way
// around, using quad Beziers split into <=90-degree steps (spec §4.4
// "Round" joiner).
func arcTo(dst *path.Data, center geom.Point, radius float64, from, to geom.Vector) {
	a0 := math.Atan2(from.Y, from.X)
	a1 := math.Atan2(to.Y, to.X)
	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	quadArc(dst, center, radius, a0, sweep)
}

// quadArc appends a sequence of quad Beziers approximating the circular
// arc of the given radius, centered at center, starting at angle a0 and
// sweeping by totalSweep radians, split into steps of at most 90 degrees,
// each drawn as two quads over its two halves.
func quadArc(dst *path.Data, center geom.Point, radius, a0, totalSweep float64) {
	if totalSweep == 0 {
		return
	}
	steps := 2 * int(math.Ceil(math.Abs(totalSweep)/(math.Pi/2)))
	if steps < 1 {
		steps = 1
	}
	step := totalSweep / float64(steps)
	a := a0
	for i := 0; i < steps; i++ {
		a1 := a + step
		ctrl := quadArcControl(center, radius, a, step)
		dst.QuadTo(ctrl, pointOnCircle(center, radius, a1))
		a = a1
	}
}

func quadArcControl(center geom.Point, radius, a0, step float64) geom.Point {
	sign := 1.0
	if step < 0 {
		sign = -1.0
	}
	tangent := geom.Vector{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(kappa * sign)
	unit := geom.Point{X: math.Cos(a0), Y: math.Sin(a0)}.Displace(tangent)
	return geom.Point{X: center.X + radius*unit.X, Y: center.Y + radius*unit.Y}
}

func pointOnCircle(center geom.Point, radius, a float64) geom.Point {
	return geom.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
}

// addFullCircle appends a full closed circle of the given radius to dst as
// its own contour, built from the existing shape constructors (spec §4.4's
// cusp/round-cap circle patches).
func addFullCircle(dst *path.Data, center geom.Point, radius float64) {
	if radius <= 0 {
		return
	}
	tmp := path.New()
	tmp.AddCircle(center, radius, path.CW)
	appendAllContours(dst, tmp)
}

// addCap appends one of the three end-cap treatments to dst, continuing
// from dst's current point (center + normal*radius) to center -
// normal*radius (spec §4.4 "Cappers").
func addCap(dst *path.Data, center geom.Point, normal, tangent geom.Vector, radius float64, style paint.Cap) {
	p2 := center.Displace(normal.Mul(-radius))
	switch style {
	case paint.CapSquare:
		p1 := center.Displace(normal.Mul(radius))
		dst.LineTo(p1.Displace(tangent.Mul(radius)))
		dst.LineTo(p2.Displace(tangent.Mul(radius)))
		dst.LineTo(p2)
	case paint.CapRound:
		sign := 1.0
		if normal.Cross(tangent) < 0 {
			sign = -1.0
		}
		a0 := math.Atan2(normal.Y, normal.X)
		cubicArc(dst, center, radius, a0, sign*math.Pi)
	default: // paint.CapButt
		dst.LineTo(p2)
	}
}

// cubicArc appends a sequence of cubic Beziers approximating the circular
// arc of the given radius, centered at center, starting at angle a0 and
// sweeping totalSweep radians, split into steps of at most 90 degrees,
// using the standard circle-approximation constant 4/3*tan(θ/4) (spec
// §4.4 "Round" capper: "L = 4·tan(π/8)/3 · radius" for a 90-degree step).
func cubicArc(dst *path.Data, center geom.Point, radius, a0, totalSweep float64) {
	if totalSweep == 0 {
		return
	}
	steps := int(math.Ceil(math.Abs(totalSweep) / (math.Pi / 2)))
	if steps < 1 {
		steps = 1
	}
	step := totalSweep / float64(steps)
	l := radius * 4.0 / 3.0 * math.Tan(step/4)
	a := a0
	for i := 0; i < steps; i++ {
		a1 := a + step
		p0 := pointOnCircle(center, radius, a)
		p1 := pointOnCircle(center, radius, a1)
		t0 := geom.Vector{X: -math.Sin(a), Y: math.Cos(a)}.Mul(l)
		t1 := geom.Vector{X: -math.Sin(a1), Y: math.Cos(a1)}.Mul(l)
		dst.CubicTo(p0.Displace(t0), p1.Displace(t1.Mul(-1)), p1)
		a = a1
	}
}
