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

package path

import (
	"math"

	"lanox.dev/raster/geom"
)

// kappa is tan(pi/8), the control-point factor used to approximate a
// 45-degree circular arc with a single quadratic Bezier (spec §4.2). Every
// 90-degree corner (ellipse quadrant, round-rect corner, ArcTo segment) is
// split into two such 45-degree quads, giving about 0.31% radius error at
// most.
var kappa = math.Tan(math.Pi / 8)

// AddLine appends an open two-point contour from p0 to p1.
func (d *Data) AddLine(p0, p1 geom.Point) {
	wasEmpty := d.Empty()
	d.MoveTo(p0)
	d.LineTo(p1)
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeLine, Line: [2]geom.Point{p0, p1}}
	}
}

// AddTriangle appends a closed triangle contour in the given winding
// direction.
func (d *Data) AddTriangle(p0, p1, p2 geom.Point, dir Direction) {
	wasEmpty := d.Empty()
	d.MoveTo(p0)
	if dir == CW {
		d.LineTo(p1)
		d.LineTo(p2)
	} else {
		d.LineTo(p2)
		d.LineTo(p1)
	}
	d.Close()
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeTriangle, Triangle: [3]geom.Point{p0, p1, p2}}
	}
}

// AddRect appends a closed rectangular contour in the given winding
// direction.
func (d *Data) AddRect(r geom.Rect, dir Direction) {
	wasEmpty := d.Empty()
	tl := geom.Point{X: r.X, Y: r.Y}
	tr := geom.Point{X: r.X + r.W, Y: r.Y}
	br := geom.Point{X: r.X + r.W, Y: r.Y + r.H}
	bl := geom.Point{X: r.X, Y: r.Y + r.H}

	d.MoveTo(tl)
	if dir == CW {
		d.LineTo(tr)
		d.LineTo(br)
		d.LineTo(bl)
	} else {
		d.LineTo(bl)
		d.LineTo(br)
		d.LineTo(tr)
	}
	d.Close()
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeRect, Rect: r}
	}
}

// AddCircle appends a closed circular contour approximated by eight
// quadratic Bezier segments, two per quadrant.
func (d *Data) AddCircle(center geom.Point, radius float64, dir Direction) {
	wasEmpty := d.Empty()
	d.addEllipseQuads(center, radius, radius, dir)
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeCircle, Circle: Circle{Center: center, Radius: radius}}
	}
}

// AddEllipse appends a closed elliptical contour inscribed in the bounding
// rect r, approximated by eight quadratic Bezier segments.
func (d *Data) AddEllipse(r geom.Rect, dir Direction) {
	wasEmpty := d.Empty()
	center := geom.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
	rx, ry := r.W/2, r.H/2
	d.addEllipseQuads(center, rx, ry, dir)
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeEllipse, Ellipse: Ellipse{Center: center, Rx: rx, Ry: ry}}
	}
}

// addEllipseQuads builds a closed ellipse(rx,ry) centered at c using eight
// 45-degree quadratic Bezier segments. dir CCW steps the parametric angle
// forward (increasing), dir CW steps it backward.
func (d *Data) addEllipseQuads(c geom.Point, rx, ry float64, dir Direction) {
	step := math.Pi / 4
	if dir == CW {
		step = -step
	}

	pointAt := func(a float64) geom.Point {
		return geom.Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}

	a0 := 0.0
	if dir == CW {
		a0 = 2 * math.Pi
	}
	d.MoveTo(pointAt(a0))
	a := a0
	for i := 0; i < 8; i++ {
		a1 := a + step
		ctrl := ellipseQuadControl(c, rx, ry, a, step)
		d.QuadTo(ctrl, pointAt(a1))
		a = a1
	}
	d.Close()
}

// ellipseQuadControl returns the control point for the quadratic Bezier
// approximating the ellipse arc starting at angle a0 and sweeping step
// radians, using the kappa factor (spec §4.2). The factor is exact for
// |step| == pi/4; ArcTo also passes smaller steps for a partial final arc
// step, and those quads use the same factor.
func ellipseQuadControl(c geom.Point, rx, ry, a0, step float64) geom.Point {
	sign := 1.0
	if step < 0 {
		sign = -1.0
	}
	p0u := geom.Point{X: math.Cos(a0), Y: math.Sin(a0)}
	tangent := geom.Vector{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(kappa * sign)
	ctrlu := p0u.Displace(tangent)
	return geom.Point{X: c.X + rx*ctrlu.X, Y: c.Y + ry*ctrlu.Y}
}

// AddRoundRect appends a closed rounded-rectangle contour: four straight
// edges joined by quarter-circle corners, each corner split into two
// quadratic Bezier segments as for AddEllipse. rx and ry are clamped to at
// most half the rect's width and height respectively.
func (d *Data) AddRoundRect(r geom.Rect, rx, ry float64, dir Direction) {
	wasEmpty := d.Empty()
	rx = math.Min(rx, r.W/2)
	ry = math.Min(ry, r.H/2)
	if rx <= 0 || ry <= 0 {
		d.AddRect(r, dir)
		return
	}

	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H

	// Corner centers, clockwise from top-left.
	tl := geom.Point{X: x0 + rx, Y: y0 + ry}
	tr := geom.Point{X: x1 - rx, Y: y0 + ry}
	br := geom.Point{X: x1 - rx, Y: y1 - ry}
	bl := geom.Point{X: x0 + rx, Y: y1 - ry}

	corner := func(center geom.Point, a0 float64, sign float64) {
		step := sign * math.Pi / 4
		pointAt := func(a float64) geom.Point {
			return geom.Point{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
		}
		a := a0
		for i := 0; i < 2; i++ {
			a1 := a + step
			ctrl := ellipseQuadControl(center, rx, ry, a, step)
			d.QuadTo(ctrl, pointAt(a1))
			a = a1
		}
	}

	if dir == CW {
		// Start at the top edge, just past the top-left corner.
		d.MoveTo(geom.Point{X: x0 + rx, Y: y0})
		d.LineTo(geom.Point{X: x1 - rx, Y: y0})
		corner(tr, -math.Pi/2, 1) // top-right: from top to right
		d.LineTo(geom.Point{X: x1, Y: y1 - ry})
		corner(br, 0, 1) // bottom-right: from right to bottom
		d.LineTo(geom.Point{X: x0 + rx, Y: y1})
		corner(bl, math.Pi/2, 1) // bottom-left: from bottom to left
		d.LineTo(geom.Point{X: x0, Y: y0 + ry})
		corner(tl, math.Pi, 1) // top-left: from left to top
	} else {
		d.MoveTo(geom.Point{X: x0 + rx, Y: y0})
		corner(tl, -math.Pi/2, -1) // top-left: from top to left
		d.LineTo(geom.Point{X: x0, Y: y1 - ry})
		corner(bl, math.Pi, -1) // bottom-left: from left to bottom
		d.LineTo(geom.Point{X: x1 - rx, Y: y1})
		corner(br, math.Pi/2, -1) // bottom-right: from bottom to right
		d.LineTo(geom.Point{X: x1, Y: y0 + ry})
		corner(tr, 0, -1) // top-right: from right to top
	}
	d.Close()

	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeRoundRect, Rect: r}
	}
}

// ArcTo appends an arbitrary-sweep circular arc as a contiguous run of
// quadratic Bezier segments: the sweep is cut into steps of at most 90
// degrees, each drawn as two quads over equal halves of the step, all
// using the same kappa constant. Only full 90-degree steps give the
// 45-degree halves that kappa fits exactly. If the path has no current
// point, an implicit MoveTo the arc's start point is issued.
func (d *Data) ArcTo(arc Arc) {
	sweep := arc.SweepAngle
	if sweep == 0 {
		return
	}
	sign := 1.0
	if sweep < 0 {
		sign = -1.0
	}

	pointAt := func(a float64) geom.Point {
		return geom.Point{
			X: arc.Center.X + arc.Radius*math.Cos(a),
			Y: arc.Center.Y + arc.Radius*math.Sin(a),
		}
	}

	if _, ok := d.CurrentPoint(); !ok {
		d.MoveTo(pointAt(arc.StartAngle))
	}

	remaining := math.Abs(sweep)
	a := arc.StartAngle
	const maxStep = math.Pi / 2
	for remaining > 0 {
		step := math.Min(remaining, maxStep)
		halfStep := sign * step / 2
		a1 := a + halfStep
		ctrl1 := ellipseQuadControl(arc.Center, arc.Radius, arc.Radius, a, halfStep)
		d.QuadTo(ctrl1, pointAt(a1))
		a2 := a1 + halfStep
		ctrl2 := ellipseQuadControl(arc.Center, arc.Radius, arc.Radius, a1, halfStep)
		d.QuadTo(ctrl2, pointAt(a2))
		a = a2
		remaining -= step
	}
}

// AddArc appends an open contour, starting with a MoveTo the arc's start
// point, consisting solely of the given arc (no implicit radii lines to the
// center). dir sets the sweep direction whatever the sign of SweepAngle:
// CW makes the sweep negative, CCW makes it positive.
func (d *Data) AddArc(arc Arc, dir Direction) {
	wasEmpty := d.Empty()
	if dir == CW && arc.SweepAngle > 0 {
		arc.SweepAngle = -arc.SweepAngle
	} else if dir == CCW && arc.SweepAngle < 0 {
		arc.SweepAngle = -arc.SweepAngle
	}
	if arc.SweepAngle != 0 {
		d.MoveTo(geom.Point{
			X: arc.Center.X + arc.Radius*math.Cos(arc.StartAngle),
			Y: arc.Center.Y + arc.Radius*math.Sin(arc.StartAngle),
		})
	}
	d.ArcTo(arc)
	if wasEmpty {
		d.curveHint = Shape{Kind: ShapeArc, Arc: arc}
	}
}
