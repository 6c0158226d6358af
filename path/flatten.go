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
	"golang.org/x/image/math/f32"

	"lanox.dev/raster/geom"
)

// maxSubdivisionLevel bounds the recursive midpoint/flatness subdivision
// used to flatten curves into line segments (spec §3, §9 open question:
// fixed at 5, matching the original implementation's empirical constant).
const maxSubdivisionLevel = 5

// flatness is the maximum deviation, in path units, tolerated between a
// curve and its polygon approximation before a further subdivision is
// forced (subject to maxSubdivisionLevel).
const flatness = 0.25

// Polygon returns the flattened polygon view of d: a run-length list of
// points with every quad/cubic segment subdivided into line segments. The
// result is cached and is a borrowed view — callers must not retain it
// across the next mutation of d.
func (d *Data) Polygon() Polygon {
	if !d.polyValid {
		d.poly = d.computePolygon()
		d.polyValid = true
		// Set after caching: Convex may itself read the cached polygon.
		d.poly.Convex = d.Convex()
	}
	return d.poly
}

func (d *Data) computePolygon() Polygon {
	if d.Empty() {
		return Polygon{}
	}

	if !d.hasCurve {
		// No curves: the stored points are already the polygon vertices.
		// Reuse them directly and derive counts by walking verbs.
		counts := make([]int, 0, d.nContours+1)
		n := 0
		for _, v := range d.Verbs {
			switch v {
			case VerbMove:
				if n > 0 {
					counts = append(counts, n)
				}
				n = 1
			case VerbLine:
				n++
			case VerbClose:
				// Close reuses the start point; it doesn't add a vertex.
			}
		}
		if n > 0 {
			counts = append(counts, n)
		}
		counts = append(counts, 0)
		return Polygon{Points: d.Points, Counts: counts}
	}

	var pts []geom.Point
	var counts []int
	var contourStart int
	var current, subpathStart geom.Point
	coordIdx := 0
	haveContour := false

	flushContour := func() {
		if haveContour {
			counts = append(counts, len(pts)-contourStart)
		}
	}

	for _, v := range d.Verbs {
		switch v {
		case VerbMove:
			flushContour()
			current = d.Points[coordIdx]
			subpathStart = current
			pts = append(pts, current)
			contourStart = len(pts) - 1
			haveContour = true
			coordIdx++

		case VerbLine:
			current = d.Points[coordIdx]
			pts = append(pts, current)
			coordIdx++

		case VerbQuad:
			c := d.Points[coordIdx]
			end := d.Points[coordIdx+1]
			subdivideQuad(current, c, end, maxSubdivisionLevel, &pts)
			current = end
			coordIdx += 2

		case VerbCubic:
			c0 := d.Points[coordIdx]
			c1 := d.Points[coordIdx+1]
			end := d.Points[coordIdx+2]
			subdivideCubic(current, c0, c1, end, maxSubdivisionLevel, &pts)
			current = end
			coordIdx += 3

		case VerbClose:
			if current != subpathStart {
				pts = append(pts, subpathStart)
			}
			current = subpathStart
		}
	}
	flushContour()
	counts = append(counts, 0)

	return Polygon{Points: pts, Counts: counts}
}

// subdivideQuad appends line-segment vertices approximating the quadratic
// Bezier (p0,c,p1) to *out, not including p0 (the caller already holds it
// as the current point). Subdivision recurses on the flatness of the
// midpoint deviation, bounded by level.
func subdivideQuad(p0, c, p1 geom.Point, level int, out *[]geom.Point) {
	if level <= 0 || quadIsFlat(p0, c, p1) {
		*out = append(*out, p1)
		return
	}
	// de Casteljau midpoint split
	p01 := mid(p0, c)
	p12 := mid(c, p1)
	p012 := mid(p01, p12)
	subdivideQuad(p0, p01, p012, level-1, out)
	subdivideQuad(p012, p12, p1, level-1, out)
}

func quadIsFlat(p0, c, p1 geom.Point) bool {
	// Deviation of the control point from the chord's midpoint,
	// following golang.org/x/image/vector's midpoint error estimate.
	mc := mid(p0, p1)
	d := geom.PointVector(mc, c).Length()
	return d <= flatness
}

// subdivideCubic appends line-segment vertices approximating the cubic
// Bezier (p0,c0,c1,p1) to *out, not including p0.
func subdivideCubic(p0, c0, c1, p1 geom.Point, level int, out *[]geom.Point) {
	if level <= 0 || cubicIsFlat(p0, c0, c1, p1) {
		*out = append(*out, p1)
		return
	}
	p01 := mid(p0, c0)
	p12 := mid(c0, c1)
	p23 := mid(c1, p1)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)
	subdivideCubic(p0, p01, p012, p0123, level-1, out)
	subdivideCubic(p0123, p123, p23, p1, level-1, out)
}

func cubicIsFlat(p0, c0, c1, p1 geom.Point) bool {
	mc := mid(p0, p1)
	d1 := geom.PointVector(mc, c0).Length()
	d2 := geom.PointVector(mc, c1).Length()
	return d1 <= flatness && d2 <= flatness
}

// mid computes the midpoint of a and b via golang.org/x/image/math/f32's
// Vec2, the same vector type golang.org/x/image/vector's flattener uses
// for its de Casteljau lerp steps.
func mid(a, b geom.Point) geom.Point {
	va := f32.Vec2{float32(a.X), float32(a.Y)}
	vb := f32.Vec2{float32(b.X), float32(b.Y)}
	m := lerp(va, vb, 0.5)
	return geom.Point{X: float64(m[0]), Y: float64(m[1])}
}

// lerp mirrors golang.org/x/image/vector's internal midpoint helper.
func lerp(a, b f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
	}
}
