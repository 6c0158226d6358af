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

import "lanox.dev/raster/geom"

// Hint returns the recognized high-level shape of d, or a Shape with Kind
// ShapeNone if the geometry doesn't match any recognized pattern. The
// result is cached and recomputed lazily after mutation.
//
// Open question (spec §9): rect-hint detection requires edges to alternate
// horizontal/vertical with strict equality, exactly as the original C
// implementation does. A rect that differs from axis alignment by even one
// unit of subpixel rounding is not recognized; this is preserved
// intentionally rather than loosened with an epsilon.
func (d *Data) Hint() Shape {
	if !d.hintValid {
		d.hint = d.computeHint()
		d.hintValid = true
	}
	return d.hint
}

func (d *Data) computeHint() Shape {
	if d.hasCurve {
		// Curve-built shapes (circle, ellipse, round-rect, arc) tag their
		// own hint directly at construction time; see shapes.go.
		return d.curveHint
	}

	pts := d.Points
	verbs := d.Verbs

	// Close does not append a point (path.go): a closed rect contributes
	// exactly 4 stored points (the corners), a closed triangle exactly 3 —
	// the closing edge back to the contour start is implicit.
	switch {
	case len(pts) == 4 && len(verbs) == 5 &&
		verbs[0] == VerbMove && verbs[1] == VerbLine && verbs[2] == VerbLine &&
		verbs[3] == VerbLine && verbs[4] == VerbClose &&
		isAlternatingRect(pts):
		return Shape{Kind: ShapeRect, Rect: rectFromCorners(pts)}

	case len(pts) == 3 && len(verbs) == 4 &&
		verbs[0] == VerbMove && verbs[1] == VerbLine && verbs[2] == VerbLine && verbs[3] == VerbClose &&
		pts[0].X != pts[1].X && pts[0].Y != pts[1].Y &&
		pts[0].X != pts[2].X && pts[0].Y != pts[2].Y &&
		pts[1].X != pts[2].X && pts[1].Y != pts[2].Y:
		return Shape{Kind: ShapeTriangle, Triangle: [3]geom.Point{pts[0], pts[1], pts[2]}}

	case len(pts) == 2 && len(verbs) == 2 &&
		verbs[0] == VerbMove && verbs[1] == VerbLine &&
		pts[0].X != pts[1].X && pts[0].Y != pts[1].Y:
		return Shape{Kind: ShapeLine, Line: [2]geom.Point{pts[0], pts[1]}}

	case len(pts) == 1 && len(verbs) == 1 && verbs[0] == VerbMove:
		return Shape{Kind: ShapePoint, Point: pts[0]}
	}

	return Shape{Kind: ShapeNone}
}

// isAlternatingRect reports whether the four edges p0->p1, p1->p2, p2->p3
// and the implicit closing edge p3->p0 strictly alternate horizontal and
// vertical, starting with either.
func isAlternatingRect(p []geom.Point) bool {
	startHorizontal := p[0].X != p[1].X && p[0].Y == p[1].Y &&
		p[1].X == p[2].X && p[1].Y != p[2].Y &&
		p[2].X != p[3].X && p[2].Y == p[3].Y &&
		p[3].X == p[0].X && p[3].Y != p[0].Y
	startVertical := p[0].X == p[1].X && p[0].Y != p[1].Y &&
		p[1].X != p[2].X && p[1].Y == p[2].Y &&
		p[2].X == p[3].X && p[2].Y != p[3].Y &&
		p[3].X != p[0].X && p[3].Y == p[0].Y
	return startHorizontal || startVertical
}

func rectFromCorners(p []geom.Point) geom.Rect {
	r, _ := geom.RectFromPoints(p)
	return r
}

// Convex reports whether d's interior is convex. The result is cached.
func (d *Data) Convex() bool {
	if !d.convexValid {
		d.convex = d.computeConvex()
		d.convexValid = true
	}
	return d.convex
}

func (d *Data) computeConvex() bool {
	if d.Empty() {
		return true
	}

	switch d.Hint().Kind {
	case ShapeRect, ShapeCircle, ShapeEllipse, ShapeTriangle, ShapeRoundRect:
		return true
	}

	// Single closed contour: check the sign of the cross product of
	// successive edge vectors never changes.
	if d.nContours != 1 {
		return false
	}
	if len(d.Verbs) == 0 || d.Verbs[len(d.Verbs)-1] != VerbClose {
		return false
	}

	poly := d.Polygon()
	contours := poly.Contours()
	if len(contours) != 1 {
		return false
	}
	return isConvexContour(contours[0])
}

func isConvexContour(pts []geom.Point) bool {
	n := len(pts)
	if n < 3 {
		return true
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		c := pts[(i+2)%n]
		cross := geom.PointVector(a, b).Cross(geom.PointVector(b, c))
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle containing every point of d. The
// result is cached. Calling Bounds on an empty path returns the zero Rect.
func (d *Data) Bounds() geom.Rect {
	if !d.boundsValid {
		d.bounds = d.computeBounds()
		d.boundsValid = true
	}
	return d.bounds
}

func (d *Data) computeBounds() geom.Rect {
	if d.Empty() {
		return geom.Rect{}
	}
	switch h := d.Hint(); h.Kind {
	case ShapeRect:
		return h.Rect
	case ShapeCircle:
		c := h.Circle
		return geom.Rect{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
	case ShapeEllipse:
		e := h.Ellipse
		return geom.Rect{X: e.Center.X - e.Rx, Y: e.Center.Y - e.Ry, W: 2 * e.Rx, H: 2 * e.Ry}
	}
	// Fall back to the raw point array (includes curve control points; a
	// curve always lies within the convex hull of its control points, so
	// their bounds contain it).
	r, _ := geom.RectFromPoints(d.Points)
	return r
}
