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

// Verb names one command in a Data's code stream.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// Data is the mutable, ordered sequence of verbs that makes up a vector
// path (spec §3). The zero value is an empty path ready to use.
//
// Codes and Points advance in lock-step: Move/Line/Close consume zero or
// one point (Close consumes none — it reuses the contour's start point),
// Quad consumes two, Cubic consumes three. Cached Bounds, Hint, Convex and
// Polygon are invalidated together whenever the verb/point sequence changes
// and are recomputed lazily on the next query.
//
// A Data is not safe for concurrent use.
type Data struct {
	Verbs  []Verb
	Points []geom.Point

	// per-contour state used while building
	contourOpen   bool // true once a Move has started a contour that hasn't Closed yet
	drewSinceMove bool // true once a drawing verb has followed the active Move
	contourStart  geom.Point
	current       geom.Point
	hasCurve      bool
	nContours     int   // number of distinct Move verbs seen so far
	curveHint     Shape // set by Add* shape constructors for curve-based shapes

	// caches, invalidated together by invalidate()
	boundsValid bool
	bounds      geom.Rect
	hintValid   bool
	hint        Shape
	convexValid bool
	convex      bool
	polyValid   bool
	poly        Polygon
}

// New returns an empty path.
func New() *Data { return &Data{} }

// Empty reports whether the path has no verbs.
func (d *Data) Empty() bool { return len(d.Verbs) == 0 }

// Clear resets d to the empty path, reusing its backing storage.
func (d *Data) Clear() {
	d.Verbs = d.Verbs[:0]
	d.Points = d.Points[:0]
	d.contourOpen = false
	d.drewSinceMove = false
	d.hasCurve = false
	d.nContours = 0
	d.invalidate()
}

// Copy returns an independent deep copy of d.
func (d *Data) Copy() *Data {
	out := &Data{}
	out.CopyFrom(d)
	return out
}

// CopyFrom overwrites d with an independent deep copy of src, reusing d's
// backing arrays when they have enough capacity. This lets a caller that
// keeps a pool of *Data values (such as canvas's save/load stacks) refill a
// pooled slot without allocating a fresh Data on every copy.
func (d *Data) CopyFrom(src *Data) {
	d.Verbs = append(d.Verbs[:0], src.Verbs...)
	d.Points = append(d.Points[:0], src.Points...)
	d.contourOpen = src.contourOpen
	d.drewSinceMove = src.drewSinceMove
	d.contourStart = src.contourStart
	d.current = src.current
	d.hasCurve = src.hasCurve
	d.nContours = src.nContours
	d.curveHint = src.curveHint
	d.boundsValid = src.boundsValid
	d.bounds = src.bounds
	d.hintValid = src.hintValid
	d.hint = src.hint
	d.convexValid = src.convexValid
	d.convex = src.convex
	// the flattened polygon is a borrowed view into Points for the no-curve
	// case; never share it, just invalidate and let it recompute lazily.
	d.polyValid = false
}

func (d *Data) invalidate() {
	d.boundsValid = false
	d.hintValid = false
	d.convexValid = false
	d.polyValid = false
	d.curveHint = Shape{}
}

// implicitMoveIfNeeded re-emits a Move at the current point, as required
// when a drawing verb follows a Close without an explicit MoveTo (spec §3:
// "A Line/Quad/Cubic issued immediately after a Close implicitly re-emits
// Move at the last point").
func (d *Data) implicitMoveIfNeeded() {
	if !d.contourOpen {
		d.rawMove(d.current)
	}
}

func (d *Data) rawMove(p geom.Point) {
	if d.contourOpen && !d.drewSinceMove {
		// Consecutive moves collapse: replace the previous move's target.
		d.Points[len(d.Points)-1] = p
	} else {
		d.Verbs = append(d.Verbs, VerbMove)
		d.Points = append(d.Points, p)
		d.nContours++
	}
	d.contourStart = p
	d.current = p
	d.contourOpen = true
	d.drewSinceMove = false
}

// MoveTo starts a new contour at p.
func (d *Data) MoveTo(p geom.Point) {
	d.rawMove(p)
	d.invalidate()
}

// LineTo appends a line segment from the current point to p.
func (d *Data) LineTo(p geom.Point) {
	d.implicitMoveIfNeeded()
	d.Verbs = append(d.Verbs, VerbLine)
	d.Points = append(d.Points, p)
	d.current = p
	d.drewSinceMove = true
	d.invalidate()
}

// QuadTo appends a quadratic Bezier segment with control point c and
// endpoint p.
func (d *Data) QuadTo(c, p geom.Point) {
	d.implicitMoveIfNeeded()
	d.Verbs = append(d.Verbs, VerbQuad)
	d.Points = append(d.Points, c, p)
	d.current = p
	d.drewSinceMove = true
	d.hasCurve = true
	d.invalidate()
}

// CubicTo appends a cubic Bezier segment with control points c0, c1 and
// endpoint p.
func (d *Data) CubicTo(c0, c1, p geom.Point) {
	d.implicitMoveIfNeeded()
	d.Verbs = append(d.Verbs, VerbCubic)
	d.Points = append(d.Points, c0, c1, p)
	d.current = p
	d.drewSinceMove = true
	d.hasCurve = true
	d.invalidate()
}

// Close closes the current contour with a line back to its start point, if
// needed. A contour is closed at most once; a Close with no open contour
// is a no-op.
func (d *Data) Close() {
	if !d.contourOpen {
		return
	}
	d.Verbs = append(d.Verbs, VerbClose)
	d.current = d.contourStart
	d.contourOpen = false
	d.drewSinceMove = false
	d.invalidate()
}

// CurrentPoint returns the path's current point and whether one exists
// (false for an empty path).
func (d *Data) CurrentPoint() (geom.Point, bool) {
	if len(d.Verbs) == 0 && !d.contourOpen {
		return geom.Point{}, false
	}
	return d.current, true
}

// Apply transforms every stored point of d by m in place, invalidating all
// caches.
func (d *Data) Apply(m geom.Matrix) {
	for i, p := range d.Points {
		d.Points[i] = m.Apply(p)
	}
	d.contourStart = m.Apply(d.contourStart)
	d.current = m.Apply(d.current)
	d.invalidate()
}
