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

// Package stroke converts a path plus a paint.StrokeStyle into a new closed
// path whose interior, filled under paint.NonZero, reproduces the stroked
// appearance (spec §4.4). Each closed input contour becomes an outer offset
// loop and an inner offset loop wound in the opposite direction, so that
// filling both under NonZero carves the expected hole; each open contour
// becomes a single closed loop running along the outer offset, around the
// end cap, back along the inner offset and around the start cap. Sharp
// curve cusps that
// exhaust the subdivision budget are patched with an extra circle.
package stroke

import (
	"math"

	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

// maxSplit bounds the recursive curve-offset subdivision, matching path's
// own maxSubdivisionLevel constant (spec §4.4 "bounded subdivision counter
// (≈5)").
const maxSplit = 5

// sharpCosine is the cosθ threshold above which a curve segment is smooth
// enough for a single offset quad/cubic; at or below it, the segment is
// either subdivided further or, once the budget is exhausted, approximated
// by lines with a circular patch at the cusp (spec §4.4).
const sharpCosine = math.Sqrt2/2 + 0.1

// lengthEpsilon is the minimum segment length below which a→b is treated
// as degenerate and skipped entirely (spec §4.4 "If b≈a the segment is
// skipped entirely").
const lengthEpsilon = 1e-9

// angleEpsilon classifies a joiner's angle as straight (cosθ≈1) or a
// reversal (cosθ≈-1) per spec §4.4's joiner angle classification.
const angleEpsilon = 1e-6

// Stroke returns a new path approximating the stroked outline of d under
// style. The result must be filled with paint.NonZero.
func Stroke(d *path.Data, style paint.StrokeStyle) *path.Data {
	out := path.New()
	if shortcutStroke(out, d, style) {
		return out
	}
	for _, c := range contoursOf(d) {
		strokeContour(out, c, style)
	}
	return out
}

// segment is one drawing verb with its start point made explicit, so it can
// be walked, offset and reversed without external current-point tracking.
type segment struct {
	kind   path.Verb // VerbLine, VerbQuad or VerbCubic
	p0, c0, c1, p1 geom.Point
}

type contour struct {
	segs   []segment
	closed bool
}

// contoursOf splits d's verb/point stream into per-contour segment lists.
func contoursOf(d *path.Data) []contour {
	var out []contour
	var segs []segment
	var cur, start geom.Point
	i := 0

	flush := func(closed bool) {
		if len(segs) > 0 {
			out = append(out, contour{segs: segs, closed: closed})
		}
		segs = nil
	}

	for _, v := range d.Verbs {
		switch v {
		case path.VerbMove:
			flush(false)
			cur = d.Points[i]
			start = cur
			i++
		case path.VerbLine:
			p1 := d.Points[i]
			i++
			segs = append(segs, segment{kind: path.VerbLine, p0: cur, p1: p1})
			cur = p1
		case path.VerbQuad:
			c := d.Points[i]
			p1 := d.Points[i+1]
			i += 2
			segs = append(segs, segment{kind: path.VerbQuad, p0: cur, c0: c, p1: p1})
			cur = p1
		case path.VerbCubic:
			c0 := d.Points[i]
			c1 := d.Points[i+1]
			p1 := d.Points[i+2]
			i += 3
			segs = append(segs, segment{kind: path.VerbCubic, p0: cur, c0: c0, c1: c1, p1: p1})
			cur = p1
		case path.VerbClose:
			// Close implies a line back to the contour's start point.
			if cur != start {
				segs = append(segs, segment{kind: path.VerbLine, p0: cur, p1: start})
			}
			cur = start
			flush(true)
		}
	}
	flush(false)
	return out
}

// segmentsOf returns the single contour's worth of segments held in a
// one-contour path (used for the inner/outer scratch paths built while
// stroking, which never contain a Move after their first point).
func segmentsOf(d *path.Data) []segment {
	cs := contoursOf(d)
	if len(cs) == 0 {
		return nil
	}
	return cs[0].segs
}

func mid(a, b geom.Point) geom.Point {
	return geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// appendAllContours replays every verb of src onto dst verbatim, preserving
// src's own Move/Close boundaries.
func appendAllContours(dst, src *path.Data) {
	i := 0
	for _, v := range src.Verbs {
		switch v {
		case path.VerbMove:
			dst.MoveTo(src.Points[i])
			i++
		case path.VerbLine:
			dst.LineTo(src.Points[i])
			i++
		case path.VerbQuad:
			dst.QuadTo(src.Points[i], src.Points[i+1])
			i += 2
		case path.VerbCubic:
			dst.CubicTo(src.Points[i], src.Points[i+1], src.Points[i+2])
			i += 3
		case path.VerbClose:
			dst.Close()
		}
	}
}

// appendReversedInline appends src's single contour onto dst in reverse
// point order, as a continuation of dst's current point (no Move is
// issued) — used to stitch an open contour's inner offset curve onto its
// outer curve between the two end caps.
func appendReversedInline(dst, src *path.Data) {
	segs := segmentsOf(src)
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		switch s.kind {
		case path.VerbLine:
			dst.LineTo(s.p0)
		case path.VerbQuad:
			dst.QuadTo(s.c0, s.p0)
		case path.VerbCubic:
			dst.CubicTo(s.c1, s.c0, s.p0)
		}
	}
}

// reverseClosedLoop returns a new, independently closed path retracing
// src's single closed contour in the opposite vertex order — used so a
// closed contour's inner loop winds opposite the outer loop.
func reverseClosedLoop(src *path.Data) *path.Data {
	segs := segmentsOf(src)
	out := path.New()
	if len(segs) == 0 {
		return out
	}
	out.MoveTo(segs[len(segs)-1].p1)
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		switch s.kind {
		case path.VerbLine:
			out.LineTo(s.p0)
		case path.VerbQuad:
			out.QuadTo(s.c0, s.p0)
		case path.VerbCubic:
			out.CubicTo(s.c1, s.c0, s.p0)
		}
	}
	out.Close()
	return out
}
