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

// strokeContext holds the per-contour state named in spec §4.4: the
// growing outer/inner offset paths, the scratch path for cusp circle
// patches, and the previous point/normal/tangent carried between segments.
type strokeContext struct {
	style       paint.StrokeStyle
	radius      float64
	miterInvert float64

	outer *path.Data
	inner *path.Data
	other *path.Data

	started      bool
	contourStart geom.Point
	firstNormal  geom.Vector
	firstTangent geom.Vector
	prevPoint    geom.Point
	prevNormal   geom.Vector
	prevTangent  geom.Vector
}

func newContext(style paint.StrokeStyle) *strokeContext {
	miter := style.MiterLimit
	if miter <= 0 {
		miter = 1
	}
	return &strokeContext{
		style:       style,
		radius:      style.Width / 2,
		miterInvert: 1 / miter,
		outer:       path.New(),
		inner:       path.New(),
		other:       path.New(),
	}
}

// strokeContour strokes one input contour and appends the resulting
// outline(s) to out.
func strokeContour(out *path.Data, c contour, style paint.StrokeStyle) {
	sc := newContext(style)
	for _, s := range c.segs {
		switch s.kind {
		case path.VerbLine:
			sc.emitLine(s.p0, s.p1)
		case path.VerbQuad:
			sc.emitQuad(s.p0, s.c0, s.p1)
		case path.VerbCubic:
			sc.emitCubic(s.p0, s.c0, s.c1, s.p1)
		}
	}

	if !sc.started {
		// Every segment was degenerate: only a round cap leaves a mark.
		if len(c.segs) > 0 && style.Cap == paint.CapRound {
			addFullCircle(out, c.segs[0].p0, sc.radius)
		}
		return
	}

	if c.closed {
		sc.finishClosed()
	} else {
		sc.finishOpen()
	}

	appendAllContours(out, sc.outer)
	if c.closed {
		// An open contour's inner curve is already stitched into outer.
		appendAllContours(out, sc.inner)
	}
	appendAllContours(out, sc.other)
}

// enter runs the enter/leave protocol's first step for a non-first
// segment: invoke the joiner at the shared vertex. For the first segment
// of a contour it instead seeds outer/inner with a Move.
func (sc *strokeContext) enter(normal geom.Vector, tangent geom.Vector) {
	if !sc.started {
		sc.outer.MoveTo(sc.prevPoint.Displace(normal.Mul(sc.radius)))
		sc.inner.MoveTo(sc.prevPoint.Displace(normal.Mul(-sc.radius)))
		sc.firstNormal = normal
		sc.firstTangent = tangent
		sc.started = true
		return
	}
	sc.join(sc.prevNormal, normal)
}

// join dispatches one of the three joiner styles, or no-ops/bevels for the
// near-0°/near-180° special cases (spec §4.4 "Joiners").
func (sc *strokeContext) join(before, after geom.Vector) {
	cosAngle := before.Dot(after)
	switch {
	case math.Abs(1-cosAngle) <= angleEpsilon:
		return
	case math.Abs(1+cosAngle) <= angleEpsilon:
		sc.bevelJoin(before, after)
		return
	}
	switch sc.style.Join {
	case paint.JoinMiter:
		sc.miterJoin(before, after)
	case paint.JoinRound:
		sc.roundJoin(before, after)
	default:
		sc.bevelJoin(before, after)
	}
}

// innerJoin is the inner-path contribution shared by every joiner variant:
// two lines, to the shared vertex and then to its offset along the new
// normal (spec §4.4's joiner table, "Inner path contribution" column).
func (sc *strokeContext) innerJoin(after geom.Vector) {
	sc.inner.LineTo(sc.prevPoint)
	sc.inner.LineTo(sc.prevPoint.Displace(after.Mul(-sc.radius)))
}

func (sc *strokeContext) bevelJoin(before, after geom.Vector) {
	sc.outer.LineTo(sc.prevPoint.Displace(after.Mul(sc.radius)))
	sc.innerJoin(after)
}

func (sc *strokeContext) miterJoin(before, after geom.Vector) {
	cosTheta := before.Dot(after)
	cosHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
	if cosHalf > 0 && sc.miterInvert <= cosHalf {
		var dir geom.Vector
		if cosTheta >= 0 {
			dir = before.Add(after)
		} else {
			dir = before.RotateCW().Add(after.RotateCCW())
		}
		if dir.Length() > lengthEpsilon {
			dir = dir.Normalize().Mul(sc.radius / cosHalf)
			sc.outer.LineTo(sc.prevPoint.Displace(dir))
		} else {
			sc.outer.LineTo(sc.prevPoint.Displace(after.Mul(sc.radius)))
		}
	} else {
		sc.outer.LineTo(sc.prevPoint.Displace(after.Mul(sc.radius)))
	}
	sc.innerJoin(after)
}

func (sc *strokeContext) roundJoin(before, after geom.Vector) {
	arcTo(sc.outer, sc.prevPoint, sc.radius, before, after)
	sc.innerJoin(after)
}

// patchCircle appends a full circle of the stroke radius, centered at p,
// to the scratch "other" path — used to plug the gap left at a curve cusp
// that exhausted its subdivision budget (spec §4.4).
func (sc *strokeContext) patchCircle(p geom.Point) {
	addFullCircle(sc.other, p, sc.radius)
}

// emitLine runs the enter/leave protocol for a line segment (spec §4.4
// "Line segment"): outer appends p+normal, inner appends p-normal.
func (sc *strokeContext) emitLine(p0, p1 geom.Point) {
	t := geom.PointVector(p0, p1)
	if t.Length() <= lengthEpsilon {
		return
	}
	tu := t.Normalize()
	normal := tu.RotateCCW()

	if !sc.started {
		sc.prevPoint = p0
		sc.contourStart = p0
	}
	sc.enter(normal, tu)

	sc.outer.LineTo(p1.Displace(normal.Mul(sc.radius)))
	sc.inner.LineTo(p1.Displace(normal.Mul(-sc.radius)))

	sc.prevPoint = p1
	sc.prevNormal = normal
	sc.prevTangent = tu
}

// emitQuad runs the enter/leave protocol for a quadratic segment (spec
// §4.4 "Quadratic segment").
func (sc *strokeContext) emitQuad(p0, c, p1 geom.Point) {
	inT := geom.PointVector(p0, c)
	if inT.Length() <= lengthEpsilon {
		inT = geom.PointVector(p0, p1)
	}
	if inT.Length() <= lengthEpsilon {
		return
	}
	entryNormal := inT.Normalize().RotateCCW()

	if !sc.started {
		sc.prevPoint = p0
		sc.contourStart = p0
	}
	sc.enter(entryNormal, inT.Normalize())

	sc.offsetQuad(p0, c, p1, 0)
}

func (sc *strokeContext) offsetQuad(p0, c, p1 geom.Point, depth int) {
	inT := geom.PointVector(p0, c)
	outT := geom.PointVector(c, p1)
	if inT.Length() <= lengthEpsilon {
		inT = geom.PointVector(p0, p1)
	}
	if outT.Length() <= lengthEpsilon {
		outT = geom.PointVector(p0, p1)
	}
	inU := inT.Normalize()
	outU := outT.Normalize()
	cosTheta := inU.Dot(outU)

	if cosTheta <= sharpCosine {
		if depth < maxSplit {
			p01 := mid(p0, c)
			pc1 := mid(c, p1)
			pm := mid(p01, pc1)
			sc.offsetQuad(p0, p01, pm, depth+1)
			sc.offsetQuad(pm, pc1, p1, depth+1)
			return
		}

		inNormal := inU.RotateCCW()
		outNormal := outU.RotateCCW()
		sc.outer.LineTo(c.Displace(inNormal.Mul(sc.radius)))
		sc.inner.LineTo(c.Displace(inNormal.Mul(-sc.radius)))
		sc.patchCircle(c)
		sc.outer.LineTo(p1.Displace(outNormal.Mul(sc.radius)))
		sc.inner.LineTo(p1.Displace(outNormal.Mul(-sc.radius)))

		sc.prevPoint = p1
		sc.prevNormal = outNormal
		sc.prevTangent = outU
		return
	}

	inNormal := inU.RotateCCW()
	outNormal := outU.RotateCCW()
	normalMid := offsetDirection(inNormal, outNormal, sc.radius, cosTheta)

	sc.outer.QuadTo(c.Displace(normalMid), p1.Displace(outNormal.Mul(sc.radius)))
	sc.inner.QuadTo(c.Displace(normalMid.Mul(-1)), p1.Displace(outNormal.Mul(-sc.radius)))

	sc.prevPoint = p1
	sc.prevNormal = outNormal
	sc.prevTangent = outU
}

// offsetDirection computes the shared offset-control-point displacement
// used by both the quadratic and cubic smooth cases: direction
// normal_in+normal_out, length radius/√((1+cosθ)/2) (spec §4.4).
func offsetDirection(inNormal, outNormal geom.Vector, radius, cosTheta float64) geom.Vector {
	sum := inNormal.Add(outNormal)
	if sum.Length() <= lengthEpsilon {
		return inNormal.Mul(radius)
	}
	return sum.Normalize().Mul(radius / math.Sqrt((1+cosTheta)/2))
}

// emitCubic runs the enter/leave protocol for a cubic segment (spec §4.4
// "Cubic segment"): analogous to the quadratic case with two interior
// normals and two sharpness checks.
func (sc *strokeContext) emitCubic(p0, c0, c1, p1 geom.Point) {
	inT := firstNonDegenerate(p0, c0, c1, p1)
	if inT.Length() <= lengthEpsilon {
		return
	}
	entryNormal := inT.Normalize().RotateCCW()

	if !sc.started {
		sc.prevPoint = p0
		sc.contourStart = p0
	}
	sc.enter(entryNormal, inT.Normalize())

	sc.offsetCubic(p0, c0, c1, p1, 0)
}

func firstNonDegenerate(p0, c0, c1, p1 geom.Point) geom.Vector {
	if v := geom.PointVector(p0, c0); v.Length() > lengthEpsilon {
		return v
	}
	if v := geom.PointVector(p0, c1); v.Length() > lengthEpsilon {
		return v
	}
	return geom.PointVector(p0, p1)
}

func lastNonDegenerate(p0, c0, c1, p1 geom.Point) geom.Vector {
	if v := geom.PointVector(c1, p1); v.Length() > lengthEpsilon {
		return v
	}
	if v := geom.PointVector(c0, p1); v.Length() > lengthEpsilon {
		return v
	}
	return geom.PointVector(p0, p1)
}

func (sc *strokeContext) offsetCubic(p0, c0, c1, p1 geom.Point, depth int) {
	inT := firstNonDegenerate(p0, c0, c1, p1)
	outT := lastNonDegenerate(p0, c0, c1, p1)
	midT := geom.PointVector(c0, c1)
	if midT.Length() <= lengthEpsilon {
		midT = geom.PointVector(p0, p1)
	}
	inU := inT.Normalize()
	outU := outT.Normalize()
	midU := midT.Normalize()
	cos1 := inU.Dot(midU)
	cos2 := midU.Dot(outU)

	if (cos1 <= sharpCosine || cos2 <= sharpCosine) && depth < maxSplit {
		p01 := mid(p0, c0)
		p12 := mid(c0, c1)
		p23 := mid(c1, p1)
		p012 := mid(p01, p12)
		p123 := mid(p12, p23)
		p0123 := mid(p012, p123)
		sc.offsetCubic(p0, p01, p012, p0123, depth+1)
		sc.offsetCubic(p0123, p123, p23, p1, depth+1)
		return
	}

	if cos1 <= sharpCosine || cos2 <= sharpCosine {
		cusp := mid(c0, c1)
		inNormal := inU.RotateCCW()
		outNormal := outU.RotateCCW()
		sc.outer.LineTo(cusp.Displace(inNormal.Mul(sc.radius)))
		sc.inner.LineTo(cusp.Displace(inNormal.Mul(-sc.radius)))
		sc.patchCircle(cusp)
		sc.outer.LineTo(p1.Displace(outNormal.Mul(sc.radius)))
		sc.inner.LineTo(p1.Displace(outNormal.Mul(-sc.radius)))
		sc.prevPoint = p1
		sc.prevNormal = outNormal
		sc.prevTangent = outU
		return
	}

	inNormal := inU.RotateCCW()
	midNormal := midU.RotateCCW()
	outNormal := outU.RotateCCW()
	off1 := offsetDirection(inNormal, midNormal, sc.radius, cos1)
	off2 := offsetDirection(midNormal, outNormal, sc.radius, cos2)

	sc.outer.CubicTo(c0.Displace(off1), c1.Displace(off2), p1.Displace(outNormal.Mul(sc.radius)))
	sc.inner.CubicTo(c0.Displace(off1.Mul(-1)), c1.Displace(off2.Mul(-1)), p1.Displace(outNormal.Mul(-sc.radius)))

	sc.prevPoint = p1
	sc.prevNormal = outNormal
	sc.prevTangent = outU
}

// finishClosed joins the last corner back to the first, closes outer and
// a standalone, oppositely-wound copy of inner (spec §4.4 "Finish
// contour", closed case): the two loops, filled under NonZero, form the
// doughnut.
func (sc *strokeContext) finishClosed() {
	sc.join(sc.prevNormal, sc.firstNormal)
	sc.outer.LineTo(sc.outer.Points[0])
	sc.outer.Close()
	sc.inner.LineTo(sc.inner.Points[0])
	sc.inner.Close()
	sc.inner = reverseClosedLoop(sc.inner)
}

// finishOpen caps both ends and stitches outer, the reversed inner curve
// and the two caps into one closed contour (spec §4.4 "Finish contour",
// open case).
func (sc *strokeContext) finishOpen() {
	addCap(sc.outer, sc.prevPoint, sc.prevNormal, sc.prevTangent, sc.radius, sc.style.Cap)
	appendReversedInline(sc.outer, sc.inner)
	addCap(sc.outer, sc.contourStart, sc.firstNormal.Mul(-1), sc.firstTangent.Mul(-1), sc.radius, sc.style.Cap)
	sc.outer.Close()
}
