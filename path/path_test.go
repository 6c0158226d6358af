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
	"testing"

	"lanox.dev/raster/geom"
)

func rectPath(x, y, w, h float64) *Data {
	d := New()
	d.MoveTo(geom.Point{X: x, Y: y})
	d.LineTo(geom.Point{X: x + w, Y: y})
	d.LineTo(geom.Point{X: x + w, Y: y + h})
	d.LineTo(geom.Point{X: x, Y: y + h})
	d.Close()
	return d
}

func TestHintRect(t *testing.T) {
	d := rectPath(0, 0, 10, 5)
	h := d.Hint()
	if h.Kind != ShapeRect {
		t.Fatalf("Hint: got %v, want ShapeRect", h.Kind)
	}
	if h.Rect != (geom.Rect{X: 0, Y: 0, W: 10, H: 5}) {
		t.Fatalf("Hint.Rect: got %v", h.Rect)
	}
}

func TestHintRectStrict(t *testing.T) {
	// A "rect" whose last edge is diagonal (not axis-aligned) must not be
	// recognized, per the strict alternating-edge rule (spec §9 open
	// question).
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 10, Y: 0})
	d.LineTo(geom.Point{X: 10, Y: 5})
	d.LineTo(geom.Point{X: 1, Y: 5}) // not aligned with (0,0)
	d.Close()
	if d.Hint().Kind == ShapeRect {
		t.Fatalf("Hint: non-axis-aligned quad should not be recognized as Rect")
	}
}

func TestHintLine(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 3, Y: 4})
	if got := d.Hint().Kind; got != ShapeLine {
		t.Fatalf("Hint: got %v, want ShapeLine", got)
	}
}

func TestHintPoint(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 1, Y: 2})
	if got := d.Hint().Kind; got != ShapePoint {
		t.Fatalf("Hint: got %v, want ShapePoint", got)
	}
}

func TestHintTriangle(t *testing.T) {
	d := New()
	d.AddTriangle(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 1}, geom.Point{X: 2, Y: 7}, CW)
	if got := d.Hint().Kind; got != ShapeTriangle {
		t.Fatalf("Hint: got %v, want ShapeTriangle", got)
	}
}

func TestConsecutiveMovesCollapse(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.MoveTo(geom.Point{X: 1, Y: 1})
	if len(d.Verbs) != 1 || len(d.Points) != 1 {
		t.Fatalf("consecutive moves should collapse: verbs=%v points=%v", d.Verbs, d.Points)
	}
	if d.Points[0] != (geom.Point{X: 1, Y: 1}) {
		t.Fatalf("collapsed move should keep the latest target")
	}
}

func TestImplicitMoveAfterClose(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 1, Y: 0})
	d.Close()
	d.LineTo(geom.Point{X: 1, Y: 1}) // should re-emit Move at (0,0) first

	if len(d.Verbs) != 5 {
		t.Fatalf("expected 5 verbs (move,line,close,move,line), got %d: %v", len(d.Verbs), d.Verbs)
	}
	if d.Verbs[3] != VerbMove {
		t.Fatalf("expected implicit Move after Close, got %v", d.Verbs[3])
	}
}

func TestCloseAtMostOncePerContour(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 1, Y: 0})
	d.Close()
	n := len(d.Verbs)
	d.Close() // no-op: no open contour
	if len(d.Verbs) != n {
		t.Fatalf("second Close should be a no-op")
	}
}

func TestPolygonTerminatesWithZero(t *testing.T) {
	d := rectPath(0, 0, 10, 5)
	poly := d.Polygon()
	if len(poly.Counts) == 0 || poly.Counts[len(poly.Counts)-1] != 0 {
		t.Fatalf("Polygon.Counts must end with a 0 sentinel, got %v", poly.Counts)
	}
	sum := 0
	for _, c := range poly.Counts {
		sum += c
	}
	if sum != len(poly.Points) {
		t.Fatalf("sum(Counts)=%d != len(Points)=%d", sum, len(poly.Points))
	}
}

func TestBoundsContainsPolygon(t *testing.T) {
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.QuadTo(geom.Point{X: 5, Y: 10}, geom.Point{X: 10, Y: 0})
	d.Close()

	b := d.Bounds()
	for _, p := range d.Polygon().Points {
		if !b.Contains(p) {
			t.Fatalf("bounds %v does not contain flattened point %v", b, p)
		}
	}
}

func TestApplyTransformsBounds(t *testing.T) {
	d := rectPath(0, 0, 10, 5)
	want := d.Bounds().Apply(geom.Translate(3, 4))
	d.Apply(geom.Translate(3, 4))
	if got := d.Bounds(); got != want {
		t.Fatalf("Apply then Bounds: got %v, want %v", got, want)
	}
}

func TestConvexRect(t *testing.T) {
	d := rectPath(0, 0, 10, 5)
	if !d.Convex() {
		t.Fatalf("rect should be convex")
	}
}

func TestConvexConcaveC(t *testing.T) {
	// A concave pentagon with one reflex vertex.
	d := New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 10, Y: 0})
	d.LineTo(geom.Point{X: 10, Y: 10})
	d.LineTo(geom.Point{X: 5, Y: 5}) // reflex vertex
	d.LineTo(geom.Point{X: 0, Y: 10})
	d.Close()
	if d.Convex() {
		t.Fatalf("staircase shape should not be convex")
	}
}

func TestCircleHintAndConvex(t *testing.T) {
	d := New()
	d.AddCircle(geom.Point{X: 5, Y: 5}, 3, CW)
	if d.Hint().Kind != ShapeCircle {
		t.Fatalf("expected ShapeCircle hint, got %v", d.Hint().Kind)
	}
	if !d.Convex() {
		t.Fatalf("circle should be convex")
	}
	b := d.Bounds()
	want := geom.Rect{X: 2, Y: 2, W: 6, H: 6}
	if math.Abs(b.X-want.X) > 1e-9 || math.Abs(b.W-want.W) > 1e-9 {
		t.Fatalf("circle bounds: got %v, want %v", b, want)
	}
}

func TestDegenerateCubicProducesNoPolygon(t *testing.T) {
	d := New()
	p := geom.Point{X: 3, Y: 3}
	d.MoveTo(p)
	d.CubicTo(p, p, p)
	poly := d.Polygon()
	// every flattened vertex should coincide with p
	for _, v := range poly.Points {
		if v != p {
			t.Fatalf("degenerate cubic should flatten to a single point, got %v", v)
		}
	}
}
