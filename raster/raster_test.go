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

package raster

import (
	"testing"

	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

type span struct{ x0, x1, y0, y1 int }

func collect(r *Rasterizer, poly path.Polygon, rule paint.FillRule) []span {
	var out []span
	r.Rasterize(poly, rule, func(x0, x1, y0, y1 int) {
		out = append(out, span{x0, x1, y0, y1})
	})
	return out
}

func area(spans []span) int {
	n := 0
	for _, s := range spans {
		n += (s.x1 - s.x0) * (s.y1 - s.y0)
	}
	return n
}

// grid rasterizes a bounded area into a bool covered[y][x] grid for
// hole/coverage assertions.
func grid(spans []span, w, h int) [][]bool {
	g := make([][]bool, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	for _, s := range spans {
		for y := s.y0; y < s.y1; y++ {
			for x := s.x0; x < s.x1; x++ {
				if y >= 0 && y < h && x >= 0 && x < w {
					g[y][x] = true
				}
			}
		}
	}
	return g
}

func TestAxisRectFillExactly50Pixels(t *testing.T) {
	d := path.New()
	d.AddRect(geom.Rect{X: 0, Y: 0, W: 10, H: 5}, path.CW)
	poly := d.Polygon()
	if !poly.Convex {
		t.Fatalf("axis rect polygon should be flagged convex")
	}

	r := New()
	spans := collect(r, poly, paint.NonZero)
	if got := area(spans); got != 50 {
		t.Fatalf("area: got %d, want 50", got)
	}
	if len(spans) != 1 {
		t.Fatalf("expected the convex fast path to merge the whole rect into one span, got %d spans: %v", len(spans), spans)
	}
	want := span{0, 10, 0, 5}
	if spans[0] != want {
		t.Fatalf("span: got %+v, want %+v", spans[0], want)
	}
}

func TestConvexSingleSpanPerRow(t *testing.T) {
	d := path.New()
	d.AddCircle(geom.Point{X: 10, Y: 10}, 8, path.CW)
	poly := d.Polygon()
	if !poly.Convex {
		t.Fatalf("circle polygon should be flagged convex")
	}

	r := New()
	spans := collect(r, poly, paint.NonZero)
	rowCount := map[int]int{}
	for _, s := range spans {
		for y := s.y0; y < s.y1; y++ {
			rowCount[y]++
		}
	}
	for y, n := range rowCount {
		if n != 1 {
			t.Fatalf("row %d: got %d spans, want at most 1 for convex input", y, n)
		}
	}
}

func twoSquares(outerDir, innerDir path.Direction) path.Polygon {
	d := path.New()
	d.AddRect(geom.Rect{X: 0, Y: 0, W: 20, H: 20}, outerDir)
	d.AddRect(geom.Rect{X: 5, Y: 5, W: 10, H: 10}, innerDir)
	return d.Polygon()
}

func TestDonutOddRuleLeavesHole(t *testing.T) {
	poly := twoSquares(path.CW, path.CW)
	r := New()
	spans := collect(r, poly, paint.Odd)
	g := grid(spans, 20, 20)
	if g[10][10] {
		t.Fatalf("Odd rule: center of the donut should be empty")
	}
	if !g[1][1] {
		t.Fatalf("Odd rule: outer ring should be filled")
	}
}

func TestDonutNonZeroOppositeWindingLeavesHole(t *testing.T) {
	poly := twoSquares(path.CW, path.CCW)
	r := New()
	spans := collect(r, poly, paint.NonZero)
	g := grid(spans, 20, 20)
	if g[10][10] {
		t.Fatalf("NonZero with opposing winding: center should be empty")
	}
	if !g[1][1] {
		t.Fatalf("NonZero with opposing winding: outer ring should be filled")
	}
}

func TestDonutNonZeroSameWindingFillsHole(t *testing.T) {
	poly := twoSquares(path.CW, path.CW)
	r := New()
	spans := collect(r, poly, paint.NonZero)
	g := grid(spans, 20, 20)
	if !g[10][10] {
		t.Fatalf("NonZero with same winding on both squares: center should be filled (no hole)")
	}
}

func TestSpansWithinRowAreOrderedAndNonOverlapping(t *testing.T) {
	poly := twoSquares(path.CW, path.CCW)
	r := New()
	spans := collect(r, poly, paint.Odd)

	byRow := map[int][]span{}
	for _, s := range spans {
		for y := s.y0; y < s.y1; y++ {
			byRow[y] = append(byRow[y], span{s.x0, s.x1, y, y + 1})
		}
	}
	for y, row := range byRow {
		for i, s := range row {
			if s.x1 <= s.x0 {
				t.Fatalf("row %d: span %+v has x1<=x0", y, s)
			}
			if i > 0 && row[i-1].x1 > s.x0 {
				t.Fatalf("row %d: spans not in ascending, non-overlapping order: %+v then %+v", y, row[i-1], s)
			}
		}
	}
}

// TestSelfIntersectingBowtieReordersActiveEdges covers spec §4.5 step 4's
// active-edge re-sort requirement: a single contour with two non-parallel
// edges (here AB and CD of an hourglass/bowtie quad) that cross partway
// down the scanline range. Below the crossing row AB sorts left of CD;
// above it, CD sorts left of AB. If the active list isn't re-sorted after
// advanceAndDrop, emitRow pairs the wrong neighbors right at the crossing
// row and spuriously fills the gap between the bowtie's two wings.
func TestSelfIntersectingBowtieReordersActiveEdges(t *testing.T) {
	d := path.New()
	d.MoveTo(geom.Point{X: 0, Y: 0})
	d.LineTo(geom.Point{X: 10, Y: 10})
	d.LineTo(geom.Point{X: 10, Y: 0})
	d.LineTo(geom.Point{X: 0, Y: 10})
	d.Close()

	if d.Convex() {
		t.Fatalf("a self-intersecting bowtie must not be classified convex")
	}

	r := New()
	spans := collect(r, d.Polygon(), paint.NonZero)
	g := grid(spans, 10, 10)

	// Rows away from the crossing: two narrow wings near the left/right
	// edges, with open ground between them.
	for _, y := range []int{3, 6} {
		if !g[y][1] {
			t.Fatalf("row %d: left wing (x=1) should be filled", y)
		}
		if !g[y][8] {
			t.Fatalf("row %d: right wing (x=8) should be filled", y)
		}
		if g[y][4] || g[y][5] {
			t.Fatalf("row %d: gap between the wings (x=4,5) should be empty", y)
		}
	}

	// The crossing row itself (where AB and CD swap relative x order):
	// the gap must still be empty, not spuriously filled by a stale,
	// unsorted active list.
	if g[5][5] {
		t.Fatalf("row 5 (the crossing row): gap at x=5 was wrongly filled — active list was not re-sorted after the edges crossed")
	}
}
