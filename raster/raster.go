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

// Package raster converts a flattened polygon into horizontal pixel spans
// using a classic scanline edge-table algorithm (spec §4.5): build a
// y-bucketed edge table, sweep top to bottom maintaining an active edge
// list sorted by x, and emit merged spans according to a fill rule.
//
// Create one Rasterizer and reuse it across calls; its buffers grow but
// never shrink, so steady-state use allocates nothing.
package raster

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/image/math/fixed"

	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

// SpanFunc receives one horizontal run of covered pixels: columns
// [x0,x1) are inside on every row [y0,y1) (spec §4.5 "span(left_x,
// right_x, y_begin, y_end, user)"). The convex fast path passes
// y1 > y0+1 for rectangle-merged runs spanning several scanlines.
type SpanFunc func(x0, x1, y0, y1 int)

// edgeRec is one entry in the edge pool: spec §4.5's "{winding, next,
// y_bottom, x, slope}" record. next chains edges that start on the same
// scanline (a singly linked list per y-bucket, head-inserted); -1 ends
// the chain.
type edgeRec struct {
	winding int8
	next    int32
	yBottom int32
	x       fixed.Int26_6
	slope   fixed.Int26_6
}

// Rasterizer holds the reusable edge pool, bucket table and active edge
// list for converting polygons to spans. The zero value is not usable;
// use New.
type Rasterizer struct {
	// CTM transforms polygon points from user space to device space
	// before edge construction.
	CTM geom.Matrix

	edges  []edgeRec
	table  []int32 // bucket[i] = head edge index for scanline (top+i), or -1
	active []int32 // indices into edges, kept sorted by (x, slope)
	device []geom.Point
}

// New returns a Rasterizer with an identity CTM.
func New() *Rasterizer {
	return &Rasterizer{CTM: geom.Identity}
}

// Rasterize sweeps poly (already flattened; spec §4.5 operates on the
// Polygon view, not raw path verbs) and invokes span for every covered
// run. poly.Convex selects the two-edge fast path; otherwise every
// contour is swept together under rule.
func (r *Rasterizer) Rasterize(poly path.Polygon, rule paint.FillRule, span SpanFunc) {
	if len(poly.Points) == 0 {
		return
	}
	top, bottom, ok := r.build(poly)
	if !ok {
		return
	}
	if poly.Convex {
		r.sweepConvex(top, bottom, span)
	} else {
		r.sweepConcave(top, bottom, rule, span)
	}
}

// build transforms poly's points to device space and constructs the edge
// pool and bucket table. It returns the scanline range [top,bottom) and
// false if the polygon contributes no non-horizontal edges.
func (r *Rasterizer) build(poly path.Polygon) (top, bottom int, ok bool) {
	r.device = slices.Grow(r.device[:0], len(poly.Points))[:len(poly.Points)]
	for i, p := range poly.Points {
		r.device[i] = r.CTM.Apply(p)
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range r.device {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsInf(minY, 1) {
		return 0, 0, false
	}
	top = int(math.Floor(minY))
	bottom = int(math.Ceil(maxY))
	if bottom <= top {
		return 0, 0, false
	}

	nrows := bottom - top
	r.table = slices.Grow(r.table[:0], nrows)[:nrows]
	for i := range r.table {
		r.table[i] = -1
	}
	r.edges = r.edges[:0]

	i := 0
	any := false
	for _, n := range poly.Counts {
		if n == 0 {
			break
		}
		contour := r.device[i : i+n]
		if r.addContourEdges(contour, top) {
			any = true
		}
		i += n
	}

	return top, bottom, any
}

// addContourEdges adds every edge of one closed contour, including the
// implicit closing edge back to the first point.
func (r *Rasterizer) addContourEdges(contour []geom.Point, top int) bool {
	n := len(contour)
	any := false
	for i := 0; i < n; i++ {
		a := contour[i]
		b := contour[(i+1)%n]
		if r.addEdge(a, b, top) {
			any = true
		}
	}
	return any
}

// addEdge constructs one edge record per spec §4.5's "Construction"
// steps: round endpoints to integer y, skip horizontal edges, orient
// top-to-bottom recording winding, compute slope, and seed x at the
// first scanline's center.
func (r *Rasterizer) addEdge(a, b geom.Point, top int) bool {
	iyb := roundHalfUp(a.Y)
	iye := roundHalfUp(b.Y)
	if iyb == iye {
		return false
	}

	winding := int8(1)
	xb, yb := a.X, a.Y
	xe, ye := b.X, b.Y
	if iyb > iye {
		winding = -1
		iyb, iye = iye, iyb
		xb, xe = xe, xb
		yb, ye = ye, yb
	}

	slope := (xe - xb) / (ye - yb)
	x := xb + slope*(float64(iyb)+0.5-yb)

	idx := int32(len(r.edges))
	bucket := iyb - top
	r.edges = append(r.edges, edgeRec{
		winding: winding,
		next:    r.table[bucket],
		yBottom: int32(iye),
		x:       toFixed(x),
		slope:   toFixed(slope),
	})
	r.table[bucket] = idx
	return true
}

// sweepConcave implements spec §4.5's general scanline loop: merge new
// edges, walk the active list maintaining a running winding sum, emit
// spans for inside pairs (merging conjoined runs), then advance and drop
// expired edges.
func (r *Rasterizer) sweepConcave(top, bottom int, rule paint.FillRule, span SpanFunc) {
	r.active = r.active[:0]

	for y := top; y < bottom; y++ {
		for e := r.table[y-top]; e != -1; e = r.edges[e].next {
			insertSorted(&r.active, r.edges, e)
		}

		if len(r.active) >= 2 {
			emitRow(r.active, r.edges, rule, y, span)
		}

		r.advanceAndDrop(y)
	}
}

// emitRow walks one scanline's sorted active edges, accumulating winding
// and emitting merged spans for the runs the fill rule calls "inside".
func emitRow(active []int32, edges []edgeRec, rule paint.FillRule, y int, span SpanFunc) {
	winding := 0
	var pendingOpen bool
	var pendingX0, pendingX1 int

	flush := func() {
		if pendingOpen {
			span(pendingX0, pendingX1, y, y+1)
			pendingOpen = false
		}
	}

	for i := 0; i < len(active)-1; i++ {
		winding += int(edges[active[i]].winding)

		var inside bool
		if rule == paint.Odd {
			inside = winding&1 != 0
		} else {
			inside = winding != 0
		}
		if !inside {
			flush()
			continue
		}

		x0 := roundHalfUpFixed(edges[active[i]].x)
		x1 := roundHalfUpFixed(edges[active[i+1]].x)
		if x1 <= x0 {
			continue
		}
		if pendingOpen && x0 == pendingX1 {
			pendingX1 = x1
		} else {
			flush()
			pendingX0, pendingX1 = x0, x1
			pendingOpen = true
		}
	}
	flush()
}

// sweepConvex implements spec §4.5's convex fast path: the active list
// holds exactly two edges (barring a transient vertex row), kept in
// ascending x; identical integer spans on consecutive rows are merged
// into one multi-row run.
func (r *Rasterizer) sweepConvex(top, bottom int, span SpanFunc) {
	r.active = r.active[:0]

	var pendingOpen bool
	var pendingX0, pendingX1, pendingY0, pendingY1 int

	flush := func() {
		if pendingOpen {
			span(pendingX0, pendingX1, pendingY0, pendingY1)
			pendingOpen = false
		}
	}

	for y := top; y < bottom; y++ {
		for e := r.table[y-top]; e != -1; e = r.edges[e].next {
			insertSorted(&r.active, r.edges, e)
		}

		if len(r.active) >= 2 {
			x0 := roundHalfUpFixed(r.edges[r.active[0]].x)
			x1 := roundHalfUpFixed(r.edges[r.active[len(r.active)-1]].x)
			if x1 > x0 {
				if pendingOpen && x0 == pendingX0 && x1 == pendingX1 && y == pendingY1 {
					pendingY1 = y + 1
				} else {
					flush()
					pendingX0, pendingX1 = x0, x1
					pendingY0, pendingY1 = y, y+1
					pendingOpen = true
				}
			} else {
				flush()
			}
		} else {
			flush()
		}

		r.advanceAndDrop(y)
	}
	flush()
}

// advanceAndDrop steps every active edge's x by its slope, removes edges
// that don't extend into row y+1, and re-sorts the active list if that
// step changed any edge's x order relative to its neighbor (spec §4.5
// step 4: "If any edge's x decreased relative to its neighbor, mark
// order = 0 so the next y re-sorts"). Two edges with differing slopes
// can cross partway down a scanline range — a concave or self-
// intersecting contour (spec's "Concave C" scenario) — so the list
// cannot be assumed to stay sorted from insertion alone.
func (r *Rasterizer) advanceAndDrop(y int) {
	w := 0
	reorder := false
	for _, idx := range r.active {
		e := &r.edges[idx]
		e.x += e.slope
		if int(e.yBottom) > y+1 {
			if w > 0 && edgeLess(r.edges[idx], r.edges[r.active[w-1]]) {
				reorder = true
			}
			r.active[w] = idx
			w++
		}
	}
	r.active = r.active[:w]
	if reorder {
		slices.SortFunc(r.active, func(a, b int32) int {
			return cmp.Or(cmp.Compare(r.edges[a].x, r.edges[b].x), cmp.Compare(r.edges[a].slope, r.edges[b].slope))
		})
	}
}

// edgeLess reports whether a sorts strictly before b under the active
// list's (x, slope) key.
func edgeLess(a, b edgeRec) bool {
	return cmp.Or(cmp.Compare(a.x, b.x), cmp.Compare(a.slope, b.slope)) < 0
}

// insertSorted inserts edge index e into active, which is kept sorted by
// (x, slope) — the sort key spec §4.5 names for the active edge list.
func insertSorted(active *[]int32, edges []edgeRec, e int32) {
	x, sl := edges[e].x, edges[e].slope
	*active = append(*active, e)
	i := len(*active) - 1
	for i > 0 {
		prev := (*active)[i-1]
		if cmp.Or(cmp.Compare(edges[prev].x, x), cmp.Compare(edges[prev].slope, sl)) <= 0 {
			break
		}
		(*active)[i] = prev
		i--
	}
	(*active)[i] = e
}

func roundHalfUp(y float64) int {
	return int(math.Floor(y + 0.5))
}

func roundHalfUpFixed(x fixed.Int26_6) int {
	return roundHalfUp(fixedToFloat(x))
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func fixedToFloat(f fixed.Int26_6) float64 {
	return float64(f) / 64
}
