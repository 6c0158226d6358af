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

// Package device is a small virtual dispatcher over a drawing backend
// (spec §4.7): resize, draw_clear, draw_lines, draw_points, draw_polygon,
// draw_path, exit. Only the Bitmap variant is implemented by this core;
// OpenGL and Vulkan are named in the spec as sibling variants but carry no
// operations here.
package device

import (
	"math"

	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
	"lanox.dev/raster/pixmap"
	"lanox.dev/raster/raster"
	"lanox.dev/raster/stroke"
	"lanox.dev/raster/writer"
)

// Kind tags which backend a Device dispatches to.
type Kind int

const (
	KindBitmap Kind = iota
	KindOpenGL
	KindVulkan
)

// Device draws paths, lines, points and polygons into a backing surface
// under a single user-to-device transform. A Device is not safe for
// concurrent use; spec §5 gives each device/canvas/path trio to exactly
// one logical drawing thread.
type Device struct {
	kind Kind

	bmp *writer.Bitmap
	ctm geom.Matrix

	rast *raster.Rasterizer
}

// NewBitmap returns a Bitmap-backed Device drawing into bmp. bmp is owned
// externally; the Device never reallocates it except via Resize.
func NewBitmap(bmp *writer.Bitmap) *Device {
	return &Device{
		kind: KindBitmap,
		bmp:  bmp,
		ctm:  geom.Identity,
		rast: raster.New(),
	}
}

// Kind reports which backend this Device dispatches to.
func (d *Device) Kind() Kind { return d.kind }

// SetMatrix installs the current user-to-device transform, used both by
// the rasterizer (fill/stroke-and-fill paths) and by the direct-pixel
// fast paths (stroke-only line/point/polygon drawing).
func (d *Device) SetMatrix(m geom.Matrix) {
	d.ctm = m
	d.rast.CTM = m
}

// Resize reallocates the backing bitmap for a new pixel size, preserving
// its format and byte order (spec §4.7 "resize").
func (d *Device) Resize(width, height int) {
	bpp := 4
	if table, ok := pixmap.Lookup(d.bmp.Format, d.bmp.Order); ok {
		bpp = table.BytesPerPixel
	}
	d.bmp.Width = width
	d.bmp.Height = height
	d.bmp.RowBytes = width * bpp
	d.bmp.Pix = make([]byte, d.bmp.RowBytes*height)
}

// DrawClear fills the entire bitmap with c (spec §4.7 "draw_clear").
func (d *Device) DrawClear(c geom.Color) error {
	p := paint.New()
	p.Color = c
	w, err := writer.New(d.bmp, p)
	if err != nil {
		return err
	}
	w.DrawRect(0, 0, d.bmp.Width, d.bmp.Height)
	return nil
}

// Exit releases the device's resources (spec §4.7 "exit"). Go's garbage
// collector would reclaim these on its own; Exit exists to mirror the
// original's explicit device-lifetime boundary, and makes a draw call
// issued after Exit panic immediately rather than silently do nothing.
func (d *Device) Exit() {
	d.bmp = nil
	d.rast = nil
}

func (d *Device) strokeEnabled(p paint.Paint) bool {
	return (p.Mode == paint.Stroke || p.Mode == paint.FillStroke) && p.Stroke.Width > 0
}

// strokeOnly reports whether the stroke-width==1/unit-scale fast path
// applies (spec §4.7 "Stroke, width==1 and matrix has unit scale").
func (d *Device) strokeOnly(p paint.Paint) bool {
	return p.Stroke.Width == 1 && d.ctm.IsUnitScale()
}

func (d *Device) toDevice(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, pt := range points {
		out[i] = d.ctm.Apply(pt)
	}
	return out
}

// strokeFillPath runs the general stroker on dPath and rasterizes the
// result under NonZero, since the stroker's output is inherently
// non-self-intersecting per contour (spec §4.7).
func (d *Device) strokeFillPath(dPath *path.Data, p paint.Paint) error {
	outline := stroke.Stroke(dPath, p.Stroke)
	w, err := writer.New(d.bmp, p)
	if err != nil {
		return err
	}
	d.rast.Rasterize(outline.Polygon(), paint.NonZero, w.Span)
	return nil
}

// strokePolygonDirect draws every contour of poly as a sequence of 1px
// device-space lines, explicitly closing back to each contour's first
// vertex. It is the stroke-width==1/unit-scale fast path for
// DrawPolygon/DrawPath.
func (d *Device) strokePolygonDirect(w *writer.Writer, poly path.Polygon) {
	for _, c := range poly.Contours() {
		if len(c) < 2 {
			continue
		}
		dev := d.toDevice(c)
		for i := 0; i+1 < len(dev); i++ {
			drawLinePixels(w, dev[i], dev[i+1])
		}
		if dev[0] != dev[len(dev)-1] {
			drawLinePixels(w, dev[len(dev)-1], dev[0])
		}
	}
}

// DrawLines strokes each disjoint segment points[2i]->points[2i+1]
// (spec §4.7 "draw_lines"); len(points) should be even, trailing odd
// points are ignored.
func (d *Device) DrawLines(points []geom.Point, p paint.Paint) error {
	if !d.strokeEnabled(p) {
		return nil
	}

	if d.strokeOnly(p) {
		w, err := writer.New(d.bmp, p)
		if err != nil {
			return err
		}
		dev := d.toDevice(points)
		for i := 0; i+1 < len(dev); i += 2 {
			drawLinePixels(w, dev[i], dev[i+1])
		}
		return nil
	}

	poly := path.New()
	for i := 0; i+1 < len(points); i += 2 {
		poly.MoveTo(points[i])
		poly.LineTo(points[i+1])
	}
	return d.strokeFillPath(poly, p)
}

// DrawPoints draws each point as a capped dot (spec §4.7 "draw_points").
// Each point is stroked as its own single-point path rather than batched
// into one multi-contour path: a bare Move with no following segment has
// no offset geometry for the general stroker to walk, so only path.Data's
// single-point Hint shortcut (stroke.strokePointShortcut) knows how to
// turn it into cap geometry, and that hint is only recognized on a path
// holding exactly one Move and nothing else.
func (d *Device) DrawPoints(points []geom.Point, p paint.Paint) error {
	if !d.strokeEnabled(p) {
		return nil
	}

	if d.strokeOnly(p) {
		w, err := writer.New(d.bmp, p)
		if err != nil {
			return err
		}
		for _, pt := range d.toDevice(points) {
			w.DrawPixel(int(math.Round(pt.X)), int(math.Round(pt.Y)))
		}
		return nil
	}

	combined := path.New()
	for _, pt := range points {
		one := path.New()
		one.MoveTo(pt)
		appendPath(combined, stroke.Stroke(one, p.Stroke))
	}
	w, err := writer.New(d.bmp, p)
	if err != nil {
		return err
	}
	d.rast.Rasterize(combined.Polygon(), paint.NonZero, w.Span)
	return nil
}

// DrawPolygon draws an already-flattened polygon plus its recognized hint
// (spec §4.7 "draw_polygon"). A Line or Point hint always redirects to
// DrawLines/DrawPoints: a degenerate polygon has no fillable area, so it
// is only ever meaningful as a stroke, regardless of the paint's mode.
func (d *Device) DrawPolygon(poly path.Polygon, hint path.Shape, p paint.Paint) error {
	if hint.Kind == path.ShapeLine {
		return d.DrawLines(hint.Line[:], p)
	}
	if hint.Kind == path.ShapePoint {
		return d.DrawPoints([]geom.Point{hint.Point}, p)
	}

	if p.Mode == paint.Fill || p.Mode == paint.FillStroke {
		w, err := writer.New(d.bmp, p)
		if err != nil {
			return err
		}
		d.rast.Rasterize(poly, p.Rule, w.Span)
	}

	if d.strokeEnabled(p) {
		if d.strokeOnly(p) {
			w, err := writer.New(d.bmp, p)
			if err != nil {
				return err
			}
			d.strokePolygonDirect(w, poly)
		} else if err := d.strokeFillPath(polygonToPath(poly), p); err != nil {
			return err
		}
	}
	return nil
}

// DrawPath draws a path directly (spec §4.7 "draw_path"), dispatching by
// paint mode: Fill rasterizes the path's polygon; Stroke with width==1 and
// a unit-scale matrix draws the polygon's edges directly; Stroke
// otherwise runs the general stroker and rasterizes its output under
// NonZero.
func (d *Device) DrawPath(dPath *path.Data, p paint.Paint) error {
	if p.Mode == paint.Fill || p.Mode == paint.FillStroke {
		w, err := writer.New(d.bmp, p)
		if err != nil {
			return err
		}
		d.rast.Rasterize(dPath.Polygon(), p.Rule, w.Span)
	}

	if d.strokeEnabled(p) {
		if d.strokeOnly(p) {
			w, err := writer.New(d.bmp, p)
			if err != nil {
				return err
			}
			d.strokePolygonDirect(w, dPath.Polygon())
		} else if err := d.strokeFillPath(dPath, p); err != nil {
			return err
		}
	}
	return nil
}

// polygonToPath rebuilds a path.Data from an already-flattened Polygon, so
// the general stroker (which walks verbs, not flat points) can run over
// geometry that only ever existed as a Polygon value.
func polygonToPath(poly path.Polygon) *path.Data {
	out := path.New()
	for _, c := range poly.Contours() {
		if len(c) == 0 {
			continue
		}
		out.MoveTo(c[0])
		for _, pt := range c[1:] {
			out.LineTo(pt)
		}
		out.Close()
	}
	return out
}

// appendPath replays every verb of src onto dst verbatim, preserving src's
// own Move/Close boundaries (mirrors stroke's unexported appendAllContours;
// path.Data's Verbs/Points are public precisely so callers outside the
// path package can walk and rebuild them this way).
func appendPath(dst, src *path.Data) {
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

// drawLinePixels draws a 1px-wide line from a to b in device-space
// coordinates using Bresenham's algorithm, writing each pixel directly
// through w. Grounded on the original's stroke_points (one writer.DrawPixel
// call per point; device/bitmap/renderer/points.c) extended to line
// segments — the original's own lines.c was not present in the retrieved
// source pack, so this is Bresenham's standard integer algorithm rather
// than a literal port.
func drawLinePixels(w *writer.Writer, a, b geom.Point) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, -1
	if x0 > x1 {
		sx = -1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		w.DrawPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
