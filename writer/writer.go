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

// Package writer binds a paint.Paint to a Bitmap via the matching pixmap
// table and exposes the four primitives every higher layer draws through
// (spec §4.6): DrawPixel, DrawHLine, DrawVLine, DrawRect. Every call
// reduces to one pointer into Bitmap.Pix plus one pixmap WritePixel/FillRun
// call; no other package touches raw pixel bytes.
package writer

import (
	"lanox.dev/raster/paint"
	"lanox.dev/raster/pixmap"
)

// Bitmap is an externally allocated pixel surface (spec §6 "Bitmap
// surface"): Pix holds RowBytes*Height bytes, addressed row-major from the
// top. RowBytes must be at least Width*bytes-per-pixel for the table's
// format; no further alignment is required.
type Bitmap struct {
	Width, Height int
	RowBytes      int
	Format        pixmap.Format
	Order         pixmap.ByteOrder
	Pix           []byte
}

// Writer draws one paint's color onto one bitmap. Construct a new Writer
// whenever the paint's color or alpha changes; a Writer holds no state
// derived from the geometry being drawn.
type Writer struct {
	bmp   *Bitmap
	table pixmap.Pixmap
	pixel uint32
	alpha uint8
	blend bool
}

// New binds p to bmp, looking up the pixmap table for bmp's format and
// byte order. It fails with pixmap.ErrUnknownFormat if no table is
// registered for that combination (spec §7).
func New(bmp *Bitmap, p paint.Paint) (*Writer, error) {
	table, err := pixmap.MustLookup(bmp.Format, bmp.Order)
	if err != nil {
		return nil, err
	}
	return &Writer{
		bmp:   bmp,
		table: table,
		pixel: table.ColorToPixel(p.Color),
		alpha: p.Alpha,
		blend: p.Alpha != 0xff,
	}, nil
}

func (w *Writer) offset(x, y int) int {
	return y*w.bmp.RowBytes + x*w.table.BytesPerPixel
}

// DrawPixel sets the single pixel at (x, y).
func (w *Writer) DrawPixel(x, y int) {
	bpp := w.table.BytesPerPixel
	o := w.offset(x, y)
	data := w.bmp.Pix[o : o+bpp]
	if w.blend {
		w.table.WritePixelBlend(data, w.pixel, w.alpha)
	} else {
		w.table.WritePixelOpaque(data, w.pixel)
	}
}

// DrawHLine fills the half-open run [x0, x1) on row y.
func (w *Writer) DrawHLine(x0, x1, y int) {
	if x1 <= x0 {
		return
	}
	bpp := w.table.BytesPerPixel
	n := x1 - x0
	o := w.offset(x0, y)
	data := w.bmp.Pix[o : o+n*bpp]
	if w.blend {
		w.table.FillRunBlend(data, w.pixel, n, w.alpha)
	} else {
		w.table.FillRunOpaque(data, w.pixel, n)
	}
}

// DrawVLine fills the half-open run [y0, y1) on column x.
func (w *Writer) DrawVLine(x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		w.DrawPixel(x, y)
	}
}

// DrawRect fills the half-open rectangle [x0,x1) x [y0,y1). When the rect
// spans the bitmap's full row width at its natural stride (row_bytes ==
// width*bpp), the whole rectangle is one contiguous run of bytes and is
// filled with a single pixmap FillRun call instead of one call per row
// (spec §4.6 "draw_rect detects width·bytes_per_pixel == row_bytes and
// degenerates to a single run").
func (w *Writer) DrawRect(x0, y0, x1, y1 int) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	bpp := w.table.BytesPerPixel
	if x0 == 0 && x1 == w.bmp.Width && w.bmp.RowBytes == w.bmp.Width*bpp {
		n := (x1 - x0) * (y1 - y0)
		o := w.offset(0, y0)
		data := w.bmp.Pix[o : o+n*bpp]
		if w.blend {
			w.table.FillRunBlend(data, w.pixel, n, w.alpha)
		} else {
			w.table.FillRunOpaque(data, w.pixel, n)
		}
		return
	}
	for y := y0; y < y1; y++ {
		w.DrawHLine(x0, x1, y)
	}
}

// Span fills the rectangle described by one rasterizer span: columns
// [x0,x1) on every row [y0,y1). It has the shape of raster.SpanFunc, so a
// Writer's Span method can be passed directly as the rasterizer's output
// callback (spec §4.7 "draw_path" fill/stroke dispatch).
func (w *Writer) Span(x0, x1, y0, y1 int) {
	w.DrawRect(x0, y0, x1, y1)
}
