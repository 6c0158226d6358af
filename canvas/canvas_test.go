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

package canvas

import (
	"testing"

	"lanox.dev/raster/device"
	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/pixmap"
	"lanox.dev/raster/writer"
)

func newCanvas(w, h int) (*Canvas, *writer.Bitmap) {
	bmp := &writer.Bitmap{
		Width: w, Height: h,
		RowBytes: w * 4,
		Format:   pixmap.FormatARGB32,
		Order:    pixmap.LittleEndian,
		Pix:      make([]byte, w*h*4),
	}
	return New(device.NewBitmap(bmp)), bmp
}

func readPixel(t *testing.T, bmp *writer.Bitmap, x, y int) geom.Color {
	t.Helper()
	table, ok := pixmap.Lookup(bmp.Format, bmp.Order)
	if !ok {
		t.Fatalf("no pixmap table registered")
	}
	o := y*bmp.RowBytes + x*table.BytesPerPixel
	return table.PixelToColor(table.ReadPixel(bmp.Pix[o : o+table.BytesPerPixel]))
}

func TestNewHasDefaultState(t *testing.T) {
	c, _ := newCanvas(4, 4)
	if !c.Path().Empty() {
		t.Fatalf("new canvas should start with an empty path")
	}
	if c.Matrix() != geom.Identity {
		t.Fatalf("new canvas should start with the identity matrix")
	}
	if c.Paint().Mode != paint.Fill {
		t.Fatalf("new canvas should start with the default (Fill) paint mode")
	}
}

func TestFillUsesCurrentPaintAndPath(t *testing.T) {
	c, bmp := newCanvas(20, 20)
	c.Paint().Color = geom.Color{R: 9, G: 9, B: 9, A: 255}

	c.MoveTo(geom.Point{X: 2, Y: 2})
	c.LineTo(geom.Point{X: 8, Y: 2})
	c.LineTo(geom.Point{X: 8, Y: 6})
	c.LineTo(geom.Point{X: 2, Y: 6})
	c.Close()

	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := readPixel(t, bmp, 4, 4); got != (geom.Color{R: 9, G: 9, B: 9, A: 255}) {
		t.Fatalf("interior pixel: got %+v", got)
	}
	if got := readPixel(t, bmp, 0, 0); got != (geom.Color{}) {
		t.Fatalf("exterior pixel touched: %+v", got)
	}
}

func TestSavePathIsIndependentOfCurrent(t *testing.T) {
	c, _ := newCanvas(10, 10)
	c.MoveTo(geom.Point{X: 0, Y: 0})
	c.LineTo(geom.Point{X: 5, Y: 0})

	saved := c.Path() // the path SavePath pushes
	c.SavePath()
	savedVerbs := len(saved.Verbs)

	c.LineTo(geom.Point{X: 5, Y: 5}) // mutates only the new current path

	if len(saved.Verbs) != savedVerbs {
		t.Fatalf("save: the pushed path was mutated by a later draw call")
	}
	if len(c.Path().Verbs) == savedVerbs {
		t.Fatalf("the current path after Save should diverge once mutated")
	}
}

func TestLoadPathRestoresPushedPath(t *testing.T) {
	c, _ := newCanvas(10, 10)
	c.MoveTo(geom.Point{X: 1, Y: 1})
	c.LineTo(geom.Point{X: 2, Y: 2})
	before := c.Path()
	beforeVerbs := len(before.Verbs)

	c.SavePath()
	c.LineTo(geom.Point{X: 9, Y: 9})
	c.LineTo(geom.Point{X: 9, Y: 1})

	c.LoadPath()
	if c.Path() != before {
		t.Fatalf("LoadPath should restore the exact pushed path, not a copy")
	}
	if len(c.Path().Verbs) != beforeVerbs {
		t.Fatalf("restored path verb count: got %d, want %d", len(c.Path().Verbs), beforeVerbs)
	}
}

func TestLoadPathIsNoOpOnEmptyStack(t *testing.T) {
	c, _ := newCanvas(10, 10)
	before := c.Path()
	c.LoadPath() // should not panic or change anything
	if c.Path() != before {
		t.Fatalf("LoadPath on an empty stack should leave the current path untouched")
	}
}

func TestPathSlotReuseAcrossSaveLoad(t *testing.T) {
	c, _ := newCanvas(10, 10)
	c.MoveTo(geom.Point{X: 0, Y: 0})

	c.SavePath()
	first := c.Path()
	c.LoadPath()

	c.SavePath()
	second := c.Path()
	c.LoadPath()

	if first != second {
		t.Fatalf("expected the released path slot to be reused by the next SavePath")
	}
}

func TestSaveLoadPaintRoundTrips(t *testing.T) {
	c, _ := newCanvas(10, 10)
	c.Paint().Color = geom.Color{R: 1, G: 1, B: 1, A: 255}

	c.SavePaint()
	c.Paint().Color = geom.Color{R: 2, G: 2, B: 2, A: 255}
	if got := c.Paint().Color; got != (geom.Color{R: 2, G: 2, B: 2, A: 255}) {
		t.Fatalf("paint after Save+mutate: got %+v", got)
	}

	c.LoadPaint()
	if got := c.Paint().Color; got != (geom.Color{R: 1, G: 1, B: 1, A: 255}) {
		t.Fatalf("paint after Load: got %+v, want the saved color", got)
	}
}

func TestSaveLoadMatrixRestoresMatrix(t *testing.T) {
	c, _ := newCanvas(10, 10)
	c.SaveMatrix()
	scaled := geom.Scale(2, 2)
	c.SetMatrix(scaled)
	if c.Matrix() != scaled {
		t.Fatalf("SetMatrix did not update the current matrix")
	}

	c.LoadMatrix()
	if c.Matrix() != geom.Identity {
		t.Fatalf("LoadMatrix: got %+v, want identity restored", c.Matrix())
	}
}

func TestClearFillsWholeSurface(t *testing.T) {
	c, bmp := newCanvas(4, 3)
	if err := c.Clear(geom.Color{R: 7, G: 7, B: 7, A: 255}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := readPixel(t, bmp, x, y); got != (geom.Color{R: 7, G: 7, B: 7, A: 255}) {
				t.Fatalf("(%d,%d): got %+v", x, y, got)
			}
		}
	}
}
