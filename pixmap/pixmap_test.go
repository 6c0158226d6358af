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

package pixmap

import (
	"errors"
	"testing"

	"lanox.dev/raster/geom"
)

var allFormats = []Format{FormatRGB565, FormatRGB24, FormatXRGB32, FormatARGB32}
var allOrders = []ByteOrder{LittleEndian, BigEndian}

func TestLookupKnownFormats(t *testing.T) {
	for _, f := range allFormats {
		for _, o := range allOrders {
			if _, ok := Lookup(f, o); !ok {
				t.Errorf("Lookup(%v, %v): not found", f, o)
			}
		}
	}
}

func TestLookupUnknownFormat(t *testing.T) {
	_, ok := Lookup(Format(999), LittleEndian)
	if ok {
		t.Fatalf("Lookup: expected unknown format to fail")
	}
	_, err := MustLookup(Format(999), LittleEndian)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("MustLookup: got %v, want ErrUnknownFormat", err)
	}
}

func TestWriteOpaqueReadBack(t *testing.T) {
	for _, f := range allFormats {
		for _, o := range allOrders {
			p, _ := Lookup(f, o)
			buf := make([]byte, p.BytesPerPixel)
			c := geom.Color{R: 0x40, G: 0x80, B: 0xc0, A: 0xff}
			pixel := p.ColorToPixel(c)
			p.WritePixelOpaque(buf, pixel)
			got := p.ReadPixel(buf)
			if got != pixel {
				t.Errorf("%s/%v: read back %#x, wrote %#x", p.Name, o, got, pixel)
			}
		}
	}
}

func TestWritePixelBlendFullAlphaIsOverwrite(t *testing.T) {
	// alpha=255 must behave exactly like WritePixelOpaque (the blend law).
	for _, f := range allFormats {
		for _, o := range allOrders {
			p, _ := Lookup(f, o)
			bufOpaque := make([]byte, p.BytesPerPixel)
			bufBlend := make([]byte, p.BytesPerPixel)
			pixel := p.ColorToPixel(geom.Color{R: 10, G: 200, B: 50, A: 255})

			p.WritePixelOpaque(bufOpaque, pixel)
			p.WritePixelBlend(bufBlend, pixel, 255)

			for i := range bufOpaque {
				if bufOpaque[i] != bufBlend[i] {
					t.Fatalf("%s/%v: alpha=255 blend diverges from opaque write at byte %d", p.Name, o, i)
				}
			}
		}
	}
}

func TestWritePixelBlendZeroAlphaIsNoop(t *testing.T) {
	for _, f := range allFormats {
		for _, o := range allOrders {
			p, _ := Lookup(f, o)
			buf := make([]byte, p.BytesPerPixel)
			bg := p.ColorToPixel(geom.Color{R: 1, G: 2, B: 3, A: 255})
			p.WritePixelOpaque(buf, bg)
			before := append([]byte(nil), buf...)

			fg := p.ColorToPixel(geom.Color{R: 250, G: 250, B: 250, A: 255})
			p.WritePixelBlend(buf, fg, 0)

			for i := range buf {
				if buf[i] != before[i] {
					t.Fatalf("%s/%v: alpha=0 blend changed byte %d: %v -> %v", p.Name, o, i, before, buf)
				}
			}
		}
	}
}

func TestFillRunOpaqueMatchesRepeatedWrite(t *testing.T) {
	for _, f := range allFormats {
		for _, o := range allOrders {
			p, _ := Lookup(f, o)
			const n = 5
			buf := make([]byte, p.BytesPerPixel*n)
			pixel := p.ColorToPixel(geom.Color{R: 11, G: 22, B: 33, A: 255})
			p.FillRunOpaque(buf, pixel, n)

			want := make([]byte, p.BytesPerPixel*n)
			for i := 0; i < n; i++ {
				p.WritePixelOpaque(want[i*p.BytesPerPixel:], pixel)
			}
			for i := range buf {
				if buf[i] != want[i] {
					t.Fatalf("%s/%v: FillRunOpaque diverges from repeated WritePixelOpaque at byte %d", p.Name, o, i)
				}
			}
		}
	}
}

func TestARGB32PreservesAlpha(t *testing.T) {
	p, _ := Lookup(FormatARGB32, LittleEndian)
	c := geom.Color{R: 1, G: 2, B: 3, A: 0x7f}
	buf := make([]byte, 4)
	p.WritePixelOpaque(buf, p.ColorToPixel(c))
	got := p.PixelToColor(p.ReadPixel(buf))
	if got.A != 0x7f {
		t.Fatalf("ARGB32 should round-trip alpha, got %#v", got)
	}
}

func TestXRGB32ForcesOpaque(t *testing.T) {
	p, _ := Lookup(FormatXRGB32, LittleEndian)
	c := geom.Color{R: 1, G: 2, B: 3, A: 0x10}
	buf := make([]byte, 4)
	p.WritePixelOpaque(buf, p.ColorToPixel(c))
	got := p.PixelToColor(p.ReadPixel(buf))
	if got.A != 255 {
		t.Fatalf("XRGB32 must force alpha to 255, got %d", got.A)
	}
}
