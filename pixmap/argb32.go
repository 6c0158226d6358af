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

import "lanox.dev/raster/geom"

// 32-bit ARGB8888: straight-alpha, the top byte carries a real per-pixel
// alpha channel rather than XRGB32's fixed 0xff padding byte (spec §4.1
// "ARGB32 for completeness").

func argb32Pixel(c geom.Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func argb32Color(p uint32) geom.Color {
	return geom.Color{A: uint8(p >> 24), R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

func argb32Table(order ByteOrder) Pixmap {
	get := get32le
	set := set32le
	if order == BigEndian {
		get = get32be
		set = set32be
	}

	writeOpaque := func(data []byte, pixel uint32) { set(data, pixel) }
	writeBlend := func(data []byte, pixel uint32, alpha uint8) {
		if alpha == 255 {
			set(data, pixel)
			return
		}
		dst := argb32Color(get(data))
		src := argb32Color(pixel)
		r, g, b := blendRGB(dst.R, dst.G, dst.B, src.R, src.G, src.B, alpha)
		a := blendChannel(dst.A, src.A, alpha)
		set(data, argb32Pixel(geom.Color{R: r, G: g, B: b, A: a}))
	}
	copyOpaque := func(dst, src []byte) { set(dst, get(src)) }
	copyBlend := func(dst, src []byte, alpha uint8) { writeBlend(dst, get(src), alpha) }
	fillOpaque := func(data []byte, pixel uint32, count int) {
		for i := 0; i < count; i++ {
			set(data[i*4:], pixel)
		}
	}
	fillBlend := func(data []byte, pixel uint32, count int, alpha uint8) {
		for i := 0; i < count; i++ {
			writeBlend(data[i*4:], pixel, alpha)
		}
	}

	return Pixmap{
		Name:             "argb32",
		BitsPerPixel:     32,
		BytesPerPixel:    4,
		ColorToPixel:     argb32Pixel,
		PixelToColor:     argb32Color,
		ReadPixel:        get,
		WritePixelOpaque: writeOpaque,
		WritePixelBlend:  writeBlend,
		CopyPixelOpaque:  copyOpaque,
		CopyPixelBlend:   copyBlend,
		FillRunOpaque:    fillOpaque,
		FillRunBlend:     fillBlend,
	}
}

func registerARGB32() {
	register(FormatARGB32, LittleEndian, argb32Table(LittleEndian))
	register(FormatARGB32, BigEndian, argb32Table(BigEndian))
}
