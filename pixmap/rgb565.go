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

// 16-bit 5-6-5 packing, no per-pixel alpha channel: WritePixelBlend still
// honors a caller-supplied alpha by blending in 8-bit space before
// repacking (spec §4.1's "standard linear" blend formula).

func rgb565Pixel(c geom.Color) uint32 {
	r := uint32(c.R) >> 3
	g := uint32(c.G) >> 2
	b := uint32(c.B) >> 3
	return r<<11 | g<<5 | b
}

func rgb565Color(p uint32) geom.Color {
	r5 := uint8(p>>11) & 0x1f
	g6 := uint8(p>>5) & 0x3f
	b5 := uint8(p) & 0x1f
	return geom.Color{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: 255,
	}
}

func get16le(data []byte) uint32 { return uint32(data[0]) | uint32(data[1])<<8 }
func set16le(data []byte, v uint32) {
	data[0] = byte(v)
	data[1] = byte(v >> 8)
}
func get16be(data []byte) uint32 { return uint32(data[0])<<8 | uint32(data[1]) }
func set16be(data []byte, v uint32) {
	data[0] = byte(v >> 8)
	data[1] = byte(v)
}

func rgb565Table(order ByteOrder) Pixmap {
	get := get16le
	set := set16le
	if order == BigEndian {
		get = get16be
		set = set16be
	}

	writeOpaque := func(data []byte, pixel uint32) { set(data, pixel) }
	writeBlend := func(data []byte, pixel uint32, alpha uint8) {
		if alpha == 255 {
			set(data, pixel)
			return
		}
		dst := rgb565Color(get(data))
		src := rgb565Color(pixel)
		r, g, b := blendRGB(dst.R, dst.G, dst.B, src.R, src.G, src.B, alpha)
		set(data, rgb565Pixel(geom.Color{R: r, G: g, B: b, A: 255}))
	}
	copyOpaque := func(dst, src []byte) { set(dst, get(src)) }
	copyBlend := func(dst, src []byte, alpha uint8) { writeBlend(dst, get(src), alpha) }
	fillOpaque := func(data []byte, pixel uint32, count int) {
		for i := 0; i < count; i++ {
			set(data[i*2:], pixel)
		}
	}
	fillBlend := func(data []byte, pixel uint32, count int, alpha uint8) {
		for i := 0; i < count; i++ {
			writeBlend(data[i*2:], pixel, alpha)
		}
	}

	return Pixmap{
		Name:             "rgb565",
		BitsPerPixel:     16,
		BytesPerPixel:    2,
		ColorToPixel:     rgb565Pixel,
		PixelToColor:     rgb565Color,
		ReadPixel:        get,
		WritePixelOpaque: writeOpaque,
		WritePixelBlend:  writeBlend,
		CopyPixelOpaque:  copyOpaque,
		CopyPixelBlend:   copyBlend,
		FillRunOpaque:    fillOpaque,
		FillRunBlend:     fillBlend,
	}
}

func registerRGB565() {
	register(FormatRGB565, LittleEndian, rgb565Table(LittleEndian))
	register(FormatRGB565, BigEndian, rgb565Table(BigEndian))
}
