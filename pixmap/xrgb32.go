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

// 32-bit XRGB8888: the top byte is padding, forced opaque on both pack
// and unpack (spec's "XRGB32 (four variants)"; the fourth degree of
// freedom beyond byte order/endianness is covered by the separate ARGB32
// format, which keeps that byte as real alpha).

func xrgb32Pixel(c geom.Color) uint32 {
	return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func xrgb32Color(p uint32) geom.Color {
	return geom.Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 255}
}

func get32le(data []byte) uint32 {
	return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
}
func set32le(data []byte, v uint32) {
	data[0] = byte(v)
	data[1] = byte(v >> 8)
	data[2] = byte(v >> 16)
	data[3] = byte(v >> 24)
}
func get32be(data []byte) uint32 {
	return uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
}
func set32be(data []byte, v uint32) {
	data[0] = byte(v >> 24)
	data[1] = byte(v >> 16)
	data[2] = byte(v >> 8)
	data[3] = byte(v)
}

func xrgb32Table(order ByteOrder) Pixmap {
	get := get32le
	set := set32le
	if order == BigEndian {
		get = get32be
		set = set32be
	}

	writeOpaque := func(data []byte, pixel uint32) { set(data, pixel|0xff000000) }
	writeBlend := func(data []byte, pixel uint32, alpha uint8) {
		if alpha == 255 {
			set(data, pixel|0xff000000)
			return
		}
		dst := get(data)
		r, g, b := blendRGB(uint8(dst>>16), uint8(dst>>8), uint8(dst), uint8(pixel>>16), uint8(pixel>>8), uint8(pixel), alpha)
		set(data, 0xff000000|uint32(r)<<16|uint32(g)<<8|uint32(b))
	}
	copyOpaque := func(dst, src []byte) { set(dst, get(src)|0xff000000) }
	copyBlend := func(dst, src []byte, alpha uint8) { writeBlend(dst, get(src), alpha) }
	fillOpaque := func(data []byte, pixel uint32, count int) {
		p := pixel | 0xff000000
		for i := 0; i < count; i++ {
			set(data[i*4:], p)
		}
	}
	fillBlend := func(data []byte, pixel uint32, count int, alpha uint8) {
		for i := 0; i < count; i++ {
			writeBlend(data[i*4:], pixel, alpha)
		}
	}

	return Pixmap{
		Name:             "xrgb32",
		BitsPerPixel:     32,
		BytesPerPixel:    4,
		ColorToPixel:     xrgb32Pixel,
		PixelToColor:     xrgb32Color,
		ReadPixel:        get,
		WritePixelOpaque: writeOpaque,
		WritePixelBlend:  writeBlend,
		CopyPixelOpaque:  copyOpaque,
		CopyPixelBlend:   copyBlend,
		FillRunOpaque:    fillOpaque,
		FillRunBlend:     fillBlend,
	}
}

func registerXRGB32() {
	register(FormatXRGB32, LittleEndian, xrgb32Table(LittleEndian))
	register(FormatXRGB32, BigEndian, xrgb32Table(BigEndian))
}
