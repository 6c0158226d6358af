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

// 24-bit RGB888: three bytes per pixel, no padding, no alpha channel.

func rgb24Pixel(c geom.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func rgb24Color(p uint32) geom.Color {
	return geom.Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 255}
}

func get24le(data []byte) uint32 {
	return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
}
func set24le(data []byte, v uint32) {
	data[0] = byte(v)
	data[1] = byte(v >> 8)
	data[2] = byte(v >> 16)
}
func get24be(data []byte) uint32 {
	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
}
func set24be(data []byte, v uint32) {
	data[0] = byte(v >> 16)
	data[1] = byte(v >> 8)
	data[2] = byte(v)
}

func rgb24Table(order ByteOrder) Pixmap {
	get := get24le
	set := set24le
	if order == BigEndian {
		get = get24be
		set = set24be
	}

	writeOpaque := func(data []byte, pixel uint32) { set(data, pixel) }
	writeBlend := func(data []byte, pixel uint32, alpha uint8) {
		if alpha == 255 {
			set(data, pixel)
			return
		}
		dst := get(data)
		r, g, b := blendRGB(uint8(dst>>16), uint8(dst>>8), uint8(dst), uint8(pixel>>16), uint8(pixel>>8), uint8(pixel), alpha)
		set(data, uint32(r)<<16|uint32(g)<<8|uint32(b))
	}
	copyOpaque := func(dst, src []byte) { set(dst, get(src)) }
	copyBlend := func(dst, src []byte, alpha uint8) { writeBlend(dst, get(src), alpha) }
	fillOpaque := func(data []byte, pixel uint32, count int) {
		for i := 0; i < count; i++ {
			set(data[i*3:], pixel)
		}
	}
	fillBlend := func(data []byte, pixel uint32, count int, alpha uint8) {
		for i := 0; i < count; i++ {
			writeBlend(data[i*3:], pixel, alpha)
		}
	}

	return Pixmap{
		Name:             "rgb24",
		BitsPerPixel:     24,
		BytesPerPixel:    3,
		ColorToPixel:     rgb24Pixel,
		PixelToColor:     rgb24Color,
		ReadPixel:        get,
		WritePixelOpaque: writeOpaque,
		WritePixelBlend:  writeBlend,
		CopyPixelOpaque:  copyOpaque,
		CopyPixelBlend:   copyBlend,
		FillRunOpaque:    fillOpaque,
		FillRunBlend:     fillBlend,
	}
}

func registerRGB24() {
	register(FormatRGB24, LittleEndian, rgb24Table(LittleEndian))
	register(FormatRGB24, BigEndian, rgb24Table(BigEndian))
}
