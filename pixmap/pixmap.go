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

// Package pixmap holds, for each pixel format, a table of function values
// that read and write raw pixel bytes (spec §4.1). The rasterizer and
// writer never branch on format themselves; they call through whichever
// Pixmap Lookup returned.
package pixmap

import (
	"errors"

	"lanox.dev/raster/geom"
)

// Format names a pixel layout, independent of byte order.
type Format int

const (
	FormatRGB565 Format = iota
	FormatRGB24
	FormatXRGB32
	FormatARGB32
)

// ByteOrder selects how a multi-byte pixel is laid out in memory.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ErrUnknownFormat is returned by MustLookup when no table matches the
// requested (Format, ByteOrder) combination (spec §4.1, §7).
var ErrUnknownFormat = errors.New("pixmap: unknown pixel format")

// Pixmap is the function-value table for one concrete pixel encoding. All
// fields are mandatory for a valid table; the zero value is not usable
// and is never returned except embedded in an error path.
type Pixmap struct {
	Name          string
	BitsPerPixel  int
	BytesPerPixel int

	ColorToPixel func(geom.Color) uint32
	PixelToColor func(uint32) geom.Color

	ReadPixel        func(data []byte) uint32
	WritePixelOpaque func(data []byte, pixel uint32)
	WritePixelBlend  func(data []byte, pixel uint32, alpha uint8)

	CopyPixelOpaque func(dst, src []byte)
	CopyPixelBlend  func(dst, src []byte, alpha uint8)

	FillRunOpaque func(data []byte, pixel uint32, count int)
	FillRunBlend  func(data []byte, pixel uint32, count int, alpha uint8)
}

// WriteColorBlend is a convenience built from ColorToPixel + WritePixelBlend,
// mirroring the original's color_set_* entry points that blend a Color
// straight onto the destination using its own alpha channel.
func (p Pixmap) WriteColorBlend(data []byte, c geom.Color) {
	p.WritePixelBlend(data, p.ColorToPixel(c), c.A)
}

// key identifies one (format, byte order) table. Every table exposes both
// opaque and alpha-blending entry points (spec §4.1's full operation
// list); there is no separate alpha-aware table variant to look up.
type key struct {
	format Format
	order  ByteOrder
}

var tables = map[key]Pixmap{}

func register(f Format, o ByteOrder, p Pixmap) {
	tables[key{f, o}] = p
}

// Lookup returns the table for the given format and byte order, or false
// if no table is registered for that combination (spec §4.1 "lookup
// (format,alpha) returns a sentinel for unknown formats").
func Lookup(f Format, o ByteOrder) (Pixmap, bool) {
	p, ok := tables[key{f, o}]
	return p, ok
}

// MustLookup is Lookup but returns ErrUnknownFormat instead of false, for
// callers (device init) that want the sentinel error directly.
func MustLookup(f Format, o ByteOrder) (Pixmap, error) {
	p, ok := Lookup(f, o)
	if !ok {
		return Pixmap{}, ErrUnknownFormat
	}
	return p, nil
}

func init() {
	registerRGB565()
	registerRGB24()
	registerXRGB32()
	registerARGB32()
}
