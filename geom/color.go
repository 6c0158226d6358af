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

package geom

import "image/color"

// Color is a straight-alpha sRGB color, the representation used at the
// external API boundary (spec §6). It converts to and from the
// ecosystem-standard color.NRGBA (straight, not premultiplied), so callers
// can convert to/from any golang.org/x/image decoder or stdlib image
// without a shim.
type Color struct {
	R, G, B, A uint8
}

// NRGBA returns c as a stdlib color.NRGBA (straight alpha).
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts a stdlib straight-alpha color into a Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Opaque returns c with alpha forced to fully opaque.
func (c Color) Opaque() Color {
	c.A = 0xff
	return c
}
