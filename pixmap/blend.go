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

// blendChannel computes the standard linear blend
// out = dst + (src-dst)*alpha/255 (spec §4.1), one byte channel at a time.
func blendChannel(dst, src, alpha uint8) uint8 {
	return uint8(int(dst) + (int(src)-int(dst))*int(alpha)/255)
}

func blendRGB(dr, dg, db, sr, sg, sb, alpha uint8) (r, g, b uint8) {
	return blendChannel(dr, sr, alpha), blendChannel(dg, sg, alpha), blendChannel(db, sb, alpha)
}
