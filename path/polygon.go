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

package path

import "lanox.dev/raster/geom"

// Polygon is a flat run-length list of points: Points holds every vertex of
// every contour back to back, and Counts names how many points belong to
// each contour in order, terminated by a trailing 0 (spec §3). It is a
// borrowed view: callers must not retain Points/Counts past the next
// mutation of the Data that produced it.
type Polygon struct {
	Points []geom.Point
	Counts []int // terminated by a trailing 0
	Convex bool
}

// Contours splits p into one slice of points per contour, skipping the
// trailing zero sentinel. This allocates and is intended for tests and
// debugging, not the hot path.
func (p Polygon) Contours() [][]geom.Point {
	var out [][]geom.Point
	i := 0
	for _, n := range p.Counts {
		if n == 0 {
			break
		}
		out = append(out, p.Points[i:i+n])
		i += n
	}
	return out
}
