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

// Package path holds the mutable vector-contour container: the sequence of
// move/line/quad/cubic/close verbs, its cached shape hint, bounds, convexity
// and flattened polygon (spec §3, §4.2).
package path

import "lanox.dev/raster/geom"

// ShapeKind tags the recognized high-level shape of a path (spec §3's
// "Shape (hint)" entity).
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapePoint
	ShapeLine
	ShapeRect
	ShapeRoundRect
	ShapeTriangle
	ShapeCircle
	ShapeEllipse
	ShapeArc
)

// Direction controls vertex winding order for the Add* shape constructors.
// It matters for rasterization under the even-odd-free fill rules and for
// stroke join orientation (spec §4.2).
type Direction int

const (
	CW Direction = iota
	CCW
)

// Shape is the tagged-union hint recognized by hint detection (spec §3).
// Only the field matching Kind is meaningful.
type Shape struct {
	Kind     ShapeKind
	Point    geom.Point
	Line     [2]geom.Point
	Rect     geom.Rect
	Triangle [3]geom.Point
	Circle   Circle
	Ellipse  Ellipse
	Arc      Arc
}

// Circle is a center/radius pair.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Ellipse is an axis-aligned ellipse given by its center and its two
// radii.
type Ellipse struct {
	Center geom.Point
	Rx, Ry float64
}

// Arc describes a circular arc: center, radius, start angle and sweep
// angle, both in radians, positive sweep meaning counter-clockwise.
type Arc struct {
	Center     geom.Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}
