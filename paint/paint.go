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

// Package paint holds the Paint value object (mode, color, stroke style,
// fill rule) that parameterizes every drawing operation (spec §4.3).
package paint

import "lanox.dev/raster/geom"

// Mode selects what a drawing operation produces from a path.
type Mode int

const (
	Fill Mode = iota
	Stroke
	FillStroke
)

// Cap is the shape drawn at the unclosed ends of a stroked contour.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape drawn where two stroked segments meet.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// FillRule selects how overlapping contours combine to determine a
// pixel's inside/outside status.
type FillRule int

const (
	Odd FillRule = iota
	NonZero
)

// StrokeStyle holds the parameters that apply when Mode is Stroke or
// FillStroke.
type StrokeStyle struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Flags are advisory hints honored by pixmap/writer, not required for
// correctness (spec §4.3).
type Flags struct {
	Antialias    bool
	FilterBitmap bool
}

// Paint is the value object parameterizing a single drawing operation:
// what to draw (Mode), how to color it (Color/Alpha), the fill combination
// rule for filled modes (Rule), and, for stroked modes, the stroke geometry
// (Stroke).
//
// The zero value is not a valid Paint; use New to get the documented
// defaults (spec §4.3: width=1, miter=4, cap=Butt, join=Miter, rule=Odd,
// alpha=255).
type Paint struct {
	Mode  Mode
	Flags Flags
	Color geom.Color
	Alpha uint8

	Stroke StrokeStyle
	Rule   FillRule

	// Texture is an opaque handle to a pattern/gradient source outside
	// this core's scope; nil means the solid Color is used.
	Texture any
}

// New returns a Paint with the documented defaults: solid black fill,
// width 1, miter limit 4, Butt cap, Miter join, Odd fill rule, alpha 255.
func New() Paint {
	return Paint{
		Mode:  Fill,
		Color: geom.Color{A: 255},
		Alpha: 255,
		Stroke: StrokeStyle{
			Width:      1,
			Cap:        CapButt,
			Join:       JoinMiter,
			MiterLimit: 4,
		},
		Rule: Odd,
	}
}
