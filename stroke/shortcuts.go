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

package stroke

import (
	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

// shortcutStroke emits an optimized outline directly for paths recognized
// as Rect/Circle/Ellipse/Line/Point, bypassing the general segment walk
// (spec §4.4 "Hint shortcuts"). It reports whether a shortcut applied.
func shortcutStroke(out *path.Data, d *path.Data, style paint.StrokeStyle) bool {
	radius := style.Width / 2
	h := d.Hint()
	switch h.Kind {
	case path.ShapeCircle:
		strokeEllipseShortcut(out, h.Circle.Center, h.Circle.Radius, h.Circle.Radius, radius)
	case path.ShapeEllipse:
		strokeEllipseShortcut(out, h.Ellipse.Center, h.Ellipse.Rx, h.Ellipse.Ry, radius)
	case path.ShapeRect:
		strokeRectShortcut(out, h.Rect, radius, style.Join)
	case path.ShapeLine:
		strokeLineShortcut(out, h.Line[0], h.Line[1], radius, style.Cap)
	case path.ShapePoint:
		strokePointShortcut(out, h.Point, radius, style.Cap)
	default:
		return false
	}
	return true
}

// strokeEllipseShortcut builds two concentric ellipses wound oppositely,
// so that filling both under NonZero leaves the expected elliptical ring;
// if the stroke would swallow the hole entirely, only the outer ellipse
// is emitted.
func strokeEllipseShortcut(out *path.Data, center geom.Point, rx, ry, radius float64) {
	outerR := geom.Rect{
		X: center.X - (rx + radius), Y: center.Y - (ry + radius),
		W: 2 * (rx + radius), H: 2 * (ry + radius),
	}
	tmp := path.New()
	tmp.AddEllipse(outerR, path.CW)
	appendAllContours(out, tmp)

	if rx > radius && ry > radius {
		innerR := geom.Rect{
			X: center.X - (rx - radius), Y: center.Y - (ry - radius),
			W: 2 * (rx - radius), H: 2 * (ry - radius),
		}
		tmp2 := path.New()
		tmp2.AddEllipse(innerR, path.CCW)
		appendAllContours(out, tmp2)
	}
}

// strokeRectShortcut builds two concentric rects wound oppositely, with
// the outer corners rounded for a Round join and square otherwise (the
// inner corner of a stroked rect is always sharp, regardless of join
// style).
func strokeRectShortcut(out *path.Data, r geom.Rect, radius float64, join paint.Join) {
	outerR := geom.Rect{X: r.X - radius, Y: r.Y - radius, W: r.W + 2*radius, H: r.H + 2*radius}
	tmp := path.New()
	if join == paint.JoinRound {
		tmp.AddRoundRect(outerR, radius, radius, path.CW)
	} else {
		tmp.AddRect(outerR, path.CW)
	}
	appendAllContours(out, tmp)

	iw, ih := r.W-2*radius, r.H-2*radius
	if iw > 0 && ih > 0 {
		innerR := geom.Rect{X: r.X + radius, Y: r.Y + radius, W: iw, H: ih}
		tmp2 := path.New()
		tmp2.AddRect(innerR, path.CCW)
		appendAllContours(out, tmp2)
	}
}

// strokeLineShortcut builds the thick-line rectangle directly, extending
// its ends for a Square cap and adding circular end caps for a Round cap.
func strokeLineShortcut(out *path.Data, p0, p1 geom.Point, radius float64, cap paint.Cap) {
	t := geom.PointVector(p0, p1)
	if t.Length() == 0 {
		strokePointShortcut(out, p0, radius, cap)
		return
	}
	tu := t.Normalize()
	n := tu.RotateCCW()

	ext := 0.0
	if cap == paint.CapSquare {
		ext = radius
	}
	a := p0.Displace(tu.Mul(-ext))
	b := p1.Displace(tu.Mul(ext))

	out.MoveTo(a.Displace(n.Mul(radius)))
	out.LineTo(b.Displace(n.Mul(radius)))
	out.LineTo(b.Displace(n.Mul(-radius)))
	out.LineTo(a.Displace(n.Mul(-radius)))
	out.Close()

	if cap == paint.CapRound {
		addFullCircle(out, p0, radius)
		addFullCircle(out, p1, radius)
	}
}

// strokePointShortcut draws a stroked degenerate point: a circle for a
// Round cap, a square for a Square cap, nothing for Butt (spec §4.4's
// capper table applied to a zero-length contour).
func strokePointShortcut(out *path.Data, p geom.Point, radius float64, cap paint.Cap) {
	switch cap {
	case paint.CapRound:
		addFullCircle(out, p, radius)
	case paint.CapSquare:
		out.MoveTo(geom.Point{X: p.X - radius, Y: p.Y - radius})
		out.LineTo(geom.Point{X: p.X + radius, Y: p.Y - radius})
		out.LineTo(geom.Point{X: p.X + radius, Y: p.Y + radius})
		out.LineTo(geom.Point{X: p.X - radius, Y: p.Y + radius})
		out.Close()
	}
}
