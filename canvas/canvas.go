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

// Package canvas is the external per-thread drawing state that sits above a
// device (spec §4.8): one current Paint, one current Path, one current
// Matrix, each with its own save/load stack. A Canvas is not safe for
// concurrent use (spec §5 "single-threaded cooperative").
package canvas

import (
	"lanox.dev/raster/device"
	"lanox.dev/raster/geom"
	"lanox.dev/raster/paint"
	"lanox.dev/raster/path"
)

// pathSlotBound caps how many released path.Data backing arrays a Canvas
// keeps around for reuse before letting the rest go to the garbage
// collector (spec §4.8 "cache reuses object slots up to a small bound
// before releasing"). Paint and Matrix are plain value types with no
// backing array to reuse, so the bound only governs the path cache.
const pathSlotBound = 8

// Canvas is the top-level drawing handle: current paint/path/matrix plus
// their save stacks, bound to a device that actually rasterizes.
type Canvas struct {
	dev *device.Device

	paint      paint.Paint
	paintStack []paint.Paint

	curPath   *path.Data
	pathStack []*path.Data
	pathSlots []*path.Data // released Data values available for reuse

	matrix      geom.Matrix
	matrixStack []geom.Matrix
}

// New returns a Canvas drawing into dev, with default paint, an empty
// current path, and the identity matrix.
func New(dev *device.Device) *Canvas {
	return &Canvas{
		dev:     dev,
		paint:   paint.New(),
		curPath: path.New(),
		matrix:  geom.Identity,
	}
}

// Paint returns the current paint, for the caller to inspect or mutate in
// place before the next draw call.
func (c *Canvas) Paint() *paint.Paint { return &c.paint }

// Path returns the current path, built up with its Move/Line/.../Close
// methods and handed to Fill or Stroke.
func (c *Canvas) Path() *path.Data { return c.curPath }

// Matrix returns the current transform.
func (c *Canvas) Matrix() geom.Matrix { return c.matrix }

// SetMatrix replaces the current transform and propagates it to the
// underlying device, which needs it to pick its stroke-only fast path
// (spec §4.7).
func (c *Canvas) SetMatrix(m geom.Matrix) {
	c.matrix = m
	c.dev.SetMatrix(m)
}

// SavePaint pushes the current paint and returns a pointer to the (now
// identical) current paint, ready for the caller to mutate until the
// matching LoadPaint (spec §4.8 "save() pushes the current object into a
// stack ... and makes the copy current").
func (c *Canvas) SavePaint() *paint.Paint {
	c.paintStack = append(c.paintStack, c.paint)
	return &c.paint
}

// LoadPaint restores the most recently saved paint. It is a no-op if the
// paint stack is empty.
func (c *Canvas) LoadPaint() {
	n := len(c.paintStack)
	if n == 0 {
		return
	}
	c.paint = c.paintStack[n-1]
	c.paintStack = c.paintStack[:n-1]
}

// SaveMatrix pushes the current matrix and returns it, so the caller can
// compose further transforms into the current matrix until the matching
// LoadMatrix.
func (c *Canvas) SaveMatrix() geom.Matrix {
	c.matrixStack = append(c.matrixStack, c.matrix)
	return c.matrix
}

// LoadMatrix restores the most recently saved matrix and propagates it to
// the device. It is a no-op if the matrix stack is empty.
func (c *Canvas) LoadMatrix() {
	n := len(c.matrixStack)
	if n == 0 {
		return
	}
	c.matrix = c.matrixStack[n-1]
	c.matrixStack = c.matrixStack[:n-1]
	c.dev.SetMatrix(c.matrix)
}

// SavePath pushes the current path and makes a copy of it the new current
// path, built from a reused slot when one is available (spec §4.8
// "copies it into a cached slot, and makes the copy current"). Subsequent
// Move/Line/... calls extend the copy; the pushed original is untouched
// until LoadPath. It returns the copy, i.e. the new current path.
func (c *Canvas) SavePath() *path.Data {
	c.pathStack = append(c.pathStack, c.curPath)
	next := c.takePathSlot()
	next.CopyFrom(c.curPath)
	c.curPath = next
	return c.curPath
}

// LoadPath restores the most recently saved path, releasing the current
// path's backing storage back into the slot cache. It is a no-op if the
// path stack is empty.
func (c *Canvas) LoadPath() {
	n := len(c.pathStack)
	if n == 0 {
		return
	}
	c.releasePathSlot(c.curPath)
	c.curPath = c.pathStack[n-1]
	c.pathStack = c.pathStack[:n-1]
}

func (c *Canvas) takePathSlot() *path.Data {
	if n := len(c.pathSlots); n > 0 {
		p := c.pathSlots[n-1]
		c.pathSlots = c.pathSlots[:n-1]
		return p
	}
	return path.New()
}

func (c *Canvas) releasePathSlot(p *path.Data) {
	if len(c.pathSlots) >= pathSlotBound {
		return
	}
	c.pathSlots = append(c.pathSlots, p)
}

// ClearPath resets the current path to empty, reusing its backing storage
// (convenience wrapper over Path().Clear(), mirroring canvas_path.h's
// lx_canvas_path_clear).
func (c *Canvas) ClearPath() { c.curPath.Clear() }

// MoveTo starts a new contour of the current path at p.
func (c *Canvas) MoveTo(p geom.Point) { c.curPath.MoveTo(p) }

// LineTo extends the current path's open contour with a line to p.
func (c *Canvas) LineTo(p geom.Point) { c.curPath.LineTo(p) }

// Close closes the current path's open contour.
func (c *Canvas) Close() { c.curPath.Close() }

// Fill rasterizes the current path with the current paint's fill rule
// using the current paint's color, ignoring any stroke settings (spec
// §4.7). The current paint's Mode is restored after the call.
func (c *Canvas) Fill() error {
	saved := c.paint.Mode
	c.paint.Mode = paint.Fill
	err := c.dev.DrawPath(c.curPath, c.paint)
	c.paint.Mode = saved
	return err
}

// Stroke strokes the current path with the current paint's stroke style,
// ignoring fill. The current paint's Mode is restored after the call.
func (c *Canvas) Stroke() error {
	saved := c.paint.Mode
	c.paint.Mode = paint.Stroke
	err := c.dev.DrawPath(c.curPath, c.paint)
	c.paint.Mode = saved
	return err
}

// FillStroke fills then strokes the current path in a single device call.
// The current paint's Mode is restored after the call.
func (c *Canvas) FillStroke() error {
	saved := c.paint.Mode
	c.paint.Mode = paint.FillStroke
	err := c.dev.DrawPath(c.curPath, c.paint)
	c.paint.Mode = saved
	return err
}

// Clear fills the whole device surface with col, independent of the current
// path or paint.
func (c *Canvas) Clear(col geom.Color) error {
	return c.dev.DrawClear(col)
}
