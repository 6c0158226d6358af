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

package paint

import "testing"

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Mode != Fill {
		t.Errorf("Mode: got %v, want Fill", p.Mode)
	}
	if p.Alpha != 255 {
		t.Errorf("Alpha: got %d, want 255", p.Alpha)
	}
	if p.Stroke.Width != 1 {
		t.Errorf("Stroke.Width: got %v, want 1", p.Stroke.Width)
	}
	if p.Stroke.MiterLimit != 4 {
		t.Errorf("Stroke.MiterLimit: got %v, want 4", p.Stroke.MiterLimit)
	}
	if p.Stroke.Cap != CapButt {
		t.Errorf("Stroke.Cap: got %v, want CapButt", p.Stroke.Cap)
	}
	if p.Stroke.Join != JoinMiter {
		t.Errorf("Stroke.Join: got %v, want JoinMiter", p.Stroke.Join)
	}
	if p.Rule != Odd {
		t.Errorf("Rule: got %v, want Odd", p.Rule)
	}
}

func TestPaintIsValueType(t *testing.T) {
	p1 := New()
	p2 := p1
	p2.Stroke.Width = 5
	p2.Mode = Stroke
	if p1.Stroke.Width != 1 || p1.Mode != Fill {
		t.Fatalf("mutating a copy must not affect the original: %+v", p1)
	}
}
