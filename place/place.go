// seehuhn.de/go/handwrite - synthetic handwriting renderer
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

// Package place maps glyph strokes from the design grid onto the page.
package place

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const (
	// GridScale converts design grid units to pixels at scale 1.
	GridScale = 0.75

	// SlantDamping reduces the shear, to keep the slant subtle.
	SlantDamping = 0.3
)

// Matrix returns the affine map from design grid coordinates to page
// coordinates for a glyph at base.  The glyph is first scaled and
// moved to base, then sheared vertically in page space:
//
//	x' = base.x + x*k
//	y' = base.y + y*k + (x' - base.x)*tan(slant)*0.3
//
// where k = scale*GridScale.
func Matrix(base vec.Vec2, scale, slantDegrees float64) matrix.Matrix {
	k := scale * GridScale
	shear := 0.0
	if slantDegrees != 0 {
		shear = math.Tan(slantDegrees*math.Pi/180) * SlantDamping
	}
	return matrix.Matrix{k, k * shear, 0, k, base.X, base.Y}
}

// Place maps the points of one stroke onto the page.
// The input is not modified.
func Place(stroke []vec.Vec2, base vec.Vec2, scale, slantDegrees float64) []vec.Vec2 {
	m := Matrix(base, scale, slantDegrees)
	res := make([]vec.Vec2, len(stroke))
	for i, p := range stroke {
		res[i] = apply(m, p)
	}
	return res
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
