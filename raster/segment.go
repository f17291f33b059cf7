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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Segment computes the coverage of the straight line from a to b,
// drawn with the given width and the end style s.Cap.
//
// If a and b coincide, round and square caps give a dot of diameter
// width and butt caps give no output.
func (s *Scanner) Segment(a, b vec.Vec2, width float64, emit EmitFunc) {
	if !(width > 0) {
		return
	}
	d := width / 2
	s.outline = s.outline[:0]

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		switch s.Cap {
		case graphics.LineCapRound:
			s.addArc(a, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			s.outline = append(s.outline,
				vec.Vec2{X: a.X - d, Y: a.Y - d},
				vec.Vec2{X: a.X + d, Y: a.Y - d},
				vec.Vec2{X: a.X + d, Y: a.Y + d},
				vec.Vec2{X: a.X - d, Y: a.Y + d},
			)
		}
		s.FillPolygon(s.outline, emit)
		return
	}

	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	if s.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}

	s.outline = append(s.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	if s.Cap == graphics.LineCapRound {
		s.addArc(b, d, n, -math.Pi, false)
	} else {
		s.outline = append(s.outline, b.Sub(n.Mul(d)))
	}
	s.outline = append(s.outline, a.Sub(n.Mul(d)))
	if s.Cap == graphics.LineCapRound {
		s.addArc(a, d, n.Mul(-1), -math.Pi, false)
	}

	s.FillPolygon(s.outline, emit)
}

// addArc appends points on the circle of the given radius around
// center, starting in direction dir and turning by sweep radians.
// The start point itself is only added if withStart is set.
func (s *Scanner) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, withStart bool) {
	steps := 1
	if radius > s.Flatness {
		// a chord over angle θ deviates by radius*(1-cos(θ/2)) from the arc
		step := 2 * math.Acos(1-s.Flatness/radius)
		if step > 0 {
			steps = int(math.Ceil(math.Abs(sweep) / step))
		}
	}
	steps = max(steps, 2)

	first := 1
	if withStart {
		first = 0
	}
	for i := first; i <= steps; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(steps))
		p := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		s.outline = append(s.outline, center.Add(p.Mul(radius)))
	}
}
