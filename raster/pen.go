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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Rand is the source of randomness used by the pen.
// It is implemented by *math/rand/v2.Rand.
type Rand interface {
	Float64() float64
}

// Pen draws strokes as sequences of straight segments.
//
// When Pressure is set, each segment has a chance of being drawn one
// pixel thinner or thicker than Thickness, and every segment wider than
// one pixel is followed by a thinner pass in a lighter color.
type Pen struct {
	Thickness int
	Color     color.RGBA
	Pressure  bool
	Rand      Rand
}

const (
	// pressureChance is the probability that a segment width is perturbed.
	pressureChance = 0.2

	// overlayLift is added to each color channel for the overlay pass.
	overlayLift = 30
)

// Draw draws the polyline through pts and returns the number of
// segments drawn.  Strokes with fewer than two points are skipped.
func (p *Pen) Draw(s Surface, pts []vec.Vec2) int {
	if len(pts) < 2 {
		return 0
	}
	light := lighten(p.Color, overlayLift)
	for i := 1; i < len(pts); i++ {
		w := p.Thickness
		if p.Pressure && p.Rand.Float64() < pressureChance {
			if p.Rand.Float64() < 0.5 {
				w--
			} else {
				w++
			}
			w = max(1, min(w, p.Thickness+2))
		}

		s.DrawLine(pts[i-1], pts[i], p.Color, float64(w))
		if p.Pressure && w > 1 {
			s.DrawLine(pts[i-1], pts[i], light, float64(w-1))
		}
	}
	return len(pts) - 1
}

// lighten moves each channel of an opaque color towards white.
func lighten(c color.RGBA, delta int) color.RGBA {
	up := func(v uint8) uint8 { return uint8(min(int(v)+delta, int(c.A))) }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
