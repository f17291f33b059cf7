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

// Package curve turns raw stroke points into natural looking pen paths.
//
// All functions take their randomness from an explicit [Rand], so that
// results are reproducible with a seeded generator.
package curve

import (
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/handwrite/style"
)

// Rand is a source of uniformly distributed numbers in [0, 1).
// It is implemented by *math/rand/v2.Rand.
type Rand interface {
	Float64() float64
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Jitter displaces every point by a random offset of at most
// 2*intensity in each coordinate.  The offset is damped near the ends
// of the stroke: it is zero at the first and last point and grows
// linearly to its full size at a quarter of the stroke length.
//
// The input is not modified.
func Jitter(pts []vec.Vec2, intensity float64, r Rand) []vec.Vec2 {
	res := slices.Clone(pts)
	n := len(pts)
	if n < 2 || intensity == 0 {
		return res
	}
	last := float64(n - 1)
	for i := range res {
		edge := min(float64(i)/last, float64(n-1-i)/last)
		scale := 2 * intensity * min(2*edge, 1)
		res[i].X += uniform(r, -1, 1) * scale
		res[i].Y += uniform(r, -1, 1) * scale
	}
	return res
}

// Quadratic samples the quadratic Bézier curve from p0 to p2 with
// control point p1 at steps evenly spaced parameter values, including
// both end points.
func Quadratic(p0, p1, p2 vec.Vec2, steps int) []vec.Vec2 {
	if steps < 2 {
		steps = 2
	}
	res := make([]vec.Vec2, steps)
	for i := range res {
		t := float64(i) / float64(steps-1)
		s := 1 - t
		res[i] = p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
	}
	res[0], res[steps-1] = p0, p2
	return res
}

// CatmullRom interpolates a uniform Catmull-Rom spline through pts,
// emitting div points for every span between two input points.  The
// curve passes through every input point; the first and last point are
// duplicated to give tangents at the ends.
func CatmullRom(pts []vec.Vec2, div int) []vec.Vec2 {
	n := len(pts)
	if n < 3 || div < 2 {
		return slices.Clone(pts)
	}

	res := make([]vec.Vec2, 0, (n-1)*div+1)
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]

		// 2*C(t) = a + b*t + c*t^2 + d*t^3
		a := p1.Mul(2)
		b := p2.Sub(p0)
		c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3)
		d := p1.Mul(3).Sub(p2.Mul(3)).Add(p3).Sub(p0)

		res = append(res, p1)
		for k := 1; k < div; k++ {
			t := float64(k) / float64(div)
			q := a.Add(b.Mul(t)).Add(c.Mul(t * t)).Add(d.Mul(t * t * t))
			res = append(res, q.Mul(0.5))
		}
	}
	return append(res, pts[n-1])
}

// Parameters for synthesized strokes.
const (
	// NaturalSteps is the number of samples on a synthesized stroke.
	NaturalSteps = 15

	// CatmullRomDiv is the number of output points per input span
	// used by [Smooth].
	CatmullRomDiv = 4

	bendX  = 5.0
	bendY  = 3.0
	tremor = 0.5
)

// NaturalStroke synthesizes a slightly bent stroke from a to b.
// The control point of the underlying quadratic Bézier curve is the
// midpoint of a and b, moved by up to 5 pixels horizontally and 3
// pixels vertically.  Interior samples get an additional tremor of up
// to half a pixel.  The end points are exactly a and b.
func NaturalStroke(a, b vec.Vec2, r Rand) []vec.Vec2 {
	mid := a.Add(b).Mul(0.5)
	ctrl := vec.Vec2{
		X: mid.X + uniform(r, -bendX, bendX),
		Y: mid.Y + uniform(r, -bendY, bendY),
	}
	pts := Quadratic(a, ctrl, b, NaturalSteps)
	for i := 1; i < len(pts)-1; i++ {
		pts[i].X += uniform(r, -tremor, tremor)
		pts[i].Y += uniform(r, -tremor, tremor)
	}
	return pts
}

// Smooth applies edge-damped jitter to a pre-authored stroke and then,
// depending on mode, interpolates a spline through the result.
// The first and last point of the output coincide with those of pts.
func Smooth(pts []vec.Vec2, intensity float64, mode style.Smoothing, r Rand) []vec.Vec2 {
	res := Jitter(pts, intensity, r)
	if mode == style.SmoothCatmullRom {
		res = CatmullRom(res, CatmullRomDiv)
	}
	return res
}
