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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  Coverage[i] belongs
// to pixel (xMin+i, y).  The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in pixel coordinates.
type edge struct {
	a, b vec.Vec2
	dxdy float64
}

// Scanner computes the fraction of each pixel covered by a polygon,
// using the nonzero winding rule.  Buffers are kept between calls, so
// a Scanner should be reused.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	// Clip restricts the output to an integer-aligned pixel rectangle.
	Clip rect.Rect

	// Cap selects the shape of the segment ends drawn by [Scanner.Segment].
	Cap graphics.LineCapStyle

	// Flatness is the maximal distance, in pixels, between a round cap
	// and its polygonal approximation.
	Flatness float64

	edges []edge
	bbox  rect.Rect

	cover   []float32
	area    []float32
	touched []bool

	outline []vec.Vec2
}

// NewScanner returns a Scanner for the given clip rectangle, drawing
// round segment ends.
func NewScanner(clip rect.Rect) *Scanner {
	return &Scanner{
		Clip:     clip,
		Cap:      graphics.LineCapRound,
		Flatness: defaultFlatness,
	}
}

// Fill computes the coverage of the area enclosed by p.  Curves are
// flattened to within s.Flatness; open subpaths are closed implicitly.
func (s *Scanner) Fill(p path.Path, emit EmitFunc) {
	s.reset()

	var start, cur vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				s.addEdge(cur, start)
			}
			start, cur = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			s.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			s.flattenQuadratic(cur, pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			s.flattenCubic(cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			s.addEdge(cur, start)
			cur = start
			open = false
		}
	}
	if open {
		s.addEdge(cur, start)
	}
	s.scan(emit)
}

// flattenQuadratic adds edges approximating the quadratic Bézier curve
// from p0 to p2 with control point p1.
func (s *Scanner) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// the distance between curve and chord is at most |p0 - 2p1 + p2|/4
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > s.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / s.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		s.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic adds edges approximating the cubic Bézier curve from p0
// to p3 with control points p1 and p2.
func (s *Scanner) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	// Wang's formula
	m := max(p0.Sub(p1.Mul(2)).Add(p2).Length(), p1.Sub(p2.Mul(2)).Add(p3).Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * s.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		if i == n {
			pt = p3
		}
		s.addEdge(prev, pt)
		prev = pt
	}
}

// FillPolygon computes the coverage of the closed polygon with the
// given vertices.
func (s *Scanner) FillPolygon(poly []vec.Vec2, emit EmitFunc) {
	s.reset()
	s.addPolygon(poly)
	s.scan(emit)
}

func (s *Scanner) reset() {
	s.edges = s.edges[:0]
	s.bbox = rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
}

func (s *Scanner) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	prev := poly[len(poly)-1]
	for _, p := range poly {
		s.addEdge(prev, p)
		prev = p
	}
}

func (s *Scanner) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	s.edges = append(s.edges, edge{a: a, b: b, dxdy: (b.X - a.X) / dy})

	s.bbox.LLx = min(s.bbox.LLx, a.X, b.X)
	s.bbox.URx = max(s.bbox.URx, a.X, b.X)
	s.bbox.LLy = min(s.bbox.LLy, a.Y, b.Y)
	s.bbox.URy = max(s.bbox.URy, a.Y, b.Y)
}

// scan accumulates all edges into a 2D cover/area buffer covering the
// bounding box, then integrates and emits each touched row.
//
// For every pixel, cover holds the signed height of the edge pieces
// crossing the pixel, and area holds the same heights weighted by the
// part of the pixel to the right of the crossing.  Summing cover from
// the left and adding area gives the signed coverage.
func (s *Scanner) scan(emit EmitFunc) {
	if len(s.edges) == 0 {
		return
	}

	x0 := max(int(math.Floor(s.bbox.LLx)), int(s.Clip.LLx))
	x1 := min(int(math.Floor(s.bbox.URx))+1, int(s.Clip.URx))
	y0 := max(int(math.Floor(s.bbox.LLy)), int(s.Clip.LLy))
	y1 := min(int(math.Floor(s.bbox.URy))+1, int(s.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	w, h := x1-x0, y1-y0

	s.cover = slices.Grow(s.cover[:0], w*h)[:w*h]
	s.area = slices.Grow(s.area[:0], w*h)[:w*h]
	s.touched = slices.Grow(s.touched[:0], h)[:h]
	clear(s.cover)
	clear(s.area)
	clear(s.touched)

	for i := range s.edges {
		e := &s.edges[i]
		top := max(int(math.Floor(min(e.a.Y, e.b.Y))), y0)
		bot := min(int(math.Floor(max(e.a.Y, e.b.Y)))+1, y1)
		for y := top; y < bot; y++ {
			row := (y - y0) * w
			span := cells{
				cover: s.cover[row : row+w],
				area:  s.area[row : row+w],
				x0:    x0,
			}
			span.add(e, y)
			s.touched[y-y0] = true
		}
	}

	for row := range h {
		if !s.touched[row] {
			continue
		}
		cov := s.cover[row*w : (row+1)*w]
		integrate(cov, s.area[row*w:(row+1)*w])
		if lo, hi, ok := nonZeroRange(cov); ok {
			emit(y0+row, x0+lo, cov[lo:hi])
		}
	}
}

// cells is one pixel row of the accumulation buffer, starting at pixel x0.
type cells struct {
	cover, area []float32
	x0          int
}

// put records an edge piece of signed height dh which crosses pixel
// column px at horizontal position x.  Pieces left of the row start
// count as fully covering the first pixel.
func (c cells) put(px int, x, dh float64) {
	i := px - c.x0
	switch {
	case i < 0:
		c.cover[0] += float32(dh)
		c.area[0] += float32(dh)
	case i < len(c.cover):
		c.cover[i] += float32(dh)
		c.area[i] += float32(dh * (1 - (x - float64(px))))
	}
}

// add adds the part of e inside scanline [y, y+1).
func (c cells) add(e *edge, y int) {
	yTop := max(float64(y), min(e.a.Y, e.b.Y))
	yBot := min(float64(y+1), max(e.a.Y, e.b.Y))
	if yBot <= yTop {
		return
	}
	sign := 1.0
	if e.b.Y < e.a.Y {
		sign = -1
	}
	xAt := func(y float64) float64 { return e.a.X + e.dxdy*(y-e.a.Y) }

	xTop, xBot := xAt(yTop), xAt(yBot)
	pxLo := int(math.Floor(min(xTop, xBot)))
	pxHi := int(math.Floor(max(xTop, xBot)))
	if pxLo-c.x0 >= len(c.cover) {
		return
	}
	if pxHi < c.x0 {
		c.put(c.x0-1, 0, sign*(yBot-yTop))
		return
	}
	if pxLo == pxHi {
		c.put(pxLo, xAt((yTop+yBot)/2), sign*(yBot-yTop))
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	yAt := func(x float64) float64 { return e.a.Y + dydx*(x-e.a.X) }
	for px := pxLo; px <= pxHi; px++ {
		ya, yb := yAt(float64(px)), yAt(float64(px+1))
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		c.put(px, xAt((lo+hi)/2), sign*(hi-lo))
	}
}

// integrate turns cover/area sums into coverage values in [0, 1].
// The result overwrites cover.
func integrate(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		v := acc + area[i]
		acc += c
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// nonZeroRange returns the smallest range [lo, hi) containing all
// non-zero entries of cov.
func nonZeroRange(cov []float32) (lo, hi int, ok bool) {
	hi = len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	return lo, hi, lo < hi
}

const (
	// defaultFlatness is small, since pen tips are only a few pixels wide.
	defaultFlatness = 0.1

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
)
