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

// Package raster draws pen strokes onto drawing surfaces.
//
// The [Surface] interface is the only thing the handwriting pipeline
// needs from its output.  [Image] implements it on top of an RGBA pixel
// buffer with anti-aliased coverage from a [Scanner], and [Recorder]
// keeps a list of the calls.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is something the pen can draw on.
type Surface interface {
	// Fill paints the whole surface in the given color.
	Fill(c color.RGBA)

	// DrawLine draws a straight line of the given width from p1 to p2.
	DrawLine(p1, p2 vec.Vec2, c color.RGBA, width float64)
}

// Image is a Surface backed by an RGBA pixel buffer.
// Lines are composited onto the existing pixels with the "over" operator,
// so that overlapping lines blend.
type Image struct {
	*image.RGBA

	scan *Scanner
}

// NewImage allocates a transparent image of the given size.
func NewImage(width, height int) *Image {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Image{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
		scan: NewScanner(clip),
	}
}

// SetCap changes the shape of the line ends.  The default is round.
func (img *Image) SetCap(c graphics.LineCapStyle) {
	img.scan.Cap = c
}

// Fill implements [Surface].
func (img *Image) Fill(c color.RGBA) {
	draw.Draw(img.RGBA, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawLine implements [Surface].  Parts of the line outside the image
// are clipped.
func (img *Image) DrawLine(p1, p2 vec.Vec2, c color.RGBA, width float64) {
	img.scan.Segment(p1, p2, width, func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			blend(row[4*i:4*i+4], c, cov)
		}
	})
}

// blend composites c with the given coverage over the pixel dst.
// Both c and dst are alpha-premultiplied.
func blend(dst []uint8, c color.RGBA, coverage float32) {
	keep := 1 - coverage*float32(c.A)/255
	if keep >= 1 {
		return
	}
	dst[0] = uint8(float32(c.R)*coverage + float32(dst[0])*keep + 0.5)
	dst[1] = uint8(float32(c.G)*coverage + float32(dst[1])*keep + 0.5)
	dst[2] = uint8(float32(c.B)*coverage + float32(dst[2])*keep + 0.5)
	dst[3] = uint8(float32(c.A)*coverage + float32(dst[3])*keep + 0.5)
}

// Op is one recorded surface call.
type Op struct {
	Fill   bool // true for a Fill call, false for DrawLine
	P1, P2 vec.Vec2
	Color  color.RGBA
	Width  float64
}

// Recorder is a Surface which records all calls.
type Recorder struct {
	Ops []Op
}

// Fill implements [Surface].
func (r *Recorder) Fill(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Fill: true, Color: c})
}

// DrawLine implements [Surface].
func (r *Recorder) DrawLine(p1, p2 vec.Vec2, c color.RGBA, width float64) {
	r.Ops = append(r.Ops, Op{P1: p1, P2: p2, Color: c, Width: width})
}

// Lines returns the recorded DrawLine calls.
func (r *Recorder) Lines() []Op {
	var res []Op
	for _, op := range r.Ops {
		if !op.Fill {
			res = append(res, op)
		}
	}
	return res
}

// Replay repeats all recorded calls on s.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		if op.Fill {
			s.Fill(op.Color)
		} else {
			s.DrawLine(op.P1, op.P2, op.Color, op.Width)
		}
	}
}
