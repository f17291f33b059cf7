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

// Package pdfsurface writes handwriting into a single-page PDF file.
//
// Pen segments become PDF line drawing operators, so the output is
// resolution independent.  One pixel of the page corresponds to one
// PDF point.
package pdfsurface

import (
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// Surface is a [raster.Surface] which draws onto a PDF page.
// Call Close to write the file.
//
// [raster.Surface]: https://pkg.go.dev/seehuhn.de/go/handwrite/raster#Surface
type Surface struct {
	page *document.Page
	w, h float64

	stroke imgcolor.RGBA
	width  float64
	fresh  bool
}

// Create starts a new PDF file with a page of the given size in pixels.
func Create(fname string, width, height int) (*Surface, error) {
	w, h := float64(width), float64(height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// page coordinates have the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	return &Surface{page: page, w: w, h: h, fresh: true}, nil
}

// Fill implements [raster.Surface].
func (s *Surface) Fill(c imgcolor.RGBA) {
	s.page.SetFillColor(rgb(c))
	s.page.Rectangle(0, 0, s.w, s.h)
	s.page.Fill()
}

// DrawLine implements [raster.Surface].
func (s *Surface) DrawLine(p1, p2 vec.Vec2, c imgcolor.RGBA, width float64) {
	if s.fresh || c != s.stroke {
		s.page.SetStrokeColor(rgb(c))
		s.stroke = c
	}
	if s.fresh || width != s.width {
		s.page.SetLineWidth(width)
		s.width = width
	}
	s.fresh = false

	s.page.MoveTo(p1.X, p1.Y)
	s.page.LineTo(p2.X, p2.Y)
	s.page.Stroke()
}

// Close finishes the page and writes the PDF file.
func (s *Surface) Close() error {
	return s.page.Close()
}

// rgb converts an opaque color to the DeviceRGB color space.
// Transparency is ignored.
func rgb(c imgcolor.RGBA) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.DeviceRGB{1, 1, 1}
	}
	// un-premultiply
	return color.DeviceRGB{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
	}
}
