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

// Package handwrite renders plain text so that it looks handwritten.
//
// Every character is drawn from a table of pen strokes.  The strokes
// are scaled and slanted, displaced by a small random tremor, and drawn
// with a pen whose width varies slightly from segment to segment.
// Words are wrapped at the right margin of a virtual page.
//
// Use [NewSeeded] to get reproducible output:
//
//	r := handwrite.NewSeeded(1)
//	img, err := r.Render("hello world", style.Default(), style.DefaultPage())
package handwrite

//go:generate go run ./testcases/export

import (
	"math/rand/v2"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/handwrite/curve"
	"seehuhn.de/go/handwrite/glyph"
	"seehuhn.de/go/handwrite/layout"
	"seehuhn.de/go/handwrite/place"
	"seehuhn.de/go/handwrite/raster"
	"seehuhn.de/go/handwrite/style"
)

// tracer traces with key 'handwrite'.
func tracer() tracing.Trace {
	return tracing.Select("handwrite")
}

// Renderer turns text into handwriting.
//
// A Renderer holds no state which changes during rendering, and is
// safe for concurrent use.
type Renderer struct {
	// Glyphs is the stroke table.  If nil, the built-in table is used.
	Glyphs *glyph.Table

	seed   uint64
	seeded bool
}

// Stats summarizes one rendering pass.
type Stats struct {
	Glyphs     int // characters placed, including blank ones
	Strokes    int // glyph strokes drawn
	Connectors int // strokes joining adjacent letters
	Segments   int // straight pen segments, not counting overlays
	Lines      int // text lines used, including empty ones
}

// New returns a Renderer which draws from a randomly seeded generator,
// so that every call gives slightly different output.
func New() *Renderer {
	return &Renderer{}
}

// NewSeeded returns a Renderer for which every call with the same
// arguments gives identical output.
func NewSeeded(seed uint64) *Renderer {
	return &Renderer{seed: seed, seeded: true}
}

// pcgStream is mixed into the seed to form the second PCG state word.
const pcgStream = 0x9e3779b97f4a7c15

func (r *Renderer) newRand() *rand.Rand {
	if r.seeded {
		return rand.New(rand.NewPCG(r.seed, r.seed^pcgStream))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (r *Renderer) table() *glyph.Table {
	if r.Glyphs != nil {
		return r.Glyphs
	}
	return glyph.Builtin()
}

// Render draws text onto a new image of the page size.
//
// Unset style fields and an unset page background take their default
// values.  An error wrapping [style.ErrInvalidConfig] is returned if the
// style or the page cannot be rendered.
func (r *Renderer) Render(text string, st style.Style, pg style.Page) (*raster.Image, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	img := raster.NewImage(pg.Width, pg.Height)
	if _, err := r.RenderTo(img, text, st, pg); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderTo draws text onto the surface s.  The surface is first filled
// with the page background.  Nothing is drawn if the configuration is
// invalid.
func (r *Renderer) RenderTo(s raster.Surface, text string, st style.Style, pg style.Page) (Stats, error) {
	st = st.WithDefaults()
	if err := st.Validate(); err != nil {
		return Stats{}, err
	}
	pg = pg.WithDefaults()
	if err := pg.Validate(); err != nil {
		return Stats{}, err
	}

	rng := r.newRand()
	tab := r.table()
	pen := &raster.Pen{
		Thickness: st.PenThickness,
		Color:     st.PenColor,
		Pressure:  !st.NoPressure,
		Rand:      rng,
	}

	s.Fill(pg.Background)

	eng := layout.New(st, pg)
	glyphs := eng.Run(text)
	stats := Stats{Glyphs: len(glyphs)}
	if text != "" {
		stats.Lines = eng.Lines()
	}

	var prev *layout.Glyph
	for i := range glyphs {
		g := &glyphs[i]

		if st.Connect && prev != nil && prev.Word == g.Word && prev.Line == g.Line {
			if from, to, ok := connection(tab, prev, g, st.SlantDegrees); ok {
				stats.Segments += pen.Draw(s, curve.NaturalStroke(from, to, rng))
				stats.Connectors++
			}
		}
		prev = g

		for _, stroke := range tab.Strokes(g.Char) {
			if len(stroke) < 2 {
				continue
			}
			pts := place.Place(stroke, g.Pos, g.Scale, st.SlantDegrees)
			pts = curve.Smooth(pts, st.Variation, st.Smoothing, rng)
			stats.Segments += pen.Draw(s, pts)
			stats.Strokes++
		}
	}

	tracer().Infof("rendered %d glyphs, %d strokes, %d segments on %d lines",
		stats.Glyphs, stats.Strokes, stats.Segments, stats.Lines)
	return stats, nil
}

// connection returns the page positions where the pen leaves the glyph
// a and enters the following glyph b.
func connection(tab *glyph.Table, a, b *layout.Glyph, slant float64) (from, to vec.Vec2, ok bool) {
	exit, ok1 := tab.Exit(a.Char)
	entry, ok2 := tab.Entry(b.Char)
	if !ok1 || !ok2 {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	from = place.Place([]vec.Vec2{exit}, a.Pos, a.Scale, slant)[0]
	to = place.Place([]vec.Vec2{entry}, b.Pos, b.Scale, slant)[0]
	return from, to, true
}
