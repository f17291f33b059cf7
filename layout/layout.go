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

// Package layout positions characters on the page.
//
// Text is split into words at white space.  Words are never split
// across lines: a word which does not fit on the current line starts a
// new one.  All widths are estimated from fixed per-character advances,
// no glyph geometry is measured.
//
// Layout never fails.  Text which does not fit on the page continues
// below the bottom edge.
package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/handwrite/style"
)

// tracer traces with key 'handwrite.layout'.
func tracer() tracing.Trace {
	return tracing.Select("handwrite.layout")
}

// Nominal sizes in pixels at scale 1.
const (
	// BaseFontSize is the line advance before the line height factor.
	BaseFontSize = 32

	// CharAdvance is the horizontal advance of one character.
	CharAdvance = 24

	// UpperFactor widens the advance of upper case characters.
	UpperFactor = 1.2

	// WordGapFactor scales the word spacing added after each word.
	WordGapFactor = 0.7
)

// NoBreakSpace keeps two words together.  It is drawn as a word space.
const NoBreakSpace = '\u00a0'

// Glyph is one character placed on the page.
type Glyph struct {
	Char  rune
	Pos   vec.Vec2 // top left corner of the glyph's design grid
	Scale float64
	Line  int // index of the line, counting from 0
	Word  int // index of the word in the whole text
}

// Cursor is the current pen position.
type Cursor struct {
	X, Y float64
}

// Engine performs the layout for one style and page.
// An Engine is not safe for concurrent use.
type Engine struct {
	style style.Style
	page  style.Page

	cur   Cursor
	line  int
	word  int
	glyph []Glyph
}

// New returns an Engine for the given style and page.  The style and
// page are used as given; the caller is responsible for defaults and
// validation.
func New(st style.Style, pg style.Page) *Engine {
	return &Engine{style: st, page: pg}
}

// Layout places the characters of text.
func Layout(text string, st style.Style, pg style.Page) []Glyph {
	return New(st, pg).Run(text)
}

// LineAdvance returns the vertical distance between lines.
func LineAdvance(st style.Style) float64 {
	return BaseFontSize * st.SizeScale * st.LineHeight
}

// WordWidth returns the estimated width of a word, used to decide
// whether the word fits on the current line.
func WordWidth(word string, scale float64) float64 {
	return float64(utf8.RuneCountInString(word)) * CharAdvance * scale
}

// Advance returns the horizontal distance from the character r to the
// next character of the same word.
func Advance(r rune, st style.Style) float64 {
	if r == NoBreakSpace {
		return st.WordSpacing * st.SizeScale
	}
	w := CharAdvance * st.SizeScale
	if unicode.IsUpper(r) {
		w *= UpperFactor
	}
	return w + st.LetterSpacing*st.SizeScale
}

// Run lays out text, starting at the top left corner of the writable
// area.  The returned slice is owned by the caller.
func (e *Engine) Run(text string) []Glyph {
	e.cur = Cursor{X: e.page.MarginLeft, Y: e.page.MarginTop}
	e.line = 0
	e.word = 0
	e.glyph = nil

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			e.newline()
		}
		for _, word := range strings.FieldsFunc(line, isBreak) {
			e.place(word)
		}
	}

	tracer().Debugf("layout: %d glyphs on %d lines", len(e.glyph), e.Lines())
	return e.glyph
}

// Cursor returns the pen position after the last call to Run.
func (e *Engine) Cursor() Cursor {
	return e.cur
}

// Lines returns the number of lines used by the last call to Run.
func (e *Engine) Lines() int {
	return e.line + 1
}

func (e *Engine) newline() {
	e.cur.Y += LineAdvance(e.style)
	e.cur.X = e.page.MarginLeft
	e.line++
}

func (e *Engine) place(word string) {
	scale := e.style.SizeScale
	_, right := e.page.Writable()
	width := WordWidth(word, scale)
	if e.cur.X+width > right && e.cur.X != e.page.MarginLeft {
		tracer().Debugf("layout: wrap before %q at x=%.1f", word, e.cur.X)
		e.newline()
	}

	for _, r := range word {
		if r != NoBreakSpace {
			e.glyph = append(e.glyph, Glyph{
				Char:  r,
				Pos:   vec.Vec2{X: e.cur.X, Y: e.cur.Y},
				Scale: scale,
				Line:  e.line,
				Word:  e.word,
			})
		}
		e.cur.X += Advance(r, e.style)
	}
	e.cur.X += e.style.WordSpacing * scale * WordGapFactor
	e.word++
}

func isBreak(r rune) bool {
	return r != NoBreakSpace && unicode.IsSpace(r)
}
