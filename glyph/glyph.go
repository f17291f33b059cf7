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

// Package glyph provides the pen strokes for each supported character.
//
// Strokes are given on a design grid which is about 22 units wide and
// 46 units high, with y growing downwards and the baseline at y=36.
// The built-in table is stored in glyphs.yaml and embedded into the
// binary.
package glyph

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"
)

// Stroke is one continuous pen movement, in design grid coordinates.
type Stroke []vec.Vec2

//go:embed glyphs.yaml
var builtinData []byte

// Table maps characters to their strokes.
// A Table is immutable and safe for concurrent use.
type Table struct {
	glyphs map[rune][]Stroke
}

var builtin = sync.OnceValue(func() *Table {
	t, err := Decode(builtinData)
	if err != nil {
		panic("glyph: corrupt built-in table: " + err.Error())
	}
	return t
})

// Builtin returns the embedded stroke table.
func Builtin() *Table {
	return builtin()
}

// Strokes returns the strokes for r from the built-in table.
func Strokes(r rune) []Stroke {
	return builtin().Strokes(r)
}

// Read decodes a stroke table in the format of glyphs.yaml.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes a stroke table in the format of glyphs.yaml.
func Decode(data []byte) (*Table, error) {
	var raw map[string][][][]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}

	t := &Table{glyphs: make(map[rune][]Stroke, len(raw))}
	for key, strokes := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("glyph: key %q is not a single character", key)
		}
		glyph := make([]Stroke, 0, len(strokes))
		for i, pts := range strokes {
			stroke := make(Stroke, len(pts))
			for j, xy := range pts {
				if len(xy) != 2 {
					return nil, fmt.Errorf("glyph %q: stroke %d point %d has %d coordinates",
						key, i, j, len(xy))
				}
				stroke[j] = vec.Vec2{X: xy[0], Y: xy[1]}
			}
			glyph = append(glyph, stroke)
		}
		t.glyphs[r] = glyph
	}
	return t, nil
}

// Strokes returns the strokes used to draw r.
//
// If r has no entry, the lower case form of r is tried.  If that has
// no entry either, the result is empty and the character is drawn as a
// blank advance.  The returned slices are copies and may be modified
// by the caller.
func (t *Table) Strokes(r rune) []Stroke {
	glyph, ok := t.lookup(r)
	if !ok || len(glyph) == 0 {
		return nil
	}
	res := make([]Stroke, len(glyph))
	for i, s := range glyph {
		res[i] = slices.Clone(s)
	}
	return res
}

func (t *Table) lookup(r rune) ([]Stroke, bool) {
	if glyph, ok := t.glyphs[r]; ok {
		return glyph, true
	}
	glyph, ok := t.glyphs[unicode.ToLower(r)]
	return glyph, ok
}

// Has reports whether r, or its lower case form, has an entry.
// This is true for the space character, even though it has no strokes.
func (t *Table) Has(r rune) bool {
	_, ok := t.lookup(r)
	return ok
}

// Runes returns the characters with an entry, in increasing order.
func (t *Table) Runes() []rune {
	res := make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}

// Entry returns the point where the pen first touches the paper when
// drawing r.  The second return value is false for blank characters.
func (t *Table) Entry(r rune) (vec.Vec2, bool) {
	glyph, _ := t.lookup(r)
	for _, s := range glyph {
		if len(s) > 0 {
			return s[0], true
		}
	}
	return vec.Vec2{}, false
}

// Exit returns the point where the pen leaves the paper after drawing r.
// The second return value is false for blank characters.
func (t *Table) Exit(r rune) (vec.Vec2, bool) {
	glyph, _ := t.lookup(r)
	for i := len(glyph) - 1; i >= 0; i-- {
		if s := glyph[i]; len(s) > 0 {
			return s[len(s)-1], true
		}
	}
	return vec.Vec2{}, false
}
