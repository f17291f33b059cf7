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

// Package testcases lists sample texts together with the style and page
// they are rendered with.  The samples are used by the tests and by the
// commands which write reference images.
package testcases

import (
	"seehuhn.de/go/handwrite/preset"
	"seehuhn.de/go/handwrite/style"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name  string      // lowercase a-z and _ only
	Text  string      // the text to write
	Style style.Style // the pen style
	Page  style.Page  // the page geometry
	Seed  uint64      // the seed of the random generator
}

// small returns a page which is just big enough for a few short lines.
func small(width, height int) style.Page {
	pg := style.DefaultPage()
	pg.Width = width
	pg.Height = height
	pg.MarginLeft = 20
	pg.MarginTop = 30
	pg.MarginRight = 20
	return pg
}

// with returns the style of preset p, changed by the given function.
func with(p preset.Preset, change func(*style.Style)) style.Style {
	st := p.Style()
	if change != nil {
		change(&st)
	}
	return st
}
