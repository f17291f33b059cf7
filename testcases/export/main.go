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

// Command export renders all test cases to PNG files.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/handwrite"
	"seehuhn.de/go/handwrite/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(refDir, name+".png")
			if err := export(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testcases.TestCase, pngPath string) error {
	img, err := handwrite.NewSeeded(tc.Seed).Render(tc.Text, tc.Style, tc.Page)
	if err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
