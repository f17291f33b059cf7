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

// Command genpdf writes all test cases as PDF files.
// If Ghostscript is installed, the PDF files are also rendered to PNG,
// for comparison with the output of the raster package.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/handwrite"
	"seehuhn.de/go/handwrite/pdfsurface"
	"seehuhn.de/go/handwrite/testcases"
)

const pdfDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(pdfDir, name+".pdf")
			pngPath := filepath.Join(pdfDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if haveGS {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// validate before the file is created
	if err := tc.Page.Validate(); err != nil {
		return err
	}

	s, err := pdfsurface.Create(pdfPath, tc.Page.Width, tc.Page.Height)
	if err != nil {
		return err
	}
	_, err = handwrite.NewSeeded(tc.Seed).RenderTo(s, tc.Text, tc.Style, tc.Page)
	if err2 := s.Close(); err == nil {
		err = err2
	}
	return err
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
