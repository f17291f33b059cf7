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

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// pngHeaderSize is the length of the PNG signature plus the IHDR chunk.
const pngHeaderSize = 8 + 4 + 4 + 13 + 4

// writePNG writes img to the file fname.  If dpi is positive, the
// resolution is recorded in the file.
func writePNG(fname string, img image.Image, dpi float64) error {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	data := buf.Bytes()
	if dpi > 0 {
		var err error
		data, err = setResolution(data, dpi)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(fname, data, 0644)
}

// setResolution inserts a pHYs chunk after the IHDR chunk of an encoded
// PNG image.
func setResolution(data []byte, dpi float64) ([]byte, error) {
	if len(data) < pngHeaderSize || string(data[12:16]) != "IHDR" {
		return nil, errors.New("malformed PNG data")
	}

	ppm := math.Round(dpi / 0.0254)
	if !(ppm >= 0 && ppm <= math.MaxUint32) {
		return nil, fmt.Errorf("resolution %g dpi out of range", dpi)
	}
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], uint32(ppm))
	binary.BigEndian.PutUint32(chunk[12:], uint32(ppm))
	chunk[16] = 1 // unit is the metre
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))

	res := make([]byte, 0, len(data)+len(chunk))
	res = append(res, data[:pngHeaderSize]...)
	res = append(res, chunk...)
	res = append(res, data[pngHeaderSize:]...)
	return res, nil
}

// preview scales img down to the given width, keeping the aspect ratio.
// Images which are already narrow enough are returned unchanged.
func preview(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
