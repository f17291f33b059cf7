package main

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/handwrite/glyph"
	"seehuhn.de/go/handwrite/preset"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 1, color.RGBA{A: 255})
	return img
}

func TestWritePNGResolution(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, writePNG(fname, testImage(4, 3), 300))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)

	chunk := data[pngHeaderSize:]
	assert.Equal(t, uint32(9), binary.BigEndian.Uint32(chunk))
	assert.Equal(t, "pHYs", string(chunk[4:8]))
	assert.Equal(t, uint32(11811), binary.BigEndian.Uint32(chunk[8:]))
	assert.Equal(t, uint32(11811), binary.BigEndian.Uint32(chunk[12:]))
	assert.Equal(t, byte(1), chunk[16])
	assert.Equal(t, crc32.ChecksumIEEE(chunk[4:17]), binary.BigEndian.Uint32(chunk[17:]))

	// the file is still readable
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
}

func TestWritePNGWithoutResolution(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, writePNG(fname, testImage(4, 3), 0))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "pHYs")
}

func TestSetResolutionMalformed(t *testing.T) {
	_, err := setResolution([]byte("not a png"), 72)
	assert.Error(t, err)
}

func TestWritePNGResolutionOutOfRange(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	for _, dpi := range []float64{1e9, 1e300} {
		assert.Error(t, writePNG(fname, testImage(4, 3), dpi))
	}
	assert.NoFileExists(t, fname)

	// the largest representable resolution is still accepted
	_, err := setResolution(encodePNG(t, testImage(4, 3)), 0xFFFFFFFF*0.0254)
	assert.NoError(t, err)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestPreview(t *testing.T) {
	img := testImage(90, 65)
	small := preview(img, 30)
	assert.Equal(t, image.Rect(0, 0, 30, 21), small.Bounds())

	assert.Same(t, img, preview(img, 200))
	assert.Same(t, img, preview(img, 0))
}

func TestPreviewName(t *testing.T) {
	assert.Equal(t, "out/letter_preview.png", previewName("out/letter.png"))
	assert.Equal(t, "letter_preview", previewName("letter"))
}

func TestPresetTable(t *testing.T) {
	data := presetTable()
	require.Len(t, data, len(preset.All())+1)
	assert.Equal(t, "clean_neat", data[1][0])
	assert.Equal(t, "-2", data[4][4])
}

func TestGlyphList(t *testing.T) {
	list := glyphList(glyph.Builtin())
	assert.Contains(t, list, "abc")
	assert.Contains(t, list, "?")
	assert.NotContains(t, list, " ")
}
