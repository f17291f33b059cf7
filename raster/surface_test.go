package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestImageFill(t *testing.T) {
	img := NewImage(5, 3)
	bg := color.RGBA{R: 255, G: 255, B: 252, A: 255}
	img.Fill(bg)
	for y := range 3 {
		for x := range 5 {
			assert.Equal(t, bg, img.RGBAAt(x, y))
		}
	}
}

func TestImageDrawLine(t *testing.T) {
	img := NewImage(10, 10)
	img.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetCap(graphics.LineCapButt)

	ink := color.RGBA{R: 20, G: 20, B: 40, A: 255}
	img.DrawLine(vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 8, Y: 5}, ink, 2)

	assert.Equal(t, ink, img.RGBAAt(4, 4))
	assert.Equal(t, ink, img.RGBAAt(7, 5))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(4, 7))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(9, 5))
}

func TestImagePartialCoverageBlends(t *testing.T) {
	img := NewImage(4, 4)
	img.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetCap(graphics.LineCapButt)

	// covers the lower half of row 1
	img.DrawLine(vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 4, Y: 2}, color.RGBA{A: 255}, 1)
	c := img.RGBAAt(1, 1)
	assert.InDelta(t, 128, int(c.R), 1)
	assert.Equal(t, uint8(255), c.A)
}

func TestImageClipsOutside(t *testing.T) {
	img := NewImage(4, 4)
	assert.NotPanics(t, func() {
		img.DrawLine(vec.Vec2{X: -20, Y: -20}, vec.Vec2{X: 40, Y: 60}, color.RGBA{A: 255}, 3)
		img.DrawLine(vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 120, Y: 100}, color.RGBA{A: 255}, 3)
	})
}

func TestRecorderReplay(t *testing.T) {
	var rec Recorder
	rec.Fill(color.RGBA{R: 1, A: 255})
	rec.DrawLine(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, color.RGBA{G: 2, A: 255}, 3)

	require.Len(t, rec.Ops, 2)
	lines := rec.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3.0, lines[0].Width)

	var dup Recorder
	rec.Replay(&dup)
	assert.Equal(t, rec.Ops, dup.Ops)
}
