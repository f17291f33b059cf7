package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/handwrite/preset"
	"seehuhn.de/go/handwrite/style"
)

const sampleConfig = `preset: elegant
style:
  slant_angle: 5
  pen_color: "#1a1a60"
  connect: true
  smoothing: catmull-rom
page:
  width: 1200
  background: "255,255,240"
`

func TestDecodeConfig(t *testing.T) {
	cfg, err := decodeConfig(strings.NewReader(sampleConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, preset.Elegant, cfg.Preset)
	assert.Equal(t, 5.0, cfg.Style.SlantDegrees)
	assert.Equal(t, 1.1, cfg.Style.SizeScale, "preset value is kept")
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x1a, B: 0x60, A: 255}, cfg.Style.PenColor)
	assert.True(t, cfg.Style.Connect)
	assert.Equal(t, style.SmoothCatmullRom, cfg.Style.Smoothing)

	assert.Equal(t, 1200, cfg.Page.Width)
	assert.Equal(t, style.DefaultPageHeight, cfg.Page.Height)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 240, A: 255}, cfg.Page.Background)
}

func TestDecodeConfigPresetOverride(t *testing.T) {
	p := preset.QuickNotes
	cfg, err := decodeConfig(strings.NewReader(sampleConfig), &p)
	require.NoError(t, err)
	assert.Equal(t, preset.QuickNotes, cfg.Preset)
	assert.Equal(t, 3, cfg.Style.PenThickness)
	assert.Equal(t, 5.0, cfg.Style.SlantDegrees, "file values still apply")
}

func TestDecodeConfigZeroSpacing(t *testing.T) {
	text := "style:\n  letter_spacing: 0\n  word_spacing: 0\n"
	cfg, err := decodeConfig(strings.NewReader(text), nil)
	require.NoError(t, err)

	st := cfg.Style.WithDefaults()
	assert.Zero(t, st.LetterSpacing)
	assert.Zero(t, st.WordSpacing)
	assert.NoError(t, st.Validate())
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, text := range []string{
		"preset: fancy\n",
		"style:\n  pen_color: blue\n",
		"page:\n  background: \"#12\"\n",
		"style:\n  smoothing: bezier\n",
		"style: [1, 2]\n",
	} {
		_, err := decodeConfig(strings.NewReader(text), nil)
		assert.Error(t, err, text)
	}
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	fname := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(sampleConfig), 0644))
	cfg, err = readConfig(fname, nil)
	require.NoError(t, err)
	assert.Equal(t, preset.Elegant, cfg.Preset)

	_, err = readConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
