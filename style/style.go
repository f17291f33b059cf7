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

// Package style holds the configuration values consumed by the
// handwriting pipeline: the pen style and the page geometry.
//
// Zero values mean "not set".  Use [Style.WithDefaults] and
// [Page.WithDefaults] to fill in unset fields, and Validate to check
// the result.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// Smoothing selects how pre-authored glyph strokes are interpolated
// after the jitter step.
type Smoothing int

const (
	// SmoothNone draws the jittered control points directly.
	SmoothNone Smoothing = iota

	// SmoothCatmullRom inserts points on a Catmull-Rom spline through
	// the jittered control points.
	SmoothCatmullRom
)

func (s Smoothing) String() string {
	switch s {
	case SmoothNone:
		return "none"
	case SmoothCatmullRom:
		return "catmull-rom"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Smoothing) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*s = SmoothNone
	case "catmull-rom", "catmullrom":
		*s = SmoothCatmullRom
	default:
		return fmt.Errorf("%w: unknown smoothing %q", ErrInvalidConfig, text)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Smoothing) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Style describes the pen and the letter proportions.
type Style struct {
	// PenThickness is the stroke width in pixels.
	PenThickness int `yaml:"pen_thickness"`

	// SizeScale scales the glyphs and all advances.
	SizeScale float64 `yaml:"size_scale"`

	// SlantDegrees is the signed shear angle.
	SlantDegrees float64 `yaml:"slant_angle"`

	// Variation is the jitter magnitude in [0, 1].  Zero disables jitter.
	Variation float64 `yaml:"variation"`

	// LineHeight multiplies the base font size to give the line advance.
	LineHeight float64 `yaml:"line_height"`

	// PenColor is the ink color.  A zero alpha value means "not set".
	PenColor color.RGBA `yaml:"-"`

	// LetterSpacing and WordSpacing are extra advances in pixels at
	// scale 1.
	LetterSpacing float64 `yaml:"letter_spacing"`
	WordSpacing   float64 `yaml:"word_spacing"`

	Smoothing Smoothing `yaml:"smoothing"`

	// Connect joins adjacent letters of a word with a curved stroke.
	Connect bool `yaml:"connect"`

	// NoPressure disables the thickness jitter and the lighter overlay
	// pass.
	NoPressure bool `yaml:"no_pressure"`
}

// Page describes the virtual sheet of paper.
type Page struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	MarginLeft  float64    `yaml:"margin_left"`
	MarginTop   float64    `yaml:"margin_top"`
	MarginRight float64    `yaml:"margin_right"`
	Background  color.RGBA `yaml:"-"`
}

// Default values, taken from the reference settings of the tool.
const (
	DefaultPenThickness  = 2
	DefaultSizeScale     = 1.0
	DefaultVariation     = 0.3
	DefaultLineHeight    = 1.5
	DefaultLetterSpacing = 2
	DefaultWordSpacing   = 15

	DefaultPageWidth   = 900
	DefaultPageHeight  = 650
	DefaultMarginLeft  = 40
	DefaultMarginTop   = 60
	DefaultMarginRight = 40
)

var (
	// DefaultPenColor is a dark blue-black.
	DefaultPenColor = color.RGBA{R: 20, G: 20, B: 40, A: 255}

	// DefaultBackground is a slightly warm white.
	DefaultBackground = color.RGBA{R: 255, G: 255, B: 252, A: 255}
)

// Default returns the default pen style.
func Default() Style {
	return Style{
		PenThickness:  DefaultPenThickness,
		SizeScale:     DefaultSizeScale,
		Variation:     DefaultVariation,
		LineHeight:    DefaultLineHeight,
		PenColor:      DefaultPenColor,
		LetterSpacing: DefaultLetterSpacing,
		WordSpacing:   DefaultWordSpacing,
	}
}

// DefaultPage returns the default page geometry.
func DefaultPage() Page {
	return Page{
		Width:       DefaultPageWidth,
		Height:      DefaultPageHeight,
		MarginLeft:  DefaultMarginLeft,
		MarginTop:   DefaultMarginTop,
		MarginRight: DefaultMarginRight,
		Background:  DefaultBackground,
	}
}

// WithDefaults returns a copy of s where every unset field has its
// default value.  Fields for which zero is a valid setting (Variation,
// SlantDegrees, LetterSpacing and WordSpacing) are never replaced; start
// from [Default] to get the default spacings.
func (s Style) WithDefaults() Style {
	if s.PenThickness == 0 {
		s.PenThickness = DefaultPenThickness
	}
	if s.SizeScale == 0 {
		s.SizeScale = DefaultSizeScale
	}
	if s.LineHeight == 0 {
		s.LineHeight = DefaultLineHeight
	}
	if s.PenColor.A == 0 {
		s.PenColor = DefaultPenColor
	}
	return s
}

// Validate checks that the style can be rendered.
func (s Style) Validate() error {
	if s.PenThickness < 1 {
		return fmt.Errorf("%w: pen thickness %d < 1", ErrInvalidConfig, s.PenThickness)
	}
	if !(s.SizeScale > 0) || math.IsInf(s.SizeScale, 0) {
		return fmt.Errorf("%w: size scale %g", ErrInvalidConfig, s.SizeScale)
	}
	if !(s.LineHeight > 0) || math.IsInf(s.LineHeight, 0) {
		return fmt.Errorf("%w: line height %g", ErrInvalidConfig, s.LineHeight)
	}
	if !(s.Variation >= 0 && s.Variation <= 1) {
		return fmt.Errorf("%w: variation %g not in [0, 1]", ErrInvalidConfig, s.Variation)
	}
	if math.IsNaN(s.SlantDegrees) || math.Abs(s.SlantDegrees) >= 90 {
		return fmt.Errorf("%w: slant angle %g", ErrInvalidConfig, s.SlantDegrees)
	}
	if s.LetterSpacing < 0 || s.WordSpacing < 0 {
		return fmt.Errorf("%w: negative spacing", ErrInvalidConfig)
	}
	return nil
}

// WithDefaults returns a copy of p with the default background if none
// is set.  The page size and the margins are kept as given: a zero
// size is an error, not a request for the default size.
func (p Page) WithDefaults() Page {
	if p.Background.A == 0 {
		p.Background = DefaultBackground
	}
	return p
}

// Validate checks that the page has a positive size and leaves room
// for writing between the margins.
func (p Page) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: page size %dx%d", ErrInvalidConfig, p.Width, p.Height)
	}
	if p.MarginLeft < 0 || p.MarginTop < 0 || p.MarginRight < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	}
	if p.MarginLeft+p.MarginRight >= float64(p.Width) {
		return fmt.Errorf("%w: margins %g+%g leave no room on a page of width %d",
			ErrInvalidConfig, p.MarginLeft, p.MarginRight, p.Width)
	}
	return nil
}

// Writable returns the horizontal extent available for text.
func (p Page) Writable() (left, right float64) {
	return p.MarginLeft, float64(p.Width) - p.MarginRight
}

// ParseColor parses "#rrggbb", "#rgb" or "r,g,b" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	var r, g, b uint8
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
		}
		r, g, b = uint8(v>>16), uint8(v>>8), uint8(v)
	case strings.HasPrefix(s, "#") && len(s) == 4:
		v, err := strconv.ParseUint(s[1:], 16, 16)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
		}
		r, g, b = uint8(v>>8&0xF)*0x11, uint8(v>>4&0xF)*0x11, uint8(v&0xF)*0x11
	default:
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
		}
		var c [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
			}
			c[i] = uint8(v)
		}
		r, g, b = c[0], c[1], c[2]
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
