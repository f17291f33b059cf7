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

// Package preset provides named writing styles.
package preset

import (
	"fmt"

	"seehuhn.de/go/handwrite/style"
)

// Preset is one of a fixed set of writing styles.
type Preset int

// The available presets.
const (
	CleanNeat Preset = iota
	Casual
	Elegant
	QuickNotes

	numPresets
)

type info struct {
	key, name, description string

	thickness int
	scale     float64
	slant     float64
	variation float64
	lineH     float64
}

var presets = [numPresets]info{
	CleanNeat: {
		key: "clean_neat", name: "Clean & Neat",
		description: "Perfect for formal documents and clear communication",
		thickness:   2, scale: 0.9, slant: 0, variation: 0.2, lineH: 1.6,
	},
	Casual: {
		key: "casual", name: "Casual Writing",
		description: "Natural everyday handwriting style",
		thickness:   2, scale: 1.0, slant: 3, variation: 0.3, lineH: 1.5,
	},
	Elegant: {
		key: "elegant", name: "Elegant Script",
		description: "Beautiful script for special occasions",
		thickness:   2, scale: 1.1, slant: 8, variation: 0.25, lineH: 1.7,
	},
	QuickNotes: {
		key: "quick_notes", name: "Quick Notes",
		description: "Fast note-taking style",
		thickness:   3, scale: 0.8, slant: -2, variation: 0.4, lineH: 1.4,
	},
}

// All returns all presets, in the order of their declaration.
func All() []Preset {
	res := make([]Preset, numPresets)
	for i := range res {
		res[i] = Preset(i)
	}
	return res
}

func (p Preset) valid() bool {
	return p >= 0 && p < numPresets
}

// Key returns the short identifier of the preset, e.g. "clean_neat".
func (p Preset) Key() string {
	if !p.valid() {
		return fmt.Sprintf("preset%d", int(p))
	}
	return presets[p].key
}

// Name returns the human readable name of the preset.
func (p Preset) Name() string {
	if !p.valid() {
		return p.Key()
	}
	return presets[p].name
}

func (p Preset) String() string {
	return p.Name()
}

// Description returns a one sentence description of the preset.
func (p Preset) Description() string {
	if !p.valid() {
		return ""
	}
	return presets[p].description
}

// Style returns the writing style of the preset.  Fields which the
// preset does not set have their default values.
func (p Preset) Style() style.Style {
	st := style.Default()
	if !p.valid() {
		return st
	}
	v := presets[p]
	st.PenThickness = v.thickness
	st.SizeScale = v.scale
	st.SlantDegrees = v.slant
	st.Variation = v.variation
	st.LineHeight = v.lineH
	return st
}

// Parse returns the preset with the given key.
func Parse(key string) (Preset, error) {
	for i, v := range presets {
		if v.key == key {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown preset %q", style.ErrInvalidConfig, key)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Preset) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid preset %d", int(p))
	}
	return []byte(p.Key()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Preset) UnmarshalText(text []byte) error {
	q, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
