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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/handwrite/preset"
	"seehuhn.de/go/handwrite/style"
)

// config is the contents of a configuration file.
//
// Example:
//
//	preset: elegant
//	style:
//	  slant_angle: 5
//	  pen_color: "#1a1a60"
//	  connect: true
//	page:
//	  width: 1200
//	  background: "255,255,240"
type config struct {
	Preset preset.Preset
	Style  style.Style
	Page   style.Page
}

// colors holds the color fields, which are written as strings.
type colors struct {
	Style struct {
		PenColor string `yaml:"pen_color"`
	} `yaml:"style"`
	Page struct {
		Background string `yaml:"background"`
	} `yaml:"page"`
}

func defaultConfig() *config {
	return &config{
		Preset: preset.Casual,
		Style:  preset.Casual.Style(),
		Page:   style.DefaultPage(),
	}
}

// readConfig reads a configuration file.  An empty file name gives the
// defaults.  If p is not nil, it replaces the preset given in the file.
func readConfig(fname string, p *preset.Preset) (*config, error) {
	if fname == "" {
		cfg := defaultConfig()
		if p != nil {
			cfg.setPreset(*p)
		}
		return cfg, nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := decodeConfig(f, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// decodeConfig reads a configuration from r.  Fields which are not
// given keep the values of the preset.
func decodeConfig(r io.Reader, p *preset.Preset) (*config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// the preset determines the starting values, so it is read first
	var head struct {
		Preset *preset.Preset `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if p == nil {
		p = head.Preset
	}
	cfg := defaultConfig()
	if p != nil {
		cfg.setPreset(*p)
	}

	body := struct {
		Style *style.Style `yaml:"style"`
		Page  *style.Page  `yaml:"page"`
	}{&cfg.Style, &cfg.Page}
	if err := yaml.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	var c colors
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Style.PenColor != "" {
		cfg.Style.PenColor, err = style.ParseColor(c.Style.PenColor)
		if err != nil {
			return nil, err
		}
	}
	if c.Page.Background != "" {
		cfg.Page.Background, err = style.ParseColor(c.Page.Background)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// setPreset replaces the style by the style of p.
func (cfg *config) setPreset(p preset.Preset) {
	cfg.Preset = p
	cfg.Style = p.Style()
}
