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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"seehuhn.de/go/handwrite"
	"seehuhn.de/go/handwrite/glyph"
	"seehuhn.de/go/handwrite/pdfsurface"
	"seehuhn.de/go/handwrite/preset"
)

var cmdRender = &cli.Command{
	Name:      "render",
	Usage:     "write text as handwriting into a PNG or PDF file",
	ArgsUsage: "[text]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "the text to write",
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "read the text from `FILE`, use - for standard input",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "read style and page settings from the YAML file `FILE`",
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "writing style, see the presets command",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for reproducible output",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "write a PNG image to `FILE`",
		},
		&cli.StringFlag{
			Name:  "pdf",
			Usage: "write a PDF file to `FILE`",
		},
		&cli.Float64Flag{
			Name:  "dpi",
			Usage: "resolution recorded in the PNG file",
		},
		&cli.IntFlag{
			Name:  "preview-width",
			Usage: "also write a scaled down copy of this width next to the PNG file",
		},
		&cli.BoolFlag{
			Name:  "connect",
			Usage: "join the letters of each word",
		},
		&cli.StringFlag{
			Name:  "smoothing",
			Usage: "stroke interpolation, none or catmull-rom",
		},
		&cli.BoolFlag{
			Name:  "no-pressure",
			Usage: "draw with constant pen width",
		},
	},
	Action: runRender,
}

func runRender(ctx *cli.Context) error {
	text, err := readText(ctx)
	if err != nil {
		return err
	}

	var p *preset.Preset
	if key := ctx.String("preset"); key != "" {
		q, err := preset.Parse(key)
		if err != nil {
			return err
		}
		p = &q
	}
	cfg, err := readConfig(ctx.String("config"), p)
	if err != nil {
		return err
	}
	if err := applyFlags(ctx, cfg); err != nil {
		return err
	}
	tracer().Infof("preset %s, page %dx%d", cfg.Preset.Key(), cfg.Page.Width, cfg.Page.Height)

	r := handwrite.New()
	if ctx.IsSet("seed") {
		r = handwrite.NewSeeded(ctx.Uint64("seed"))
	}

	pngName := ctx.String("out")
	pdfName := ctx.String("pdf")
	if pngName == "" && pdfName == "" {
		pngName = "handwriting.png"
	}

	if pngName != "" {
		img, err := r.Render(text, cfg.Style, cfg.Page)
		if err != nil {
			return err
		}
		if err := writePNG(pngName, img, ctx.Float64("dpi")); err != nil {
			return err
		}
		tracer().Infof("wrote %s", pngName)

		if w := ctx.Int("preview-width"); w > 0 {
			name := previewName(pngName)
			if err := writePNG(name, preview(img, w), 0); err != nil {
				return err
			}
			tracer().Infof("wrote %s", name)
		}
	}

	if pdfName != "" {
		if err := writePDF(r, pdfName, text, cfg); err != nil {
			return err
		}
		tracer().Infof("wrote %s", pdfName)
	}
	return nil
}

func writePDF(r *handwrite.Renderer, fname, text string, cfg *config) error {
	if err := cfg.Page.Validate(); err != nil {
		return err
	}
	if err := cfg.Style.WithDefaults().Validate(); err != nil {
		return err
	}
	s, err := pdfsurface.Create(fname, cfg.Page.Width, cfg.Page.Height)
	if err != nil {
		return err
	}
	_, err = r.RenderTo(s, text, cfg.Style, cfg.Page)
	if err2 := s.Close(); err == nil {
		err = err2
	}
	return err
}

// readText returns the text given by the --text and --input flags, or
// else by the command line arguments.
func readText(ctx *cli.Context) (string, error) {
	switch {
	case ctx.IsSet("text") && ctx.IsSet("input"):
		return "", errors.New("only one of --text and --input can be used")
	case ctx.IsSet("text"):
		return ctx.String("text"), nil
	case ctx.IsSet("input"):
		var r io.Reader = os.Stdin
		if fname := ctx.String("input"); fname != "-" {
			f, err := os.Open(fname)
			if err != nil {
				return "", err
			}
			defer f.Close()
			r = f
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case ctx.Args().Present():
		return strings.Join(ctx.Args().Slice(), " "), nil
	}
	return "", errors.New("no text given")
}

// applyFlags changes cfg according to the style flags.
func applyFlags(ctx *cli.Context, cfg *config) error {
	if ctx.IsSet("connect") {
		cfg.Style.Connect = ctx.Bool("connect")
	}
	if ctx.IsSet("no-pressure") {
		cfg.Style.NoPressure = ctx.Bool("no-pressure")
	}
	if ctx.IsSet("smoothing") {
		if err := cfg.Style.Smoothing.UnmarshalText([]byte(ctx.String("smoothing"))); err != nil {
			return err
		}
	}
	return nil
}

// previewName returns the file name of the preview image which belongs
// to the image fname.
func previewName(fname string) string {
	ext := filepath.Ext(fname)
	return strings.TrimSuffix(fname, ext) + "_preview" + ext
}

var cmdPresets = &cli.Command{
	Name:  "presets",
	Usage: "list the available writing styles",
	Action: func(ctx *cli.Context) error {
		return pterm.DefaultTable.WithHasHeader().WithData(presetTable()).Render()
	},
}

func presetTable() pterm.TableData {
	data := pterm.TableData{
		{"Key", "Name", "Thickness", "Scale", "Slant", "Variation", "Description"},
	}
	for _, p := range preset.All() {
		st := p.Style()
		data = append(data, []string{
			p.Key(),
			p.Name(),
			fmt.Sprint(st.PenThickness),
			fmt.Sprint(st.SizeScale),
			fmt.Sprint(st.SlantDegrees),
			fmt.Sprint(st.Variation),
			p.Description(),
		})
	}
	return data
}

var cmdGlyphs = &cli.Command{
	Name:  "glyphs",
	Usage: "list the characters which have strokes",
	Action: func(ctx *cli.Context) error {
		pterm.Info.Println(glyphList(glyph.Builtin()))
		pterm.Info.Println("upper case letters are drawn using the lower case strokes")
		return nil
	},
}

func glyphList(tab *glyph.Table) string {
	var b strings.Builder
	for _, r := range tab.Runes() {
		if len(tab.Strokes(r)) > 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
