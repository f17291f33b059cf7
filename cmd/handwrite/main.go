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

// Command handwrite renders text files as synthetic handwriting.
//
// Usage:
//
//	handwrite render --text "hello world" --preset casual --out hello.png
//	handwrite render --input letter.txt --config style.yaml --pdf letter.pdf
//	handwrite presets
//	handwrite glyphs
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// tracer traces with key 'handwrite.cli'.
func tracer() tracing.Trace {
	return tracing.Select("handwrite.cli")
}

// traceKeys lists the tracers configured by the command.
var traceKeys = []string{
	"handwrite",
	"handwrite.layout",
	"handwrite.cli",
}

func main() {
	if err := setupTracing(); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing:", err)
		os.Exit(1)
	}

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "handwrite",
		Usage: "render text as synthetic handwriting",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show progress information",
			},
		},
		Before: func(ctx *cli.Context) error {
			level := tracing.LevelError
			if ctx.Bool("verbose") {
				level = tracing.LevelInfo
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdRender,
			cmdPresets,
			cmdGlyphs,
		},
	}
}

func setupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
