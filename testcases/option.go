package testcases

import (
	"image/color"

	"seehuhn.de/go/handwrite/preset"
	"seehuhn.de/go/handwrite/style"
)

var optionCases = []TestCase{
	{
		Name: "connect",
		Text: "minimum",
		Style: with(preset.Elegant, func(st *style.Style) {
			st.Connect = true
		}),
		Page: small(300, 80),
		Seed: 31,
	},
	{
		Name: "catmull_rom",
		Text: "smooth curves",
		Style: with(preset.Casual, func(st *style.Style) {
			st.Smoothing = style.SmoothCatmullRom
		}),
		Page: small(400, 80),
		Seed: 32,
	},
	{
		Name: "no_pressure",
		Text: "even pen",
		Style: with(preset.CleanNeat, func(st *style.Style) {
			st.NoPressure = true
		}),
		Page: small(300, 80),
		Seed: 33,
	},
	{
		Name: "no_variation",
		Text: "steady hand",
		Style: with(preset.CleanNeat, func(st *style.Style) {
			st.Variation = 0
			st.NoPressure = true
		}),
		Page: small(300, 80),
		Seed: 34,
	},
	{
		Name: "red_on_yellow",
		Text: "marked",
		Style: with(preset.QuickNotes, func(st *style.Style) {
			st.PenColor = color.RGBA{R: 180, G: 20, B: 20, A: 255}
		}),
		Page: func() style.Page {
			pg := small(220, 80)
			pg.Background = color.RGBA{R: 255, G: 250, B: 200, A: 255}
			return pg
		}(),
		Seed: 35,
	},
	{
		Name: "large",
		Text: "big",
		Style: with(preset.Casual, func(st *style.Style) {
			st.SizeScale = 3
			st.PenThickness = 5
		}),
		Page: small(300, 160),
		Seed: 36,
	},
}
