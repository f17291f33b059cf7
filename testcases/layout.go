package testcases

import (
	"strings"

	"seehuhn.de/go/handwrite/preset"
	"seehuhn.de/go/handwrite/style"
)

var layoutCases = []TestCase{
	{
		Name:  "wrap",
		Text:  "dear diary today i wrote a long line which does not fit",
		Style: style.Default(),
		Page:  small(300, 260),
		Seed:  21,
	},
	{
		Name:  "newlines",
		Text:  "first\n\nthird\nfourth",
		Style: style.Default(),
		Page:  small(200, 260),
		Seed:  22,
	},
	{
		Name:  "long_word",
		Text:  strings.Repeat("m", 14) + " end",
		Style: style.Default(),
		Page:  small(200, 130),
		Seed:  23,
	},
	{
		Name:  "no_break_space",
		Text:  "ten\u00a0kilometers to go",
		Style: style.Default(),
		Page:  small(260, 130),
		Seed:  24,
	},
	{
		Name:  "overflow",
		Text:  strings.Repeat("more words ", 12),
		Style: style.Default(),
		Page:  small(200, 100),
		Seed:  25,
	},
	{
		Name: "spacing",
		Text: "wide apart",
		Style: with(preset.Casual, func(st *style.Style) {
			st.LetterSpacing = 8
			st.WordSpacing = 40
		}),
		Page: small(500, 80),
		Seed: 26,
	},
}
