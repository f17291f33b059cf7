package testcases

import "seehuhn.de/go/handwrite/preset"

const pangram = "the quick brown fox jumps over the lazy dog"

var presetCases = []TestCase{
	{
		Name:  "clean_neat",
		Text:  pangram,
		Style: preset.CleanNeat.Style(),
		Page:  small(500, 160),
		Seed:  11,
	},
	{
		Name:  "casual",
		Text:  pangram,
		Style: preset.Casual.Style(),
		Page:  small(500, 160),
		Seed:  12,
	},
	{
		Name:  "elegant",
		Text:  pangram,
		Style: preset.Elegant.Style(),
		Page:  small(500, 160),
		Seed:  13,
	},
	{
		Name:  "quick_notes",
		Text:  pangram,
		Style: preset.QuickNotes.Style(),
		Page:  small(500, 160),
		Seed:  14,
	},
}
