package testcases

import "seehuhn.de/go/handwrite/style"

var basicCases = []TestCase{
	{
		Name:  "dot",
		Text:  ".",
		Style: style.Default(),
		Page:  small(60, 60),
		Seed:  1,
	},
	{
		Name:  "lower",
		Text:  "abcdefghijklm\nnopqrstuvwxyz",
		Style: style.Default(),
		Page:  small(400, 130),
		Seed:  2,
	},
	{
		Name:  "upper",
		Text:  "HELLO WORLD",
		Style: style.Default(),
		Page:  small(400, 80),
		Seed:  3,
	},
	{
		Name:  "digits",
		Text:  "0 1 2 3 4 5 6 7 8 9",
		Style: style.Default(),
		Page:  small(500, 80),
		Seed:  4,
	},
	{
		Name:  "punctuation",
		Text:  "yes, no. why? stop!",
		Style: style.Default(),
		Page:  small(500, 80),
		Seed:  5,
	},
	{
		Name:  "unknown",
		Text:  "a#b@c",
		Style: style.Default(),
		Page:  small(200, 80),
		Seed:  6,
	},
	{
		Name:  "empty",
		Text:  "",
		Style: style.Default(),
		Page:  small(60, 60),
	},
}
