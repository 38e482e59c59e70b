package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuationReplacer turns separator punctuation into spaces and drops stop
// characters without leaving a gap.
var punctuationReplacer = strings.NewReplacer(
	",", " ",
	":", " ",
	";", " ",
	"!", " ",
	"?", " ",
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
	"{", " ",
	"}", " ",
	"/", " ",
	"|", " ",
	"\"", " ",
	"*", " ",
	"-", "",
)

// Title is a normalized product title.
type Title struct {
	// Text is the cleaned title before splitting. Runs of whitespace are kept.
	Text string
	// Tokens is the whitespace-delimited token sequence of Text.
	Tokens []string
}

// Normalize lowercases raw, replaces punctuation with spaces, deletes stop
// characters, and splits the result into tokens. Any input yields a Title;
// an empty or blank title has no tokens.
func Normalize(raw string) Title {
	// Casers carry state, so each call builds its own.
	text := punctuationReplacer.Replace(cases.Lower(language.Und).String(raw))
	return Title{
		Text:   text,
		Tokens: strings.Fields(text),
	}
}

// Join rebuilds the normalized title string from a token sequence. Empty
// tokens left behind by alias removal are kept, so they show up as doubled
// spaces.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Contains reports whether the cleaned title text contains needle.
func (t Title) Contains(needle string) bool {
	return strings.Contains(t.Text, needle)
}
