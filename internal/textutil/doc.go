// Package textutil cleans raw product titles into the token sequences the
// identification pipeline works on.
//
// Normalization lowercases the title, turns a fixed set of punctuation marks
// into spaces, deletes stop characters that may appear inside model names
// (so "eos-7d" becomes "eos7d"), and splits on whitespace. The cleaned string
// is kept alongside the tokens because generation rules test substrings such
// as " ii " against it.
package textutil
