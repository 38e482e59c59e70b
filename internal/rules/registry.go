package rules

import (
	"slices"
	"strings"
)

// brands lists the manufacturers the detector recognizes.
var brands = []string{
	"aiptek", "apple", "argus", "benq", "canon", "casio", "coleman", "contour", "dahua", "epson",
	"fujifilm", "garmin", "ge", "gopro", "hasselblad", "hikvision", "howell", "hp", "intova", "jvc",
	"kodak", "leica", "lg", "lowepro", "lytro", "minolta", "minox", "motorola", "mustek", "nikon",
	"olympus", "panasonic", "pentax", "philips", "polaroid", "ricoh", "sakar", "samsung", "sanyo",
	"sekonic", "sigma", "sony", "tamron", "toshiba", "vivitar", "vtech", "wespro", "yourdeal",
}

var brandSet = NewSet(brands...)

// aliases rewrites misspelled, glued or decorated tokens, mostly brand
// names, into the form the rest of the pipeline expects. An empty value
// blanks the token.
var aliases = map[string]string{
	"cannon": "canon", "canonpowershot": "canon", "eos": "canon", "usedcanon": "canon",
	"fugi": "fujifilm", "fugifilm": "fujifilm", "fuji": "fujifilm", "fujufilm": "fujifilm",
	"general": "ge", "gopros": "gopro", "hikvision3mp": "hikvision", "hikvisionip": "hikvision",
	"bell+howell": "howell", "howellwp7": "howell", "minotla": "minolta", "canon&nikon": "nikon",
	"olympuss": "olympus", "panosonic": "panasonic", "pentax": "ricoh", "ssamsung": "samsung",
	"repairsony": "sony", "elf": "elph", "s480016mp": "s4800", "vivicam": "v", "plus": "+",
	"1080p": "", "720p": "",
}

// measures are unit suffixes; a token ending in one is never a model.
var measures = []string{
	"cm", "mm", "nm", "inch", "gb", "mb", "mp", "megapixel", "megapixels", "mega", "ghz", "hz",
	"mah", "cmos", "mps",
}

// IsBrand reports whether token is a known manufacturer.
func IsBrand(token string) bool {
	return brandSet.Has(token)
}

// Brands returns the brand registry in sorted order.
func Brands() []string {
	out := slices.Clone(brands)
	slices.Sort(out)
	return out
}

// Alias returns the replacement for token and whether token is an alias.
func Alias(token string) (string, bool) {
	replacement, ok := aliases[token]
	return replacement, ok
}

// IsMeasure reports whether token ends with a measurement unit, as in "16mp"
// or "18mm".
func IsMeasure(token string) bool {
	for _, unit := range measures {
		if strings.HasSuffix(token, unit) {
			return true
		}
	}
	return false
}
