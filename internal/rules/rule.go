package rules

import (
	"slices"
	"strings"
)

// Title is the view of a normalized title that rules test against.
type Title interface {
	Contains(needle string) bool
}

// Rule rewrites a detected model. Apply returns the new model and whether the
// rule fired; a rule that does not fire returns model unchanged.
type Rule interface {
	Apply(model string, title Title) (string, bool)
}

// Marker selects a generation suffix. It matches when the title contains any
// of Needles or the current model is one of Models. When Refine also matches,
// its Suffix wins.
type Marker struct {
	Needles []string
	Models  []string
	Suffix  string
	Refine  *Marker
}

func (m Marker) matches(model string, title Title) bool {
	if slices.Contains(m.Models, model) {
		return true
	}
	for _, needle := range m.Needles {
		if title.Contains(needle) {
			return true
		}
	}
	return false
}

func (m Marker) suffix(model string, title Title) string {
	if m.Refine != nil && m.Refine.matches(model, title) {
		return m.Refine.Suffix
	}
	return m.Suffix
}

// Generation appends a generation suffix ("mark2", "2", "digital iv") to
// models of a range sold in several generations. It applies to the exact
// Models, or, when Prefix is set, to any model starting with Prefix, in which
// case the result is built on Prefix alone. Markers are tried in order and the
// first match wins; when none matches the model is left alone.
type Generation struct {
	Models  []string
	Prefix  string
	Markers []Marker
}

func (g Generation) Apply(model string, title Title) (string, bool) {
	base := model
	switch {
	case slices.Contains(g.Models, model):
	case g.Prefix != "" && strings.HasPrefix(model, g.Prefix):
		base = g.Prefix
	default:
		return model, false
	}
	for _, marker := range g.Markers {
		if marker.matches(model, title) {
			return base + " " + marker.suffix(model, title), true
		}
	}
	return model, false
}

// Anchor says where a Rewrite looks for its match.
type Anchor int

const (
	AnchorPrefix Anchor = iota
	AnchorSuffix
)

// Rewrite replaces Match with With once the model starts (AnchorPrefix) or
// ends (AnchorSuffix) with Match. The anchor only gates the rule: every
// occurrence of Match in the model is replaced, so "sx170is" loses "is" but so
// would any earlier "is".
type Rewrite struct {
	Anchor Anchor
	Match  string
	With   string
}

// StripPrefix drops match from models starting with it.
func StripPrefix(match string) Rewrite {
	return Rewrite{Anchor: AnchorPrefix, Match: match}
}

// StripSuffix drops match from models ending with it.
func StripSuffix(match string) Rewrite {
	return Rewrite{Anchor: AnchorSuffix, Match: match}
}

// ReplacePrefix expands a short series code into the family prefix.
func ReplacePrefix(match, with string) Rewrite {
	return Rewrite{Anchor: AnchorPrefix, Match: match, With: with}
}

func (r Rewrite) Apply(model string, _ Title) (string, bool) {
	var anchored bool
	switch r.Anchor {
	case AnchorPrefix:
		anchored = strings.HasPrefix(model, r.Match)
	case AnchorSuffix:
		anchored = strings.HasSuffix(model, r.Match)
	}
	if !anchored {
		return model, false
	}
	return strings.ReplaceAll(model, r.Match, r.With), true
}

// FirstOf applies the first of its rules that fires and skips the rest.
type FirstOf []Rule

func (f FirstOf) Apply(model string, title Title) (string, bool) {
	for _, rule := range f {
		if out, ok := rule.Apply(model, title); ok {
			return out, true
		}
	}
	return model, false
}

// Substitute maps exact model strings onto corrected ones.
type Substitute map[string]string

func (s Substitute) Apply(model string, _ Title) (string, bool) {
	if out, ok := s[model]; ok {
		return out, true
	}
	return model, false
}

// Choice prepends Prepend when the title contains Needle.
type Choice struct {
	Needle  string
	Prepend string
}

// TitlePrefix injects a prefix chosen by title content into models that are
// one of Models or start with Prefix. Choices are tried in order; Fallback,
// when set, is prepended if no choice matches.
type TitlePrefix struct {
	Models   []string
	Prefix   string
	Choices  []Choice
	Fallback string
}

func (p TitlePrefix) Apply(model string, title Title) (string, bool) {
	if !slices.Contains(p.Models, model) && (p.Prefix == "" || !strings.HasPrefix(model, p.Prefix)) {
		return model, false
	}
	for _, choice := range p.Choices {
		if title.Contains(choice.Needle) {
			return choice.Prepend + model, true
		}
	}
	if p.Fallback != "" {
		return p.Fallback + model, true
	}
	return model, false
}

// Apply runs rules in order over model and returns the result.
func Apply(rules []Rule, model string, title Title) string {
	for _, rule := range rules {
		model, _ = rule.Apply(model, title)
	}
	return model
}
