package identification

import "camlink/internal/rules"

// Canonicalize applies the brand's postprocessing rules to model, then its
// equivalence table. The title is consulted by rules keyed on title
// substrings such as " ii " or " digital ".
func Canonicalize(entry rules.Entry, model string, title rules.Title) string {
	if model == "" {
		return ""
	}
	return entry.Equivalent(rules.Apply(entry.Postprocess, model, title))
}
