package identification

import (
	"strings"

	"camlink/internal/rules"
)

// MergeTokens fuses split model tokens in place using the brand's suffix and
// prefix sets. A suffix token is appended to the token before it ("5d" "ds"
// -> "5dds" "ds") and a prefix token is prepended onto the token after it
// ("sx" "170" -> "sx" "sx170"). Each pass is a single forward scan; suffixes run first and
// neither pass rescans tokens it produced. A token that already carries the
// affix is left alone.
func MergeTokens(tokens []string, entry rules.Entry) {
	if len(entry.Suffixes) > 0 {
		for i := 1; i < len(tokens); i++ {
			if entry.Suffixes.Has(tokens[i]) && !strings.HasSuffix(tokens[i-1], tokens[i]) {
				tokens[i-1] += tokens[i]
			}
		}
	}
	if len(entry.Prefixes) > 0 {
		for i := 0; i < len(tokens)-1; i++ {
			if entry.Prefixes.Has(tokens[i]) && !strings.HasPrefix(tokens[i+1], tokens[i]) {
				tokens[i+1] = tokens[i] + tokens[i+1]
			}
		}
	}
}
