package identification

import "camlink/internal/rules"

// ResolveAliases rewrites alias tokens in place. Each distinct alias is
// rewritten only where it first occurs; later copies of the same token stay
// as they are. Aliases that map to the empty string leave an empty token
// behind.
func ResolveAliases(tokens []string) {
	var seen map[string]struct{}
	for i, token := range tokens {
		replacement, ok := rules.Alias(token)
		if !ok {
			continue
		}
		if _, done := seen[token]; done {
			continue
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		seen[token] = struct{}{}
		tokens[i] = replacement
	}
}
