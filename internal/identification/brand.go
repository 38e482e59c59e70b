package identification

import "camlink/internal/rules"

// DetectBrand returns the first token that names a known manufacturer, or ""
// when there is none.
func DetectBrand(tokens []string) string {
	for _, token := range tokens {
		if rules.IsBrand(token) {
			return token
		}
	}
	return ""
}
