package identification

import "camlink/internal/rules"

// DetectModel returns the first token that looks like a model number, or ""
// when there is none. A token qualifies when it mixes ASCII digits and
// lowercase letters and is not one of the brand's exceptions, or when the
// brand lists it as a model outright. Either way it is rejected when it ends
// in a measurement unit.
func DetectModel(tokens []string, entry rules.Entry) string {
	for _, token := range tokens {
		candidate := (alphanumeric(token) && !entry.Exceptions.Has(token)) || entry.Models.Has(token)
		if candidate && !rules.IsMeasure(token) {
			return token
		}
	}
	return ""
}

// alphanumeric reports whether s holds at least one ASCII digit and one ASCII
// lowercase letter.
func alphanumeric(s string) bool {
	var digit, lower bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digit = true
		case 'a' <= c && c <= 'z':
			lower = true
		}
		if digit && lower {
			return true
		}
	}
	return false
}
