package rules

// Set is an immutable string set.
type Set map[string]struct{}

// NewSet builds a Set from items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set. A nil Set is empty.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Entry is the per-brand configuration consulted after brand detection.
type Entry struct {
	// Prefixes are tokens fused with the token that follows them.
	Prefixes Set
	// Suffixes are tokens fused onto the token that precedes them.
	Suffixes Set
	// Models are literal tokens accepted as models whatever their shape.
	Models Set
	// Exceptions look like models but are not.
	Exceptions Set
	// Equivalences remap a fully canonicalized model as the very last step.
	Equivalences map[string]string
	// Postprocess is applied in order to the detected model.
	Postprocess []Rule
}

// Lookup returns the entry for brand. Unknown brands, including the empty
// brand, get the zero Entry, whose sets are all empty.
func Lookup(brand string) Entry {
	return table[brand]
}

// Equivalent returns the preferred spelling of model, or model itself when
// the entry has no equivalence for it.
func (e Entry) Equivalent(model string) string {
	if alt, ok := e.Equivalences[model]; ok {
		return alt
	}
	return model
}
