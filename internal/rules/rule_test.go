package rules

import (
	"strings"
	"testing"
)

type fakeTitle string

func (f fakeTitle) Contains(needle string) bool { return strings.Contains(string(f), needle) }

func TestGenerationPrecedence(t *testing.T) {
	rule := canonPostprocess[0]
	tests := []struct {
		name  string
		model string
		title string
		want  string
		fired bool
	}{
		{"mark four wins over lower marks", "1d", "canon 1d mark iv ii body", "1d mark4", true},
		{"mark three", "5d", "canon 5d mark iii kit", "5d mark3", true},
		{"roman two", "7d", "canon 7d mark ii digital", "7d mark2", true},
		{"two n variant", "1d", "canon 1d mark ii n body", "1d mark2n", true},
		{"spelled mark 2", "6d", "canon 6d mark 2 body", "6d mark2", true},
		{"mkii", "g1x", "canon g1x mkii compact", "g1x mark2", true},
		{"first generation", "5d", "canon 5d mark i body", "5d mark1", true},
		{"no marker", "7d", "canon 7d body only", "7d", false},
		{"model outside range", "60d", "canon 60d mark ii", "60d", false},
		{"marker at end of title is not padded", "7d", "canon 7d mark ii", "7d", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := rule.Apply(tt.model, fakeTitle(tt.title))
			if got != tt.want || fired != tt.fired {
				t.Fatalf("Apply(%q) = (%q, %v), want (%q, %v)", tt.model, got, fired, tt.want, tt.fired)
			}
		})
	}
}

func TestGenerationPrefixBuildsOnPrefix(t *testing.T) {
	rule := sonyPostprocess[len(sonyPostprocess)-1]
	tests := []struct {
		model string
		title string
		want  string
	}{
		{"dscrx100m2", "sony cybershot", "dscrx100 2"},
		{"dscrx100", "sony dscrx100 ii ", "dscrx100 2"},
		{"dscrx100miii", "sony cybershot", "dscrx100 3"},
		{"dscrx100", "sony rx100 iii camera", "dscrx100 3"},
		{"dscrx100", "sony rx100 camera", "dscrx100"},
	}
	for _, tt := range tests {
		got, _ := rule.Apply(tt.model, fakeTitle(tt.title))
		if got != tt.want {
			t.Errorf("Apply(%q, %q) = %q, want %q", tt.model, tt.title, got, tt.want)
		}
	}
}

func TestRewriteReplacesEveryOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rewrite
		model string
		want  string
		fired bool
	}{
		{"strip suffix", StripSuffix("is"), "sx170is", "sx170", true},
		{"strip suffix all occurrences", StripSuffix("s"), "fs7s", "f7", true},
		{"suffix not anchored", StripSuffix("is"), "isx10", "isx10", false},
		{"strip prefix", StripPrefix("elph"), "elph100", "100", true},
		{"replace prefix", ReplacePrefix("hfw", "dhipchfw"), "hfw4300s", "dhipchfw4300s", true},
		{"replace prefix every occurrence", ReplacePrefix("p", "dscp"), "p93p", "dscp93dscp", true},
		{"prefix not anchored", ReplacePrefix("ipc", "dhipc"), "x1ipc", "x1ipc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := tt.rule.Apply(tt.model, fakeTitle(""))
			if got != tt.want || fired != tt.fired {
				t.Fatalf("Apply(%q) = (%q, %v), want (%q, %v)", tt.model, got, fired, tt.want, tt.fired)
			}
		})
	}
}

func TestFirstOfStopsAtFirstRule(t *testing.T) {
	chain := dahuaPostprocess[0]
	tests := map[string]string{
		"ipc123":   "dhipc123",
		"pc123":    "dhipc123",
		"hdb4300c": "dhipchdb4300c",
		"sd59230":  "dhsd59230",
		"nvr4104":  "nvr4104",
	}
	for model, want := range tests {
		if got, _ := chain.Apply(model, fakeTitle("")); got != want {
			t.Errorf("Apply(%q) = %q, want %q", model, got, want)
		}
	}
}

func TestSubstitute(t *testing.T) {
	sub := Substitute{"t3i": "600d"}
	if got, fired := sub.Apply("t3i", fakeTitle("")); got != "600d" || !fired {
		t.Fatalf("Apply(t3i) = (%q, %v)", got, fired)
	}
	if got, fired := sub.Apply("600d", fakeTitle("")); got != "600d" || fired {
		t.Fatalf("Apply(600d) = (%q, %v)", got, fired)
	}
}

func TestTitlePrefix(t *testing.T) {
	lux, m240 := leicaPostprocess[0], leicaPostprocess[1]
	tests := []struct {
		name  string
		rule  Rule
		model string
		title string
		want  string
	}{
		{"d lux", lux, "lux6", "leica d lux 6", "dlux6"},
		{"v lux", lux, "lux40", "leica v lux 40", "vlux40"},
		{"c lux", lux, "lux2", "leica c lux 2", "clux2"},
		{"lux without hint", lux, "lux6", "leica lux 6", "lux6"},
		{"240 p", m240, "240", "leica m p 240", "mp240"},
		{"240 fallback", m240, "240", "leica m typ 240", "m240"},
		{"other model", m240, "241", "leica m p 241", "241"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tt.rule.Apply(tt.model, fakeTitle(tt.title)); got != tt.want {
				t.Fatalf("Apply(%q) = %q, want %q", tt.model, got, tt.want)
			}
		})
	}
}

func TestApplyRunsRulesInOrder(t *testing.T) {
	tests := []struct {
		model string
		title string
		want  string
	}{
		{"sx170is", "canon powershot sx170 is", "sx170"},
		{"t3i", "canon rebel t3i kit", "600d"},
		{"elph100hs", "canon elph 100 hs", "100"},
		{"dmcfz200k", "panasonic lumix", "fz200"},
	}
	for _, tt := range tests {
		brand := "canon"
		if strings.HasPrefix(tt.title, "panasonic") {
			brand = "panasonic"
		}
		got := Apply(Lookup(brand).Postprocess, tt.model, fakeTitle(tt.title))
		if got != tt.want {
			t.Errorf("Apply(%s, %q) = %q, want %q", brand, tt.model, got, tt.want)
		}
	}
}
