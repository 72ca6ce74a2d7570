package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Paris is the [MASK] of France.  ", "Paris is the [MASK] of France."},
		{"a\tb", "a b"},
		{"a\x00b\x07c", "abc"},
		{"line\nbreak", "linebreak"},
		// decomposed e + combining acute composes to U+00E9
		{"cafe\u0301", "caf\u00e9"},
		{"大学で[MASK]の研究をしています。", "大学で[MASK]の研究をしています。"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCountPlaceholders(t *testing.T) {
	cases := map[string]int{
		"no mask here":             0,
		"one [MASK] here":          1,
		"[MASK] and [MASK]":        2,
		"lowercase [mask] ignored": 0,
	}
	for in, want := range cases {
		if got := CountPlaceholders(in); got != want {
			t.Fatalf("CountPlaceholders(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestReplacePlaceholder(t *testing.T) {
	got := ReplacePlaceholder("Paris is the [MASK] of France.", "<mask>")
	if got != "Paris is the <mask> of France." {
		t.Fatalf("unexpected: %q", got)
	}
}
