package config

import (
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	langs := Defaults().Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "ja" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestMergeOverridesNonZero(t *testing.T) {
	base := Defaults()
	out := base.Merge(Config{Addr: ":1", DefaultTopK: 3, Templates: map[string]string{"fr": "la [MASK]"}})
	if out.Addr != ":1" || out.DefaultTopK != 3 {
		t.Fatalf("override not applied: %+v", out)
	}
	if out.HubURL != base.HubURL || out.MaxPipelines != base.MaxPipelines {
		t.Fatalf("zero fields should keep base: %+v", out)
	}
	if len(out.Templates) != 3 || out.Templates["en"] == "" || out.Templates["fr"] == "" {
		t.Fatalf("templates should merge: %+v", out.Templates)
	}
	if len(base.Templates) != 2 {
		t.Fatalf("base templates mutated: %+v", base.Templates)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want string
	}{
		{"no templates", func(c *Config) { c.Templates = nil }, "template"},
		{"no placeholder", func(c *Config) { c.Templates = map[string]string{"en": "nothing"} }, "exactly one"},
		{"two placeholders", func(c *Config) { c.Templates = map[string]string{"en": "[MASK] [MASK]"} }, "exactly one"},
		{"topk low", func(c *Config) { c.DefaultTopK = 0 }, "default_top_k"},
		{"topk high", func(c *Config) { c.DefaultTopK = 11 }, "default_top_k"},
		{"bad hub url", func(c *Config) { c.HubURL = "not-a-url" }, "hub_url"},
		{"negative cache", func(c *Config) { c.StepCacheEntries = -1 }, "step_cache_entries"},
	}
	for _, tc := range cases {
		cfg := Defaults()
		tc.mut(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}
