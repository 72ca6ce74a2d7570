package config

import (
	"strings"
	"testing"
)

func TestLoad_Errors(t *testing.T) {
	d := t.TempDir()
	cases := []struct {
		name, file, body, want string
	}{
		{"bad yaml", "bad.yaml", "addr: :8080\n: broken\n", "yaml"},
		{"bad json", "bad.json", `{ "addr": ":8080", "cache_path": }`, "json"},
		{"bad toml", "bad.toml", "addr=:8080\ncache_path\n", "toml"},
		{"templates not a map", "tpl.yaml", "templates: [en, ja]\n", "yaml"},
		{"unknown extension", "mlmcompare.ini", "addr=:8080\n", "unsupported"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeTempFile(t, d, c.file, c.body)
			_, err := Load(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), c.want) {
				t.Fatalf("expected %q in error, got %v", c.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/mlmcompare.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
