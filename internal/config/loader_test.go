package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", `addr: :9999
cache_path: /tmp/mlm
hub_url: http://hub.local
default_top_k: 3
templates:
  fr: "Paris est la [MASK] de la France."
models:
  fr: [camembert-base, flaubert/flaubert_base_cased]
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.CachePath != "/tmp/mlm" || cfg.HubURL != "http://hub.local" || cfg.DefaultTopK != 3 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Templates["fr"] == "" || len(cfg.Models["fr"]) != 2 {
		t.Fatalf("unexpected maps: %+v %+v", cfg.Templates, cfg.Models)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","max_pipelines":2,"step_cache_entries":100,"cors_origins":["http://a","http://b"]}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.MaxPipelines != 2 || cfg.StepCacheEntries != 100 || len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\ninference_url=\"http://infer.local\"\nrequest_timeout_sec=9\n[templates]\nde=\"Berlin ist die [MASK] von Deutschland.\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.InferenceURL != "http://infer.local" || cfg.RequestTimeoutSec != 9 || cfg.Templates["de"] == "" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}
