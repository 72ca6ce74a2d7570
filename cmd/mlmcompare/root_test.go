package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"mlmcompare/internal/config"
)

func TestResolveConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	content := "addr: \":9000\"\nmax_pipelines: 3\ntemplates:\n  de: \"Berlin ist die [MASK] von Deutschland.\"\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	o := &options{configPath: p, corsOrigins: "http://a, http://b"}
	o.over.Addr = ":9100"
	cfg, err := resolveConfig(o)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Addr != ":9100" {
		t.Fatalf("flag must win over file: %q", cfg.Addr)
	}
	if cfg.MaxPipelines != 3 {
		t.Fatalf("file must win over defaults: %d", cfg.MaxPipelines)
	}
	if cfg.DefaultTopK != config.Defaults().DefaultTopK {
		t.Fatalf("defaults lost: %d", cfg.DefaultTopK)
	}
	if len(cfg.Templates) != 3 || cfg.Templates["de"] == "" || cfg.Templates["en"] == "" {
		t.Fatalf("templates=%v", cfg.Templates)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b" {
		t.Fatalf("cors=%v", cfg.CORSOrigins)
	}
}

func TestResolveConfig_Invalid(t *testing.T) {
	o := &options{}
	o.over.HubURL = "not a url"
	if _, err := resolveConfig(o); err == nil || !strings.Contains(err.Error(), "hub_url") {
		t.Fatalf("err=%v", err)
	}
	if _, err := resolveConfig(&options{configPath: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestConfigCommand_RedactsToken(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--hf-token", "hf_secret", "--addr", ":7000"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	if strings.Contains(s, "hf_secret") || !strings.Contains(s, "<redacted>") {
		t.Fatalf("token not redacted: %s", s)
	}
	if !strings.Contains(s, "7000") {
		t.Fatalf("addr missing: %s", s)
	}
}

func TestBuildService(t *testing.T) {
	cfg := config.Defaults()
	cfg.CachePath = t.TempDir()
	cfg.Models = map[string][]string{"en": {"bert-base-uncased", "roberta-base"}}
	svc, mgr, err := buildService(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildService: %v", err)
	}
	defer mgr.Close()
	if !svc.Ready() {
		t.Fatalf("static models configured, service should be ready")
	}
	if _, err := os.Stat(filepath.Join(cfg.CachePath, "models")); err != nil {
		t.Fatalf("cache dir not created: %v", err)
	}
	if got := svc.Languages().Languages; len(got) != 2 {
		t.Fatalf("languages=%v", got)
	}
}

func TestNewLogger_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	cfg := config.Defaults()
	cfg.LogLevel = "warn"
	_ = newLogger(cfg)
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("level=%s", zerolog.GlobalLevel())
	}
	cfg.LogLevel = "bogus"
	_ = newLogger(cfg)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("bogus level must fall back to info, got %s", zerolog.GlobalLevel())
	}
}
