package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by Defaults() via Merge.
type Config struct {
	Addr         string `json:"addr" yaml:"addr" toml:"addr"`
	CachePath    string `json:"cache_path" yaml:"cache_path" toml:"cache_path"`
	HubURL       string `json:"hub_url" yaml:"hub_url" toml:"hub_url"`
	InferenceURL string `json:"inference_url" yaml:"inference_url" toml:"inference_url"`
	HFToken      string `json:"hf_token" yaml:"hf_token" toml:"hf_token"`
	DiskPath     string `json:"disk_path" yaml:"disk_path" toml:"disk_path"`
	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" toml:"log_format"`

	RequestTimeoutSec int `json:"request_timeout_sec" yaml:"request_timeout_sec" toml:"request_timeout_sec"`
	RegistryLimit     int `json:"registry_limit" yaml:"registry_limit" toml:"registry_limit"`
	RegistryTTLSec    int `json:"registry_ttl_sec" yaml:"registry_ttl_sec" toml:"registry_ttl_sec"`
	MaxPipelines      int `json:"max_pipelines" yaml:"max_pipelines" toml:"max_pipelines"`
	MaxQueueDepth     int `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth"`
	MaxWaitSec        int `json:"max_wait_sec" yaml:"max_wait_sec" toml:"max_wait_sec"`
	// StepCacheEntries bounds the inference-and-render cache; 0 keeps every entry.
	StepCacheEntries int `json:"step_cache_entries" yaml:"step_cache_entries" toml:"step_cache_entries"`
	DefaultTopK      int `json:"default_top_k" yaml:"default_top_k" toml:"default_top_k"`

	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	// Templates maps a language code to a sentence with one [MASK].
	Templates map[string]string `json:"templates" yaml:"templates" toml:"templates"`
	// Models lists fill-mask models per language, used when the hub is unreachable.
	Models map[string][]string `json:"models" yaml:"models" toml:"models"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
