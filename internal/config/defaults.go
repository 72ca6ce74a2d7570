package config

import (
	"fmt"
	"net/url"
	"sort"

	"mlmcompare/internal/textnorm"
)

// Top-k bounds accepted by the inference-and-render step.
const (
	MinTopK = 1
	MaxTopK = 10
)

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Addr:              ":8080",
		CachePath:         "~/.cache/mlmcompare",
		HubURL:            "https://huggingface.co",
		InferenceURL:      "https://router.huggingface.co/hf-inference",
		DiskPath:          "/",
		LogLevel:          "info",
		LogFormat:         "json",
		RequestTimeoutSec: 60,
		RegistryLimit:     50,
		RegistryTTLSec:    600,
		MaxPipelines:      8,
		MaxQueueDepth:     32,
		MaxWaitSec:        30,
		DefaultTopK:       5,
		Templates: map[string]string{
			"en": "Paris is the [MASK] of France.",
			"ja": "大学で[MASK]の研究をしています。",
		},
	}
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	out := c
	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	setStr(&out.Addr, o.Addr)
	setStr(&out.CachePath, o.CachePath)
	setStr(&out.HubURL, o.HubURL)
	setStr(&out.InferenceURL, o.InferenceURL)
	setStr(&out.HFToken, o.HFToken)
	setStr(&out.DiskPath, o.DiskPath)
	setStr(&out.LogLevel, o.LogLevel)
	setStr(&out.LogFormat, o.LogFormat)
	setInt(&out.RequestTimeoutSec, o.RequestTimeoutSec)
	setInt(&out.RegistryLimit, o.RegistryLimit)
	setInt(&out.RegistryTTLSec, o.RegistryTTLSec)
	setInt(&out.MaxPipelines, o.MaxPipelines)
	setInt(&out.MaxQueueDepth, o.MaxQueueDepth)
	setInt(&out.MaxWaitSec, o.MaxWaitSec)
	setInt(&out.StepCacheEntries, o.StepCacheEntries)
	setInt(&out.DefaultTopK, o.DefaultTopK)
	if len(o.CORSOrigins) > 0 {
		out.CORSOrigins = append([]string(nil), o.CORSOrigins...)
	}
	if len(o.Templates) > 0 {
		merged := make(map[string]string, len(c.Templates)+len(o.Templates))
		for k, v := range c.Templates {
			merged[k] = v
		}
		for k, v := range o.Templates {
			merged[k] = v
		}
		out.Templates = merged
	}
	if len(o.Models) > 0 {
		out.Models = make(map[string][]string, len(o.Models))
		for k, v := range o.Models {
			out.Models[k] = append([]string(nil), v...)
		}
	}
	return out
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("at least one language template is required")
	}
	for lang, tpl := range c.Templates {
		if lang == "" {
			return fmt.Errorf("empty language code")
		}
		if n := textnorm.CountPlaceholders(tpl); n != 1 {
			return fmt.Errorf("template %q must contain exactly one %s, found %d", lang, textnorm.Placeholder, n)
		}
	}
	if c.DefaultTopK < MinTopK || c.DefaultTopK > MaxTopK {
		return fmt.Errorf("default_top_k must be within %d..%d, got %d", MinTopK, MaxTopK, c.DefaultTopK)
	}
	for name, raw := range map[string]string{"hub_url": c.HubURL, "inference_url": c.InferenceURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if c.StepCacheEntries < 0 {
		return fmt.Errorf("step_cache_entries must not be negative")
	}
	return nil
}

// Languages returns the configured language codes in sorted order.
func (c Config) Languages() []string {
	out := make([]string, 0, len(c.Templates))
	for k := range c.Templates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
