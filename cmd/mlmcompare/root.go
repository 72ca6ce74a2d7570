package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mlmcompare/internal/config"
)

// options collects command line input. Zero values mean "not given" so the
// config file and defaults can fill them in.
type options struct {
	configPath  string
	corsOrigins string
	over        config.Config
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:           "mlmcompare",
		Short:         "Compare fill-mask predictions of two masked language models",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &o)
		},
	}
	bindFlags(root.PersistentFlags(), &o)

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server (default)",
		Example: "  mlmcompare serve --addr :8080 --cache-path ~/.cache/mlmcompare",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &o)
		},
	}
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(&o)
			if err != nil {
				return err
			}
			if cfg.HFToken != "" {
				cfg.HFToken = "<redacted>"
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
	root.AddCommand(serveCmd, configCmd)
	return root
}

// bindFlags registers flags whose defaults come from the environment.
func bindFlags(fs *pflag.FlagSet, o *options) {
	d := config.Defaults()
	fs.StringVar(&o.configPath, "config", os.Getenv("MLMCOMPARE_CONFIG"), "Path to a .yaml, .json or .toml config file")
	fs.StringVar(&o.over.Addr, "addr", os.Getenv("MLMCOMPARE_ADDR"), fmt.Sprintf("HTTP listen address (default %q)", d.Addr))
	fs.StringVar(&o.over.CachePath, "cache-path", os.Getenv("MLMCOMPARE_CACHE_PATH"), fmt.Sprintf("Directory for resolved model metadata (default %q)", d.CachePath))
	fs.StringVar(&o.over.HubURL, "hub-url", os.Getenv("MLMCOMPARE_HUB_URL"), fmt.Sprintf("Model hub base URL (default %q)", d.HubURL))
	fs.StringVar(&o.over.InferenceURL, "inference-url", os.Getenv("MLMCOMPARE_INFERENCE_URL"), fmt.Sprintf("Hosted inference base URL (default %q)", d.InferenceURL))
	fs.StringVar(&o.over.HFToken, "hf-token", os.Getenv("HF_TOKEN"), "Hub access token")
	fs.StringVar(&o.over.DiskPath, "disk-path", os.Getenv("MLMCOMPARE_DISK_PATH"), fmt.Sprintf("Path whose filesystem usage is shown after a run (default %q)", d.DiskPath))
	fs.StringVar(&o.over.LogLevel, "log-level", os.Getenv("MLMCOMPARE_LOG_LEVEL"), fmt.Sprintf("Log level: debug, info, warn, error (default %q)", d.LogLevel))
	fs.StringVar(&o.over.LogFormat, "log-format", os.Getenv("MLMCOMPARE_LOG_FORMAT"), fmt.Sprintf("Log format: json or console (default %q)", d.LogFormat))
	fs.StringVar(&o.corsOrigins, "cors-origins", os.Getenv("MLMCOMPARE_CORS_ORIGINS"), "Comma-separated allowed CORS origins; empty disables CORS")
	fs.IntVar(&o.over.RequestTimeoutSec, "request-timeout", envInt("MLMCOMPARE_REQUEST_TIMEOUT"), fmt.Sprintf("Seconds allowed per inference request (default %d)", d.RequestTimeoutSec))
}

// resolveConfig layers defaults, the config file and flags/env.
func resolveConfig(o *options) (config.Config, error) {
	cfg := config.Defaults()
	if o.configPath != "" {
		fc, err := config.Load(o.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = cfg.Merge(fc)
	}
	over := o.over
	over.CORSOrigins = splitCSV(o.corsOrigins)
	cfg = cfg.Merge(over)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envInt(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return n
}

// splitCSV splits a comma-separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
