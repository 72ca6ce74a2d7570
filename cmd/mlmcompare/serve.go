package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mlmcompare/internal/chart"
	"mlmcompare/internal/compare"
	"mlmcompare/internal/config"
	"mlmcompare/internal/httpapi"
	"mlmcompare/internal/inference"
	"mlmcompare/internal/manager"
	"mlmcompare/internal/registry"
	"mlmcompare/internal/service"
)

func runServe(cmd *cobra.Command, o *options) error {
	cfg, err := resolveConfig(o)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, mgr, err := buildService(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer mgr.Close()

	httpapi.SetLogger(logger.With().Str("component", "http").Logger())
	httpapi.SetBaseContext(ctx)
	httpapi.SetRequestTimeoutSeconds(int64(cfg.RequestTimeoutSec))
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins, nil, nil)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go svc.Warm(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("hub", cfg.HubURL).Str("cache_path", cfg.CachePath).Msg("mlmcompare listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("graceful shutdown error")
	}
	logger.Info().Msg("mlmcompare stopped")
	return nil
}

// buildService wires registry, inference backend, manager and step.
func buildService(cfg config.Config, logger zerolog.Logger) (*service.Service, *manager.Manager, error) {
	requestTimeout := time.Duration(cfg.RequestTimeoutSec) * time.Second

	allowed := make(map[string]bool, len(cfg.Templates))
	for lang := range cfg.Templates {
		allowed[lang] = true
	}
	var src registry.Source = registry.NewHubClient(registry.HubOptions{
		BaseURL:        cfg.HubURL,
		Token:          cfg.HFToken,
		Limit:          cfg.RegistryLimit,
		RequestTimeout: requestTimeout,
		Logger:         logger,
	})
	if len(cfg.Models) > 0 {
		src = registry.Fallback{Primary: src, Secondary: registry.Static(cfg.Models)}
	}
	src = registry.NewCached(registry.Languages{Allowed: allowed, Next: src}, time.Duration(cfg.RegistryTTLSec)*time.Second)

	backend, err := inference.NewHubBackend(inference.Options{
		HubURL:         cfg.HubURL,
		InferenceURL:   cfg.InferenceURL,
		Token:          cfg.HFToken,
		CachePath:      cfg.CachePath,
		RequestTimeout: requestTimeout,
		Logger:         logger,
	})
	if err != nil {
		return nil, nil, err
	}
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Backend:       backend,
		MaxPipelines:  cfg.MaxPipelines,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       time.Duration(cfg.MaxWaitSec) * time.Second,
		Publisher:     manager.NewLogPublisher(logger),
		Logger:        &logger,
	})
	step := compare.NewStep(compare.StepConfig{
		Pipelines:  mgr,
		Renderer:   chart.Renderer{},
		MaxEntries: cfg.StepCacheEntries,
		Logger:     &logger,
	})
	svc := service.New(service.Options{
		Templates:   cfg.Templates,
		DefaultTopK: cfg.DefaultTopK,
		Registry:    src,
		Comparer:    compare.NewComparer(step, cfg.DiskPath, &logger),
		Manager:     mgr,
		HasStatic:   len(cfg.Models) > 0,
		Logger:      &logger,
	})
	return svc, mgr, nil
}

// newLogger builds the root logger and sets the global level.
func newLogger(cfg config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	var l zerolog.Logger
	if cfg.LogFormat == "console" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stderr)
	}
	return l.With().Timestamp().Str("service", "mlmcompare").Logger()
}
