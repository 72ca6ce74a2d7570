// Package service binds the registry, the comparison step and the pipeline
// manager into the operations served over HTTP.
package service

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"

	"mlmcompare/internal/compare"
	"mlmcompare/internal/config"
	"mlmcompare/internal/manager"
	"mlmcompare/internal/registry"
	"mlmcompare/pkg/types"
)

// Options configures New.
type Options struct {
	Templates   map[string]string
	DefaultTopK int
	Registry    registry.Source
	Comparer    *compare.Comparer
	Manager     *manager.Manager
	// HasStatic reports that config declares models, so the service is usable
	// without the remote registry.
	HasStatic bool
	Logger    *zerolog.Logger
}

// Service implements httpapi.Service.
type Service struct {
	templates   map[string]string
	languages   []string
	defaultTopK int
	registry    registry.Source
	comparer    *compare.Comparer
	manager     *manager.Manager
	hasStatic   bool
	answered    atomic.Bool
	log         zerolog.Logger
}

// New builds a Service from o.
func New(o Options) *Service {
	s := &Service{
		templates:   make(map[string]string, len(o.Templates)),
		defaultTopK: o.DefaultTopK,
		registry:    o.Registry,
		comparer:    o.Comparer,
		manager:     o.Manager,
		hasStatic:   o.HasStatic,
	}
	for k, v := range o.Templates {
		s.templates[k] = v
		s.languages = append(s.languages, k)
	}
	sort.Strings(s.languages)
	if s.defaultTopK < config.MinTopK || s.defaultTopK > config.MaxTopK {
		s.defaultTopK = config.Defaults().DefaultTopK
	}
	if o.Logger != nil {
		s.log = o.Logger.With().Str("component", "service").Logger()
	} else {
		s.log = zerolog.Nop()
	}
	return s
}

// Languages returns the configured templates.
func (s *Service) Languages() types.LanguagesResponse {
	tpl := make(map[string]string, len(s.templates))
	for k, v := range s.templates {
		tpl[k] = v
	}
	return types.LanguagesResponse{
		Templates:   tpl,
		Languages:   append([]string(nil), s.languages...),
		DefaultTopK: s.defaultTopK,
		MinTopK:     config.MinTopK,
		MaxTopK:     config.MaxTopK,
	}
}

// ListModels lists fill-mask models for lang. Registry failures degrade to an
// empty listing with a warning; only an unknown language is an error.
func (s *Service) ListModels(ctx context.Context, lang string) (types.ModelsResponse, error) {
	resp := types.ModelsResponse{Language: lang, Models: []types.Model{}}
	models, err := s.registry.ListModels(ctx, lang, registry.TaskFillMask)
	if errors.Is(err, registry.ErrUnknownLanguage) {
		return resp, err
	}
	if err != nil {
		s.log.Warn().Err(err).Str("lang", lang).Msg("model registry unavailable")
		resp.Warning = "model registry unavailable: " + err.Error()
		return resp, nil
	}
	s.answered.Store(true)
	if models != nil {
		resp.Models = models
	}
	return resp, nil
}

// Warm lists models for every language so the registry cache is primed and
// readiness can flip before the first page view.
func (s *Service) Warm(ctx context.Context) {
	for _, lang := range s.languages {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.ListModels(ctx, lang); err != nil {
			s.log.Debug().Err(err).Str("lang", lang).Msg("warm-up listing failed")
		}
	}
}

// FillMask runs the step for a single model.
func (s *Service) FillMask(ctx context.Context, req types.FillMaskRequest) (types.FillMaskResponse, error) {
	res, err := s.comparer.Step().Run(ctx, compare.Key{Model: req.Model, Text: req.Text, TopK: req.TopK})
	if err != nil {
		return types.FillMaskResponse{}, err
	}
	return res.Response(), nil
}

// ChartHTML returns the rendered chart of a single step.
func (s *Service) ChartHTML(ctx context.Context, req types.FillMaskRequest) ([]byte, error) {
	res, err := s.comparer.Step().Run(ctx, compare.Key{Model: req.Model, Text: req.Text, TopK: req.TopK})
	if err != nil {
		return nil, err
	}
	return res.HTML, nil
}

// Compare runs the two-model comparison. The result carries each column's
// rendered chart.
func (s *Service) Compare(ctx context.Context, req types.CompareRequest) (compare.Comparison, error) {
	return s.comparer.Run(ctx, req.Models, req.Text, req.TopK)
}

// Disk returns the disk usage readout or nil.
func (s *Service) Disk() *types.DiskUsage { return s.comparer.Disk() }

// Status reports pipelines and cache statistics.
func (s *Service) Status() types.StatusResponse {
	st := s.manager.Status()
	st.StepCache = s.comparer.Step().Stats()
	return st
}

// Ready reports whether requests can be served: the manager has a backend
// and the registry answered once or static models are configured.
func (s *Service) Ready() bool {
	if s.manager == nil || !s.manager.Ready() {
		return false
	}
	return s.hasStatic || s.answered.Load()
}
