// Package compare runs the memoized inference-and-render step and compares
// two models on the same sentence.
package compare

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"mlmcompare/internal/chart"
	"mlmcompare/internal/config"
	"mlmcompare/internal/manager"
	"mlmcompare/internal/memo"
	"mlmcompare/internal/textnorm"
	"mlmcompare/pkg/types"
)

// Key identifies one step computation. It is the memo key, so Text is stored
// normalized.
type Key struct {
	Model string
	Text  string
	TopK  int
}

// Result is the output of one step.
type Result struct {
	Model string
	// Text as entered, normalized.
	Text string
	TopK int
	// MaskToken is the model's own marker; Input has it in place of [MASK].
	MaskToken   string
	Input       string
	Predictions []types.Prediction
	Chart       chart.Chart
	HTML        []byte
	ComputedAt  time.Time
}

// Response converts r to its API payload.
func (r Result) Response() types.FillMaskResponse {
	return types.FillMaskResponse{
		Model:       r.Model,
		Input:       r.Input,
		MaskToken:   r.MaskToken,
		TopK:        r.TopK,
		Predictions: append([]types.Prediction(nil), r.Predictions...),
		Chart:       r.Chart.Data(),
	}
}

// Pipelines hands out admitted pipelines; *manager.Manager implements it.
type Pipelines interface {
	Acquire(ctx context.Context, modelID string) (*manager.Lease, error)
}

// StepConfig configures NewStep.
type StepConfig struct {
	Pipelines Pipelines
	Renderer  chart.Renderer
	// MaxEntries bounds the memo with LRU eviction; <= 0 keeps every result
	// for the life of the process.
	MaxEntries int
	Logger     *zerolog.Logger
}

// Step is the memoized inference-and-render unit.
type Step struct {
	pipelines Pipelines
	renderer  chart.Renderer
	cache     *memo.Cache[Key, Result]
	log       zerolog.Logger
	now       func() time.Time
}

// NewStep builds a Step from cfg.
func NewStep(cfg StepConfig) *Step {
	policy := memo.Unbounded()
	if cfg.MaxEntries > 0 {
		policy = memo.LRU(cfg.MaxEntries)
	}
	s := &Step{
		pipelines: cfg.Pipelines,
		renderer:  cfg.Renderer,
		cache:     memo.New[Key, Result]("step", policy),
		now:       time.Now,
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "step").Logger()
	} else {
		s.log = zerolog.Nop()
	}
	return s
}

// Validate normalizes key and checks it without touching the backend.
func Validate(key Key) (Key, error) {
	if key.Model == "" {
		return key, ErrEmptyModel
	}
	if key.TopK < config.MinTopK || key.TopK > config.MaxTopK {
		return key, ErrInvalidTopK
	}
	key.Text = textnorm.Normalize(key.Text)
	switch n := textnorm.CountPlaceholders(key.Text); {
	case n == 0:
		return key, ErrNoPlaceholder
	case n > 1:
		return key, ErrMultiplePlaceholders
	}
	return key, nil
}

// Run returns the result for key, computing it at most once per distinct key.
func (s *Step) Run(ctx context.Context, key Key) (Result, error) {
	key, err := Validate(key)
	if err != nil {
		return Result{}, err
	}
	return s.cache.GetOrCompute(ctx, key, func(ctx context.Context) (Result, error) {
		return s.compute(ctx, key)
	})
}

// Stats reports the memo occupancy.
func (s *Step) Stats() types.CacheStats { return s.cache.Stats() }

func (s *Step) compute(ctx context.Context, key Key) (res Result, err error) {
	start := s.now()
	defer func() {
		outcome := "ok"
		switch {
		case manager.IsTooBusy(err):
			outcome = "busy"
		case err != nil:
			outcome = "error"
		}
		stepRuns.WithLabelValues(outcome).Inc()
		stepDuration.Observe(time.Since(start).Seconds())
	}()

	lease, err := s.pipelines.Acquire(ctx, key.Model)
	if err != nil {
		return Result{}, err
	}
	mask := lease.Pipeline.MaskToken()
	input := textnorm.ReplacePlaceholder(key.Text, mask)
	preds, err := fillMask(ctx, lease, input, key.TopK)
	if err != nil {
		return Result{}, err
	}
	preds = rank(preds, key.TopK)

	c := chart.FromPredictions(key.Model, preds)
	html, err := s.renderer.HTML(c)
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", key.Model, err)
	}
	s.log.Debug().Str("model", key.Model).Int("top_k", key.TopK).Int("bars", c.Len()).Dur("dur", time.Since(start)).Msg("step computed")
	return Result{
		Model:       key.Model,
		Text:        key.Text,
		TopK:        key.TopK,
		MaskToken:   mask,
		Input:       input,
		Predictions: preds,
		Chart:       c,
		HTML:        html,
		ComputedAt:  s.now(),
	}, nil
}

// fillMask runs one inference call on lease and always releases it.
func fillMask(ctx context.Context, lease *manager.Lease, text string, topK int) (preds []types.Prediction, err error) {
	defer func() { lease.Release(err) }()
	return lease.Pipeline.FillMask(ctx, text, topK)
}

// rank copies preds into descending score order, keeping backend order among
// ties, and keeps at most topK.
func rank(preds []types.Prediction, topK int) []types.Prediction {
	out := append([]types.Prediction(nil), preds...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}
