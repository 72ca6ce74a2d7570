package compare

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"mlmcompare/internal/chart"
	"mlmcompare/internal/inference"
	"mlmcompare/internal/manager"
	"mlmcompare/pkg/types"
)

// fakeBackend serves canned predictions per model and counts fill-mask calls.
type fakeBackend struct {
	masks map[string]string
	preds map[string][]types.Prediction
	fail  map[string]error
	crash atomic.Bool
	calls atomic.Int32

	mu     sync.Mutex
	inputs []string
}

func (f *fakeBackend) Resolve(_ context.Context, id string) (inference.Pipeline, error) {
	mask, ok := f.masks[id]
	if !ok {
		return nil, inference.ErrUnknownModel(id)
	}
	return &fakePipeline{id: id, mask: mask, b: f}, nil
}

type fakePipeline struct {
	id, mask string
	b        *fakeBackend
}

func (p *fakePipeline) ModelID() string   { return p.id }
func (p *fakePipeline) MaskToken() string { return p.mask }
func (p *fakePipeline) Close() error      { return nil }

func (p *fakePipeline) FillMask(_ context.Context, text string, topK int) ([]types.Prediction, error) {
	p.b.calls.Add(1)
	p.b.mu.Lock()
	p.b.inputs = append(p.b.inputs, text)
	p.b.mu.Unlock()
	if p.b.crash.Load() {
		panic("backend crashed")
	}
	if err := p.b.fail[p.id]; err != nil {
		return nil, err
	}
	if !strings.Contains(text, p.mask) {
		return nil, errors.New("mask token missing from input")
	}
	return p.b.preds[p.id], nil
}

func preds(pairs ...any) []types.Prediction {
	var out []types.Prediction
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.Prediction{TokenStr: pairs[i].(string), Score: pairs[i+1].(float64)})
	}
	return out
}

func newTestBackend() *fakeBackend {
	return &fakeBackend{
		masks: map[string]string{
			"bert-base-uncased": "[MASK]",
			"roberta-base":      "<mask>",
		},
		preds: map[string][]types.Prediction{
			"bert-base-uncased": preds("capital", 0.9, "city", 0.05, "heart", 0.03, "center", 0.01, "seat", 0.005, "home", 0.002),
			"roberta-base":      preds("capital", 0.8, "heart", 0.1),
		},
		fail: map[string]error{},
	}
}

func newTestStep(t *testing.T, fb *fakeBackend) *Step {
	t.Helper()
	m := manager.NewWithConfig(manager.ManagerConfig{Backend: fb})
	t.Cleanup(func() { _ = m.Close() })
	return NewStep(StepConfig{Pipelines: m, Renderer: chart.Renderer{}})
}
