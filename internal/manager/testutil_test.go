package manager

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mlmcompare/internal/inference"
	"mlmcompare/pkg/types"
)

// fakeBackend resolves any id in models; other ids fail with errs[id] or unknown model.
type fakeBackend struct {
	models   map[string]string // id -> mask token
	errs     map[string]error
	gate     chan struct{} // when non-nil Resolve blocks until closed
	resolves atomic.Int32

	mu     sync.Mutex
	closed []string
}

func newFakeBackend(ids ...string) *fakeBackend {
	fb := &fakeBackend{models: map[string]string{}, errs: map[string]error{}}
	for _, id := range ids {
		fb.models[id] = "[MASK]"
	}
	return fb
}

func (f *fakeBackend) Resolve(ctx context.Context, modelID string) (inference.Pipeline, error) {
	f.resolves.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[modelID]; err != nil {
		return nil, err
	}
	mask, ok := f.models[modelID]
	if !ok {
		return nil, inference.ErrUnknownModel(modelID)
	}
	return &fakePipeline{id: modelID, mask: mask, b: f}, nil
}

func (f *fakeBackend) closedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.closed...)
}

type fakePipeline struct {
	id   string
	mask string
	b    *fakeBackend
}

func (p *fakePipeline) ModelID() string   { return p.id }
func (p *fakePipeline) MaskToken() string { return p.mask }

func (p *fakePipeline) FillMask(ctx context.Context, text string, topK int) ([]types.Prediction, error) {
	return []types.Prediction{{TokenStr: "x", Score: 1, Sequence: strings.Replace(text, p.mask, "x", 1)}}, nil
}

func (p *fakePipeline) Close() error {
	p.b.mu.Lock()
	p.b.closed = append(p.b.closed, p.id)
	p.b.mu.Unlock()
	return nil
}

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}
