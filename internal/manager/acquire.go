package manager

import (
	"context"
	"time"

	"mlmcompare/internal/inference"
)

// Lease is an admitted inference slot on a resolved pipeline.
type Lease struct {
	Pipeline inference.Pipeline
	m        *Manager
	inst     *Instance
	release  func()
}

// Acquire resolves modelID if needed and admits one inference call on it.
// The caller must Release the lease when the call is done.
func (m *Manager) Acquire(ctx context.Context, modelID string) (*Lease, error) {
	inst, err := m.EnsurePipeline(ctx, modelID)
	if err != nil {
		return nil, err
	}
	release, err := m.beginInference(ctx, inst)
	if err != nil {
		if IsTooBusy(err) {
			m.emit(EventBackpressure, modelID)
		}
		return nil, err
	}
	return &Lease{Pipeline: inst.Pipeline, m: m, inst: inst, release: release}, nil
}

// Release frees the slot and records the outcome of the call.
func (l *Lease) Release(callErr error) {
	if l == nil || l.release == nil {
		return
	}
	l.m.mu.Lock()
	l.inst.LastUsed = time.Now()
	l.inst.lastErr = callErr
	l.m.mu.Unlock()
	l.release()
	l.release = nil
}
