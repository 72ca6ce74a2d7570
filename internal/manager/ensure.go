package manager

import (
	"context"
	"errors"
	"time"

	"mlmcompare/internal/inference"
)

// EnsurePipeline returns a ready instance for modelID, resolving it through
// the backend if needed. Concurrent callers for the same model share one
// resolution.
func (m *Manager) EnsurePipeline(ctx context.Context, modelID string) (*Instance, error) {
	if modelID == "" {
		return nil, ErrModelNotFound("(unspecified)")
	}
	if m.backend == nil {
		return nil, ErrDependencyUnavailable("inference backend not configured")
	}

	var inst *Instance
	for inst == nil {
		m.mu.Lock()
		cur, ok := m.instances[modelID]
		if !ok {
			inst = &Instance{
				ID:       modelID,
				State:    StateLoading,
				LastUsed: time.Now(),
				resolved: make(chan struct{}),
				genCh:    make(chan struct{}, 1),
				queueCh:  make(chan struct{}, m.maxQueueDepth),
			}
			m.instances[modelID] = inst
			m.state = StateLoading
			m.mu.Unlock()
			break
		}
		switch cur.State {
		case StateReady:
			cur.LastUsed = time.Now()
			m.mu.Unlock()
			return cur, nil
		case StateDraining:
			m.mu.Unlock()
			return nil, tooBusyError{modelID: modelID}
		}
		ch := cur.resolved
		m.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		// a failed resolution is shared with waiters unless it was the
		// resolver's own context that ended it
		if err := cur.resolveErr; err != nil && !isContextErr(err) {
			return nil, err
		}
	}

	m.emit(EventResolveStart, modelID)
	start := time.Now()
	p, err := m.backend.Resolve(ctx, modelID)
	if err != nil {
		err = classify(modelID, err)
		m.mu.Lock()
		inst.resolveErr = err
		inst.State = StateError
		delete(m.instances, modelID)
		m.state = StateError
		m.err = err.Error()
		m.mu.Unlock()
		close(inst.resolved)
		m.log.Warn().Err(err).Str("model", modelID).Dur("dur", time.Since(start)).Msg("resolve failed")
		m.emit(EventResolveError, modelID, "error", err.Error())
		return nil, err
	}

	m.mu.Lock()
	inst.Pipeline = p
	inst.State = StateReady
	inst.LastUsed = time.Now()
	m.loadsTotal++
	m.state = StateReady
	m.err = ""
	m.mu.Unlock()
	close(inst.resolved)
	m.log.Info().Str("model", modelID).Str("mask_token", p.MaskToken()).Dur("dur", time.Since(start)).Msg("pipeline ready")
	m.emit(EventResolveDone, modelID, "mask_token", p.MaskToken())

	m.evictUntilFits(modelID)
	return inst, nil
}

// classify maps backend errors onto the manager's error kinds.
func classify(modelID string, err error) error {
	switch {
	case inference.IsUnknownModel(err):
		return ErrModelNotFound(modelID)
	case inference.IsUnavailable(err):
		return dependencyUnavailableError{msg: err.Error(), cause: err}
	}
	return err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
