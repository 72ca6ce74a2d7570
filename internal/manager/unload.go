package manager

import (
	"time"
)

const drainPoll = 10 * time.Millisecond

// Unload drains a ready pipeline and drops it. New work is rejected with
// backpressure while queued and running requests get up to drainTimeout to
// finish; the pipeline is closed either way.
func (m *Manager) Unload(modelID string) error {
	if modelID == "" {
		return ErrModelNotFound("(unspecified)")
	}
	m.mu.Lock()
	inst := m.instances[modelID]
	if inst == nil || inst.State != StateReady {
		m.mu.Unlock()
		return ErrModelNotFound(modelID)
	}
	inst.State = StateDraining
	m.mu.Unlock()
	m.emit(EventUnloadStart, modelID)

	if !m.waitDrained(inst) {
		m.emit(EventUnloadTimeout, modelID, "inflight", len(inst.genCh), "queue", len(inst.queueCh))
		m.log.Warn().Str("model", modelID).Dur("timeout", m.drainTimeout).Msg("drain timed out, closing anyway")
	}

	if inst.Pipeline != nil {
		_ = inst.Pipeline.Close()
	}
	m.mu.Lock()
	if m.instances[modelID] == inst {
		delete(m.instances, modelID)
	}
	m.mu.Unlock()
	m.emit(EventUnloadDone, modelID)
	return nil
}

// waitDrained polls until inst has no queued or running requests and
// reports whether that happened before the drain timeout.
func (m *Manager) waitDrained(inst *Instance) bool {
	timeout := time.NewTimer(m.drainTimeout)
	defer timeout.Stop()
	tick := time.NewTicker(drainPoll)
	defer tick.Stop()
	for {
		if inst.idle() {
			return true
		}
		select {
		case <-tick.C:
		case <-timeout.C:
			return inst.idle()
		}
	}
}

// Close unloads every ready pipeline.
func (m *Manager) Close() error {
	for _, id := range m.Loaded() {
		_ = m.Unload(id)
	}
	return nil
}
