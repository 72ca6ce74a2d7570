package manager

// evictUntilFits drops least recently used idle pipelines until at most
// maxPipelines remain. keep is never evicted.
func (m *Manager) evictUntilFits(keep string) {
	for {
		m.mu.Lock()
		if len(m.instances) <= m.maxPipelines {
			m.mu.Unlock()
			return
		}
		var lru *Instance
		for id, inst := range m.instances {
			if id == keep || inst.State != StateReady || !inst.idle() {
				continue
			}
			if lru == nil || inst.LastUsed.Before(lru.LastUsed) {
				lru = inst
			}
		}
		if lru == nil {
			// nothing idle to evict
			m.mu.Unlock()
			return
		}
		delete(m.instances, lru.ID)
		m.evictionsTotal++
		m.mu.Unlock()

		if lru.Pipeline != nil {
			_ = lru.Pipeline.Close()
		}
		m.log.Debug().Str("model", lru.ID).Msg("pipeline evicted")
		m.emit(EventEvict, lru.ID)
	}
}
