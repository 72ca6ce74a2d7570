package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"mlmcompare/internal/inference"
)

type Manager struct {
	mu        sync.RWMutex
	state     State
	err       string
	backend   inference.Backend
	instances map[string]*Instance
	publisher EventPublisher
	log       zerolog.Logger
	startTime time.Time

	loadsTotal     uint64
	evictionsTotal uint64

	// Queue config
	maxPipelines  int
	maxQueueDepth int
	maxWait       time.Duration
	drainTimeout  time.Duration
}

// New constructs a Manager over backend with package defaults.
func New(backend inference.Backend) *Manager {
	return NewWithConfig(ManagerConfig{Backend: backend})
}

// Ready reports whether the manager can resolve pipelines.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backend != nil
}

// Loaded returns the ids of pipelines that are ready.
func (m *Manager) Loaded() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.instances))
	for id, inst := range m.instances {
		if inst.State == StateReady {
			out = append(out, id)
		}
	}
	return out
}
