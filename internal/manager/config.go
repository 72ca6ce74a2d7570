package manager

import (
	"time"

	"github.com/rs/zerolog"

	"mlmcompare/internal/inference"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultMaxPipelines  = 8
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
	defaultDrainTimeout  = 5 * time.Second
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Backend       inference.Backend
	MaxPipelines  int
	MaxQueueDepth int
	MaxWait       time.Duration
	DrainTimeout  time.Duration
	Publisher     EventPublisher
	Logger        *zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		state:     StateIdle,
		backend:   cfg.Backend,
		instances: make(map[string]*Instance),
		publisher: cfg.Publisher,
		startTime: time.Now(),
	}
	// Apply defaults if unset
	if cfg.MaxPipelines <= 0 {
		m.maxPipelines = defaultMaxPipelines
	} else {
		m.maxPipelines = cfg.MaxPipelines
	}
	if cfg.MaxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	} else {
		m.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		m.maxWait = defaultMaxWait
	} else {
		m.maxWait = cfg.MaxWait
	}
	if cfg.DrainTimeout <= 0 {
		m.drainTimeout = defaultDrainTimeout
	} else {
		m.drainTimeout = cfg.DrainTimeout
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "manager").Logger()
	} else {
		m.log = zerolog.Nop()
	}
	return m
}
