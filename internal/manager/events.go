package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Lifecycle event names.
const (
	EventResolveStart  = "resolve_start"
	EventResolveDone   = "resolve_done"
	EventResolveError  = "resolve_error"
	EventBackpressure  = "backpressure"
	EventEvict         = "evict"
	EventUnloadStart   = "unload_start"
	EventUnloadTimeout = "unload_timeout"
	EventUnloadDone    = "unload_done"
)

// Event is a pipeline lifecycle notification.
type Event struct {
	Name    string
	ModelID string
	At      time.Time
	Fields  map[string]any
}

// EventPublisher receives events from the manager. Publish is called
// outside the manager lock and must not block.
type EventPublisher interface {
	Publish(Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// LogPublisher writes events to a zerolog logger at debug level, errors
// and timeouts at warn.
type LogPublisher struct {
	log zerolog.Logger
}

// NewLogPublisher returns a publisher logging through l.
func NewLogPublisher(l zerolog.Logger) LogPublisher {
	return LogPublisher{log: l.With().Str("component", "manager_events").Logger()}
}

func (p LogPublisher) Publish(e Event) {
	ev := p.log.Debug()
	if e.Name == EventResolveError || e.Name == EventUnloadTimeout {
		ev = p.log.Warn()
	}
	ev.Str("event", e.Name).Str("model", e.ModelID).Fields(e.Fields).Msg("pipeline event")
}

// MemoryPublisher records events, for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

// Names returns the event names in publish order.
func (p *MemoryPublisher) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Name
	}
	return out
}

// For returns the events published for modelID.
func (p *MemoryPublisher) For(modelID string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Event
	for _, e := range p.events {
		if e.ModelID == modelID {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) emit(name, modelID string, kv ...any) {
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = kv[i+1]
		}
	}
	m.publisher.Publish(Event{Name: name, ModelID: modelID, At: time.Now(), Fields: fields})
}
