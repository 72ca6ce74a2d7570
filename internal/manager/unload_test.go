package manager

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestUnload_RemovesInstance(t *testing.T) {
	fb := newFakeBackend("m")
	pub := NewMemoryPublisher()
	m := NewWithConfig(ManagerConfig{Backend: fb, Publisher: pub, DrainTimeout: 200 * time.Millisecond})
	if _, err := m.EnsurePipeline(context.Background(), "m"); err != nil {
		t.Fatalf("EnsurePipeline: %v", err)
	}
	if err := m.Unload("m"); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	m.mu.RLock()
	_, exists := m.instances["m"]
	m.mu.RUnlock()
	if exists {
		t.Fatalf("instance still exists after unload")
	}
	if closed := fb.closedIDs(); len(closed) != 1 {
		t.Fatalf("pipeline not closed: %v", closed)
	}
	if err := m.Unload("m"); !IsModelNotFound(err) {
		t.Fatalf("second unload: %v", err)
	}
}

func TestUnload_DrainRejectsNewWork(t *testing.T) {
	m := NewWithConfig(ManagerConfig{Backend: newFakeBackend("m"), DrainTimeout: time.Second})
	lease, err := m.Acquire(context.Background(), "m")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	done := make(chan struct{})
	go func() {
		_ = m.Unload("m")
		close(done)
	}()
	// wait for draining state
	for {
		m.mu.RLock()
		st := m.instances["m"].State
		m.mu.RUnlock()
		if st == StateDraining {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := m.EnsurePipeline(context.Background(), "m"); !IsTooBusy(err) {
		t.Fatalf("expected too busy while draining, got %v", err)
	}
	lease.Release(nil)
	<-done
}

func TestClose_UnloadsAll(t *testing.T) {
	fb := newFakeBackend("a", "b")
	m := NewWithConfig(ManagerConfig{Backend: fb})
	for _, id := range []string{"a", "b"} {
		if _, err := m.EnsurePipeline(context.Background(), id); err != nil {
			t.Fatalf("ensure %s: %v", id, err)
		}
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := len(m.Loaded()); n != 0 {
		t.Fatalf("loaded after close=%d", n)
	}
	if n := len(fb.closedIDs()); n != 2 {
		t.Fatalf("closed=%d", n)
	}
}

func TestUnload_TimeoutStillCloses(t *testing.T) {
	fb := newFakeBackend("m")
	pub := NewMemoryPublisher()
	m := NewWithConfig(ManagerConfig{Backend: fb, Publisher: pub, DrainTimeout: 30 * time.Millisecond})
	lease, err := m.Acquire(context.Background(), "m")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lease.Release(nil)

	if err := m.Unload("m"); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	var names []string
	for _, e := range pub.For("m") {
		names = append(names, e.Name)
	}
	got := strings.Join(names, ",")
	if !strings.Contains(got, EventUnloadTimeout) || !strings.HasSuffix(got, EventUnloadDone) {
		t.Fatalf("unexpected events: %s", got)
	}
	if len(fb.closedIDs()) != 1 {
		t.Fatalf("pipeline not closed after timeout")
	}
}

func TestLogPublisher_LevelsByEvent(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf).Level(zerolog.WarnLevel))
	p.Publish(Event{Name: EventResolveDone, ModelID: "bert-base-uncased"})
	if buf.Len() != 0 {
		t.Fatalf("debug event logged at warn level: %s", buf.String())
	}
	p.Publish(Event{Name: EventResolveError, ModelID: "nobody/missing", Fields: map[string]any{"error": "not found"}})
	out := buf.String()
	if !strings.Contains(out, `"event":"resolve_error"`) || !strings.Contains(out, `"model":"nobody/missing"`) {
		t.Fatalf("unexpected log: %s", out)
	}
}
