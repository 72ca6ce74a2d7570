package manager

import (
	"time"

	"mlmcompare/internal/inference"
)

// State represents lifecycle state of the manager/instances.
type State string

const (
	StateIdle     State = "idle"
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateDraining State = "draining"
	StateError    State = "error"
)

// Instance is a resolved (or resolving) pipeline for one model id.
type Instance struct {
	ID       string
	State    State
	LastUsed time.Time
	Pipeline inference.Pipeline
	// resolveErr is written once, before resolved is closed, and read by
	// waiters only after it is closed.
	resolveErr error
	// lastErr is the outcome of the latest inference call, guarded by the
	// manager lock and reported by Status.
	lastErr error
	// resolved is closed once resolution finished, successfully or not.
	resolved chan struct{}
	// Queueing primitives
	genCh   chan struct{} // size 1: single in-flight inference
	queueCh chan struct{} // buffered: queue slots
}

func (inst *Instance) idle() bool {
	return len(inst.genCh) == 0 && len(inst.queueCh) == 0
}
