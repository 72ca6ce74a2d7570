// Package manager owns the lifecycle of resolved fill-mask pipelines and
// admission of inference calls against them. It is structured into small
// files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, Instance).
//   - errors.go: error types and helpers (IsTooBusy, IsModelNotFound, IsDependencyUnavailable).
//   - ensure.go: EnsurePipeline resolves a model once and shares the result.
//   - admission.go: per-pipeline queueing and single in-flight admission.
//   - acquire.go: Acquire combines ensure and admission for callers.
//   - evict.go: LRU eviction of idle pipelines above MaxPipelines.
//   - unload.go: graceful drain of one pipeline or all of them.
//   - status_report.go: Status reporting for /status.
//   - events.go: lifecycle events and publishers.
//
// External packages should treat this package as the orchestration layer and
// use public methods only (NewWithConfig, Acquire, Status, Close).
package manager
