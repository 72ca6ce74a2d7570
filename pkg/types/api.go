package types

// LanguagesResponse is returned by GET /api/languages.
type LanguagesResponse struct {
	// Template sentence per language code.
	Templates map[string]string `json:"templates"`
	// Language codes in display order.
	// example: ["en","ja"]
	Languages []string `json:"languages" example:"[\"en\",\"ja\"]"`
	// Top-k used when the page is first opened.
	// example: 5
	DefaultTopK int `json:"default_top_k" example:"5"`
	MinTopK     int `json:"min_top_k" example:"1"`
	MaxTopK     int `json:"max_top_k" example:"10"`
}

// ModelsResponse wraps the list of models returned by GET /api/models.
type ModelsResponse struct {
	// Language the listing was filtered by.
	// example: en
	Language string `json:"language" example:"en"`
	// Compatible models, in registry order.
	Models []Model `json:"models"`
	// Set when the registry could not be reached and the list degraded to empty.
	Warning string `json:"warning,omitempty"`
}

// FillMaskRequest is the payload of POST /api/fill-mask.
type FillMaskRequest struct {
	// Model identifier.
	// example: bert-base-uncased
	Model string `json:"model" example:"bert-base-uncased"`
	// Sentence containing exactly one [MASK] placeholder.
	// example: Paris is the [MASK] of France.
	Text string `json:"text" example:"Paris is the [MASK] of France."`
	// Number of candidates, 1 to 10.
	// example: 5
	TopK int `json:"top_k" example:"5"`
}

// ChartData is the plotted form of a prediction list, lowest score first.
type ChartData struct {
	Title  string    `json:"title" example:"bert-base-uncased"`
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// FillMaskResponse is the result of a single inference-and-render step.
type FillMaskResponse struct {
	Model string `json:"model" example:"bert-base-uncased"`
	// Text as sent to the model, with the model's own mask marker.
	// example: Paris is the [MASK] of France.
	Input string `json:"input" example:"Paris is the [MASK] of France."`
	// Mask marker of the model.
	// example: [MASK]
	MaskToken string `json:"mask_token" example:"[MASK]"`
	TopK      int    `json:"top_k" example:"5"`
	// Predictions in descending score order.
	Predictions []Prediction `json:"predictions"`
	Chart       ChartData    `json:"chart"`
}

// CompareRequest is the payload of POST /api/compare.
type CompareRequest struct {
	// Exactly two model identifiers.
	// example: ["bert-base-uncased","roberta-base"]
	Models []string `json:"models" example:"[\"bert-base-uncased\",\"roberta-base\"]"`
	Text   string   `json:"text" example:"Paris is the [MASK] of France."`
	TopK   int      `json:"top_k" example:"5"`
}

// CompareColumn holds one model's outcome; exactly one of Result and Error is set.
type CompareColumn struct {
	Model  string            `json:"model" example:"bert-base-uncased"`
	Result *FillMaskResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// CompareResponse is returned by POST /api/compare.
type CompareResponse struct {
	// Identifier of this run.
	// example: 2f1c0a52-9a53-4a8e-9a3b-5b0f0a0b7d11
	RunID   string          `json:"run_id" example:"2f1c0a52-9a53-4a8e-9a3b-5b0f0a0b7d11"`
	Columns []CompareColumn `json:"columns"`
	// Disk usage readout, omitted when unavailable.
	Disk *DiskUsage `json:"disk,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: please select two models to compare them
	Error string `json:"error" example:"please select two models to compare them"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// PipelineStatus summarizes a resolved model pipeline for /status.
type PipelineStatus struct {
	// ID of the model this pipeline serves.
	// example: bert-base-uncased
	ModelID string `json:"model_id" example:"bert-base-uncased"`
	// Lifecycle state (loading, ready, draining, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Mask marker resolved for the model.
	// example: [MASK]
	MaskToken string `json:"mask_token,omitempty" example:"[MASK]"`
	// Last time this pipeline served a request (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix" example:"1700000000"`
	// Requests waiting for the pipeline.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Requests currently running against the pipeline.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Maximum queued requests allowed before backpressure triggers.
	// example: 32
	MaxQueueDepth int `json:"max_queue_depth" example:"32"`
	// Last resolution or inference error, if any.
	Error string `json:"error,omitempty"`
}

// CacheStats reports memo cache occupancy and effectiveness.
type CacheStats struct {
	Entries   int    `json:"entries" example:"12"`
	Hits      uint64 `json:"hits" example:"40"`
	Misses    uint64 `json:"misses" example:"12"`
	Evictions uint64 `json:"evictions" example:"0"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Resolved pipelines.
	Pipelines []PipelineStatus `json:"pipelines"`
	// Maximum pipelines kept resolved at once.
	// example: 8
	MaxPipelines int `json:"max_pipelines" example:"8"`
	// Overall manager state (idle, loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Last error observed by the manager (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Total pipelines evicted to stay within the bound.
	// example: 2
	EvictionsTotal uint64 `json:"evictions_total" example:"2"`
	// Total pipeline resolutions.
	// example: 5
	LoadsTotal uint64 `json:"loads_total" example:"5"`
	// Inference-and-render step cache.
	StepCache CacheStats `json:"step_cache"`
}
