package types

// Model is a fill-mask model listed by the registry.
type Model struct {
	// Hub identifier of the model.
	// example: bert-base-uncased
	ID string `json:"id" example:"bert-base-uncased"`
	// Pipeline tag reported by the registry.
	// example: fill-mask
	PipelineTag string `json:"pipeline_tag,omitempty" example:"fill-mask"`
	// Library the weights target (transformers, ...).
	// example: transformers
	LibraryName string `json:"library_name,omitempty" example:"transformers"`
	// Download count reported by the registry.
	// example: 1000000
	Downloads int64 `json:"downloads,omitempty" example:"1000000"`
	// Like count reported by the registry.
	// example: 1500
	Likes int64 `json:"likes,omitempty" example:"1500"`
}

// Prediction is one candidate returned by fill-mask inference.
type Prediction struct {
	// Vocabulary id of the predicted token.
	// example: 3007
	Token int64 `json:"token" example:"3007"`
	// Decoded token string.
	// example: capital
	TokenStr string `json:"token_str" example:"capital"`
	// Probability assigned to the token.
	// example: 0.9971
	Score float64 `json:"score" example:"0.9971"`
	// Input sentence with the mask filled in.
	// example: paris is the capital of france.
	Sequence string `json:"sequence,omitempty" example:"paris is the capital of france."`
}

// DiskUsage is a capacity readout for the filesystem holding a path.
type DiskUsage struct {
	Path       string `json:"path" example:"/"`
	TotalBytes uint64 `json:"total_bytes" example:"502468108288"`
	UsedBytes  uint64 `json:"used_bytes" example:"123456789012"`
	FreeBytes  uint64 `json:"free_bytes" example:"379011319276"`
}
