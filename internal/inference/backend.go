// Package inference resolves fill-mask pipelines for hub models and runs them.
package inference

import (
	"context"

	"mlmcompare/pkg/types"
)

// Backend resolves a model identifier into a runnable pipeline.
// Implementations must only return pipelines that support fill-mask.
type Backend interface {
	Resolve(ctx context.Context, modelID string) (Pipeline, error)
}

// Pipeline is a resolved fill-mask capability for one model.
type Pipeline interface {
	// ModelID is the identifier the pipeline was resolved for.
	ModelID() string
	// MaskToken is the marker the model expects at the predicted position.
	MaskToken() string
	// FillMask returns at most topK candidates in descending score order.
	// text must already contain MaskToken.
	FillMask(ctx context.Context, text string, topK int) ([]types.Prediction, error)
	// Close releases any resources associated with the pipeline.
	Close() error
}
