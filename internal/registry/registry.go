// Package registry lists fill-mask models per language.
package registry

import (
	"context"
	"errors"
	"fmt"

	"mlmcompare/pkg/types"
)

// TaskFillMask is the only task this service queries.
const TaskFillMask = "fill-mask"

// ErrUnknownLanguage is returned for a language without a configured template.
var ErrUnknownLanguage = errors.New("unknown language")

// Source lists models compatible with a language and task.
type Source interface {
	ListModels(ctx context.Context, language, task string) ([]types.Model, error)
}

// Static serves models declared in configuration.
type Static map[string][]string

// ListModels returns the declared models for language, in declaration order.
func (s Static) ListModels(_ context.Context, language, task string) ([]types.Model, error) {
	ids := s[language]
	out := make([]types.Model, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.Model{ID: id, PipelineTag: task})
	}
	return out, nil
}

// Fallback consults Secondary when Primary fails or returns nothing.
type Fallback struct {
	Primary   Source
	Secondary Source
}

// ListModels returns Primary's listing unless it is empty or failed.
// The primary error is returned only when the secondary has nothing either.
func (f Fallback) ListModels(ctx context.Context, language, task string) ([]types.Model, error) {
	models, err := f.Primary.ListModels(ctx, language, task)
	if err == nil && len(models) > 0 {
		return models, nil
	}
	if f.Secondary == nil {
		return models, err
	}
	alt, altErr := f.Secondary.ListModels(ctx, language, task)
	if altErr == nil && len(alt) > 0 {
		return alt, nil
	}
	if err != nil {
		return nil, err
	}
	return alt, altErr
}

// Languages restricts a Source to a fixed set of language codes.
type Languages struct {
	Allowed map[string]bool
	Next    Source
}

// ListModels rejects languages outside Allowed before calling Next.
func (l Languages) ListModels(ctx context.Context, language, task string) ([]types.Model, error) {
	if !l.Allowed[language] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return l.Next.ListModels(ctx, language, task)
}

// IDs extracts model identifiers.
func IDs(models []types.Model) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}
