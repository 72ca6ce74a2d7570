package compare

import (
	"errors"
	"fmt"

	"mlmcompare/internal/config"
	"mlmcompare/internal/textnorm"
)

// SelectionMessage is shown when the number of selected models is not two.
const SelectionMessage = "Please select two models to compare them"

// Validation errors; none of them reach the inference backend.
var (
	ErrSelection            = errors.New("please select two models to compare them")
	ErrEmptyModel           = errors.New("model is required")
	ErrInvalidTopK          = fmt.Errorf("top_k must be between %d and %d", config.MinTopK, config.MaxTopK)
	ErrNoPlaceholder        = errors.New("text must contain " + textnorm.Placeholder)
	ErrMultiplePlaceholders = errors.New("text must contain exactly one " + textnorm.Placeholder)
)

// IsInputError reports whether err was caused by the request rather than by
// the model or an upstream service.
func IsInputError(err error) bool {
	for _, target := range []error{ErrSelection, ErrEmptyModel, ErrInvalidTopK, ErrNoPlaceholder, ErrMultiplePlaceholders} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
