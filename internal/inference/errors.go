package inference

import (
	"errors"
	"net/http"

	"mlmcompare/internal/common/httpclient"
)

type unknownModelError struct{ id string }

func (e unknownModelError) Error() string { return "unknown model: " + e.id }

// ErrUnknownModel reports that the hub has no model with this id.
func ErrUnknownModel(id string) error { return unknownModelError{id: id} }

// IsUnknownModel reports whether err indicates a missing model.
func IsUnknownModel(err error) bool {
	var e unknownModelError
	return errors.As(err, &e)
}

type incompatibleTaskError struct {
	id   string
	task string
}

func (e incompatibleTaskError) Error() string {
	if e.task == "" {
		return "model " + e.id + " does not declare a mask token"
	}
	return "model " + e.id + " serves " + e.task + ", not fill-mask"
}

// ErrIncompatibleTask reports a model that cannot run fill-mask.
func ErrIncompatibleTask(id, task string) error { return incompatibleTaskError{id: id, task: task} }

// IsIncompatibleTask reports whether err indicates a capability mismatch.
func IsIncompatibleTask(err error) bool {
	var e incompatibleTaskError
	return errors.As(err, &e)
}

// IsUnavailable reports whether err is an upstream outage or overload
// (model still loading, rate limited, gateway errors).
func IsUnavailable(err error) bool {
	var se *httpclient.StatusError
	if !errors.As(err, &se) {
		return false
	}
	switch se.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
