//go:build !linux && !darwin

package fsutil

import (
	"errors"

	"mlmcompare/pkg/types"
)

// DiskUsage is unsupported on this platform.
func DiskUsage(path string) (types.DiskUsage, error) {
	return types.DiskUsage{}, errors.New("disk usage not supported on this platform")
}
