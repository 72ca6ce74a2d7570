//go:build linux || darwin

package fsutil

import (
	"fmt"

	"golang.org/x/sys/unix"

	"mlmcompare/pkg/types"
)

// DiskUsage reports capacity of the filesystem holding path.
func DiskUsage(path string) (types.DiskUsage, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return types.DiskUsage{}, err
	}
	var st unix.Statfs_t
	if err := unix.Statfs(p, &st); err != nil {
		return types.DiskUsage{}, fmt.Errorf("statfs %s: %w", p, err)
	}
	bsize := uint64(st.Bsize)
	total := uint64(st.Blocks) * bsize
	free := uint64(st.Bavail) * bsize
	// used counts blocks not free to anyone, root-reserved ones included
	used := total - uint64(st.Bfree)*bsize
	return types.DiskUsage{Path: p, TotalBytes: total, UsedBytes: used, FreeBytes: free}, nil
}
