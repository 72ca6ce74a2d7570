//go:build linux || darwin

package fsutil

import "testing"

func TestDiskUsage(t *testing.T) {
	d := t.TempDir()
	u, err := DiskUsage(d)
	if err != nil {
		t.Fatalf("disk usage: %v", err)
	}
	if u.TotalBytes == 0 {
		t.Fatalf("expected non-zero total: %+v", u)
	}
	if u.FreeBytes > u.TotalBytes || u.UsedBytes > u.TotalBytes {
		t.Fatalf("inconsistent readout: %+v", u)
	}
	if u.Path != d {
		t.Fatalf("path = %q, want %q", u.Path, d)
	}
}

func TestDiskUsage_MissingPath(t *testing.T) {
	if _, err := DiskUsage("/definitely/not/a/real/dir-12345"); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
