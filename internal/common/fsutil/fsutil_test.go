package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/var/cache/mlmcompare", "/var/cache/mlmcompare"},
		{"relative/dir", "relative/dir"},
		{"~", home},
		{"~/.cache/mlmcompare", filepath.Join(home, ".cache", "mlmcompare")},
		{"~alice/cache", "~alice/cache"},
	}
	for _, c := range cases {
		got, err := ExpandHome(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "meta.json")
	if PathExists(f) {
		t.Fatalf("%s reported before creation", f)
	}
	if err := os.WriteFile(f, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !PathExists(f) || !PathExists(dir) {
		t.Fatalf("existing paths not reported")
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "models", "bert-base-uncased")
	got, err := EnsureDir(target)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != target || !PathExists(target) {
		t.Fatalf("expected %q to exist, got %q", target, got)
	}
	// second call is a no-op
	if _, err := EnsureDir(target); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if _, err := EnsureDir(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
