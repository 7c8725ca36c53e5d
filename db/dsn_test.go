package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSQLiteDSNMemoryPassthrough(t *testing.T) {
	got, err := ResolveSQLiteDSN(":memory:")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != ":memory:" {
		t.Fatalf("expected passthrough, got %q", got)
	}

	got, err = ResolveSQLiteDSN("file:test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "file:test?mode=memory&cache=shared" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestResolveSQLiteDSNCreatesParentDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "dir", "log.db")
	got, err := ResolveSQLiteDSN(target)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Fatalf("parent directory not created: %v", err)
	}
}
