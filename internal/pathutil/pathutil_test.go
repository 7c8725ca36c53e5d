package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	if got := ExpandHomePath("~"); got != filepath.Clean(home) {
		t.Fatalf("expected %q, got %q", home, got)
	}
	if got := ExpandHomePath("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Fatalf("expected joined home path, got %q", got)
	}
	if got := ExpandHomePath("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path should pass through, got %q", got)
	}
	if got := ExpandHomePath("  "); got != "" {
		t.Fatalf("blank input should stay empty, got %q", got)
	}
}
