package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quailyquaily/datelog/internal/pathutil"
)

const defaultDBFile = "datelog.db"

// ResolveSQLiteDSN turns a user-supplied DSN into an openable sqlite path.
// Memory DSNs pass through untouched; file paths get ~ expansion and their
// parent directory created. An empty DSN resolves to ~/.datelog/datelog.db.
func ResolveSQLiteDSN(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return dsn, nil
	}
	if dsn == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve default db path: %w", err)
		}
		dsn = filepath.Join(home, ".datelog", defaultDBFile)
	} else {
		dsn = pathutil.ExpandHomePath(dsn)
	}
	if dir := filepath.Dir(dsn); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create db directory: %w", err)
		}
	}
	return dsn, nil
}
