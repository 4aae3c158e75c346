package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to a fresh file in a per-test directory and
// returns its path. The file is removed when the test finishes.
func WriteTempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
