package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDatabase writes data to name inside a fresh temp directory and
// returns its path.
//
// Example:
//
//	path := testutil.WriteDatabase(t, "all_tagtypes.sdb", testutil.AllTagTypes())
func WriteDatabase(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
