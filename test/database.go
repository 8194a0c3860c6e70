package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh database file. The file lives
// in a directory the test framework removes after the test, so every
// test starts from an empty ledger.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
