package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenDir is where golden files live, relative to the package under test.
const GoldenDir = "testdata"

// Golden compares got with testdata/<name>.golden.
// Run with GOLDEN_UPDATE=1 to rewrite the file from got instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join(GoldenDir, name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll(GoldenDir, 0755))
		require.NoError(t, os.WriteFile(path, got, 0644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "golden file %s (set GOLDEN_UPDATE=1 to create it)", path)
	assert.Equal(t, string(want), string(got), "output differs from %s", path)
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
