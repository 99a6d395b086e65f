package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDocument drops raw bytes in place of the inventory document, for
// corrupt- and preseeded-document cases.
func WriteDocument(t *testing.T, cacheDir string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "inventory.json"), data, 0o644))
}

// ReadDocument decodes the inventory document into out.
func ReadDocument(t *testing.T, cacheDir string, out any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cacheDir, "inventory.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}
