package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsCandidates_Order(t *testing.T) {
	candidates := ItemsCandidates("/explicit.yaml", "/opt/ticks", "/home/u/.config/Ticks")
	assert.Equal(t, []string{
		"/explicit.yaml",
		filepath.FromSlash(DefaultItemsFile),
		filepath.Join("/opt/ticks", filepath.FromSlash(DefaultItemsFile)),
		filepath.Join("/home/u/.config/Ticks", itemsFileName),
	}, candidates)

	assert.Equal(t, []string{filepath.FromSlash(DefaultItemsFile)}, ItemsCandidates("", "", ""))
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.yaml")
	assert.NoError(t, os.WriteFile(present, []byte("items: []\n"), 0o644))

	path, ok := FirstExisting([]string{filepath.Join(dir, "missing.yaml"), dir, present})
	assert.True(t, ok)
	assert.Equal(t, present, path)

	_, ok = FirstExisting([]string{filepath.Join(dir, "missing.yaml")})
	assert.False(t, ok)
}
