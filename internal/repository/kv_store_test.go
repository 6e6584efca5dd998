package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("a", "hello"))
	require.NoError(t, s.Set("b", `{"json":"blob"}`))

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	// values survive a reopen
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok = reopened.Get("b")
	require.True(t, ok)
	assert.Equal(t, `{"json":"blob"}`, v)

	require.NoError(t, reopened.Delete("a"))
	_, ok = reopened.Get("a")
	assert.False(t, ok)
}

func TestFileStoreCorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)

	// the store stays usable after the corrupt snapshot is discarded
	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
