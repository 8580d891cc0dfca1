package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/colliders/internal/core/observability/log"
)

func next(t *testing.T, w *Watcher, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case name, ok := <-w.Events:
		return name, ok
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcherReportsDocuments(t *testing.T) {
	dir := t.TempDir()
	w, err := New(log.NewNop(), 20*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte("colliders: []"), 0o600))

	name, ok := next(t, w, 2*time.Second)
	require.True(t, ok)
	assert.Equal(t, "scene.yaml", filepath.Base(name))
}

func TestWatcherCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	w, err := New(log.NewNop(), 200*time.Millisecond, path)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"colliders": []}`), 0o600))
	}

	name, ok := next(t, w, 2*time.Second)
	require.True(t, ok)
	assert.Equal(t, path, name)

	_, ok = next(t, w, 400*time.Millisecond)
	assert.False(t, ok)
}

func TestWatcherFileFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w, err := New(log.NewNop(), 10*time.Millisecond, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), nil, 0o600))
	require.NoError(t, os.WriteFile(path, []byte("colliders = []"), 0o600))

	name, ok := next(t, w, 2*time.Second)
	require.True(t, ok)
	assert.Equal(t, path, name)
}

func TestWatcherClose(t *testing.T) {
	w, err := New(log.NewNop(), time.Millisecond, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNewMissingPath(t *testing.T) {
	_, err := New(log.NewNop(), time.Millisecond, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsDocument(t *testing.T) {
	for path, want := range map[string]bool{
		"a.yaml": true, "a.YML": true, "a.json": true, "a.toml": true,
		"a.txt": false, "a": false,
	} {
		assert.Equal(t, want, IsDocument(path), path)
	}
}
