package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vix/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	err := os.WriteFile(path, []byte("test"), 0644)
	require.NoError(t, err, "failed to create test file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into a single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(path, []byte(fmt.Sprintf("test%d", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
		// Expected
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
		// Expected - no second notification
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	otherPath := filepath.Join(dir, "other.txt")
	err := os.WriteFile(path, []byte("doc"), 0644)
	require.NoError(t, err, "failed to create watched file")
	// Pre-create the other file so writes to it are just Write events
	err = os.WriteFile(otherPath, []byte("initial"), 0644)
	require.NoError(t, err, "failed to create other file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	err = os.WriteFile(otherPath, []byte("other content"), 0644)
	require.NoError(t, err, "failed to write other file")

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(100 * time.Millisecond):
		// Expected - no notification for unrelated file
	}
}

func TestWatcher_DetectsSaveViaRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	tempPath := filepath.Join(dir, "notes.md.tmp")
	err := os.WriteFile(path, []byte("doc"), 0644)
	require.NoError(t, err, "failed to create watched file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Atomic-save style: write a temp file, rename over the target.
	err = os.WriteFile(tempPath, []byte("new content"), 0644)
	require.NoError(t, err, "failed to write temp file")
	require.NoError(t, os.Rename(tempPath, path), "failed to rename")

	select {
	case <-onChange:
		// Expected
	case <-time.After(300 * time.Millisecond):
		t.Fatal("expected notification for renamed save")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	err := os.WriteFile(path, []byte("test"), 0644)
	require.NoError(t, err, "failed to create test file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	done := make(chan struct{})
	go func() {
		err := w.Stop()
		assert.NoError(t, err, "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
		// Expected - stop completed successfully
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestWatcher_StopClosesNotificationChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	err := os.WriteFile(path, []byte("test"), 0644)
	require.NoError(t, err, "failed to create test file")

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	require.NoError(t, w.Stop())

	// Receivers ranging over the channel must terminate once the
	// watcher stops, not block forever.
	select {
	case _, ok := <-onChange:
		assert.False(t, ok, "channel should be closed after Stop")
	case <-time.After(1 * time.Second):
		t.Fatal("notification channel not closed after Stop")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/docs/notes.md")

	assert.Equal(t, "/docs/notes.md", cfg.Path)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
