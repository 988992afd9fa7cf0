package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")
	require.NoError(t, os.WriteFile(path, []byte("[queue]\nmax_items = 1\n"), 0o644))

	loaded := make(chan *Config, 1)
	w := NewWatcher(path, nil, func(c *Config) { loaded <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watch a moment to establish before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[queue]\nmax_items = 42\n"), 0o644))

	select {
	case c := <-loaded:
		assert.Equal(t, 42, c.Queue.MaxItems)
	case <-time.After(3 * time.Second):
		t.Fatal("reload not observed")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")
	require.NoError(t, os.WriteFile(path, []byte("[queue]\nmax_items = 1\n"), 0o644))

	loaded := make(chan *Config, 1)
	w := NewWatcher(path, nil, func(c *Config) { loaded <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-loaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
