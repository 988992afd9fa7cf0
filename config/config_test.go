package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 64, cfg.Display.Width)
	assert.Equal(t, 32, cfg.Display.Height)
	assert.Equal(t, 1.0, cfg.Display.Brightness)
	assert.Equal(t, 100, cfg.Queue.MaxItems)
	assert.Equal(t, 5.0, cfg.Queue.DefaultDuration)
	assert.Equal(t, 0.1, cfg.Manager.ProcessInterval)
	assert.Equal(t, 2, cfg.Ambient.MaxEffects)
	assert.Equal(t, 5, cfg.Ambient.TargetFPS)
	assert.Equal(t, 8, cfg.Particle.MaxParticles)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/marquee.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")

	content := `
[display]
width = 128
height = 64
brightness = 0.7

[queue]
max_items = 50
default_duration = 3.5

[manager]
process_interval = 0.05

[ambient]
max_effects = 4
target_fps = 10

[particles]
max_particles = 16
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Display.Width)
	assert.Equal(t, 64, cfg.Display.Height)
	assert.Equal(t, 0.7, cfg.Display.Brightness)
	assert.Equal(t, 50, cfg.Queue.MaxItems)
	assert.Equal(t, 3.5, cfg.Queue.DefaultDuration)
	assert.Equal(t, 0.05, cfg.Manager.ProcessInterval)
	assert.Equal(t, 4, cfg.Ambient.MaxEffects)
	assert.Equal(t, 10, cfg.Ambient.TargetFPS)
	assert.Equal(t, 16, cfg.Particle.MaxParticles)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")

	require.NoError(t, os.WriteFile(path, []byte("[queue]\nmax_items = 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Queue.MaxItems)
	assert.Equal(t, Default().Display, cfg.Display)
	assert.Equal(t, Default().Manager, cfg.Manager)
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadAppliesFloors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")

	content := `
[manager]
process_interval = 0.001

[queue]
max_items = -1

[display]
brightness = 5.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MinIntervalSec, cfg.Manager.ProcessInterval)
	assert.Equal(t, DefaultMaxItems, cfg.Queue.MaxItems)
	assert.Equal(t, DefaultBrightness, cfg.Display.Brightness)
}

func TestDurationConversions(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100*time.Millisecond, cfg.ProcessIntervalDuration())
	assert.Equal(t, 5*time.Second, cfg.DefaultDurationDuration())
}
