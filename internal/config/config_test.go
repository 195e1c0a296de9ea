package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults changed (-want +got):\n%s", diff)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  scale: 2
gameplay:
  lives: 3
  ghost_turn_interval: 500ms
scores:
  player_name: Mario
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Window.Scale)
	assert.Equal(t, 3, cfg.Gameplay.Lives)
	assert.Equal(t, 500*time.Millisecond, cfg.Gameplay.GhostTurnInterval)
	assert.Equal(t, "Mario", cfg.Scores.PlayerName)
	// untouched keys keep defaults
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, 100.0, cfg.Gameplay.PlayerSpeed)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "gameplay:\n  power_pellets: true\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gameplay:\n  lives: 2\naudio:\n  enabled: true\n")
	t.Setenv("PACMAN_LIVES", "5")
	t.Setenv("PACMAN_SEED", "42")
	t.Setenv("PACMAN_CONFIG_DIR", "/tmp/scores")
	t.Setenv("PACMAN_DISABLE_AUDIO", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Equal(t, int64(42), cfg.Gameplay.Seed)
	assert.Equal(t, "/tmp/scores", cfg.Scores.Dir)
	assert.False(t, cfg.Audio.Enabled, "PACMAN_DISABLE_AUDIO wins over enabled")
}

func TestEnvInvalidValueKeepsDefault(t *testing.T) {
	t.Setenv("PACMAN_LIVES", "many")
	t.Setenv("PACMAN_SCALE", "big")
	t.Setenv("PACMAN_ENABLE_AUDIO", "perhaps")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Gameplay.Lives)
	assert.Equal(t, 1.0, cfg.Window.Scale)
	assert.False(t, cfg.Audio.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero scale", mutate: func(c *Config) { c.Window.Scale = 0 }},
		{name: "zero tps", mutate: func(c *Config) { c.Window.TPS = 0 }},
		{name: "zero player speed", mutate: func(c *Config) { c.Gameplay.PlayerSpeed = 0 }},
		{name: "negative ghost speed", mutate: func(c *Config) { c.Gameplay.GhostSpeed = -1 }},
		{name: "zero turn interval", mutate: func(c *Config) { c.Gameplay.GhostTurnInterval = 0 }},
		{name: "no lives", mutate: func(c *Config) { c.Gameplay.Lives = 0 }},
		{name: "zero limit", mutate: func(c *Config) { c.Scores.Limit = 0 }},
		{name: "blank name", mutate: func(c *Config) { c.Scores.PlayerName = "  " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestYAMLRoundTripsThroughLoad(t *testing.T) {
	want := Default()
	want.Gameplay.Lives = 4
	want.Gameplay.GhostTurnInterval = 1500 * time.Millisecond
	data, err := want.YAML()
	require.NoError(t, err)

	got, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
