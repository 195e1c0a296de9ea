package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for any out-of-range setting.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Scores   ScoresConfig   `yaml:"scores"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
	TPS   int     `yaml:"tps"`
}

type GameplayConfig struct {
	// Speeds are in pixels per second.
	PlayerSpeed       float64       `yaml:"player_speed"`
	GhostSpeed        float64       `yaml:"ghost_speed"`
	GhostTurnInterval time.Duration `yaml:"ghost_turn_interval"`
	Lives             int           `yaml:"lives"`
	// Seed 0 means seed from the clock.
	Seed     int64  `yaml:"seed"`
	MazeFile string `yaml:"maze_file"`
}

type AudioConfig struct {
	Enabled   bool   `yaml:"enabled"`
	SoundsDir string `yaml:"sounds_dir"`
}

type ScoresConfig struct {
	// Dir empty means the platform config directory.
	Dir        string `yaml:"dir"`
	PlayerName string `yaml:"player_name"`
	Limit      int    `yaml:"limit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings of the original arcade build.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Mario's Pac-Man",
			Scale: 1.0,
			TPS:   60,
		},
		Gameplay: GameplayConfig{
			PlayerSpeed:       100,
			GhostSpeed:        80,
			GhostTurnInterval: time.Second,
			Lives:             1,
		},
		Audio: AudioConfig{
			SoundsDir: "assets/sounds",
		},
		Scores: ScoresConfig{
			PlayerName: "Player",
			Limit:      10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document keeps the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Window.Scale = ParseFloat("PACMAN_SCALE", cfg.Window.Scale)
	cfg.Gameplay.Lives = ParseInt("PACMAN_LIVES", cfg.Gameplay.Lives)
	cfg.Gameplay.Seed = int64(ParseInt("PACMAN_SEED", int(cfg.Gameplay.Seed)))
	cfg.Gameplay.MazeFile = ParseString("PACMAN_MAZE", cfg.Gameplay.MazeFile)
	cfg.Audio.SoundsDir = ParseString("PACMAN_SOUNDS_DIR", cfg.Audio.SoundsDir)
	cfg.Audio.Enabled = ParseBool("PACMAN_ENABLE_AUDIO", cfg.Audio.Enabled)
	if ParseBool("PACMAN_DISABLE_AUDIO", false) {
		cfg.Audio.Enabled = false
	}
	cfg.Scores.Dir = ParseString("PACMAN_CONFIG_DIR", cfg.Scores.Dir)
	cfg.Scores.PlayerName = ParseString("PACMAN_PLAYER_NAME", cfg.Scores.PlayerName)
	cfg.Log.Level = ParseString("LOG_LEVEL", cfg.Log.Level)
}

// Validate reports the first setting that the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalid, c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	case c.Gameplay.PlayerSpeed <= 0:
		return fmt.Errorf("%w: gameplay.player_speed must be positive, got %v", ErrInvalid, c.Gameplay.PlayerSpeed)
	case c.Gameplay.GhostSpeed < 0:
		return fmt.Errorf("%w: gameplay.ghost_speed must not be negative, got %v", ErrInvalid, c.Gameplay.GhostSpeed)
	case c.Gameplay.GhostTurnInterval <= 0:
		return fmt.Errorf("%w: gameplay.ghost_turn_interval must be positive, got %v", ErrInvalid, c.Gameplay.GhostTurnInterval)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Scores.Limit < 1:
		return fmt.Errorf("%w: scores.limit must be at least 1, got %d", ErrInvalid, c.Scores.Limit)
	case strings.TrimSpace(c.Scores.PlayerName) == "":
		return fmt.Errorf("%w: scores.player_name must not be empty", ErrInvalid)
	}
	return nil
}

// YAML renders the configuration the way Load reads it.
func (c Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
