// Package config loads game settings from defaults, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/HJXCODE-810/Lode-runner-CG/audio"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// Environment variables read after the file
const (
	EnvSpectateAddr = "LODE_RUNNER_SPECTATE_ADDR"
	EnvLives        = "LODE_RUNNER_LIVES"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Gameplay is the simulation tuning section
type Gameplay struct {
	TileSize     float64       `yaml:"tile_size"`
	PlayerSpeed  float64       `yaml:"player_speed"`
	EnemySpeed   float64       `yaml:"enemy_speed"`
	ClimbSpeed   float64       `yaml:"climb_speed"`
	RopeSpeed    float64       `yaml:"rope_speed"`
	Gravity      float64       `yaml:"gravity"`
	HoleRefill   float64       `yaml:"hole_refill_seconds"`
	RespawnDelay float64       `yaml:"respawn_seconds"`
	MaxEnemies   int           `yaml:"max_enemies"`
	Lives        int           `yaml:"lives"`
	Points       int           `yaml:"points_per_gold"`
	MaxDelta     time.Duration `yaml:"max_tick_delta"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// Audio is the sound section; volumes are 0-100 like the environment variables
type Audio struct {
	Enabled      bool `yaml:"enabled"`
	MasterVolume int  `yaml:"master_volume"`
	SampleRate   int  `yaml:"sample_rate"`

	// Effects scales single effects, keyed by sound name, 0.0-1.0
	Effects map[string]float64 `yaml:"effects,omitempty"`
}

// Spectate is the read-only websocket feed section
type Spectate struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Level is an optional custom level, rows listed top first
type Level struct {
	Name  string   `yaml:"name"`
	Width int      `yaml:"width"`
	Rows  []string `yaml:"rows"`
}

// Config is the complete game configuration
type Config struct {
	Gameplay Gameplay `yaml:"gameplay"`
	Audio    Audio    `yaml:"audio"`
	Spectate Spectate `yaml:"spectate"`
	Level    *Level   `yaml:"level,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Gameplay: Gameplay{
			TileSize:     constants.TileSize,
			PlayerSpeed:  constants.PlayerSpeed,
			EnemySpeed:   constants.EnemySpeed,
			ClimbSpeed:   constants.ClimbSpeed,
			RopeSpeed:    constants.RopeSpeed,
			Gravity:      constants.Gravity,
			HoleRefill:   constants.HoleRefillSeconds,
			RespawnDelay: constants.EnemyRespawnSeconds,
			MaxEnemies:   constants.MaxEnemies,
			Lives:        constants.InitialLives,
			Points:       constants.PointsPerCollectible,
			MaxDelta:     constants.MaxTickDelta,
			TickInterval: constants.FrameUpdateInterval,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 50,
			SampleRate:   constants.AudioSampleRate,
		},
		Spectate: Spectate{
			Addr: constants.SpectateDefaultAddr,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path if path is not empty,
// then environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv reads the environment overrides; unparsable values are ignored
func (c *Config) applyEnv() {
	if addr := os.Getenv(EnvSpectateAddr); addr != "" {
		c.Spectate.Addr = addr
		c.Spectate.Enabled = true
	}
	if lives := os.Getenv(EnvLives); lives != "" {
		if v, err := strconv.Atoi(lives); err == nil {
			c.Gameplay.Lives = v
		}
	}

	ac := c.AudioConfig()
	audio.ApplyEnv(ac)
	c.Audio.Enabled = ac.Enabled
	c.Audio.MasterVolume = int(ac.MasterVolume*100 + 0.5)
	c.Audio.SampleRate = ac.SampleRate
	c.Audio.Effects = effectNames(ac.EffectVolumes)
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	g := c.Gameplay
	positive := []struct {
		name  string
		value float64
	}{
		{"tile_size", g.TileSize},
		{"player_speed", g.PlayerSpeed},
		{"enemy_speed", g.EnemySpeed},
		{"climb_speed", g.ClimbSpeed},
		{"rope_speed", g.RopeSpeed},
		{"gravity", g.Gravity},
		{"hole_refill_seconds", g.HoleRefill},
		{"respawn_seconds", g.RespawnDelay},
		{"max_tick_delta", g.MaxDelta.Seconds()},
		{"tick_interval", g.TickInterval.Seconds()},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: gameplay.%s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	if g.Lives < 1 {
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalid, g.Lives)
	}
	if g.MaxEnemies < 0 {
		return fmt.Errorf("%w: gameplay.max_enemies must not be negative, got %d", ErrInvalid, g.MaxEnemies)
	}
	if g.Points < 0 {
		return fmt.Errorf("%w: gameplay.points_per_gold must not be negative, got %d", ErrInvalid, g.Points)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("%w: audio.master_volume must be 0-100, got %d", ErrInvalid, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	for name, v := range c.Audio.Effects {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: audio.effects: unknown sound %q", ErrInvalid, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.effects.%s must be 0.0-1.0, got %v", ErrInvalid, name, v)
		}
	}
	if c.Spectate.Enabled && c.Spectate.Addr == "" {
		return fmt.Errorf("%w: spectate.addr is required when spectate is enabled", ErrInvalid)
	}
	if c.Level != nil && len(c.Level.Rows) == 0 {
		return fmt.Errorf("%w: level.rows is empty", ErrInvalid)
	}
	return nil
}

// Rules converts the gameplay section into simulation rules
func (c *Config) Rules() engine.Rules {
	g := c.Gameplay
	r := engine.DefaultRules()
	r.TileSize = g.TileSize
	r.PlayerSpeed = g.PlayerSpeed
	r.EnemySpeed = g.EnemySpeed
	r.ClimbSpeed = g.ClimbSpeed
	r.RopeSpeed = g.RopeSpeed
	r.Gravity = g.Gravity
	r.HoleRefill = g.HoleRefill
	r.RespawnDelay = g.RespawnDelay
	r.MaxEnemies = g.MaxEnemies
	r.InitialLives = g.Lives
	r.Points = g.Points
	r.MaxDelta = g.MaxDelta
	return r
}

// AudioConfig converts the audio section into sound manager settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.MasterVolume) / 100.0
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Effects {
		if s, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[s] = v
		}
	}
	return ac
}

func effectNames(volumes map[audio.SoundType]float64) map[string]float64 {
	out := make(map[string]float64, len(volumes))
	for s, v := range volumes {
		out[s.String()] = v
	}
	return out
}

// Definition returns the configured level, or the built-in one
func (c *Config) Definition() level.Definition {
	if c.Level == nil {
		return level.Default
	}
	name := c.Level.Name
	if name == "" {
		name = "custom"
	}
	return level.Definition{Name: name, Width: c.Level.Width, Rows: c.Level.Rows}
}
