package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/audio"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lode-runner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	r := cfg.Rules()
	if r.TileSize != constants.TileSize {
		t.Errorf("Expected tile size %v, got %v", constants.TileSize, r.TileSize)
	}
	if r.InitialLives != constants.InitialLives {
		t.Errorf("Expected %d lives, got %d", constants.InitialLives, r.InitialLives)
	}
	if r.MaxDelta != constants.MaxTickDelta {
		t.Errorf("Expected max delta %v, got %v", constants.MaxTickDelta, r.MaxDelta)
	}
	if cfg.Spectate.Enabled {
		t.Error("Expected spectate disabled by default")
	}
	if def := cfg.Definition(); def.Name != level.Default.Name {
		t.Errorf("Expected built-in level, got %q", def.Name)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
gameplay:
  player_speed: 200
  lives: 5
  hole_refill_seconds: 4.5
  max_tick_delta: 50ms
audio:
  enabled: false
  master_volume: 80
level:
  name: tiny
  rows:
    - "SSSS"
    - "SP S"
    - "SSSS"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	r := cfg.Rules()
	if r.PlayerSpeed != 200 {
		t.Errorf("Expected player speed 200, got %v", r.PlayerSpeed)
	}
	if r.InitialLives != 5 {
		t.Errorf("Expected 5 lives, got %d", r.InitialLives)
	}
	if r.HoleRefill != 4.5 {
		t.Errorf("Expected refill 4.5, got %v", r.HoleRefill)
	}
	if r.MaxDelta != 50*time.Millisecond {
		t.Errorf("Expected max delta 50ms, got %v", r.MaxDelta)
	}
	// Untouched keys keep their defaults
	if r.EnemySpeed != constants.EnemySpeed {
		t.Errorf("Expected default enemy speed, got %v", r.EnemySpeed)
	}

	ac := cfg.AudioConfig()
	if ac.Enabled {
		t.Error("Expected audio disabled")
	}
	if ac.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %v", ac.MasterVolume)
	}

	def := cfg.Definition()
	if def.Name != "tiny" || len(def.Rows) != 3 {
		t.Errorf("Expected custom level tiny with 3 rows, got %q with %d", def.Name, len(def.Rows))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvSpectateAddr, "127.0.0.1:9999")
	t.Setenv(EnvLives, "7")
	t.Setenv("LODE_RUNNER_AUDIO_ENABLED", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Spectate.Enabled || cfg.Spectate.Addr != "127.0.0.1:9999" {
		t.Errorf("Expected spectate on 127.0.0.1:9999, got %+v", cfg.Spectate)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Expected 7 lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from environment")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "gameplay: [1, 2", false},
		{"zero speed", "gameplay:\n  player_speed: 0\n", true},
		{"negative gravity", "gameplay:\n  gravity: -1\n", true},
		{"no lives", "gameplay:\n  lives: 0\n", true},
		{"loud", "audio:\n  master_volume: 150\n", true},
		{"empty level", "level:\n  name: void\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestEffectVolumes(t *testing.T) {
	t.Setenv("LODE_RUNNER_SFX_VOLUMES", `{"dig": 0.25}`)
	path := writeConfig(t, "audio:\n  effects:\n    win: 0.1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ac := cfg.AudioConfig()
	if got := ac.EffectVolumes[audioSound(t, "dig")]; got != 0.25 {
		t.Errorf("Expected dig volume 0.25 from environment, got %v", got)
	}
	if got := ac.EffectVolumes[audioSound(t, "win")]; got != 0.1 {
		t.Errorf("Expected win volume 0.1 from file, got %v", got)
	}

	if _, err := Load(writeConfig(t, "audio:\n  effects:\n    boom: 0.5\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected unknown effect to be invalid, got %v", err)
	}
}

func audioSound(t *testing.T, name string) audio.SoundType {
	t.Helper()
	s, ok := audio.ParseSoundType(name)
	if !ok {
		t.Fatalf("unknown sound %q", name)
	}
	return s
}
