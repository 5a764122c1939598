package engine

import (
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
)

// Rules is the tuning a Simulation runs with. Loaded configuration converts into Rules;
// the engine never reads configuration sources itself.
type Rules struct {
	TileSize float64

	PlayerSpeed float64
	EnemySpeed  float64
	ClimbSpeed  float64
	RopeSpeed   float64
	Gravity     float64

	HoleRefill   float64 // Seconds a dug hole stays open
	RespawnDelay float64 // Seconds between an enemy's death and its return

	MaxEnemies   int
	InitialLives int
	Points       int // Score per collectible
	ExitRows     int

	MaxDelta time.Duration // Upper bound on one tick's elapsed time
}

// DefaultRules returns the built-in tuning
func DefaultRules() Rules {
	return Rules{
		TileSize:     constants.TileSize,
		PlayerSpeed:  constants.PlayerSpeed,
		EnemySpeed:   constants.EnemySpeed,
		ClimbSpeed:   constants.ClimbSpeed,
		RopeSpeed:    constants.RopeSpeed,
		Gravity:      constants.Gravity,
		HoleRefill:   constants.HoleRefillSeconds,
		RespawnDelay: constants.EnemyRespawnSeconds,
		MaxEnemies:   constants.MaxEnemies,
		InitialLives: constants.InitialLives,
		Points:       constants.PointsPerCollectible,
		ExitRows:     constants.ExitRows,
		MaxDelta:     constants.MaxTickDelta,
	}
}

// ClampDelta converts an elapsed duration into seconds, bounded by MaxDelta.
// Negative durations count as zero.
func (r Rules) ClampDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if r.MaxDelta > 0 && d > r.MaxDelta {
		d = r.MaxDelta
	}
	return d.Seconds()
}
