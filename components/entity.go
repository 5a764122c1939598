package components

import (
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// Kind distinguishes the player from enemies
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// Entity is a player or enemy record.
// X,Y is the bottom-left corner of the collision box in world units, Y grows upward.
type Entity struct {
	ID   int
	Kind Kind

	X, Y   float64
	VX, VY float64
	W, H   float64

	FaceRight bool
	Motion    Motion

	// Enemy lifecycle; the player is always Alive
	Alive        bool
	RespawnTimer float64

	Spawn level.Cell // Anchor for respawn and contact resets
}

// NewEntity creates an entity sized for the tile and placed at its spawn anchor
func NewEntity(id int, kind Kind, spawn level.Cell, tileSize float64) *Entity {
	e := &Entity{
		ID:        id,
		Kind:      kind,
		W:         tileSize * constants.EntityWidthFrac,
		H:         tileSize * constants.EntityHeightFrac,
		FaceRight: true,
		Alive:     true,
		Spawn:     spawn,
	}
	e.ResetToSpawn(tileSize)
	return e
}

// CenterX returns the horizontal centre of the collision box
func (e *Entity) CenterX() float64 { return e.X + e.W/2 }

// CenterY returns the vertical centre of the collision box
func (e *Entity) CenterY() float64 { return e.Y + e.H/2 }

// ResetToSpawn places the entity at its anchor with zero velocity and cleared motion
func (e *Entity) ResetToSpawn(tileSize float64) {
	e.X = float64(e.Spawn.Col)*tileSize + tileSize*constants.SpawnInsetFrac
	e.Y = float64(e.Spawn.Row) * tileSize
	e.VX = 0
	e.VY = 0
	e.Motion = Motion{}
}

// Kill removes an enemy from play and starts its respawn countdown
func (e *Entity) Kill(respawnDelay float64) {
	e.Alive = false
	e.RespawnTimer = respawnDelay
	e.VX = 0
	e.VY = 0
	e.Motion = Motion{}
}

// Respawn returns a dead enemy to its anchor with the given horizontal kick
func (e *Entity) Respawn(tileSize, kick float64) {
	e.ResetToSpawn(tileSize)
	e.Alive = true
	e.RespawnTimer = 0
	e.VX = kick
	e.FaceRight = kick >= 0
}

// Active reports whether the entity takes part in physics and contact
func (e *Entity) Active() bool {
	return e.Kind == KindPlayer || e.Alive
}
