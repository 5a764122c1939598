package systems

import (
	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/input"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
	"github.com/HJXCODE-810/Lode-runner-CG/physics"
)

// PlayerSystem converts the pressed-key set into the player's velocity and motion mode
type PlayerSystem struct {
	grid *level.Grid
	dig  *DigSystem

	walkSpeed  float64
	ropeSpeed  float64
	climbSpeed float64

	prev input.KeySet // Keys of the previous tick, for edge-triggered digging
}

// NewPlayerSystem creates a player system
func NewPlayerSystem(g *level.Grid, dig *DigSystem, walk, rope, climb float64) *PlayerSystem {
	return &PlayerSystem{grid: g, dig: dig, walkSpeed: walk, ropeSpeed: rope, climbSpeed: climb}
}

// Apply writes the player's intent for this tick and performs at most one dig.
// Returns the dug cell when a hole was opened.
func (s *PlayerSystem) Apply(p *components.Entity, keys input.KeySet, trapped []physics.Obstacle) (level.Cell, bool) {
	pressed := keys.Pressed(s.prev)
	s.prev = keys

	if p.Motion.Is(components.Trapped) {
		p.VX, p.VY = 0, 0
		return level.Cell{}, false
	}

	g := s.grid
	falling := p.Motion.Is(components.Falling)
	onRope := physics.IsOnRope(g, p)
	onLadder := physics.IsOnLadder(g, p) || physics.LadderAtFeet(g, p)

	dir := keys.Horizontal()
	speed := s.walkSpeed
	if onRope {
		speed = s.ropeSpeed
	}
	if falling {
		p.VX = 0
	} else {
		p.VX = float64(dir) * speed
		if dir != 0 {
			p.FaceRight = dir > 0
		}
	}

	switch {
	case keys.Has(input.KeyUp) && onLadder:
		s.climb(p, s.climbSpeed)
	case keys.Has(input.KeyDown) && (onLadder || physics.LadderBelow(g, p)):
		s.climb(p, -s.climbSpeed)
	case onRope && keys.Has(input.KeyDown):
		p.Motion = components.Motion{Kind: components.Falling}
		p.VY = 0
	case onRope:
		p.Motion = components.Motion{Kind: components.OnRope}
		p.Y = physics.RopeRowY(g, p)
		p.VY = 0
	case onLadder && !falling:
		p.Motion = components.Motion{Kind: components.Climbing}
		p.VY = 0
	case p.Motion.Traversing():
		p.Motion = components.Motion{Kind: components.Grounded}
	}

	digLeft := pressed.Has(input.KeyDigLeft)
	digRight := pressed.Has(input.KeyDigRight)
	if !digLeft && !digRight {
		return level.Cell{}, false
	}
	if !p.Motion.Is(components.Grounded) || !physics.IsOnGround(g, p, trapped) {
		return level.Cell{}, false
	}

	side := 1
	if digLeft {
		side = -1
	}
	p.FaceRight = !digLeft
	target := level.Cell{Col: g.ColAt(p.CenterX()) + side, Row: g.RowAt(p.Y) - 1}
	if !s.dig.Dig(target) {
		return level.Cell{}, false
	}
	return target, true
}

// climb puts the player on the ladder column moving at vy
func (s *PlayerSystem) climb(p *components.Entity, vy float64) {
	physics.AlignToColumn(s.grid, p)
	p.Motion = components.Motion{Kind: components.Climbing}
	p.VX = 0
	p.VY = vy
}
