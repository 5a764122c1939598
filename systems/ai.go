package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
	"github.com/HJXCODE-810/Lode-runner-CG/physics"
)

// Intent is the AI's desired motion for one enemy and one tick
type Intent struct {
	VX, VY float64
	Mode   components.MotionKind // Climbing, OnRope, Grounded, or Falling to leave motion to gravity
	Align  bool                  // Centre on the ladder column before moving vertically
	RopeY  float64               // Feet Y after the rope nudge, used with OnRope
}

// AISystem runs the greedy chase heuristic and the respawn countdown for enemies
type AISystem struct {
	grid       *level.Grid
	speed      float64
	climbSpeed float64
	rng        *rand.Rand
}

// NewAISystem creates an AI system. rng drives the respawn kick direction.
func NewAISystem(g *level.Grid, speed, climb float64, rng *rand.Rand) *AISystem {
	return &AISystem{grid: g, speed: speed, climbSpeed: climb, rng: rng}
}

// Update advances one enemy's lifecycle and, when it is free to act, applies a fresh decision.
// Returns true when the enemy respawned this tick.
func (s *AISystem) Update(e, player *components.Entity, dt float64) bool {
	if !e.Alive {
		e.RespawnTimer -= dt
		if e.RespawnTimer > 0 {
			return false
		}
		kick := s.speed / 2
		if s.rng.Intn(2) == 0 {
			kick = -kick
		}
		e.Respawn(s.grid.TileSize(), kick)
		log.Printf("enemy %d respawned at (%d,%d)", e.ID, e.Spawn.Col, e.Spawn.Row)
		return true
	}
	if e.Motion.Is(components.Trapped) {
		return false
	}
	s.apply(e, Decide(s.grid, e, player, s.speed, s.climbSpeed))
	return false
}

func (s *AISystem) apply(e *components.Entity, in Intent) {
	e.VX = in.VX
	if in.VX != 0 {
		e.FaceRight = in.VX > 0
	}
	switch in.Mode {
	case components.Climbing:
		if in.Align {
			physics.AlignToColumn(s.grid, e)
		}
		e.Motion = components.Motion{Kind: components.Climbing}
		e.VY = in.VY
	case components.OnRope:
		e.Motion = components.Motion{Kind: components.OnRope}
		e.Y = in.RopeY
		e.VY = 0
	case components.Grounded:
		if e.Motion.Traversing() {
			e.Motion = components.Motion{Kind: components.Grounded}
		}
	}
}

// Decide computes an enemy's intent from its own state, the player's state and the grid.
// It reads nothing else and mutates nothing.
func Decide(g *level.Grid, e, player *components.Entity, speed, climb float64) Intent {
	if e.Motion.Is(components.Falling) {
		return Intent{Mode: components.Falling}
	}

	tile := g.TileSize()
	dx := player.CenterX() - e.CenterX()
	dy := player.Y - e.Y

	pursue := func(scale float64) float64 {
		if math.Abs(dx) <= tile*constants.AIDeadZoneFrac {
			return 0
		}
		dir := math.Copysign(1, dx)
		if !physics.CanMoveTo(g, e.X+dir, e.Y, e.W, e.H) {
			return 0
		}
		return dir * speed * scale
	}

	in := Intent{Mode: components.Grounded}
	onRope := physics.IsOnRope(g, e)
	onLadder := physics.IsOnLadder(g, e) || physics.LadderAtFeet(g, e)

	if math.Abs(dy) > tile*constants.AIVerticalGapFrac {
		switch {
		case dy > 0 && ladderAbove(g, e):
			in = Intent{Mode: components.Climbing, VY: climb, Align: true}
		case dy < 0 && ladderBelow(g, e):
			in = Intent{Mode: components.Climbing, VY: -climb, Align: true}
		case ropeAtLevel(g, e) && math.Abs(dy) < tile*constants.AIRopeReachFrac:
			in = Intent{Mode: components.OnRope, VX: pursue(1), RopeY: ropeNudge(g, e)}
		default:
			in.VX = pursue(1)
		}
	} else {
		switch {
		case onRope:
			in = Intent{Mode: components.OnRope, VX: pursue(1), RopeY: ropeNudge(g, e)}
		case onLadder && math.Abs(dy) < tile*constants.AILadderLevelFrac:
			in = Intent{Mode: components.Climbing, VX: pursue(0.5)}
		default:
			in.VX = pursue(1)
		}
	}

	if in.VX != 0 && in.Mode != components.Climbing && hazardAhead(g, e, in.VX, dy) {
		in.VX = 0
	}
	return in
}

// ladderAbove scans the enemy's column upward from the feet row for a ladder,
// stopping at the first wall
func ladderAbove(g *level.Grid, e *components.Entity) bool {
	return scanColumn(g, g.ColAt(e.CenterX()), g.RowAt(e.Y), 1)
}

// ladderBelow reports a ladder at the feet that does not end on a wall, or one further down the column
func ladderBelow(g *level.Grid, e *components.Entity) bool {
	below := g.CellAt(e.CenterX(), e.Y-1)
	if physics.LadderAtFeet(g, e) && !g.TileAtCell(below).Solid() {
		return true
	}
	return scanColumn(g, below.Col, below.Row, -1)
}

// scanColumn walks a column from row start in steps of dir. True on the first ladder, false on a wall or the grid edge.
func scanColumn(g *level.Grid, col, start, dir int) bool {
	for row := start; row >= 0 && row < g.Height(); row += dir {
		t := g.TileAtCell(level.Cell{Col: col, Row: row})
		if t.Climbable() {
			return true
		}
		if t.Solid() {
			return false
		}
	}
	return false
}

// ropeAtLevel reports whether the enemy's centre is in a rope cell
func ropeAtLevel(g *level.Grid, e *components.Entity) bool {
	return g.TileAt(e.CenterX(), e.CenterY()) == level.Rope
}

// ropeNudge eases the feet toward the rope row instead of snapping
func ropeNudge(g *level.Grid, e *components.Entity) float64 {
	target := physics.RopeRowY(g, e)
	delta := target - e.Y
	if math.Abs(delta) <= constants.AIRopeNudgeMinDelta {
		return e.Y
	}
	return e.Y + delta*constants.AIRopeNudgeRate
}

// hazardAhead reports whether walking in the direction of vx leads off a ledge or into a hole
func hazardAhead(g *level.Grid, e *components.Entity, vx, dy float64) bool {
	tile := g.TileSize()
	nextX := e.CenterX() + math.Copysign(tile*constants.AILookAheadFrac, vx)
	next := level.Cell{Col: g.ColAt(nextX), Row: g.RowAt(e.Y + 1)}
	below := next.Offset(0, -1)

	if g.HasHole(next) {
		return true
	}

	here := g.TileAtCell(next)
	playerBelow := dy < -tile*constants.AIVerticalGapFrac
	if g.TileAtCell(below) == level.Empty && !here.Climbable() && here != level.Rope && !playerBelow {
		return true
	}
	return false
}
