package physics

import (
	"math"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// Outcome reports a lifecycle transition produced by one physics step.
// The caller owns lives, kills and respawns; the resolver only moves boxes.
type Outcome uint8

const (
	OutcomeNone    Outcome = iota
	OutcomeTrapped         // Fell into a hole this step
	OutcomeFreed           // Player trap resolved with the hole gone; already nudged and falling
	OutcomeRefill          // Enemy trap resolved with the hole gone; caller kills it
	OutcomeFellOff         // Dropped below the playfield
)

var outcomeNames = [...]string{
	OutcomeNone:    "none",
	OutcomeTrapped: "trapped",
	OutcomeFreed:   "freed",
	OutcomeRefill:  "refill",
	OutcomeFellOff: "felloff",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Resolver integrates entity motion against the grid
type Resolver struct {
	Grid    *level.Grid
	Gravity float64
}

// NewResolver creates a resolver over the grid
func NewResolver(g *level.Grid, gravity float64) *Resolver {
	return &Resolver{Grid: g, Gravity: gravity}
}

// Step advances one entity by dt. trapped is the snapshot of trapped boxes taken before any entity moved.
func (r *Resolver) Step(e *components.Entity, dt float64, trapped []Obstacle) Outcome {
	if !e.Active() {
		return OutcomeNone
	}
	if e.Motion.Is(components.Trapped) {
		return r.stepTrapped(e, dt)
	}

	g := r.Grid
	tile := g.TileSize()
	inset := tile * constants.SampleInsetFrac
	wasFalling := e.Motion.Is(components.Falling)

	if e.Motion.Gravity() {
		e.VY -= r.Gravity * dt
	}

	newX := e.X + e.VX*dt
	newY := e.Y + e.VY*dt

	// The bottom boundary reads as SolidBrick, so only a tunnelling step gets this far down
	if newY < -tile*constants.FallOffMarginFrac {
		e.X = clamp(newX, 0, g.WorldWidth()-e.W)
		e.Y = newY
		e.VY = 0
		return OutcomeFellOff
	}

	// Vertical: leading edge sampled at two inset points
	landed, onHead := false, false
	leftX := newX + inset
	rightX := newX + e.W - inset
	switch {
	case e.VY < 0:
		for _, sx := range [...]float64{leftX, rightX} {
			c := g.CellAt(sx, newY)
			t := g.TileAtCell(c)
			cellTop := float64(c.Row+1) * tile
			onLadderTop := !e.Motion.Is(components.Climbing) && ladderTop(g, c) && e.Y >= cellTop
			if t.Solid() || onLadderTop {
				newY = cellTop
				landed = true
				break
			}
		}
		if !landed && !e.Motion.Traversing() {
			for _, o := range trapped {
				if o.ID == e.ID {
					continue
				}
				top := o.Top()
				crossed := e.Y >= top-constants.HeadStandTolerance && newY <= top
				if crossed && newX < o.X+o.W && newX+e.W > o.X {
					newY = top
					landed, onHead = true, true
					break
				}
			}
		}
		if landed {
			e.VY = 0
			if e.Motion.Is(components.Falling) {
				e.Motion = components.Motion{Kind: components.Grounded}
			}
		} else if !e.Motion.Traversing() {
			e.Motion = components.Motion{Kind: components.Falling}
		}
	case e.VY > 0:
		headY := newY + e.H
		for _, sx := range [...]float64{leftX, rightX} {
			if g.TileAt(sx, headY).Solid() {
				newY = float64(g.RowAt(headY))*tile - e.H
				e.VY = 0
				break
			}
		}
	}

	// Horizontal: leading edge sampled at three heights of the vertically resolved box
	if e.VX != 0 {
		edgeX := newX
		if e.VX > 0 {
			edgeX = newX + e.W
		}
		var samples [3]level.Tile
		for i, frac := range [...]float64{0.1, 0.5, 0.9} {
			samples[i] = g.TileAt(edgeX, newY+e.H*frac)
		}
		if blocksHorizontal(samples, e.Motion.Traversing()) {
			col := g.ColAt(edgeX)
			if e.VX > 0 {
				newX = float64(col)*tile - e.W
			} else {
				newX = float64(col+1) * tile
			}
		}
	}

	e.X = clamp(newX, 0, g.WorldWidth()-e.W)
	e.Y = newY

	if !onHead && (wasFalling || e.Motion.Is(components.Falling)) {
		if r.enterHole(e) {
			return OutcomeTrapped
		}
	}
	return OutcomeNone
}

// blocksHorizontal reports whether the leading-edge samples stop horizontal motion.
// A climbing or hanging entity slides past a wall when any sample is ladder or rope.
func blocksHorizontal(samples [3]level.Tile, traversing bool) bool {
	solid := false
	for _, t := range samples {
		if traversing && t.Traversable() {
			return false
		}
		if t.Solid() {
			solid = true
		}
	}
	return solid
}

// enterHole traps an entity whose feet are in an active hole
func (r *Resolver) enterHole(e *components.Entity) bool {
	g := r.Grid
	c := FeetCell(g, e)
	h, ok := g.Hole(c)
	if !ok {
		return false
	}
	tile := g.TileSize()
	e.X = float64(c.Col)*tile + (tile-e.W)/2
	e.Y = float64(c.Row) * tile
	e.VX = 0
	e.VY = 0
	e.Motion = components.TrappedFor(math.Max(h.Remaining-constants.TrapEpsilon, constants.TrapRearmSeconds))
	return true
}

// stepTrapped counts down the trap and resolves it once the hole is gone
func (r *Resolver) stepTrapped(e *components.Entity, dt float64) Outcome {
	e.VX = 0
	e.VY = 0
	e.Motion.TrapTimer -= dt
	if e.Motion.TrapTimer > 0 {
		return OutcomeNone
	}
	if r.Grid.HasHole(FeetCell(r.Grid, e)) {
		e.Motion.TrapTimer = constants.TrapRearmSeconds
		return OutcomeNone
	}
	return Release(e)
}

// Release resolves a trap whose hole has refilled: the player climbs out, an enemy is reported for removal
func Release(e *components.Entity) Outcome {
	if e.Kind == components.KindPlayer {
		e.Y += constants.RefillFreeNudge
		e.VX = 0
		e.VY = 0
		e.Motion = components.Motion{Kind: components.Falling}
		return OutcomeFreed
	}
	return OutcomeRefill
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
