package physics

import (
	"math"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// Obstacle is the box of a trapped entity frozen at the start of the physics phase.
// Other entities may stand on its top edge.
type Obstacle struct {
	ID         int
	X, Y, W, H float64
}

// Top returns the Y of the obstacle's upper edge
func (o Obstacle) Top() float64 { return o.Y + o.H }

// TrappedObstacles snapshots every active trapped entity
func TrappedObstacles(entities []*components.Entity) []Obstacle {
	var out []Obstacle
	for _, e := range entities {
		if e == nil || !e.Active() || !e.Motion.Is(components.Trapped) {
			continue
		}
		out = append(out, Obstacle{ID: e.ID, X: e.X, Y: e.Y, W: e.W, H: e.H})
	}
	return out
}

// Overlaps is a strict AABB intersection test; touching edges do not overlap
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// EntitiesOverlap tests two entity boxes
func EntitiesOverlap(a, b *components.Entity) bool {
	return Overlaps(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
}

// FeetCell returns the cell the entity's feet occupy, probed just above the bottom edge
func FeetCell(g *level.Grid, e *components.Entity) level.Cell {
	return g.CellAt(e.CenterX(), e.Y+1)
}

// ladderTop reports whether the climbable cell has no ladder above it
func ladderTop(g *level.Grid, c level.Cell) bool {
	return g.TileAtCell(c).Climbable() && !g.TileAtCell(c.Offset(0, 1)).Climbable()
}

// standsOn reports whether feet at y rest on the obstacle within tolerance,
// with the horizontal span [x, x+w) overlapping it
func standsOn(o Obstacle, x, y, w float64) bool {
	if math.Abs(y-o.Top()) > constants.HeadStandTolerance {
		return false
	}
	return x < o.X+o.W && x+w > o.X
}

// IsOnGround samples just below the feet at three points across the box.
// Solid tiles, ladder tops and trapped heads all count as ground.
func IsOnGround(g *level.Grid, e *components.Entity, trapped []Obstacle) bool {
	probeY := e.Y - 1
	for _, frac := range [...]float64{0.1, 0.5, 0.9} {
		c := g.CellAt(e.X+e.W*frac, probeY)
		t := g.TileAtCell(c)
		if t.Solid() {
			return true
		}
		if ladderTop(g, c) && !e.Motion.Is(components.Climbing) {
			return true
		}
	}
	for _, o := range trapped {
		if o.ID != e.ID && standsOn(o, e.X, e.Y, e.W) {
			return true
		}
	}
	return false
}

// IsOnLadder samples the box's centre column at three heights
func IsOnLadder(g *level.Grid, e *components.Entity) bool {
	cx := e.CenterX()
	for _, frac := range [...]float64{0.1, 0.5, 0.9} {
		if g.TileAt(cx, e.Y+e.H*frac).Climbable() {
			return true
		}
	}
	return false
}

// IsOnRope reports whether the box centre is in a rope cell and the feet are within grip of the rope row
func IsOnRope(g *level.Grid, e *components.Entity) bool {
	c := g.CellAt(e.CenterX(), e.CenterY())
	if g.TileAtCell(c) != level.Rope {
		return false
	}
	ropeY := float64(c.Row) * g.TileSize()
	return math.Abs(e.Y-ropeY) < g.TileSize()*constants.RopeGripFrac
}

// RopeRowY returns the feet Y for hanging from the rope at the entity's centre
func RopeRowY(g *level.Grid, e *components.Entity) float64 {
	return float64(g.RowAt(e.CenterY())) * g.TileSize()
}

// CanMoveTo samples a 3x3 lattice over a hypothetical box and fails on any Brick or SolidBrick.
// Ladders, ropes and empty cells always pass.
func CanMoveTo(g *level.Grid, x, y, w, h float64) bool {
	for _, px := range [...]float64{x, x + w/2, x + w} {
		for _, py := range [...]float64{y, y + h/2, y + h} {
			if g.TileAt(px, py).Solid() {
				return false
			}
		}
	}
	return true
}

// LadderAtFeet reports whether the cell containing the feet point is a ladder
func LadderAtFeet(g *level.Grid, e *components.Entity) bool {
	return g.TileAt(e.CenterX(), e.Y).Climbable()
}

// LadderBelow reports whether a ladder continues under the feet
func LadderBelow(g *level.Grid, e *components.Entity) bool {
	return g.TileAt(e.CenterX(), e.Y-1).Climbable()
}

// AlignToColumn centres the entity horizontally on the column under its centre
func AlignToColumn(g *level.Grid, e *components.Entity) {
	tile := g.TileSize()
	col := g.ColAt(e.CenterX())
	e.X = float64(col)*tile + (tile-e.W)/2
}
