package systems

import (
	"log"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
	"github.com/HJXCODE-810/Lode-runner-CG/physics"
)

// ScoreSystem implements the controller rules that read the grid: pickup, exit reveal,
// the exit check and enemy contact. Session counters stay with the caller.
type ScoreSystem struct {
	grid     *level.Grid
	exitRows int
}

// NewScoreSystem creates a score system
func NewScoreSystem(g *level.Grid, exitRows int) *ScoreSystem {
	return &ScoreSystem{grid: g, exitRows: exitRows}
}

// Collect scans the 3x3 cells around the player's centre and takes every collectible
// whose box overlaps the player. Returns the collected cells.
func (s *ScoreSystem) Collect(p *components.Entity) []level.Cell {
	g := s.grid
	tile := g.TileSize()
	inset := tile * constants.CollectibleInsetFrac
	size := tile - 2*inset
	center := g.CellAt(p.CenterX(), p.CenterY())

	var taken []level.Cell
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := center.Offset(dc, dr)
			if !g.HasGold(c) {
				continue
			}
			gx := float64(c.Col)*tile + inset
			gy := float64(c.Row)*tile + inset
			if !physics.Overlaps(p.X, p.Y, p.W, p.H, gx, gy, size, size) {
				continue
			}
			if g.TakeGold(c) {
				taken = append(taken, c)
			}
		}
	}
	return taken
}

// RevealExits opens the exit ladders and returns the converted cells
func (s *ScoreSystem) RevealExits() []level.Cell {
	cells := s.grid.RevealExits(s.exitRows)
	log.Printf("exit revealed: %d cells", len(cells))
	return cells
}

// AtExit reports whether the player's head or feet occupy an exit ladder in the top rows
func (s *ScoreSystem) AtExit(p *components.Entity) bool {
	g := s.grid
	minRow := g.Height() - s.exitRows
	for _, y := range [...]float64{p.Y + p.H, p.Y + 1} {
		c := g.CellAt(p.CenterX(), y)
		if c.Row >= minRow && g.TileAtCell(c) == level.ExitLadder {
			return true
		}
	}
	return false
}

// Contact returns the first live, untrapped enemy overlapping an untrapped player
func (s *ScoreSystem) Contact(p *components.Entity, enemies []*components.Entity) *components.Entity {
	if p.Motion.Is(components.Trapped) {
		return nil
	}
	for _, e := range enemies {
		if !e.Alive || e.Motion.Is(components.Trapped) {
			continue
		}
		if physics.EntitiesOverlap(p, e) {
			return e
		}
	}
	return nil
}
