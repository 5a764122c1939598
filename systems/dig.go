package systems

import (
	"log"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
	"github.com/HJXCODE-810/Lode-runner-CG/physics"
)

// Refill describes one expired hole and the trapped entities it resolved
type Refill struct {
	Cell   level.Cell
	Freed  []*components.Entity // Players nudged out and falling
	Killed []*components.Entity // Enemies removed from play
}

// DigSystem owns hole creation and the refill countdown
type DigSystem struct {
	grid         *level.Grid
	refillTime   float64
	respawnDelay float64
}

// NewDigSystem creates a dig system over the grid
func NewDigSystem(g *level.Grid, refillTime, respawnDelay float64) *DigSystem {
	return &DigSystem{grid: g, refillTime: refillTime, respawnDelay: respawnDelay}
}

// Dig opens a hole at the cell with the full refill countdown.
// Targets that are not Brick or already holed are ignored.
func (s *DigSystem) Dig(c level.Cell) bool {
	if !s.grid.OpenHole(c, s.refillTime) {
		log.Printf("dig rejected at (%d,%d): tile=%v hole=%v", c.Col, c.Row, s.grid.Static(c), s.grid.HasHole(c))
		return false
	}
	log.Printf("hole opened at (%d,%d) for %.1fs", c.Col, c.Row, s.refillTime)
	return true
}

// Update ages every hole by dt. Each expired hole restores its brick and resolves any
// entity still trapped in that exact cell: the player is freed, enemies are killed.
func (s *DigSystem) Update(dt float64, entities []*components.Entity) []Refill {
	expired := s.grid.AgeHoles(dt)
	if len(expired) == 0 {
		return nil
	}

	refills := make([]Refill, 0, len(expired))
	for _, h := range expired {
		r := Refill{Cell: h.Cell}
		for _, e := range entities {
			if !e.Active() || !e.Motion.Is(components.Trapped) {
				continue
			}
			if physics.FeetCell(s.grid, e) != h.Cell {
				continue
			}
			switch physics.Release(e) {
			case physics.OutcomeFreed:
				r.Freed = append(r.Freed, e)
				log.Printf("player freed by refill at (%d,%d)", h.Cell.Col, h.Cell.Row)
			case physics.OutcomeRefill:
				e.Kill(s.respawnDelay)
				r.Killed = append(r.Killed, e)
				log.Printf("enemy %d killed by refill at (%d,%d)", e.ID, h.Cell.Col, h.Cell.Row)
			}
		}
		refills = append(refills, r)
	}
	return refills
}
