package level

import (
	"math"
	"sort"
)

// Hole is a transient overlay entry that makes a Brick cell passable until Remaining reaches zero
type Hole struct {
	Cell      Cell
	Remaining float64 // Seconds until refill
	Original  Tile    // Tile restored on refill, always Brick
}

// Grid stores the static tile array, the dug hole overlay and the collectible overlay.
// Bounds are fixed at construction; every terrain observation goes through TileAt/TileAtCell.
type Grid struct {
	width    int
	height   int
	tileSize float64

	tiles []Tile // row-major, row 0 is the ground
	holes map[Cell]*Hole

	gold      []bool
	goldTotal int
	goldTaken int
}

// NewGrid creates an all-Empty grid
func NewGrid(width, height int, tileSize float64) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Tile, width*height),
		holes:    make(map[Cell]*Hole),
		gold:     make([]bool, width*height),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) TileSize() float64 { return g.tileSize }
func (g *Grid) WorldWidth() float64 { return float64(g.width) * g.tileSize }

// InBounds reports whether the cell lies inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

// ColAt converts a world X coordinate to a column index by floor division
func (g *Grid) ColAt(x float64) int {
	return int(math.Floor(x / g.tileSize))
}

// RowAt converts a world Y coordinate to a row index by floor division
func (g *Grid) RowAt(y float64) int {
	return int(math.Floor(y / g.tileSize))
}

// CellAt converts world coordinates to the containing cell
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{Col: g.ColAt(x), Row: g.RowAt(y)}
}

// TileAt returns the effective tile at world coordinates
func (g *Grid) TileAt(x, y float64) Tile {
	return g.TileAtCell(g.CellAt(x, y))
}

// TileAtCell returns SolidBrick outside bounds, Empty under an active hole, else the static tile
func (g *Grid) TileAtCell(c Cell) Tile {
	if !g.InBounds(c) {
		return SolidBrick
	}
	if _, ok := g.holes[c]; ok {
		return Empty
	}
	return g.tiles[g.index(c)]
}

// Static returns the stored tile ignoring the hole overlay
func (g *Grid) Static(c Cell) Tile {
	if !g.InBounds(c) {
		return SolidBrick
	}
	return g.tiles[g.index(c)]
}

// SetStatic overwrites the stored tile; out-of-bounds writes are ignored
func (g *Grid) SetStatic(c Cell, t Tile) {
	if !g.InBounds(c) {
		return
	}
	g.tiles[g.index(c)] = t
}

// ===== HOLE OVERLAY =====

// HasHole reports whether an active hole occupies the cell
func (g *Grid) HasHole(c Cell) bool {
	_, ok := g.holes[c]
	return ok
}

// Hole returns a copy of the hole at the cell
func (g *Grid) Hole(c Cell) (Hole, bool) {
	h, ok := g.holes[c]
	if !ok {
		return Hole{}, false
	}
	return *h, true
}

// OpenHole creates a hole with the given countdown.
// Fails when the static tile is not Brick or a hole already exists; an existing timer is never reset.
func (g *Grid) OpenHole(c Cell, seconds float64) bool {
	if g.Static(c) != Brick || g.HasHole(c) {
		return false
	}
	g.holes[c] = &Hole{Cell: c, Remaining: seconds, Original: Brick}
	return true
}

// AgeHoles decrements every hole countdown by dt, restores expired cells and returns the expired holes
// in row/column order
func (g *Grid) AgeHoles(dt float64) []Hole {
	var expired []Hole
	for c, h := range g.holes {
		h.Remaining -= dt
		if h.Remaining <= 0 {
			g.SetStatic(c, h.Original)
			delete(g.holes, c)
			expired = append(expired, *h)
		}
	}
	sortHoles(expired)
	return expired
}

// Holes returns a snapshot of the active holes in row/column order
func (g *Grid) Holes() []Hole {
	out := make([]Hole, 0, len(g.holes))
	for _, h := range g.holes {
		out = append(out, *h)
	}
	sortHoles(out)
	return out
}

// HoleCount returns the number of active holes
func (g *Grid) HoleCount() int {
	return len(g.holes)
}

func sortHoles(hs []Hole) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].Cell.Row != hs[j].Cell.Row {
			return hs[i].Cell.Row < hs[j].Cell.Row
		}
		return hs[i].Cell.Col < hs[j].Cell.Col
	})
}

// ===== COLLECTIBLE OVERLAY =====

// PlaceGold marks a collectible in the cell; placing twice counts once
func (g *Grid) PlaceGold(c Cell) {
	if !g.InBounds(c) || g.gold[g.index(c)] {
		return
	}
	g.gold[g.index(c)] = true
	g.goldTotal++
}

// HasGold reports whether an untaken collectible occupies the cell
func (g *Grid) HasGold(c Cell) bool {
	return g.InBounds(c) && g.gold[g.index(c)]
}

// TakeGold consumes the collectible in the cell, reporting whether one was there
func (g *Grid) TakeGold(c Cell) bool {
	if !g.HasGold(c) {
		return false
	}
	g.gold[g.index(c)] = false
	g.goldTaken++
	return true
}

func (g *Grid) GoldTotal() int { return g.goldTotal }
func (g *Grid) GoldTaken() int { return g.goldTaken }

// GoldCells returns the cells still holding collectibles in row/column order
func (g *Grid) GoldCells() []Cell {
	var out []Cell
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Cell{Col: col, Row: row}
			if g.gold[g.index(c)] {
				out = append(out, c)
			}
		}
	}
	return out
}

// ===== EXIT REVEAL =====

// RevealExits turns statically Empty cells in the top exit rows that sit directly on a ladder into ExitLadder.
// Rows are scanned bottom-up so stacked cells extend the same column. When no cell qualifies,
// the centre column gets a single exit cell. Returns the converted cells.
func (g *Grid) RevealExits(exitRows int) []Cell {
	var revealed []Cell
	bottom := g.height - exitRows
	if bottom < 1 {
		bottom = 1
	}

	for row := bottom; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Cell{Col: col, Row: row}
			if g.Static(c) != Empty {
				continue
			}
			if g.Static(c.Offset(0, -1)).Climbable() {
				g.SetStatic(c, ExitLadder)
				revealed = append(revealed, c)
			}
		}
	}
	if len(revealed) > 0 {
		return revealed
	}

	center := g.width / 2
	target := Cell{Col: center, Row: g.height - exitRows}
	for row := g.height - 1; row >= bottom; row-- {
		c := Cell{Col: center, Row: row}
		if g.Static(c) == Empty {
			target = c
			break
		}
	}
	if !g.InBounds(target) {
		return nil
	}
	g.SetStatic(target, ExitLadder)
	return []Cell{target}
}
