package level

import (
	"errors"
	"fmt"
	"log"
)

// Level definition symbols
const (
	SymSolid       = 'S'
	SymBrick       = 'B'
	SymLadder      = 'L'
	SymRope        = 'R'
	SymGold        = 'C' // Gold resting on a brick
	SymPlayerStart = 'P'
	SymEnemyStart  = 'X'
	SymEmpty       = 'E'
)

// Sentinel errors
var (
	ErrEmptyLayout     = errors.New("level layout has no rows")
	ErrNoPlayerStart   = errors.New("level layout has no player start")
	ErrMultiplePlayers = errors.New("level layout has more than one player start")
	ErrUnknownSymbol   = errors.New("unknown level symbol")
)

// Definition is a fixed-size character grid listed top row first; the last row is the ground
type Definition struct {
	Name  string
	Width int
	Rows  []string
}

// Layout is a parsed definition: terrain, collectibles and spawn anchors
type Layout struct {
	Name        string
	Grid        *Grid
	PlayerStart Cell
	EnemyStarts []Cell
}

// Parse builds a Layout from a definition. Rows shorter than Width are padded with Empty,
// longer rows are truncated. Space and '.' read as Empty.
func Parse(def Definition, tileSize float64) (*Layout, error) {
	height := len(def.Rows)
	if height == 0 {
		return nil, fmt.Errorf("parse %q: %w", def.Name, ErrEmptyLayout)
	}

	width := def.Width
	if width <= 0 {
		for _, row := range def.Rows {
			if len(row) > width {
				width = len(row)
			}
		}
	}

	grid := NewGrid(width, height, tileSize)
	layout := &Layout{Name: def.Name, Grid: grid}
	playerFound := false

	for i, line := range def.Rows {
		row := height - 1 - i
		if len(line) > width {
			log.Printf("level %q: row %d truncated from %d to %d columns", def.Name, row, len(line), width)
		}

		for col := 0; col < width && col < len(line); col++ {
			c := Cell{Col: col, Row: row}
			switch sym := line[col]; sym {
			case SymSolid:
				grid.SetStatic(c, SolidBrick)
			case SymBrick:
				grid.SetStatic(c, Brick)
			case SymLadder:
				grid.SetStatic(c, Ladder)
			case SymRope:
				grid.SetStatic(c, Rope)
			case SymGold:
				grid.SetStatic(c, Brick)
				if row+1 < height {
					grid.PlaceGold(c.Offset(0, 1))
				} else {
					grid.PlaceGold(c)
				}
			case SymPlayerStart:
				if playerFound {
					return nil, fmt.Errorf("parse %q at (%d,%d): %w", def.Name, col, row, ErrMultiplePlayers)
				}
				playerFound = true
				layout.PlayerStart = c
			case SymEnemyStart:
				layout.EnemyStarts = append(layout.EnemyStarts, c)
			case SymEmpty, ' ', '.':
			default:
				return nil, fmt.Errorf("parse %q at (%d,%d) symbol %q: %w", def.Name, col, row, sym, ErrUnknownSymbol)
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("parse %q: %w", def.Name, ErrNoPlayerStart)
	}

	log.Printf("level %q loaded: %dx%d, %d collectibles, %d enemy starts",
		def.Name, width, height, grid.GoldTotal(), len(layout.EnemyStarts))
	return layout, nil
}
