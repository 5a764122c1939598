package engine

import (
	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// HoleView is a dug hole as seen by collaborators
type HoleView struct {
	Col       int     `msgpack:"col"`
	Row       int     `msgpack:"row"`
	Remaining float64 `msgpack:"remaining"`
}

// EntityView is the read-only projection of one entity
type EntityView struct {
	ID        int     `msgpack:"id"`
	Player    bool    `msgpack:"player"`
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	W         float64 `msgpack:"w"`
	H         float64 `msgpack:"h"`
	FaceRight bool    `msgpack:"face_right"`
	Motion    string  `msgpack:"motion"`
	Trapped   bool    `msgpack:"trapped"`
	Alive     bool    `msgpack:"alive"`
}

// StateView mirrors GameState for collaborators
type StateView struct {
	Score         int  `msgpack:"score"`
	Lives         int  `msgpack:"lives"`
	Collected     int  `msgpack:"collected"`
	Total         int  `msgpack:"total"`
	LevelComplete bool `msgpack:"level_complete"`
	Won           bool `msgpack:"won"`
	Over          bool `msgpack:"over"`
}

// Snapshot is a self-contained copy of the simulation after a tick.
// It shares no memory with the Simulation and is safe to hand to other goroutines.
type Snapshot struct {
	Frame    int64   `msgpack:"frame"`
	Level    string  `msgpack:"level"`
	Width    int     `msgpack:"width"`
	Height   int     `msgpack:"height"`
	TileSize float64 `msgpack:"tile_size"`

	// Tiles holds the static tiles row-major with row 0 at the ground
	Tiles    []level.Tile `msgpack:"tiles"`
	Holes    []HoleView   `msgpack:"holes"`
	Gold     []level.Cell `msgpack:"gold"`
	Entities []EntityView `msgpack:"entities"` // Player first

	State StateView `msgpack:"state"`
}

// Tile returns the static tile of a cell, or SolidBrick outside the grid
func (s *Snapshot) Tile(col, row int) level.Tile {
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return level.SolidBrick
	}
	return s.Tiles[row*s.Width+col]
}

// HoleMap indexes the holes by cell
func (s *Snapshot) HoleMap() map[level.Cell]float64 {
	m := make(map[level.Cell]float64, len(s.Holes))
	for _, h := range s.Holes {
		m[level.Cell{Col: h.Col, Row: h.Row}] = h.Remaining
	}
	return m
}

// Player returns the player's view, or false for an empty snapshot
func (s *Snapshot) Player() (EntityView, bool) {
	if len(s.Entities) == 0 || !s.Entities[0].Player {
		return EntityView{}, false
	}
	return s.Entities[0], true
}

func viewOf(e *components.Entity) EntityView {
	return EntityView{
		ID:        e.ID,
		Player:    e.Kind == components.KindPlayer,
		X:         e.X,
		Y:         e.Y,
		W:         e.W,
		H:         e.H,
		FaceRight: e.FaceRight,
		Motion:    e.Motion.Kind.String(),
		Trapped:   e.Motion.Is(components.Trapped),
		Alive:     e.Active(),
	}
}

func stateView(gs GameState) StateView {
	return StateView{
		Score:         gs.Score,
		Lives:         gs.Lives,
		Collected:     gs.Collected,
		Total:         gs.Total,
		LevelComplete: gs.LevelComplete,
		Won:           gs.Won,
		Over:          gs.Over,
	}
}
