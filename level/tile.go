package level

// Tile is the static terrain classification of one grid cell
type Tile uint8

const (
	Empty Tile = iota
	Brick      // Diggable
	Ladder
	Rope       // Horizontal traversal
	SolidBrick // Indestructible, also the out-of-bounds answer
	ExitLadder // Revealed once every collectible is taken
)

var tileNames = [...]string{
	Empty:      "Empty",
	Brick:      "Brick",
	Ladder:     "Ladder",
	Rope:       "Rope",
	SolidBrick: "SolidBrick",
	ExitLadder: "ExitLadder",
}

func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "Unknown"
}

// Solid reports whether the tile blocks movement
func (t Tile) Solid() bool {
	return t == Brick || t == SolidBrick
}

// Climbable reports whether the tile is any kind of ladder
func (t Tile) Climbable() bool {
	return t == Ladder || t == ExitLadder
}

// Traversable reports whether the tile lets a climbing or hanging entity slide past geometry
func (t Tile) Traversable() bool {
	return t == Ladder || t == Rope
}

// Cell addresses one grid square; Row 0 is the bottom row
type Cell struct {
	Col int
	Row int
}

// Offset returns the cell displaced by dc columns and dr rows
func (c Cell) Offset(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}
