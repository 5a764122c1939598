package engine

// GameState holds the session counters and terminal flags.
// Owned by the Simulation and mutated only during a tick; a restart replaces it wholesale.
type GameState struct {
	// ===== SCORING =====
	Score     int
	Collected int
	Total     int

	// ===== LIVES =====
	Lives int

	// ===== TERMINAL FLAGS =====
	// LevelComplete is set once every collectible is taken and never cleared within a session
	LevelComplete bool
	Won           bool
	Over          bool
}

// NewGameState creates the state for a fresh session
func NewGameState(lives, total int) GameState {
	return GameState{Lives: lives, Total: total}
}

// Terminal reports whether the session has ended, either way
func (gs *GameState) Terminal() bool {
	return gs.Won || gs.Over
}

// Collect records one pickup
func (gs *GameState) Collect(points int) {
	gs.Collected++
	gs.Score += points
}

// MarkComplete flips LevelComplete once every collectible is taken.
// Returns true only on the call that flipped it.
func (gs *GameState) MarkComplete() bool {
	if gs.LevelComplete || gs.Collected < gs.Total {
		return false
	}
	gs.LevelComplete = true
	return true
}

// LoseLife decrements lives and returns true when the game ended as a result
func (gs *GameState) LoseLife() bool {
	if gs.Over {
		return false
	}
	if gs.Lives > 0 {
		gs.Lives--
	}
	if gs.Lives == 0 {
		gs.Over = true
		return true
	}
	return false
}
