package events

import (
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// CellPayload identifies a grid cell
type CellPayload struct {
	Cell level.Cell
}

// EntityPayload identifies an entity and the cell it occupied
type EntityPayload struct {
	ID     int
	Player bool
	Cell   level.Cell
}

// PickupPayload contains the collected cell and the running totals
type PickupPayload struct {
	Cell      level.Cell
	Score     int
	Collected int
	Total     int
}

// LifePayload contains the lives left after the loss
type LifePayload struct {
	Remaining int
	Cause     string // "contact" or "felloff"
}

// ExitPayload lists the cells turned into exit ladders
type ExitPayload struct {
	Cells []level.Cell
}
