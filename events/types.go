package events

// EventType represents the type of simulation event
type EventType int

const (
	// EventDig signals a hole opened by the player
	// Trigger: PlayerSystem dig request accepted | Payload: *CellPayload
	EventDig EventType = iota

	// EventRefill signals a hole expired and its brick was restored
	// Trigger: DigSystem tick | Payload: *CellPayload
	EventRefill

	// EventTrapped signals an entity fell into a hole
	// Trigger: Resolver hole entry | Payload: *EntityPayload
	EventTrapped

	// EventFreed signals the player climbed out of a refilled hole
	// Trigger: DigSystem tick or trap expiry | Payload: *EntityPayload
	EventFreed

	// EventEnemyKilled signals an enemy removed from play
	// Trigger: hole refill while trapped, fall-off | Payload: *EntityPayload
	EventEnemyKilled

	// EventEnemyRespawned signals an enemy back at its spawn anchor
	// Trigger: AISystem respawn countdown | Payload: *EntityPayload
	EventEnemyRespawned

	// EventPickup signals a collectible taken by the player
	// Trigger: ScoreSystem pickup scan | Payload: *PickupPayload
	EventPickup

	// EventLifeLost signals the player lost a life
	// Trigger: enemy contact, fall-off | Payload: *LifePayload
	EventLifeLost

	// EventExitRevealed signals every collectible is taken and exits are open
	// Trigger: ScoreSystem completion check | Payload: *ExitPayload
	EventExitRevealed

	// EventWon signals the player reached an exit
	// Trigger: ScoreSystem win check | Payload: nil
	EventWon

	// EventGameOver signals lives reached zero
	// Trigger: life loss | Payload: nil
	EventGameOver

	// EventRestart signals the session was reinitialised
	// Trigger: restart key in a terminal state | Payload: nil
	EventRestart

	eventTypeCount
)

var eventNames = [...]string{
	EventDig:            "Dig",
	EventRefill:         "Refill",
	EventTrapped:        "Trapped",
	EventFreed:          "Freed",
	EventEnemyKilled:    "EnemyKilled",
	EventEnemyRespawned: "EnemyRespawned",
	EventPickup:         "Pickup",
	EventLifeLost:       "LifeLost",
	EventExitRevealed:   "ExitRevealed",
	EventWon:            "Won",
	EventGameOver:       "GameOver",
	EventRestart:        "Restart",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventNames[t]
	}
	return "Unknown"
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick that produced the event
}
