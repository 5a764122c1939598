package engine

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
	"github.com/HJXCODE-810/Lode-runner-CG/input"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
	"github.com/HJXCODE-810/Lode-runner-CG/physics"
	"github.com/HJXCODE-810/Lode-runner-CG/systems"
)

// Simulation owns the grid, the entities and the session state of one game,
// and advances them in a fixed order once per tick.
//
// Tick order:
//  1. Restart check (terminal states only)
//  2. Player intent and dig
//  3. Enemy AI and respawn countdowns
//  4. Physics for the player, then for enemies, against one trapped-head snapshot
//  5. Hole countdown and refill
//  6. Completion, win and contact checks
//
// A Simulation is not safe for concurrent use; collaborators read Snapshot copies.
type Simulation struct {
	def   level.Definition
	rules Rules
	rng   *rand.Rand

	grid     *level.Grid
	player   *components.Entity
	enemies  []*components.Entity
	entities []*components.Entity // Player first, then enemies

	resolver *physics.Resolver
	dig      *systems.DigSystem
	players  *systems.PlayerSystem
	ai       *systems.AISystem
	score    *systems.ScoreSystem

	state GameState
	frame int64
	queue *events.EventQueue
}

// New parses the level definition and creates a ready-to-run simulation.
// seed drives the enemy kick directions, so equal seeds and inputs replay identically.
func New(def level.Definition, rules Rules, seed int64) (*Simulation, error) {
	s := &Simulation{
		def:   def,
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		queue: events.NewEventQueue(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load builds every piece of per-session state from the definition
func (s *Simulation) load() error {
	layout, err := level.Parse(s.def, s.rules.TileSize)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	g := layout.Grid
	tile := g.TileSize()
	s.grid = g
	s.player = components.NewEntity(0, components.KindPlayer, layout.PlayerStart, tile)

	s.enemies = s.enemies[:0]
	for i, c := range layout.EnemyStarts {
		if i >= s.rules.MaxEnemies {
			log.Printf("level %q: enemy start (%d,%d) ignored, limit %d", s.def.Name, c.Col, c.Row, s.rules.MaxEnemies)
			continue
		}
		e := components.NewEntity(i+1, components.KindEnemy, c, tile)
		e.VX = s.kick()
		e.FaceRight = e.VX >= 0
		s.enemies = append(s.enemies, e)
	}
	s.entities = append([]*components.Entity{s.player}, s.enemies...)

	s.resolver = physics.NewResolver(g, s.rules.Gravity)
	s.dig = systems.NewDigSystem(g, s.rules.HoleRefill, s.rules.RespawnDelay)
	s.players = systems.NewPlayerSystem(g, s.dig, s.rules.PlayerSpeed, s.rules.RopeSpeed, s.rules.ClimbSpeed)
	s.ai = systems.NewAISystem(g, s.rules.EnemySpeed, s.rules.ClimbSpeed, s.rng)
	s.score = systems.NewScoreSystem(g, s.rules.ExitRows)
	s.state = NewGameState(s.rules.InitialLives, g.GoldTotal())
	return nil
}

// kick returns plus or minus half the enemy speed
func (s *Simulation) kick() float64 {
	k := s.rules.EnemySpeed / 2
	if s.rng.Intn(2) == 0 {
		return -k
	}
	return k
}

// Reset discards all session state and reloads the level
func (s *Simulation) Reset() error {
	if err := s.load(); err != nil {
		return err
	}
	s.push(events.EventRestart, nil)
	log.Printf("session restarted: %q", s.def.Name)
	return nil
}

// Step advances the simulation by dt seconds using the keys held this tick.
// The quit key is the caller's concern. Once won or over, only restart has an effect.
func (s *Simulation) Step(keys input.KeySet, dt float64) {
	s.frame++

	if s.state.Terminal() {
		if keys.Has(input.KeyRestart) {
			if err := s.Reset(); err != nil {
				log.Printf("restart failed: %v", err)
			}
		}
		return
	}

	if dt < 0 {
		dt = 0
	}
	if limit := s.rules.MaxDelta.Seconds(); limit > 0 && dt > limit {
		dt = limit
	}

	trapped := physics.TrappedObstacles(s.entities)
	if c, ok := s.players.Apply(s.player, keys, trapped); ok {
		s.push(events.EventDig, &events.CellPayload{Cell: c})
	}

	for _, e := range s.enemies {
		if s.ai.Update(e, s.player, dt) {
			s.push(events.EventEnemyRespawned, s.entityPayload(e))
		}
	}

	// Every entity sees the same trapped heads, as of the start of the physics phase
	trapped = physics.TrappedObstacles(s.entities)
	if s.stepPlayer(dt, trapped) {
		return
	}
	for _, e := range s.enemies {
		s.stepEnemy(e, dt, trapped)
	}

	for _, r := range s.dig.Update(dt, s.entities) {
		s.push(events.EventRefill, &events.CellPayload{Cell: r.Cell})
		for _, e := range r.Freed {
			s.push(events.EventFreed, s.entityPayload(e))
		}
		for _, e := range r.Killed {
			s.push(events.EventEnemyKilled, s.entityPayload(e))
		}
	}

	s.checkCompletion()
	if s.state.LevelComplete && s.score.AtExit(s.player) {
		s.state.Won = true
		log.Printf("level %q won: score %d", s.def.Name, s.state.Score)
		s.push(events.EventWon, nil)
		return
	}
	s.checkContact()
}

// stepPlayer resolves the player's motion and pickups. Returns true when the game ended.
func (s *Simulation) stepPlayer(dt float64, trapped []physics.Obstacle) bool {
	p := s.player
	switch s.resolver.Step(p, dt, trapped) {
	case physics.OutcomeTrapped:
		c := physics.FeetCell(s.grid, p)
		log.Printf("player trapped at (%d,%d)", c.Col, c.Row)
		s.push(events.EventTrapped, s.entityPayload(p))
	case physics.OutcomeFreed:
		s.push(events.EventFreed, s.entityPayload(p))
	case physics.OutcomeFellOff:
		if s.loseLife("felloff") {
			return true
		}
		p.ResetToSpawn(s.grid.TileSize())
		return false
	}

	for _, c := range s.score.Collect(p) {
		s.state.Collect(s.rules.Points)
		s.push(events.EventPickup, &events.PickupPayload{
			Cell:      c,
			Score:     s.state.Score,
			Collected: s.state.Collected,
			Total:     s.state.Total,
		})
	}
	return false
}

func (s *Simulation) stepEnemy(e *components.Entity, dt float64, trapped []physics.Obstacle) {
	switch s.resolver.Step(e, dt, trapped) {
	case physics.OutcomeTrapped:
		log.Printf("enemy %d trapped", e.ID)
		s.push(events.EventTrapped, s.entityPayload(e))
	case physics.OutcomeRefill:
		s.killEnemy(e, "refill")
	case physics.OutcomeFellOff:
		s.killEnemy(e, "felloff")
	}
}

func (s *Simulation) killEnemy(e *components.Entity, cause string) {
	payload := s.entityPayload(e)
	e.Kill(s.rules.RespawnDelay)
	log.Printf("enemy %d killed (%s)", e.ID, cause)
	s.push(events.EventEnemyKilled, payload)
}

// checkCompletion reveals the exits the first time every collectible has been taken.
// A level without collectibles completes on its first tick.
func (s *Simulation) checkCompletion() {
	if !s.state.MarkComplete() {
		return
	}
	cells := s.score.RevealExits()
	s.push(events.EventExitRevealed, &events.ExitPayload{Cells: cells})
}

// checkContact applies the tag penalty: a life is lost and both parties return to their anchors
func (s *Simulation) checkContact() {
	e := s.score.Contact(s.player, s.enemies)
	if e == nil {
		return
	}
	log.Printf("player tagged by enemy %d", e.ID)
	over := s.loseLife("contact")
	tile := s.grid.TileSize()
	e.ResetToSpawn(tile)
	if !over {
		s.player.ResetToSpawn(tile)
	}
}

// loseLife records a life loss and returns true when it ended the game
func (s *Simulation) loseLife(cause string) bool {
	over := s.state.LoseLife()
	log.Printf("life lost (%s): %d remaining", cause, s.state.Lives)
	s.push(events.EventLifeLost, &events.LifePayload{Remaining: s.state.Lives, Cause: cause})
	if over {
		log.Printf("game over: score %d", s.state.Score)
		s.push(events.EventGameOver, nil)
	}
	return over
}

func (s *Simulation) entityPayload(e *components.Entity) *events.EntityPayload {
	return &events.EntityPayload{
		ID:     e.ID,
		Player: e.Kind == components.KindPlayer,
		Cell:   physics.FeetCell(s.grid, e),
	}
}

func (s *Simulation) push(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{Type: t, Payload: payload, Frame: s.frame})
}

// ===== ACCESSORS =====

// Events returns the queue the simulation publishes to
func (s *Simulation) Events() *events.EventQueue { return s.queue }

func (s *Simulation) Grid() *level.Grid { return s.grid }
func (s *Simulation) Player() *components.Entity { return s.player }
func (s *Simulation) Enemies() []*components.Entity { return s.enemies }
func (s *Simulation) State() GameState { return s.state }
func (s *Simulation) Frame() int64 { return s.frame }
func (s *Simulation) Rules() Rules { return s.rules }

// Snapshot copies the current state for rendering or streaming
func (s *Simulation) Snapshot() Snapshot {
	g := s.grid
	snap := Snapshot{
		Frame:    s.frame,
		Level:    s.def.Name,
		Width:    g.Width(),
		Height:   g.Height(),
		TileSize: g.TileSize(),
		Tiles:    make([]level.Tile, 0, g.Width()*g.Height()),
		Gold:     g.GoldCells(),
		Entities: make([]EntityView, 0, len(s.entities)),
		State:    stateView(s.state),
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			snap.Tiles = append(snap.Tiles, g.Static(level.Cell{Col: col, Row: row}))
		}
	}
	for _, h := range g.Holes() {
		snap.Holes = append(snap.Holes, HoleView{Col: h.Cell.Col, Row: h.Cell.Row, Remaining: h.Remaining})
	}
	for _, e := range s.entities {
		snap.Entities = append(snap.Entities, viewOf(e))
	}
	return snap
}
