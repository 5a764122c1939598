package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
	"github.com/HJXCODE-810/Lode-runner-CG/input"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

const frameDT = 1.0 / 60.0

func newSim(t *testing.T, rows []string, rules Rules) *Simulation {
	t.Helper()
	sim, err := New(level.Definition{Name: t.Name(), Rows: rows}, rules, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return sim
}

func stepN(sim *Simulation, keys input.KeySet, n int) {
	for i := 0; i < n; i++ {
		sim.Step(keys, frameDT)
	}
}

// drain consumes the queue and counts events by type
func drain(sim *Simulation) map[events.EventType]int {
	counts := make(map[events.EventType]int)
	for _, ev := range sim.Events().Drain() {
		counts[ev.Type]++
	}
	return counts
}

// TestCollectAllRevealsExit covers the two-collectible completion scenario
func TestCollectAllRevealsExit(t *testing.T) {
	sim := newSim(t, []string{
		"........",
		"........",
		".......L",
		".......L",
		"P......L",
		"SSCSCSSS",
	}, DefaultRules())

	if sim.State().Total != 2 {
		t.Fatalf("Expected 2 collectibles, got %d", sim.State().Total)
	}

	stepN(sim, input.Keys(input.KeyRight), 80)

	st := sim.State()
	if st.Collected != 2 {
		t.Fatalf("Expected 2 collected, got %d", st.Collected)
	}
	if st.Score != 2*DefaultRules().Points {
		t.Errorf("Expected score %d, got %d", 2*DefaultRules().Points, st.Score)
	}
	if !st.LevelComplete {
		t.Error("Expected LevelComplete")
	}
	if got := sim.Grid().TileAtCell(level.Cell{Col: 7, Row: 4}); got != level.ExitLadder {
		t.Errorf("Expected ExitLadder above the top ladder cell, got %v", got)
	}

	counts := drain(sim)
	if counts[events.EventPickup] != 2 {
		t.Errorf("Expected 2 pickup events, got %d", counts[events.EventPickup])
	}
	if counts[events.EventExitRevealed] != 1 {
		t.Errorf("Expected exactly one reveal, got %d", counts[events.EventExitRevealed])
	}

	stepN(sim, input.Keys(input.KeyLeft), 20)
	if !sim.State().LevelComplete {
		t.Error("Expected LevelComplete to stay set")
	}
	if n := drain(sim)[events.EventExitRevealed]; n != 0 {
		t.Errorf("Expected no further reveals, got %d", n)
	}
}

// TestFallOffLastLifeEndsGame covers falling below the playfield with one life left
func TestFallOffLastLifeEndsGame(t *testing.T) {
	rules := DefaultRules()
	rules.InitialLives = 1
	sim := newSim(t, []string{
		"....",
		"P...",
		"SSSS",
	}, rules)

	p := sim.Player()
	p.Y = -3 * rules.TileSize
	sim.Step(0, frameDT)

	st := sim.State()
	if st.Lives != 0 || !st.Over {
		t.Fatalf("Expected game over with 0 lives, got lives=%d over=%v", st.Lives, st.Over)
	}

	x, y := p.X, p.Y
	stepN(sim, input.Keys(input.KeyRight), 10)
	if p.X != x || p.Y != y {
		t.Errorf("Expected frozen player at (%v,%v), got (%v,%v)", x, y, p.X, p.Y)
	}

	counts := drain(sim)
	if counts[events.EventLifeLost] != 1 || counts[events.EventGameOver] != 1 {
		t.Errorf("Expected one LifeLost and one GameOver, got %v", counts)
	}
}

// TestFallOffWithLivesLeftRespawns verifies the player returns to the anchor
func TestFallOffWithLivesLeftRespawns(t *testing.T) {
	sim := newSim(t, []string{
		"....",
		".P..",
		"SSSS",
	}, DefaultRules())

	p := sim.Player()
	p.Y = -200
	sim.Step(0, frameDT)

	if sim.State().Lives != DefaultRules().InitialLives-1 {
		t.Errorf("Expected one life lost, got %d", sim.State().Lives)
	}
	if sim.State().Over {
		t.Error("Expected game to continue")
	}
	if p.X != 44 || p.Y != 40 {
		t.Errorf("Expected player at anchor (44,40), got (%v,%v)", p.X, p.Y)
	}
}

// TestDigRefillWithoutOccupant covers a hole expiring with nobody inside
func TestDigRefillWithoutOccupant(t *testing.T) {
	sim := newSim(t, []string{
		"........",
		".P......",
		"SBBBBBBS",
	}, DefaultRules())
	target := level.Cell{Col: 2, Row: 0}

	sim.Step(input.Keys(input.KeyDigRight), frameDT)

	if !sim.Grid().HasHole(target) {
		t.Fatal("Expected hole after digging right")
	}
	if sim.Grid().TileAtCell(target) != level.Empty {
		t.Error("Expected holed cell to read as Empty")
	}

	stepN(sim, 0, 430)

	if sim.Grid().HasHole(target) {
		t.Error("Expected hole removed after refill time")
	}
	if sim.Grid().TileAtCell(target) != level.Brick {
		t.Error("Expected Brick restored")
	}
	counts := drain(sim)
	if counts[events.EventDig] != 1 || counts[events.EventRefill] != 1 {
		t.Errorf("Expected one dig and one refill, got %v", counts)
	}
}

// TestTickDeltaIsClamped verifies a stalled frame advances at most MaxDelta
func TestTickDeltaIsClamped(t *testing.T) {
	rules := DefaultRules()
	sim := newSim(t, []string{
		"........",
		".P......",
		"SBBBBBBS",
	}, rules)

	sim.Step(input.Keys(input.KeyDigRight), frameDT)
	sim.Step(0, 5.0)

	h, ok := sim.Grid().Hole(level.Cell{Col: 2, Row: 0})
	if !ok {
		t.Fatal("Expected hole to survive a clamped stall")
	}
	want := rules.HoleRefill - frameDT - rules.MaxDelta.Seconds()
	if math.Abs(h.Remaining-want) > 1e-9 {
		t.Errorf("Expected remaining %v, got %v", want, h.Remaining)
	}
}

// TestTrappedEnemyKilledByRefill covers an enemy still trapped when its hole closes
func TestTrappedEnemyKilledByRefill(t *testing.T) {
	rules := DefaultRules()
	sim := newSim(t, []string{
		"........",
		"P....X..",
		"BBBBBBBB",
		"SSSSSSSS",
	}, rules)

	sim.Step(input.Keys(input.KeyDigRight), frameDT)
	hole := level.Cell{Col: 1, Row: 1}
	if !sim.Grid().HasHole(hole) {
		t.Fatal("Expected hole at (1,1)")
	}

	e := sim.Enemies()[0]
	e.X, e.Y = 44, 40
	e.VX, e.VY = 0, 0
	e.Motion = components.Motion{Kind: components.Falling}

	sim.Step(0, frameDT)
	if !e.Motion.Is(components.Trapped) {
		t.Fatalf("Expected enemy trapped, got %v", e.Motion.Kind)
	}
	h, _ := sim.Grid().Hole(hole)
	if e.Motion.TrapTimer >= h.Remaining {
		t.Errorf("Expected trap timer %v below hole remaining %v", e.Motion.TrapTimer, h.Remaining)
	}

	killed := false
	for i := 0; i < 600; i++ {
		sim.Step(0, frameDT)
		if !e.Alive {
			killed = true
			break
		}
	}
	if !killed {
		t.Fatal("Expected enemy killed by refill")
	}
	if e.RespawnTimer != rules.RespawnDelay {
		t.Errorf("Expected respawn timer %v, got %v", rules.RespawnDelay, e.RespawnTimer)
	}
	if sim.Grid().TileAtCell(hole) != level.Brick {
		t.Error("Expected Brick restored")
	}

	counts := drain(sim)
	if counts[events.EventTrapped] != 1 {
		t.Errorf("Expected one trap event, got %d", counts[events.EventTrapped])
	}
	if counts[events.EventEnemyKilled] != 1 {
		t.Errorf("Expected one kill event, got %d", counts[events.EventEnemyKilled])
	}

	stepN(sim, 0, int(rules.RespawnDelay/frameDT)+5)
	if !e.Alive {
		t.Error("Expected enemy back after respawn delay")
	}
	if n := drain(sim)[events.EventEnemyRespawned]; n != 1 {
		t.Errorf("Expected one respawn event, got %d", n)
	}
}

// TestContactCostsLifeAndResets covers the tag penalty
func TestContactCostsLifeAndResets(t *testing.T) {
	rules := DefaultRules()
	sim := newSim(t, []string{
		"........",
		"P.X.....",
		"BBBBBBBB",
		"SSSSSSSS",
	}, rules)

	tagged := false
	for i := 0; i < 60; i++ {
		sim.Step(0, frameDT)
		if sim.State().Lives < rules.InitialLives {
			tagged = true
			break
		}
	}
	if !tagged {
		t.Fatal("Expected enemy to reach the player")
	}
	if sim.State().Lives != rules.InitialLives-1 {
		t.Errorf("Expected one life lost, got %d", sim.State().Lives)
	}

	p := sim.Player()
	e := sim.Enemies()[0]
	if p.X != 4 || p.Y != 80 {
		t.Errorf("Expected player at anchor (4,80), got (%v,%v)", p.X, p.Y)
	}
	if e.X != 84 || e.Y != 80 {
		t.Errorf("Expected enemy at anchor (84,80), got (%v,%v)", e.X, e.Y)
	}
	if !e.Alive {
		t.Error("Expected tagging enemy to stay alive")
	}

	for _, ev := range sim.Events().Drain() {
		if ev.Type != events.EventLifeLost {
			continue
		}
		lp, ok := ev.Payload.(*events.LifePayload)
		if !ok || lp.Cause != "contact" {
			t.Errorf("Expected contact payload, got %#v", ev.Payload)
		}
	}
}

// TestReachExitWins verifies a zero-collectible level opens immediately and the exit wins
func TestReachExitWins(t *testing.T) {
	sim := newSim(t, []string{
		"....",
		"....",
		".L..",
		".L..",
		"PL..",
		"SSSS",
	}, DefaultRules())

	sim.Step(0, frameDT)
	if !sim.State().LevelComplete {
		t.Fatal("Expected empty level to complete on the first tick")
	}
	for _, row := range []int{4, 5} {
		if got := sim.Grid().TileAtCell(level.Cell{Col: 1, Row: row}); got != level.ExitLadder {
			t.Errorf("Expected ExitLadder at (1,%d), got %v", row, got)
		}
	}

	p := sim.Player()
	p.X, p.Y = 44, 160
	p.Motion = components.Motion{Kind: components.Climbing}
	sim.Step(0, frameDT)

	if !sim.State().Won {
		t.Fatal("Expected win at the exit")
	}

	x := p.X
	stepN(sim, input.Keys(input.KeyRight), 5)
	if p.X != x {
		t.Error("Expected simulation frozen after win")
	}
	if n := drain(sim)[events.EventWon]; n != 1 {
		t.Errorf("Expected one win event, got %d", n)
	}
}

// TestRestartOnlyInTerminalState verifies restart is ignored during play and resets after game over
func TestRestartOnlyInTerminalState(t *testing.T) {
	rules := DefaultRules()
	rules.InitialLives = 1
	sim := newSim(t, []string{
		"........",
		".P......",
		"SBBBBBBS",
	}, rules)

	sim.Step(input.Keys(input.KeyDigRight), frameDT)
	sim.Step(input.Keys(input.KeyRestart), frameDT)
	if !sim.Grid().HasHole(level.Cell{Col: 2, Row: 0}) {
		t.Error("Expected restart ignored while playing")
	}

	sim.Player().Y = -500
	sim.Step(0, frameDT)
	if !sim.State().Over {
		t.Fatal("Expected game over")
	}

	sim.Step(input.Keys(input.KeyRestart), frameDT)

	st := sim.State()
	if st.Over || st.Lives != 1 || st.Score != 0 {
		t.Errorf("Expected fresh session, got %+v", st)
	}
	if sim.Grid().HoleCount() != 0 {
		t.Error("Expected holes discarded on restart")
	}
	if p := sim.Player(); p.X != 44 || p.Y != 40 {
		t.Errorf("Expected player at anchor, got (%v,%v)", p.X, p.Y)
	}
	if n := drain(sim)[events.EventRestart]; n != 1 {
		t.Errorf("Expected one restart event, got %d", n)
	}
}

// TestEnemyLimit verifies starts beyond MaxEnemies are ignored
func TestEnemyLimit(t *testing.T) {
	rules := DefaultRules()
	rules.MaxEnemies = 2
	sim := newSim(t, []string{
		"P.XXX...",
		"SSSSSSSS",
	}, rules)

	if n := len(sim.Enemies()); n != 2 {
		t.Fatalf("Expected 2 enemies, got %d", n)
	}
	for _, e := range sim.Enemies() {
		if math.Abs(e.VX) != rules.EnemySpeed/2 {
			t.Errorf("Expected initial kick of %v, got %v", rules.EnemySpeed/2, e.VX)
		}
	}
}

// TestDeterministicReplay verifies equal seeds and inputs produce equal snapshots
func TestDeterministicReplay(t *testing.T) {
	script := func(frame int) input.KeySet {
		switch {
		case frame < 60:
			return input.Keys(input.KeyRight)
		case frame == 70:
			return input.Keys(input.KeyDigLeft)
		case frame < 200:
			return input.Keys(input.KeyLeft, input.KeyUp)
		default:
			return 0
		}
	}

	run := func() Snapshot {
		sim, err := New(level.Default, DefaultRules(), 42)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for i := 0; i < 300; i++ {
			sim.Step(script(i), frameDT)
		}
		return sim.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical snapshots for identical runs")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	sim, err := New(level.Default, DefaultRules(), 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	snap := sim.Snapshot()

	if len(snap.Tiles) != snap.Width*snap.Height {
		t.Errorf("Expected %d tiles, got %d", snap.Width*snap.Height, len(snap.Tiles))
	}
	if len(snap.Gold) != 6 {
		t.Errorf("Expected 6 gold cells, got %d", len(snap.Gold))
	}
	if len(snap.Entities) != 4 {
		t.Errorf("Expected player and 3 enemies, got %d", len(snap.Entities))
	}
	pv, ok := snap.Player()
	if !ok {
		t.Fatal("Expected player first in snapshot")
	}
	if snap.Tile(-1, 0) != level.SolidBrick {
		t.Error("Expected SolidBrick outside the snapshot grid")
	}

	sim.Player().X += 100
	if pv.X == sim.Player().X {
		t.Error("Expected snapshot unaffected by later moves")
	}
}
