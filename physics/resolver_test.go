package physics

import (
	"math"
	"testing"

	"github.com/HJXCODE-810/Lode-runner-CG/components"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

const (
	testTile = constants.TileSize
	frameDT  = 1.0 / 60.0
)

// newFloorGrid creates an 8x6 grid with a SolidBrick floor on row 0
func newFloorGrid() *level.Grid {
	g := level.NewGrid(8, 6, testTile)
	for col := 0; col < 8; col++ {
		g.SetStatic(level.Cell{Col: col, Row: 0}, level.SolidBrick)
	}
	return g
}

func stepN(r *Resolver, e *components.Entity, n int, trapped []Obstacle) []Outcome {
	out := make([]Outcome, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, r.Step(e, frameDT, trapped))
	}
	return out
}

func countOutcome(outcomes []Outcome, want Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o == want {
			n++
		}
	}
	return n
}

// TestGravityLandsAndSnaps verifies a falling entity snaps exactly onto the floor
func TestGravityLandsAndSnaps(t *testing.T) {
	g := newFloorGrid()
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 2, Row: 3}, testTile)

	stepN(r, e, 120, nil)

	if e.Y != testTile {
		t.Errorf("Expected Y snapped to %v, got %v", testTile, e.Y)
	}
	if e.VY != 0 {
		t.Errorf("Expected VY=0 after landing, got %v", e.VY)
	}
	if !e.Motion.Is(components.Grounded) {
		t.Errorf("Expected Grounded, got %v", e.Motion.Kind)
	}
	if !IsOnGround(g, e, nil) {
		t.Error("Expected IsOnGround after landing")
	}
}

// TestHorizontalWallSnaps verifies the leading edge stops exactly on a wall boundary
func TestHorizontalWallSnaps(t *testing.T) {
	g := newFloorGrid()
	g.SetStatic(level.Cell{Col: 5, Row: 1}, level.SolidBrick)
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 2, Row: 1}, testTile)

	for i := 0; i < 60; i++ {
		e.VX = constants.PlayerSpeed
		r.Step(e, frameDT, nil)
	}

	want := 5*testTile - e.W
	if e.X != want {
		t.Errorf("Expected X snapped to %v, got %v", want, e.X)
	}
}

// TestHorizontalClampToWorld verifies the world edge stops motion at x=0
func TestHorizontalClampToWorld(t *testing.T) {
	g := newFloorGrid()
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 0, Row: 1}, testTile)

	for i := 0; i < 10; i++ {
		e.VX = -constants.PlayerSpeed
		r.Step(e, frameDT, nil)
	}

	if e.X != 0 {
		t.Errorf("Expected X clamped to 0, got %v", e.X)
	}
}

func newHoleGrid() *level.Grid {
	g := newFloorGrid()
	for col := 0; col < 8; col++ {
		g.SetStatic(level.Cell{Col: col, Row: 1}, level.Brick)
	}
	return g
}

// TestFallIntoHoleTrapsOnce verifies hole entry centres the entity and traps it once per fall
func TestFallIntoHoleTrapsOnce(t *testing.T) {
	g := newHoleGrid()
	hole := level.Cell{Col: 3, Row: 1}
	if !g.OpenHole(hole, constants.HoleRefillSeconds) {
		t.Fatal("Expected hole to open")
	}
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(2, components.KindEnemy, level.Cell{Col: 3, Row: 2}, testTile)

	outcomes := stepN(r, e, 120, nil)

	if n := countOutcome(outcomes, OutcomeTrapped); n != 1 {
		t.Fatalf("Expected exactly one trap transition, got %d", n)
	}
	if !e.Motion.Is(components.Trapped) {
		t.Fatalf("Expected Trapped, got %v", e.Motion.Kind)
	}
	wantX := 3*testTile + (testTile-e.W)/2
	if e.X != wantX || e.Y != testTile {
		t.Errorf("Expected entity centred at (%v,%v), got (%v,%v)", wantX, testTile, e.X, e.Y)
	}
	if e.VX != 0 || e.VY != 0 {
		t.Errorf("Expected zero velocity while trapped, got (%v,%v)", e.VX, e.VY)
	}
	if e.Motion.TrapTimer >= constants.HoleRefillSeconds-constants.TrapEpsilon {
		t.Errorf("Expected trap timer below %v, got %v",
			constants.HoleRefillSeconds-constants.TrapEpsilon, e.Motion.TrapTimer)
	}
}

// TestTrapTimerMirrorsHole verifies the trap countdown starts at the hole's remaining time minus epsilon
func TestTrapTimerMirrorsHole(t *testing.T) {
	remaining := 2.0
	g := newHoleGrid()
	g.OpenHole(level.Cell{Col: 3, Row: 1}, remaining)
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(2, components.KindEnemy, level.Cell{Col: 3, Row: 1}, testTile)
	e.Y = testTile + 10
	e.X = 3*testTile + (testTile-e.W)/2
	e.Motion = components.Motion{Kind: components.Falling}

	var trapped bool
	for i := 0; i < 60 && !trapped; i++ {
		trapped = r.Step(e, frameDT, nil) == OutcomeTrapped
	}

	if !trapped {
		t.Fatal("Expected entity to become trapped")
	}
	if want := remaining - constants.TrapEpsilon; e.Motion.TrapTimer != want {
		t.Errorf("Expected trap timer %v, got %v", want, e.Motion.TrapTimer)
	}
}

// TestTrapRearmsWhileHoleOpen verifies an expired trap timer is re-armed when the hole still exists
func TestTrapRearmsWhileHoleOpen(t *testing.T) {
	g := newHoleGrid()
	g.OpenHole(level.Cell{Col: 3, Row: 1}, 1.0)
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(2, components.KindEnemy, level.Cell{Col: 3, Row: 1}, testTile)
	e.Motion = components.TrappedFor(0.05)

	if got := r.Step(e, 0.1, nil); got != OutcomeNone {
		t.Fatalf("Expected no outcome, got %v", got)
	}
	if !e.Motion.Is(components.Trapped) {
		t.Fatalf("Expected entity to remain trapped, got %v", e.Motion.Kind)
	}
	if e.Motion.TrapTimer != constants.TrapRearmSeconds {
		t.Errorf("Expected re-armed timer %v, got %v", constants.TrapRearmSeconds, e.Motion.TrapTimer)
	}
}

// TestTrapResolvesAfterRefill verifies trap expiry with the hole gone: enemies report refill, the player climbs out
func TestTrapResolvesAfterRefill(t *testing.T) {
	tests := []struct {
		name string
		kind components.Kind
		want Outcome
	}{
		{"enemy", components.KindEnemy, OutcomeRefill},
		{"player", components.KindPlayer, OutcomeFreed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newHoleGrid()
			c := level.Cell{Col: 3, Row: 1}
			g.OpenHole(c, 1.0)
			g.AgeHoles(1.0)

			r := NewResolver(g, constants.Gravity)
			e := components.NewEntity(1, tt.kind, c, testTile)
			e.Motion = components.TrappedFor(0.05)

			if got := r.Step(e, 0.1, nil); got != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			if tt.kind != components.KindPlayer {
				return
			}
			if e.Y != testTile+constants.RefillFreeNudge {
				t.Errorf("Expected nudge to %v, got %v", testTile+constants.RefillFreeNudge, e.Y)
			}
			if !e.Motion.Is(components.Falling) {
				t.Errorf("Expected Falling after release, got %v", e.Motion.Kind)
			}

			stepN(r, e, 30, nil)
			if e.Y != 2*testTile {
				t.Errorf("Expected player to pop onto refilled brick at %v, got %v", 2*testTile, e.Y)
			}
		})
	}
}

// TestLandOnTrappedHead verifies a trapped box acts as ground for others
func TestLandOnTrappedHead(t *testing.T) {
	g := newHoleGrid()
	g.SetStatic(level.Cell{Col: 3, Row: 1}, level.Empty)
	r := NewResolver(g, constants.Gravity)

	victim := Obstacle{ID: 9, X: 3*testTile + 4, Y: testTile, W: testTile * constants.EntityWidthFrac, H: testTile * constants.EntityHeightFrac}
	e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 3, Row: 2}, testTile)
	e.Y = 2*testTile + 10
	e.Motion = components.Motion{Kind: components.Falling}

	stepN(r, e, 60, []Obstacle{victim})

	if e.Y != victim.Top() {
		t.Errorf("Expected feet on victim head at %v, got %v", victim.Top(), e.Y)
	}
	if !e.Motion.Is(components.Grounded) {
		t.Errorf("Expected Grounded on head, got %v", e.Motion.Kind)
	}
	if !IsOnGround(g, e, []Obstacle{victim}) {
		t.Error("Expected IsOnGround on trapped head")
	}
}

// TestLadderTopFooting verifies walkers land on a ladder top while climbers pass through
func TestLadderTopFooting(t *testing.T) {
	newLadderGrid := func() *level.Grid {
		g := newFloorGrid()
		g.SetStatic(level.Cell{Col: 3, Row: 1}, level.Ladder)
		g.SetStatic(level.Cell{Col: 3, Row: 2}, level.Ladder)
		return g
	}

	t.Run("walker lands", func(t *testing.T) {
		g := newLadderGrid()
		r := NewResolver(g, constants.Gravity)
		e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 3, Row: 4}, testTile)

		stepN(r, e, 90, nil)

		if e.Y != 3*testTile {
			t.Errorf("Expected landing on ladder top at %v, got %v", 3*testTile, e.Y)
		}
		if !IsOnGround(g, e, nil) {
			t.Error("Expected IsOnGround on ladder top")
		}
	})

	t.Run("climber passes", func(t *testing.T) {
		g := newLadderGrid()
		r := NewResolver(g, constants.Gravity)
		e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 3, Row: 3}, testTile)
		e.Motion = components.Motion{Kind: components.Climbing}

		for i := 0; i < 90; i++ {
			e.VY = -constants.ClimbSpeed
			r.Step(e, frameDT, nil)
		}

		if e.Y != testTile {
			t.Errorf("Expected climber to reach the floor at %v, got %v", testTile, e.Y)
		}
		if !e.Motion.Is(components.Climbing) {
			t.Errorf("Expected to remain Climbing, got %v", e.Motion.Kind)
		}
	})
}

// TestFellOffPlayfield verifies a box pushed below the margin reports fall-off
func TestFellOffPlayfield(t *testing.T) {
	g := newFloorGrid()
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 2, Row: 1}, testTile)
	e.Y = -testTile - 5
	e.Motion = components.Motion{Kind: components.Falling}

	if got := r.Step(e, frameDT, nil); got != OutcomeFellOff {
		t.Errorf("Expected OutcomeFellOff, got %v", got)
	}
}

// TestDeadEntitiesAreIgnored verifies physics skips enemies awaiting respawn
func TestDeadEntitiesAreIgnored(t *testing.T) {
	g := newFloorGrid()
	r := NewResolver(g, constants.Gravity)
	e := components.NewEntity(2, components.KindEnemy, level.Cell{Col: 2, Row: 3}, testTile)
	e.Kill(constants.EnemyRespawnSeconds)
	y := e.Y

	stepN(r, e, 30, nil)

	if e.Y != y {
		t.Errorf("Expected dead enemy to stay put at %v, got %v", y, e.Y)
	}
}

// TestTraversalSlidesPastWall verifies a climbing or hanging entity passes a wall when any
// leading-edge sample is ladder or rope, and that walkers and all-brick edges still block
func TestTraversalSlidesPastWall(t *testing.T) {
	tests := []struct {
		name   string
		mode   components.MotionKind
		upper  level.Tile
		freely bool
	}{
		{"climber with ladder at top sample", components.Climbing, level.Ladder, true},
		{"rope hanger with rope at top sample", components.OnRope, level.Rope, true},
		{"climber against solid edge", components.Climbing, level.Brick, false},
		{"walker with ladder at top sample", components.Grounded, level.Ladder, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFloorGrid()
			g.SetStatic(level.Cell{Col: 3, Row: 1}, level.Brick)
			g.SetStatic(level.Cell{Col: 3, Row: 2}, tt.upper)
			r := NewResolver(g, 0)

			e := components.NewEntity(1, components.KindPlayer, level.Cell{Col: 2, Row: 1}, testTile)
			e.X = 3*testTile - e.W - 0.5
			e.Y = 1.5 * testTile
			e.VX = constants.PlayerSpeed
			e.VY = 0
			e.Motion = components.Motion{Kind: tt.mode}

			start := e.X
			r.Step(e, frameDT, nil)

			want := 3*testTile - e.W
			if tt.freely {
				want = start + constants.PlayerSpeed*frameDT
			}
			if math.Abs(e.X-want) > 1e-9 {
				t.Errorf("Expected X=%v, got %v", want, e.X)
			}
		})
	}
}
