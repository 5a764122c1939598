package components

import (
	"testing"

	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

func TestNewEntityAtSpawn(t *testing.T) {
	e := NewEntity(1, KindEnemy, level.Cell{Col: 3, Row: 2}, 40)

	if e.W != 32 || e.H != 38 {
		t.Errorf("Expected 32x38 box, got %vx%v", e.W, e.H)
	}
	if e.X != 124 || e.Y != 80 {
		t.Errorf("Expected spawn position (124,80), got (%v,%v)", e.X, e.Y)
	}
	if !e.Alive || !e.Active() {
		t.Error("Expected new enemy to be alive and active")
	}
	if e.CenterX() != 140 || e.CenterY() != 99 {
		t.Errorf("Expected centre (140,99), got (%v,%v)", e.CenterX(), e.CenterY())
	}
}

func TestKillAndRespawn(t *testing.T) {
	e := NewEntity(2, KindEnemy, level.Cell{Col: 1, Row: 1}, 40)
	e.X, e.Y, e.VX, e.VY = 300, 200, 50, -20
	e.Motion = TrappedFor(2)

	e.Kill(3)
	if e.Alive || e.Active() {
		t.Error("Expected killed enemy to be inactive")
	}
	if e.RespawnTimer != 3 {
		t.Errorf("Expected respawn timer 3, got %v", e.RespawnTimer)
	}
	if e.VX != 0 || e.VY != 0 || e.Motion.Is(Trapped) {
		t.Error("Expected kill to clear velocity and motion")
	}

	e.Respawn(40, -60)
	if !e.Alive || e.RespawnTimer != 0 {
		t.Error("Expected respawned enemy to be alive with no timer")
	}
	if e.X != 44 || e.Y != 40 {
		t.Errorf("Expected respawn at anchor (44,40), got (%v,%v)", e.X, e.Y)
	}
	if e.VX != -60 || e.FaceRight {
		t.Errorf("Expected leftward kick, got vx=%v faceRight=%v", e.VX, e.FaceRight)
	}
}

func TestPlayerAlwaysActive(t *testing.T) {
	p := NewEntity(0, KindPlayer, level.Cell{}, 40)
	p.Alive = false
	if !p.Active() {
		t.Error("Expected player to stay active")
	}
}

func TestMotionModes(t *testing.T) {
	tests := []struct {
		kind       MotionKind
		gravity    bool
		traversing bool
	}{
		{Grounded, true, false},
		{Falling, true, false},
		{Climbing, false, true},
		{OnRope, false, true},
		{Trapped, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := Motion{Kind: tt.kind}
			if m.Gravity() != tt.gravity {
				t.Errorf("Gravity() = %v, want %v", m.Gravity(), tt.gravity)
			}
			if m.Traversing() != tt.traversing {
				t.Errorf("Traversing() = %v, want %v", m.Traversing(), tt.traversing)
			}
		})
	}
}
