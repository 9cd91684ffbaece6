package game

import (
	"math"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	b := Bounds{800, 600}
	p := NewPlayer(b, DefaultTuning())
	if p.Pos != (Vec2{400, 300}) {
		t.Errorf("expected centred ship, got %+v", p.Pos)
	}
	if p.Lives != 3 {
		t.Errorf("expected 3 lives, got %d", p.Lives)
	}
	if p.Score != 0 || p.BestScore != 0 {
		t.Errorf("expected zero scores, got %d/%d", p.Score, p.BestScore)
	}
}

func TestPlayerFrictionDecay(t *testing.T) {
	b := Bounds{800, 600}
	p := NewPlayer(b, DefaultTuning())
	p.Vel = Vec2{3, 4}
	initial := p.Speed()
	prev := initial
	for n := 1; n <= 200; n++ {
		p.Advance(b)
		want := initial * math.Pow(0.99, float64(n))
		if math.Abs(p.Speed()-want) > 1e-9*initial {
			t.Fatalf("tick %d: speed %g, want %g", n, p.Speed(), want)
		}
		if p.Speed() >= prev {
			t.Fatalf("tick %d: speed did not decrease", n)
		}
		if p.Speed() <= 0 {
			t.Fatalf("tick %d: speed reached zero", n)
		}
		prev = p.Speed()
	}
}

func TestPlayerWorldWrap(t *testing.T) {
	b := Bounds{800, 600}
	tests := []struct {
		pos, vel Vec2
	}{
		{Vec2{799, 599}, Vec2{5, 5}},
		{Vec2{1, 1}, Vec2{-5, -5}},
		{Vec2{0, 300}, Vec2{-0.5, 0}},
		{Vec2{400, 598}, Vec2{0, 2}},
	}
	for _, tt := range tests {
		p := &Player{Pos: tt.pos, Vel: tt.vel, Friction: 0.99}
		p.Advance(b)
		if p.Pos.X < 0 || p.Pos.X >= b.W || p.Pos.Y < 0 || p.Pos.Y >= b.H {
			t.Errorf("from %+v by %+v: got %+v, outside bounds", tt.pos, tt.vel, p.Pos)
		}
	}
}

func TestPlayerSteer(t *testing.T) {
	tu := DefaultTuning()
	p := &Player{Friction: 0.99}

	p.Steer(Controls{Thrust: true}, tu)
	if !near(p.Vel.X, tu.ShipThrust) || !near(p.Vel.Y, 0) {
		t.Errorf("thrust at rotation 0 should push +X, got %+v", p.Vel)
	}
	if !p.Thrusting {
		t.Error("expected thrusting flag")
	}

	p.Steer(Controls{RotateLeft: true}, tu)
	if !near(p.Rotation, -tu.ShipRotationSpeed) {
		t.Errorf("rotate left: got %f", p.Rotation)
	}
	if p.Thrusting {
		t.Error("thrusting flag should clear when thrust released")
	}
	p.Steer(Controls{RotateRight: true}, tu)
	p.Steer(Controls{RotateRight: true}, tu)
	if !near(p.Rotation, tu.ShipRotationSpeed) {
		t.Errorf("rotate right: got %f", p.Rotation)
	}
	p.Steer(Controls{RotateLeft: true, RotateRight: true}, tu)
	if !near(p.Rotation, tu.ShipRotationSpeed) {
		t.Errorf("opposite keys should cancel, got %f", p.Rotation)
	}
}

func TestPlayerHitFloorsAtZero(t *testing.T) {
	p := &Player{Lives: 2}
	if p.Hit() {
		t.Error("should not be out after first hit")
	}
	if !p.Hit() {
		t.Error("should be out after second hit")
	}
	p.Hit()
	if p.Lives != 0 {
		t.Errorf("lives should clamp at 0, got %d", p.Lives)
	}
}

func TestPlayerResetKeepsBest(t *testing.T) {
	b := Bounds{800, 600}
	p := &Player{Pos: Vec2{1, 2}, Vel: Vec2{3, 4}, Score: 50, BestScore: 70, Rotation: 1}
	p.Reset(b, DefaultTuning())
	if p.Pos != b.Center() || p.Vel != (Vec2{}) {
		t.Errorf("expected centred ship at rest, got %+v %+v", p.Pos, p.Vel)
	}
	if p.Score != 0 || p.Lives != 3 || p.BestScore != 70 {
		t.Errorf("unexpected reset state %+v", p)
	}
	p.Score = 90
	p.RecordBest()
	p.Score = 10
	p.RecordBest()
	if p.BestScore != 90 {
		t.Errorf("best score should be monotonic, got %d", p.BestScore)
	}
}
