package game

import (
	"testing"
)

func TestAsteroidStraightLine(t *testing.T) {
	b := Bounds{800, 600}
	a := still(Vec2{100, 100}, 40)
	a.Vel = Vec2{1.5, -2}
	a.Advance(b)
	if !near(a.Pos.X, 101.5) || !near(a.Pos.Y, 98) {
		t.Errorf("asteroid should move in straight line, got %+v", a.Pos)
	}
}

func TestAsteroidWraps(t *testing.T) {
	b := Bounds{800, 600}
	a := still(Vec2{-40, 300}, 40)
	a.Vel = Vec2{1, 0}
	a.Advance(b)
	if !near(a.Pos.X, 761) {
		t.Errorf("expected wrap through the right edge, got %f", a.Pos.X)
	}
}

func TestNewAsteroidShape(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 200; i++ {
		a := NewAsteroid(rng, Vec2{}, Vec2{}, 40)
		if a.Sides < 5 || a.Sides > 10 {
			t.Fatalf("sides %d outside 5..10", a.Sides)
		}
		if len(a.Offsets) != a.Sides {
			t.Fatalf("expected %d offsets, got %d", a.Sides, len(a.Offsets))
		}
		for _, o := range a.Offsets {
			if o < -AsteroidJag*40 || o > AsteroidJag*40 {
				t.Fatalf("offset %f outside jag range", o)
			}
		}
	}
}

func TestAsteroidSplit(t *testing.T) {
	rng := NewRand(3)
	tu := DefaultTuning()
	a := NewAsteroid(rng, Vec2{200, 150}, Vec2{1, 1}, 40)
	if !a.CanSplit(tu) {
		t.Fatal("radius 40 should split")
	}
	kids := a.Split(rng, tu)
	for _, k := range kids {
		if k.Radius != 20 {
			t.Errorf("child radius %f, want 20", k.Radius)
		}
		if k.Pos != a.Pos {
			t.Errorf("child should start at parent position, got %+v", k.Pos)
		}
	}
	if kids[0].Vel == kids[1].Vel {
		t.Error("children should get independent velocities")
	}
}

func TestAsteroidSplitFloor(t *testing.T) {
	tu := DefaultTuning()
	if still(Vec2{}, 15).CanSplit(tu) {
		t.Error("radius 15 must not split")
	}
	if !still(Vec2{}, 15.5).CanSplit(tu) {
		t.Error("radius 15.5 should split")
	}
	// repeated splitting never reaches a non-positive radius
	r := 40.0
	for still(Vec2{}, r).CanSplit(tu) {
		r /= 2
	}
	if r <= 7.5 {
		t.Errorf("smallest child radius %f should stay above 7.5", r)
	}
}
