package game

import (
	"math"
	"math/rand"
	"time"
)

// Vec2 is a 2D position or velocity
type Vec2 struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the magnitude of v
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// FromAngle returns a vector of length mag pointing along angle a
func FromAngle(a, mag float64) Vec2 {
	return Vec2{math.Cos(a) * mag, math.Sin(a) * mag}
}

// Bounds is the viewport the world wraps in
type Bounds struct {
	W float64 `msgpack:"w" json:"w"`
	H float64 `msgpack:"h" json:"h"`
}

// Center returns the middle of the viewport
func (b Bounds) Center() Vec2 { return Vec2{b.W / 2, b.H / 2} }

// Wrap folds v into [0, max) through the opposite edge
func Wrap(v, max float64) float64 {
	if max <= 0 {
		return v
	}
	if v >= 0 && v < max {
		return v
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	// Mod of a tiny negative can round up to max
	if v >= max {
		v = 0
	}
	return v
}

// WrapVec wraps both axes independently
func (b Bounds) WrapVec(p Vec2) Vec2 {
	return Vec2{Wrap(p.X, b.W), Wrap(p.Y, b.H)}
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NewRand returns a seeded source; seed 0 picks one from the clock
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
