package game

import "math/rand"

// Edge is a side of the viewport
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnPoint returns a point on edge e, margin units outside b.
// u in [0, 1) picks the position along the edge.
func SpawnPoint(b Bounds, e Edge, u, margin float64) Vec2 {
	switch e {
	case EdgeTop:
		return Vec2{u * b.W, -margin}
	case EdgeRight:
		return Vec2{b.W + margin, u * b.H}
	case EdgeBottom:
		return Vec2{u * b.W, b.H + margin}
	default:
		return Vec2{-margin, u * b.H}
	}
}

// SpawnAsteroid creates a full-size asteroid just outside a random edge,
// drifting toward the middle of the screen.
func SpawnAsteroid(rng *rand.Rand, b Bounds, t Tuning) *Asteroid {
	edge := Edge(rng.Intn(4))
	pos := SpawnPoint(b, edge, rng.Float64(), t.SpawnMargin)
	vel := b.Center().Sub(pos).Scale(t.SpawnDrift)
	return NewAsteroid(rng, pos, vel, t.SpawnRadius)
}
