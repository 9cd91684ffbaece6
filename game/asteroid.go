package game

import "math/rand"

const (
	AsteroidMinSides = 5
	AsteroidMaxSides = 10
	// Offsets are a fraction of the radius either side of the circle
	AsteroidJag = 0.2
)

// Asteroid drifts across the wrapping plane with a fixed jagged outline
type Asteroid struct {
	Pos     Vec2      `msgpack:"pos"`
	Vel     Vec2      `msgpack:"vel"`
	Radius  float64   `msgpack:"r"`
	Sides   int       `msgpack:"sides"`
	Offsets []float64 `msgpack:"offs"`
}

// NewAsteroid creates an asteroid with a random outline
func NewAsteroid(rng *rand.Rand, pos, vel Vec2, radius float64) *Asteroid {
	sides := AsteroidMinSides + rng.Intn(AsteroidMaxSides-AsteroidMinSides+1)
	offsets := make([]float64, sides)
	for i := range offsets {
		offsets[i] = randRange(rng, -AsteroidJag, AsteroidJag) * radius
	}
	return &Asteroid{
		Pos:     pos,
		Vel:     vel,
		Radius:  radius,
		Sides:   sides,
		Offsets: offsets,
	}
}

// Advance drifts the asteroid one tick and wraps it
func (a *Asteroid) Advance(b Bounds) {
	a.Pos = b.WrapVec(a.Pos.Add(a.Vel))
}

// CanSplit reports whether destroying this asteroid yields children
func (a *Asteroid) CanSplit(t Tuning) bool {
	return a.Radius > t.SplitThreshold
}

// Split returns the two half-size children of a destroyed asteroid.
// Each gets its own random drift and outline.
func (a *Asteroid) Split(rng *rand.Rand, t Tuning) [2]*Asteroid {
	var out [2]*Asteroid
	for i := range out {
		vel := Vec2{
			X: randRange(rng, -0.5, 0.5) * t.SplitSpeed,
			Y: randRange(rng, -0.5, 0.5) * t.SplitSpeed,
		}
		out[i] = NewAsteroid(rng, a.Pos, vel, a.Radius/2)
	}
	return out
}

// Sprite describes the asteroid outline for the renderer
func (a *Asteroid) Sprite() Sprite {
	return Sprite{
		Kind:    KindAsteroid,
		Pos:     a.Pos,
		Radius:  a.Radius,
		Sides:   a.Sides,
		Offsets: a.Offsets,
	}
}
