package game

import (
	"math"
	"math/rand"
)

const (
	ParticleFade      = 0.01
	ParticleMinRadius = 1.0
	ParticleMaxRadius = 3.0
)

// Particle is a fading speck of explosion debris
type Particle struct {
	Pos    Vec2    `msgpack:"pos"`
	Vel    Vec2    `msgpack:"vel"`
	Radius float64 `msgpack:"r"`
	Alpha  float64 `msgpack:"a"`
}

// Advance drifts the particle and fades it
func (p *Particle) Advance(Bounds) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Alpha -= ParticleFade
}

// Dead reports whether the particle has faded out
func (p *Particle) Dead() bool {
	return p.Alpha <= 0
}

// Sprite describes the particle for the renderer
func (p *Particle) Sprite() Sprite {
	return Sprite{Kind: KindParticle, Pos: p.Pos, Radius: p.Radius, Alpha: math.Max(p.Alpha, 0)}
}

// Explode returns n particles bursting out of pos
func Explode(rng *rand.Rand, pos Vec2, n int, speed float64) []*Particle {
	out := make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Particle{
			Pos: pos,
			Vel: Vec2{
				X: randRange(rng, -0.5, 0.5) * speed,
				Y: randRange(rng, -0.5, 0.5) * speed,
			},
			Radius: randRange(rng, ParticleMinRadius, ParticleMaxRadius),
			Alpha:  1,
		})
	}
	return out
}
