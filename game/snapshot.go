package game

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a copy of everything that drives future ticks, except the
// random source: entities created after a restore get fresh randomness.
type Snapshot struct {
	Bounds      Bounds        `msgpack:"bounds"`
	State       State         `msgpack:"state"`
	Countdown   int           `msgpack:"countdown"`
	Tick        uint64        `msgpack:"tick"`
	Player      Player        `msgpack:"player"`
	Asteroids   []*Asteroid   `msgpack:"asteroids"`
	Projectiles []*Projectile `msgpack:"projectiles"`
	Particles   []*Particle   `msgpack:"particles"`
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Bounds:      g.bounds,
		State:       g.state,
		Countdown:   g.countdown,
		Tick:        g.tick,
		Player:      *g.player,
		Asteroids:   make([]*Asteroid, len(g.asteroids)),
		Projectiles: make([]*Projectile, len(g.projectiles)),
		Particles:   make([]*Particle, len(g.particles)),
	}
	for i, a := range g.asteroids {
		c := *a
		c.Offsets = append([]float64(nil), a.Offsets...)
		s.Asteroids[i] = &c
	}
	for i, p := range g.projectiles {
		c := *p
		s.Projectiles[i] = &c
	}
	for i, p := range g.particles {
		c := *p
		s.Particles[i] = &c
	}
	return s
}

// Restore replaces the game state with s. The snapshot is not retained.
func (g *Game) Restore(s Snapshot) {
	c := s.clone()
	g.Resize(c.Bounds)
	g.state = c.State
	g.countdown = c.Countdown
	g.tick = c.Tick
	*g.player = c.Player
	g.asteroids = c.Asteroids
	g.projectiles = c.Projectiles
	g.particles = c.Particles
}

func (s Snapshot) clone() Snapshot {
	g := &Game{
		bounds:      s.Bounds,
		state:       s.State,
		countdown:   s.Countdown,
		tick:        s.Tick,
		player:      &s.Player,
		asteroids:   s.Asteroids,
		projectiles: s.Projectiles,
		particles:   s.Particles,
	}
	return g.Snapshot()
}

// snapshotWire has Snapshot's fields without its methods, so msgpack
// does not call back into MarshalBinary
type snapshotWire Snapshot

// MarshalBinary encodes the snapshot with msgpack
func (s Snapshot) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal((*snapshotWire)(&s))
}

// UnmarshalBinary decodes a snapshot written by MarshalBinary
func (s *Snapshot) UnmarshalBinary(b []byte) error {
	dec, err := UnmarshalSnapshot(b)
	if err != nil {
		return err
	}
	*s = dec
	return nil
}

// UnmarshalSnapshot decodes a snapshot written by MarshalBinary
func UnmarshalSnapshot(b []byte) (Snapshot, error) {
	var w snapshotWire
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return Snapshot(w), nil
}
