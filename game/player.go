package game

import "math"

// Player is the ship. One per game, reset in place on restart.
type Player struct {
	Pos       Vec2    `msgpack:"pos"`
	Vel       Vec2    `msgpack:"vel"`
	Rotation  float64 `msgpack:"rot"` // radians, unbounded
	Lives     int     `msgpack:"lives"`
	Score     int     `msgpack:"score"`
	BestScore int     `msgpack:"best"`
	Level     int     `msgpack:"level"`
	Thrusting bool    `msgpack:"thrust"`
	Friction  float64 `msgpack:"friction"`
}

// NewPlayer creates a ship at rest in the middle of b
func NewPlayer(b Bounds, t Tuning) *Player {
	return &Player{
		Pos:      b.Center(),
		Lives:    t.MaxLives,
		Level:    1,
		Friction: t.Friction,
	}
}

// Advance moves the ship one render tick, wraps it and applies friction
func (p *Player) Advance(b Bounds) {
	p.Pos = b.WrapVec(p.Pos.Add(p.Vel))
	p.Vel = p.Vel.Scale(p.Friction)
}

// Steer applies one physics tick of held controls
func (p *Player) Steer(c Controls, t Tuning) {
	if c.RotateLeft {
		p.Rotation -= t.ShipRotationSpeed
	}
	if c.RotateRight {
		p.Rotation += t.ShipRotationSpeed
	}
	p.Thrusting = c.Thrust
	if c.Thrust {
		p.Vel = p.Vel.Add(FromAngle(p.Rotation, t.ShipThrust))
	}
}

// Hit takes one life and reports whether the ship is out of lives
func (p *Player) Hit() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}

// Reset puts the ship back in the middle with a fresh set of lives.
// BestScore survives.
func (p *Player) Reset(b Bounds, t Tuning) {
	p.Pos = b.Center()
	p.Vel = Vec2{}
	p.Lives = t.MaxLives
	p.Score = 0
	p.Thrusting = false
}

// RecordBest folds the current score into BestScore
func (p *Player) RecordBest() {
	if p.Score > p.BestScore {
		p.BestScore = p.Score
	}
}

// Speed returns the magnitude of the ship velocity
func (p *Player) Speed() float64 {
	return p.Vel.Len()
}

// Sprite describes the ship for the renderer
func (p *Player) Sprite() Sprite {
	return Sprite{
		Kind:      KindPlayer,
		Pos:       p.Pos,
		Rotation:  p.Rotation,
		Radius:    PlayerSize,
		Thrusting: p.Thrusting,
	}
}

// HUD returns the scoreboard for this ship
func (p *Player) HUD() HUD {
	return HUD{Score: p.Score, BestScore: p.BestScore, Lives: p.Lives, Level: p.Level}
}

// PlayerSize is the drawn ship size
const PlayerSize = 15.0

// NormalizeAngle wraps angle to [-Pi, Pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
