package game

// Projectile is a shot fired from the ship
type Projectile struct {
	Pos    Vec2    `msgpack:"pos"`
	Vel    Vec2    `msgpack:"vel"`
	Radius float64 `msgpack:"r"`
	Age    int     `msgpack:"age"` // render ticks lived
}

// NewProjectile fires from the ship's position along its rotation
func NewProjectile(p *Player, t Tuning) *Projectile {
	return &Projectile{
		Pos:    p.Pos,
		Vel:    FromAngle(p.Rotation, t.ProjectileSpeed),
		Radius: t.ProjectileRadius,
	}
}

// Advance moves the projectile one tick. Projectiles do not wrap.
func (p *Projectile) Advance(Bounds) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Age++
}

// OffScreen reports whether the projectile has fully left b
func (p *Projectile) OffScreen(b Bounds) bool {
	r := p.Radius
	return p.Pos.X < -r || p.Pos.X > b.W+r || p.Pos.Y < -r || p.Pos.Y > b.H+r
}

// Expired reports whether the projectile should be dropped under the given policy
func (p *Projectile) Expired(b Bounds, policy string, maxAge int) bool {
	if maxAge > 0 && p.Age >= maxAge {
		return true
	}
	return policy == ProjectileCull && p.OffScreen(b)
}

// Sprite describes the projectile for the renderer
func (p *Projectile) Sprite() Sprite {
	return Sprite{Kind: KindProjectile, Pos: p.Pos, Radius: p.Radius}
}
