package game

// Overlaps reports whether two centres are closer than reach
func Overlaps(a, b Vec2, reach float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx+dy*dy < reach*reach
}

// resolveCollisions runs both collision passes for this tick
func (g *Game) resolveCollisions() {
	g.grid.Rebuild(g.asteroids)
	g.resolveShipHits()
	g.resolveShotHits()
}

// resolveShipHits checks the ship against every asteroid. Asteroids that hit
// the ship are destroyed whole, they never split.
func (g *Game) resolveShipHits() {
	t := g.cfg.Tuning
	p := g.player
	// candidates come back highest index first so removals never shift
	// an index still to be visited
	g.candidates = g.grid.QueryBuf(p.Pos, t.PlayerHitRadius, g.candidates[:0])
	for _, j := range g.candidates {
		a := g.asteroids[j]
		if !Overlaps(p.Pos, a.Pos, a.Radius+t.PlayerHitRadius) {
			continue
		}
		out := p.Hit()
		g.particles = append(g.particles, Explode(g.rng, p.Pos, t.ShipDebris, t.DebrisSpeed)...)
		g.asteroids = removeAsteroid(g.asteroids, j)
		if out && g.state == StateRunning {
			g.gameOver()
		}
	}
}

// resolveShotHits checks every projectile against the asteroids. A projectile
// destroys at most one asteroid; the hit test ignores the projectile radius.
func (g *Game) resolveShotHits() {
	t := g.cfg.Tuning
	// the ship pass may have removed asteroids
	stale := true
	for i := len(g.projectiles) - 1; i >= 0; i-- {
		pr := g.projectiles[i]
		if stale {
			g.grid.Rebuild(g.asteroids)
			stale = false
		}
		g.candidates = g.grid.QueryBuf(pr.Pos, 0, g.candidates[:0])
		for _, j := range g.candidates {
			a := g.asteroids[j]
			if !Overlaps(pr.Pos, a.Pos, a.Radius) {
				continue
			}
			g.projectiles = removeProjectile(g.projectiles, i)
			p := g.player
			p.Score += t.ScorePerHit
			g.particles = append(g.particles, Explode(g.rng, pr.Pos, t.HitDebris, t.DebrisSpeed)...)
			if a.CanSplit(t) {
				kids := a.Split(g.rng, t)
				g.asteroids = append(g.asteroids, kids[0], kids[1])
			}
			g.asteroids = removeAsteroid(g.asteroids, j)
			stale = true
			break
		}
	}
}

func removeAsteroid(s []*Asteroid, i int) []*Asteroid {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}

func removeProjectile(s []*Projectile, i int) []*Projectile {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
