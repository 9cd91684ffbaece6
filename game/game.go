package game

import (
	"math/rand"
)

// State is the game's top-level phase
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Game holds the whole simulation state. It is not safe for concurrent
// use; Loop confines every call to one goroutine.
type Game struct {
	cfg    Config
	bounds Bounds
	rng    *rand.Rand

	player      *Player
	asteroids   []*Asteroid
	projectiles []*Projectile
	particles   []*Particle

	state     State
	countdown int
	tick      uint64

	grid       *SpatialGrid
	candidates []int

	renderer Renderer
	observer Observer
}

// NewGame creates a running game. Nil renderer or observer are allowed.
func NewGame(cfg Config, r Renderer, o Observer) *Game {
	if r == nil {
		r = nopRenderer{}
	}
	if o == nil {
		o = nopObserver{}
	}
	b := Bounds{W: cfg.Width, H: cfg.Height}
	return &Game{
		cfg:      cfg,
		bounds:   b,
		rng:      NewRand(cfg.Seed),
		player:   NewPlayer(b, cfg.Tuning),
		grid:     NewSpatialGrid(b),
		renderer: r,
		observer: o,
	}
}

// SetObserver replaces the game-over UI observer
func (g *Game) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	g.observer = o
}

// SetRenderer replaces the renderer
func (g *Game) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	g.renderer = r
}

func (g *Game) Player() *Player            { return g.player }
func (g *Game) Asteroids() []*Asteroid     { return g.asteroids }
func (g *Game) Projectiles() []*Projectile { return g.projectiles }
func (g *Game) Particles() []*Particle     { return g.particles }
func (g *Game) State() State               { return g.state }
func (g *Game) Countdown() int             { return g.countdown }
func (g *Game) Bounds() Bounds             { return g.bounds }
func (g *Game) Tick() uint64               { return g.tick }
func (g *Game) Config() Config             { return g.cfg }

// Resize changes the wrap bounds and spawn centre
func (g *Game) Resize(b Bounds) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	g.bounds = b
	g.grid.Resize(b)
}

// RenderTick advances every entity one step, resolves collisions and draws.
// Does nothing while the game is over.
func (g *Game) RenderTick() {
	if g.state != StateRunning {
		return
	}
	g.tick++
	b := g.bounds
	r := g.renderer
	r.BeginFrame(b)

	step := func(e Entity) {
		e.Advance(b)
		r.Draw(e.Sprite())
	}

	step(g.player)
	for _, p := range g.projectiles {
		step(p)
	}
	for _, a := range g.asteroids {
		step(a)
	}

	lit := g.particles[:0]
	for _, p := range g.particles {
		if p.Dead() {
			continue
		}
		step(p)
		lit = append(lit, p)
	}
	clear(g.particles[len(lit):])
	g.particles = lit

	// cull after resolving: asteroids overlap the band just off-screen
	g.resolveCollisions()
	g.cullProjectiles()

	r.DrawHUD(g.player.HUD())
	r.EndFrame()
}

func (g *Game) cullProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.Expired(g.bounds, g.cfg.ProjectilePolicy, g.cfg.Tuning.ProjectileMaxAge) {
			live = append(live, p)
		}
	}
	clear(g.projectiles[len(live):])
	g.projectiles = live
}

// PhysicsTick applies held controls to the ship
func (g *Game) PhysicsTick(c Controls) {
	g.player.Steer(c, g.cfg.Tuning)
}

// SpawnTick adds one asteroid at a random edge while running
func (g *Game) SpawnTick() {
	if g.state != StateRunning {
		return
	}
	g.asteroids = append(g.asteroids, SpawnAsteroid(g.rng, g.bounds, g.cfg.Tuning))
}

// Fire launches one projectile from the ship
func (g *Game) Fire() {
	if g.state != StateRunning {
		return
	}
	g.projectiles = append(g.projectiles, NewProjectile(g.player, g.cfg.Tuning))
}

// CountdownTick steps the game-over countdown and restarts at zero
func (g *Game) CountdownTick() {
	if g.state != StateGameOver {
		return
	}
	g.countdown--
	if g.countdown > 0 {
		g.observer.Countdown(g.countdown)
		return
	}
	g.restart()
}

// AddAsteroid places an asteroid directly, for scripted scenes
func (g *Game) AddAsteroid(a *Asteroid) {
	g.asteroids = append(g.asteroids, a)
}

func (g *Game) gameOver() {
	if g.cfg.BestScore == BestScoreOnGameOver {
		g.player.RecordBest()
	}
	g.state = StateGameOver
	g.countdown = g.cfg.Tuning.Countdown
	g.observer.GameOver(g.countdown)
}

func (g *Game) restart() {
	g.player.Reset(g.bounds, g.cfg.Tuning)
	clear(g.asteroids)
	clear(g.projectiles)
	clear(g.particles)
	g.asteroids = g.asteroids[:0]
	g.projectiles = g.projectiles[:0]
	g.particles = g.particles[:0]
	g.countdown = 0
	g.state = StateRunning
	g.observer.Restart()
}
