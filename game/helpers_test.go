package game

import "math"

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func newTestGame() (*Game, *recorder, *signals) {
	r := &recorder{}
	o := &signals{}
	return NewGame(testConfig(), r, o), r, o
}

// recorder keeps every frame drawn
type recorder struct {
	frames [][]Sprite
	huds   []HUD
	open   bool
}

func (r *recorder) BeginFrame(Bounds) {
	r.frames = append(r.frames, nil)
	r.open = true
}

func (r *recorder) Draw(s Sprite) {
	i := len(r.frames) - 1
	r.frames[i] = append(r.frames[i], s)
}

func (r *recorder) DrawHUD(h HUD) { r.huds = append(r.huds, h) }
func (r *recorder) EndFrame()     { r.open = false }

func (r *recorder) last() []Sprite {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// signals records observer calls in order
type signals struct {
	calls     []string
	gameOver  int
	countdown []int
	restarts  int
}

func (s *signals) GameOver(n int) {
	s.calls = append(s.calls, "game_over")
	s.gameOver++
	s.countdown = append(s.countdown, n)
}

func (s *signals) Countdown(n int) {
	s.calls = append(s.calls, "countdown")
	s.countdown = append(s.countdown, n)
}

func (s *signals) Restart() {
	s.calls = append(s.calls, "restart")
	s.restarts++
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func still(pos Vec2, r float64) *Asteroid {
	offs := make([]float64, AsteroidMinSides)
	return &Asteroid{Pos: pos, Radius: r, Sides: AsteroidMinSides, Offsets: offs}
}
