package game

// SpriteKind tags what a Sprite describes
type SpriteKind uint8

const (
	KindPlayer SpriteKind = iota
	KindProjectile
	KindAsteroid
	KindParticle
)

func (k SpriteKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindAsteroid:
		return "asteroid"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// Sprite is everything a renderer needs to draw one entity
type Sprite struct {
	Kind      SpriteKind `msgpack:"k"`
	Pos       Vec2       `msgpack:"p"`
	Rotation  float64    `msgpack:"r,omitempty"`
	Radius    float64    `msgpack:"rad"`
	Sides     int        `msgpack:"s,omitempty"`
	Offsets   []float64  `msgpack:"o,omitempty"`
	Alpha     float64    `msgpack:"a,omitempty"`
	Thrusting bool       `msgpack:"t,omitempty"`
}

// HUD is the per-tick scoreboard
type HUD struct {
	Score     int `msgpack:"sc" json:"sc"`
	BestScore int `msgpack:"bs" json:"bs"`
	Lives     int `msgpack:"l" json:"l"`
	Level     int `msgpack:"lv" json:"lv"`
}

// Renderer draws one render tick. Calls arrive in order:
// BeginFrame, Draw per entity as it advances, DrawHUD, EndFrame.
type Renderer interface {
	BeginFrame(b Bounds)
	Draw(s Sprite)
	DrawHUD(h HUD)
	EndFrame()
}

// Observer receives game-over UI signals
type Observer interface {
	GameOver(countdown int)
	Countdown(n int)
	Restart()
}

// Entity is the capability every simulated object shares
type Entity interface {
	Advance(b Bounds)
	Sprite() Sprite
}

type nopRenderer struct{}

func (nopRenderer) BeginFrame(Bounds) {}
func (nopRenderer) Draw(Sprite)       {}
func (nopRenderer) DrawHUD(HUD)       {}
func (nopRenderer) EndFrame()         {}

type nopObserver struct{}

func (nopObserver) GameOver(int)  {}
func (nopObserver) Countdown(int) {}
func (nopObserver) Restart()      {}

// Observers fans signals out to several observers
type Observers []Observer

func (os Observers) GameOver(n int) {
	for _, o := range os {
		o.GameOver(n)
	}
}

func (os Observers) Countdown(n int) {
	for _, o := range os {
		o.Countdown(n)
	}
}

func (os Observers) Restart() {
	for _, o := range os {
		o.Restart()
	}
}
