package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	PhysicsInterval   = 16 * time.Millisecond
	FrameInterval     = time.Second / 60
	AsteroidSpawnRate = 4000 * time.Millisecond
	CountdownInterval = time.Second
)

// Best score policies
const (
	BestScoreOnGameOver = "game_over"
	BestScoreNever      = "never"
)

// Projectile policies
const (
	ProjectileCull      = "cull"
	ProjectileUnbounded = "unbounded"
)

// Tuning holds the gameplay constants
type Tuning struct {
	Friction          float64 `yaml:"friction"`
	ShipThrust        float64 `yaml:"ship_thrust"`
	ShipRotationSpeed float64 `yaml:"ship_rotation_speed"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileRadius  float64 `yaml:"projectile_radius"`
	ProjectileMaxAge  int     `yaml:"projectile_max_age"` // render ticks, 0 = no limit
	SpawnRadius       float64 `yaml:"spawn_radius"`
	SpawnMargin       float64 `yaml:"spawn_margin"`
	SpawnDrift        float64 `yaml:"spawn_drift"`
	SplitSpeed        float64 `yaml:"split_speed"`
	SplitThreshold    float64 `yaml:"split_threshold"`
	PlayerHitRadius   float64 `yaml:"player_hit_radius"`
	ShipDebris        int     `yaml:"ship_debris"`
	HitDebris         int     `yaml:"hit_debris"`
	DebrisSpeed       float64 `yaml:"debris_speed"`
	ScorePerHit       int     `yaml:"score_per_hit"`
	MaxLives          int     `yaml:"max_lives"`
	Countdown         int     `yaml:"countdown"`
}

// Config is the full simulation configuration
type Config struct {
	Width             float64       `yaml:"width"`
	Height            float64       `yaml:"height"`
	Seed              int64         `yaml:"seed"`
	FrameInterval     time.Duration `yaml:"frame_interval"`
	PhysicsInterval   time.Duration `yaml:"physics_interval"`
	SpawnInterval     time.Duration `yaml:"spawn_interval"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	BestScore         string        `yaml:"best_score"`
	ProjectilePolicy  string        `yaml:"projectile_policy"`
	Keys              KeyMap        `yaml:"keys"`
	Tuning            Tuning        `yaml:"tuning"`
}

// DefaultTuning returns the stock arcade constants
func DefaultTuning() Tuning {
	return Tuning{
		Friction:          0.99,
		ShipThrust:        0.1,
		ShipRotationSpeed: 0.05,
		ProjectileSpeed:   7,
		ProjectileRadius:  3,
		SpawnRadius:       40,
		SpawnMargin:       40,
		SpawnDrift:        0.002,
		SplitSpeed:        2,
		SplitThreshold:    15,
		PlayerHitRadius:   15,
		ShipDebris:        20,
		HitDebris:         10,
		DebrisSpeed:       4,
		ScorePerHit:       10,
		MaxLives:          3,
		Countdown:         3,
	}
}

// DefaultConfig returns a config that runs without a file
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		FrameInterval:     FrameInterval,
		PhysicsInterval:   PhysicsInterval,
		SpawnInterval:     AsteroidSpawnRate,
		CountdownInterval: CountdownInterval,
		BestScore:         BestScoreOnGameOver,
		ProjectilePolicy:  ProjectileCull,
		Keys:              DefaultKeyMap(),
		Tuning:            DefaultTuning(),
	}
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Width, c.Height)
	}
	for name, d := range map[string]time.Duration{
		"frame_interval":     c.FrameInterval,
		"physics_interval":   c.PhysicsInterval,
		"spawn_interval":     c.SpawnInterval,
		"countdown_interval": c.CountdownInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	switch c.BestScore {
	case BestScoreOnGameOver, BestScoreNever:
	default:
		return fmt.Errorf("unknown best_score policy %q", c.BestScore)
	}
	switch c.ProjectilePolicy {
	case ProjectileCull, ProjectileUnbounded:
	default:
		return fmt.Errorf("unknown projectile_policy %q", c.ProjectilePolicy)
	}
	t := c.Tuning
	if t.SplitThreshold <= 0 {
		// children of a split must stay strictly positive
		return fmt.Errorf("split_threshold must be positive, got %g", t.SplitThreshold)
	}
	if t.SpawnRadius <= 0 || t.ProjectileRadius <= 0 {
		return fmt.Errorf("radii must be positive")
	}
	if t.MaxLives < 1 {
		return fmt.Errorf("max_lives must be at least 1, got %d", t.MaxLives)
	}
	if t.Countdown < 1 {
		return fmt.Errorf("countdown must be at least 1, got %d", t.Countdown)
	}
	if t.Friction <= 0 || t.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %g", t.Friction)
	}
	return c.Keys.Validate()
}
