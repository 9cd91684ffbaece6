package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 1024
height: 768
seed: 9
frame_interval: 33ms
best_score: never
projectile_policy: unbounded
tuning:
  ship_thrust: 0.2
  max_lives: 5
keys:
  w: thrust
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.Seed != 9 {
		t.Errorf("viewport/seed not loaded: %+v", cfg)
	}
	if cfg.FrameInterval != 33*time.Millisecond {
		t.Errorf("frame interval %v", cfg.FrameInterval)
	}
	if cfg.BestScore != BestScoreNever || cfg.ProjectilePolicy != ProjectileUnbounded {
		t.Errorf("policies not loaded: %s %s", cfg.BestScore, cfg.ProjectilePolicy)
	}
	if cfg.Tuning.ShipThrust != 0.2 || cfg.Tuning.MaxLives != 5 {
		t.Errorf("tuning not loaded: %+v", cfg.Tuning)
	}
	// untouched fields keep their defaults
	if cfg.Tuning.Friction != 0.99 || cfg.SpawnInterval != AsteroidSpawnRate {
		t.Errorf("defaults lost: friction %g spawn %v", cfg.Tuning.Friction, cfg.SpawnInterval)
	}
	if cfg.Keys["w"] != ActionThrust {
		t.Errorf("key binding not loaded: %v", cfg.Keys)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"bad yaml", "width: [", "parse"},
		{"negative width", "width: -1", "viewport"},
		{"bad policy", "best_score: sometimes", "best_score"},
		{"bad projectile policy", "projectile_policy: bounce", "projectile_policy"},
		{"zero split", "tuning:\n  split_threshold: 0", "split_threshold"},
		{"bad key", "keys:\n  x: warp", "unknown action"},
		{"zero interval", "physics_interval: 0s", "physics_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
