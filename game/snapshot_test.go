package game

import (
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func sceneGame() *Game {
	g, _, _ := newTestGame()
	a := NewAsteroid(g.rng, Vec2{100, 100}, Vec2{0.5, 0.2}, 20)
	g.AddAsteroid(a)
	g.Player().Vel = Vec2{0.3, -0.1}
	g.Fire()
	g.particles = append(g.particles, Explode(g.rng, Vec2{600, 500}, 10, 4)...)
	g.Player().Score = 40
	return g
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := sceneGame()
	for i := 0; i < 5; i++ {
		src.RenderTick()
	}

	b, err := src.Snapshot().MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	snap, err := UnmarshalSnapshot(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	r := &recorder{}
	dst := NewGame(testConfig(), r, nil)
	dst.Restore(snap)

	want := &recorder{}
	src.SetRenderer(want)
	for i := 0; i < 50; i++ {
		src.RenderTick()
		dst.RenderTick()
		dst.PhysicsTick(Controls{RotateLeft: true})
		src.PhysicsTick(Controls{RotateLeft: true})
	}
	if !reflect.DeepEqual(r.frames, want.frames) {
		t.Error("restored game drew different frames")
	}
	if !reflect.DeepEqual(r.huds, want.huds) {
		t.Error("restored game reported a different HUD")
	}
	if !reflect.DeepEqual(dst.Snapshot(), src.Snapshot()) {
		t.Error("restored game diverged")
	}
}

func TestRestoreDoesNotAlias(t *testing.T) {
	src := sceneGame()
	snap := src.Snapshot()
	dst := NewGame(testConfig(), nil, nil)
	dst.Restore(snap)
	dst.RenderTick()
	if snap.Asteroids[0].Pos != src.Asteroids()[0].Pos {
		t.Error("advancing the restored game changed the snapshot")
	}
	if src.Player().Pos != snap.Player.Pos {
		t.Error("snapshot should be a copy of the source")
	}
}

func TestSnapshotAsMsgpackValue(t *testing.T) {
	src := sceneGame()
	src.RenderTick()
	snap := src.Snapshot()

	b, err := msgpack.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Snapshot
	if err := msgpack.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Tick != snap.Tick || got.Player != snap.Player || got.Bounds != snap.Bounds {
		t.Errorf("header mismatch: got tick %d player %+v", got.Tick, got.Player)
	}
	if len(got.Asteroids) != 1 || !reflect.DeepEqual(got.Asteroids[0], snap.Asteroids[0]) {
		t.Errorf("asteroids mismatch: %+v", got.Asteroids)
	}
	if len(got.Projectiles) != len(snap.Projectiles) || len(got.Particles) != len(snap.Particles) {
		t.Error("collections lost in round trip")
	}
}

func TestUnmarshalSnapshotError(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte{0xc1}); err == nil {
		t.Error("expected error for garbage input")
	}
}
