package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"asteroids/game"
)

func startInput(t *testing.T) (tcell.SimulationScreen, chan game.KeyEvent, chan struct{}) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	keys := make(chan game.KeyEvent, 16)
	quit := make(chan struct{})
	in := NewInput(scr, keys, func() { close(quit) })
	in.Hold = 30 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		in.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		scr.Fini()
		<-done
	})
	return scr, keys, quit
}

func nextKey(t *testing.T, keys <-chan game.KeyEvent) game.KeyEvent {
	t.Helper()
	select {
	case ev := <-keys:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no key event")
	}
	return game.KeyEvent{}
}

func TestPressThenTimedRelease(t *testing.T) {
	scr, keys, _ := startInput(t)
	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	if ev := nextKey(t, keys); ev != (game.KeyEvent{Key: "ArrowUp", Down: true}) {
		t.Fatalf("expected ArrowUp down, got %+v", ev)
	}
	if ev := nextKey(t, keys); ev != (game.KeyEvent{Key: "ArrowUp", Down: false}) {
		t.Fatalf("expected ArrowUp release after the hold timeout, got %+v", ev)
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	scr, keys, _ := startInput(t)
	start := time.Now()
	for i := 0; i < 4; i++ {
		scr.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
		time.Sleep(10 * time.Millisecond)
	}
	for i := 0; i < 4; i++ {
		if ev := nextKey(t, keys); !ev.Down {
			t.Fatalf("press %d: expected down event, got %+v", i, ev)
		}
	}
	ev := nextKey(t, keys)
	if ev.Down || ev.Key != "ArrowLeft" {
		t.Fatalf("expected a single release, got %+v", ev)
	}
	if time.Since(start) < 40*time.Millisecond {
		t.Error("release should wait for the last repeat")
	}
	select {
	case extra := <-keys:
		t.Errorf("unexpected extra event %+v", extra)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSpaceAndRunes(t *testing.T) {
	scr, keys, _ := startInput(t)
	scr.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	if ev := nextKey(t, keys); ev.Key != " " || !ev.Down {
		t.Errorf("expected space down, got %+v", ev)
	}
	nextKey(t, keys)

	scr.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	if ev := nextKey(t, keys); ev.Key != "w" {
		t.Errorf("expected w, got %+v", ev)
	}
}

func TestEscapeQuits(t *testing.T) {
	scr, _, quit := startInput(t)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("Esc should quit")
	}
}

func TestTrackerSeesHeldKey(t *testing.T) {
	scr, keys, _ := startInput(t)
	tracker := game.NewInputTracker(game.DefaultKeyMap(), func() {})

	scr.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	tracker.Handle(nextKey(t, keys))
	if !tracker.Controls().RotateRight {
		t.Fatal("expected RotateRight while held")
	}
	tracker.Handle(nextKey(t, keys))
	if tracker.Controls().RotateRight {
		t.Error("expected RotateRight cleared after release")
	}
}
