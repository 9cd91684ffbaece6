package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"asteroids/game"
)

// HoldTimeout is how long a key stays held after its last press.
// Terminals only report presses; auto-repeat keeps refreshing the hold.
const HoldTimeout = 150 * time.Millisecond

type heldKey struct {
	gen   uint64
	timer *time.Timer
}

// Input turns terminal key presses into key down/up events for the loop
type Input struct {
	Hold time.Duration

	scr  tcell.Screen
	keys chan<- game.KeyEvent
	quit func()

	mu   sync.Mutex
	gen  uint64
	held map[string]*heldKey
}

// NewInput reads events from scr. quit is called on Esc or Ctrl-C.
func NewInput(scr tcell.Screen, keys chan<- game.KeyEvent, quit func()) *Input {
	return &Input{
		Hold: HoldTimeout,
		scr:  scr,
		keys: keys,
		quit: quit,
		held: make(map[string]*heldKey),
	}
}

// Run polls the screen until it is finalized or ctx is cancelled
func (in *Input) Run(ctx context.Context) {
	defer in.releaseAll()
	for {
		ev := in.scr.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			in.scr.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				in.quit()
				return
			}
			if name := keyName(ev); name != "" {
				in.press(ctx, name)
			}
		}
	}
}

// keyName maps a tcell key to the DOM-style name used by key maps
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// press posts a down event and (re)arms the release timer for name
func (in *Input) press(ctx context.Context, name string) {
	in.mu.Lock()
	in.gen++
	gen := in.gen
	h, ok := in.held[name]
	if ok {
		h.timer.Stop()
		h.gen = gen
	} else {
		h = &heldKey{gen: gen}
		in.held[name] = h
	}
	h.timer = time.AfterFunc(in.Hold, func() { in.release(ctx, name, gen) })
	in.mu.Unlock()

	in.post(ctx, game.KeyEvent{Key: name, Down: true})
}

// release fires when the hold expires; a newer press supersedes it
func (in *Input) release(ctx context.Context, name string, gen uint64) {
	in.mu.Lock()
	h, ok := in.held[name]
	if !ok || h.gen != gen {
		in.mu.Unlock()
		return
	}
	delete(in.held, name)
	in.mu.Unlock()

	in.post(ctx, game.KeyEvent{Key: name, Down: false})
}

func (in *Input) releaseAll() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for name, h := range in.held {
		h.timer.Stop()
		delete(in.held, name)
	}
}

func (in *Input) post(ctx context.Context, ev game.KeyEvent) {
	select {
	case in.keys <- ev:
	case <-ctx.Done():
	}
}
