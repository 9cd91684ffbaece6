package game

import (
	"context"
	"log"
	"time"
)

// Task names
const (
	TaskPhysics   = "physics"
	TaskRender    = "render"
	TaskSpawn     = "spawn"
	TaskCountdown = "countdown"
)

const eventBufSize = 64

// Loop is the single simulation goroutine: it owns the Game, its scheduler
// and the held-key state. Collaborators talk to it through channels.
type Loop struct {
	game   *Game
	sched  *Scheduler
	input  *InputTracker
	keys   chan KeyEvent
	resize chan Bounds
	now    time.Time
}

// NewLoop wires a game to its four periodic tasks, starting the clock at now
func NewLoop(g *Game, now time.Time) *Loop {
	l := &Loop{
		game:   g,
		sched:  NewScheduler(),
		keys:   make(chan KeyEvent, eventBufSize),
		resize: make(chan Bounds, 4),
		now:    now,
	}
	l.input = NewInputTracker(g.cfg.Keys, g.Fire)
	g.observer = Observers{loopHook{l}, g.observer}

	cfg := g.cfg
	l.sched.Add(&Task{
		Name:    TaskPhysics,
		Period:  cfg.PhysicsInterval,
		CatchUp: true,
		Run:     func() { g.PhysicsTick(l.input.Controls()) },
	}, now)
	l.sched.Add(&Task{
		Name:   TaskRender,
		Period: cfg.FrameInterval,
		Run:    g.RenderTick,
	}, now)
	l.sched.Add(&Task{
		Name:    TaskSpawn,
		Period:  cfg.SpawnInterval,
		CatchUp: true,
		Run:     g.SpawnTick,
	}, now)
	l.sched.Add(&Task{
		Name:    TaskCountdown,
		Period:  cfg.CountdownInterval,
		CatchUp: true,
		Run:     g.CountdownTick,
	}, now)
	l.sched.Pause(TaskCountdown)
	return l
}

// Game returns the simulated game
func (l *Loop) Game() *Game { return l.game }

// Scheduler returns the task scheduler
func (l *Loop) Scheduler() *Scheduler { return l.sched }

// Keys is where input sources post key events
func (l *Loop) Keys() chan<- KeyEvent { return l.keys }

// Resizes is where the environment posts new viewport sizes
func (l *Loop) Resizes() chan<- Bounds { return l.resize }

// Attach swaps in a front end built after the loop, keeping the loop's
// own game-over hook first in line
func (l *Loop) Attach(r Renderer, o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	l.game.SetRenderer(r)
	l.game.SetObserver(Observers{loopHook{l}, o})
}

// HandleKey applies one key event on the simulation goroutine
func (l *Loop) HandleKey(ev KeyEvent) {
	l.input.Handle(ev)
}

// Step runs every task due at now
func (l *Loop) Step(now time.Time) {
	l.now = now
	l.sched.Advance(now)
}

// Run drives the loop off the wall clock until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-l.keys:
			l.HandleKey(ev)
			continue
		case b := <-l.resize:
			l.game.Resize(b)
			continue
		case now := <-timer.C:
			l.Step(now)
		}
		wait := time.Millisecond
		if next, ok := l.sched.NextDue(); ok {
			if d := next.Sub(time.Now()); d > wait {
				wait = d
			}
		}
		timer.Reset(wait)
	}
}

// loopHook keeps the schedule in step with the game state
type loopHook struct{ l *Loop }

func (h loopHook) GameOver(countdown int) {
	s := h.l.sched
	s.Pause(TaskRender)
	s.Pause(TaskSpawn)
	s.Resume(TaskCountdown, h.l.now)
	p := h.l.game.player
	log.Printf("game over: score %d, best %d, restart in %d", p.Score, p.BestScore, countdown)
}

func (h loopHook) Countdown(int) {}

func (h loopHook) Restart() {
	s := h.l.sched
	s.Pause(TaskCountdown)
	s.Resume(TaskRender, h.l.now)
	s.Resume(TaskSpawn, h.l.now)
	log.Printf("restart")
}

// Restore loads a snapshot and lines the schedule up with its state
func (l *Loop) Restore(s Snapshot) {
	l.game.Restore(s)
	sc := l.sched
	if s.State == StateGameOver {
		sc.Pause(TaskRender)
		sc.Pause(TaskSpawn)
		sc.Resume(TaskCountdown, l.now)
		return
	}
	sc.Pause(TaskCountdown)
	sc.Resume(TaskRender, l.now)
	sc.Resume(TaskSpawn, l.now)
}
