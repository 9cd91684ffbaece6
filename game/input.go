package game

import "fmt"

// Action is what a key does in the game
type Action string

const (
	ActionThrust      Action = "thrust"
	ActionRotateLeft  Action = "rotate_left"
	ActionRotateRight Action = "rotate_right"
	ActionFire        Action = "fire"
)

// KeyMap binds key names to actions
type KeyMap map[string]Action

// DefaultKeyMap uses the browser key names for arrows and space
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"ArrowUp":    ActionThrust,
		"ArrowLeft":  ActionRotateLeft,
		"ArrowRight": ActionRotateRight,
		" ":          ActionFire,
		"Space":      ActionFire,
	}
}

// Validate checks every binding names a known action
func (km KeyMap) Validate() error {
	for k, a := range km {
		switch a {
		case ActionThrust, ActionRotateLeft, ActionRotateRight, ActionFire:
		default:
			return fmt.Errorf("key %q bound to unknown action %q", k, a)
		}
	}
	return nil
}

// KeyEvent is a raw key transition from an input source
type KeyEvent struct {
	Key  string `json:"k"`
	Down bool   `json:"down"`
}

// InputTracker turns key events into held-key state.
// Fire is edge-triggered: every down event of a fire key calls onFire.
type InputTracker struct {
	keys   KeyMap
	held   map[string]bool
	onFire func()
}

// NewInputTracker creates a tracker over the given bindings
func NewInputTracker(keys KeyMap, onFire func()) *InputTracker {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &InputTracker{
		keys:   keys,
		held:   make(map[string]bool),
		onFire: onFire,
	}
}

// Handle applies one key event
func (t *InputTracker) Handle(ev KeyEvent) {
	action, ok := t.keys[ev.Key]
	if !ok {
		return
	}
	if action == ActionFire {
		if ev.Down && t.onFire != nil {
			t.onFire()
		}
		return
	}
	if ev.Down {
		t.held[ev.Key] = true
	} else {
		delete(t.held, ev.Key)
	}
}

// Held reports whether any key bound to action is down
func (t *InputTracker) Held(action Action) bool {
	for k := range t.held {
		if t.keys[k] == action {
			return true
		}
	}
	return false
}

// Controls snapshots the held state for one physics tick
func (t *InputTracker) Controls() Controls {
	return Controls{
		Thrust:      t.Held(ActionThrust),
		RotateLeft:  t.Held(ActionRotateLeft),
		RotateRight: t.Held(ActionRotateRight),
	}
}

// Reset releases every key
func (t *InputTracker) Reset() {
	clear(t.held)
}

// Controls is the held-key state the physics tick reads
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}
