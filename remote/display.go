package remote

import (
	"log"

	"github.com/vmihailenco/msgpack/v5"

	"asteroids/game"
)

// Display renders frames into msgpack and streams them to every connected
// display. It is called on the simulation goroutine.
type Display struct {
	hub   *Hub
	frame Frame
}

// NewDisplay creates a renderer and observer backed by hub
func NewDisplay(hub *Hub) *Display {
	return &Display{hub: hub}
}

func (d *Display) BeginFrame(b game.Bounds) {
	d.frame.Seq++
	d.frame.Bounds = b
	d.frame.Sprites = d.frame.Sprites[:0]
}

func (d *Display) Draw(s game.Sprite) {
	d.frame.Sprites = append(d.frame.Sprites, s)
}

func (d *Display) DrawHUD(h game.HUD) {
	d.frame.HUD = h
}

// EndFrame encodes the frame and hands it to the hub
func (d *Display) EndFrame() {
	if d.hub.ClientCount() == 0 {
		return
	}
	data, err := msgpack.Marshal(&d.frame)
	if err != nil {
		log.Printf("frame encode error: %v", err)
		return
	}
	d.hub.BroadcastBinary(data)
}

func (d *Display) GameOver(countdown int) {
	d.hub.BroadcastJSON(Envelope{T: MsgGameOver, Data: CountdownMsg{N: countdown}})
}

func (d *Display) Countdown(n int) {
	d.hub.BroadcastJSON(Envelope{T: MsgCountdown, Data: CountdownMsg{N: n}})
}

func (d *Display) Restart() {
	d.hub.BroadcastJSON(Envelope{T: MsgRestart})
}
