package remote

import (
	"encoding/json"

	"asteroids/game"
)

// Client -> Server message types
const (
	MsgKey    = "key"
	MsgResize = "resize"
)

// Server -> Client message types
const (
	MsgWelcome   = "welcome"
	MsgGameOver  = "game_over"
	MsgCountdown = "countdown"
	MsgRestart   = "restart"
	MsgError     = "error"
)

// Envelope wraps all outgoing text messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is an incoming message; D stays raw until the type is known
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ResizeMsg reports the display's viewport
type ResizeMsg struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// WelcomeMsg is sent to a display when it connects
type WelcomeMsg struct {
	ID string  `json:"id"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// CountdownMsg carries the seconds left before restart
type CountdownMsg struct {
	N int `json:"n"`
}

// ErrorMsg sends error to client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// Frame is one render tick, sent as a binary msgpack message
type Frame struct {
	Seq     uint64        `msgpack:"seq"`
	Bounds  game.Bounds   `msgpack:"b"`
	Sprites []game.Sprite `msgpack:"s"`
	HUD     game.HUD      `msgpack:"hud"`
}
