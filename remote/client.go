package remote

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"asteroids/game"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 1024
	sendBufSize       = 16
	maxMessagesPerSec = 120
	maxKeyLen         = 32
	maxViewport       = 8192
)

// Client is one connected display
type Client struct {
	id         string
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string
	msgCount   int
	msgResetAt time.Time
	// keys this display holds down; owned by ReadPump
	held map[string]bool
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		id:         uuid.NewString(),
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		remoteAddr: remoteAddr,
		held:       make(map[string]bool),
	}
}

// ID returns the display's connection id
func (c *Client) ID() string { return c.id }

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		// a display that vanishes mid-press must not leave keys held
		c.releaseKeys()
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		c.handleMessage(message)
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// Check for binary marker (0xFF prefix from SendBinary)
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message
// Prefixes with 0xFF marker byte so WritePump can distinguish from text
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF // binary marker
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	switch env.T {
	case MsgKey:
		c.handleKey(env.D)
	case MsgResize:
		c.handleResize(env.D)
	default:
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "unknown message " + env.T}})
	}
}

func (c *Client) handleKey(data json.RawMessage) {
	var ev game.KeyEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return
	}
	if ev.Key == "" || len(ev.Key) > maxKeyLen {
		return
	}
	if ev.Down {
		fresh := !c.held[ev.Key]
		c.held[ev.Key] = true
		c.hub.press(ev.Key, fresh)
		return
	}
	if !c.held[ev.Key] {
		return
	}
	delete(c.held, ev.Key)
	c.hub.release(ev.Key)
}

func (c *Client) handleResize(data json.RawMessage) {
	var msg ResizeMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if msg.W <= 0 || msg.H <= 0 || msg.W > maxViewport || msg.H > maxViewport {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "bad viewport"}})
		return
	}
	c.hub.postResize(game.Bounds{W: msg.W, H: msg.H})
}

func (c *Client) releaseKeys() {
	for k := range c.held {
		c.hub.release(k)
	}
	clear(c.held)
}
