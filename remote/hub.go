package remote

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"asteroids/game"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 64
)

// Input is where displays send their keys and viewport changes.
// *game.Loop implements it.
type Input interface {
	Keys() chan<- game.KeyEvent
	Resizes() chan<- game.Bounds
}

// Hub tracks every connected display and fans frames out to them.
// All displays steer the same ship: a key stays down while any display
// holds it.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	input      Input
	done       chan struct{}
	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
	// last viewport announced by a display, sent to newcomers
	boundsMu sync.RWMutex
	bounds   game.Bounds
	// displays holding each key down
	holdMu sync.Mutex
	holds  map[string]int
}

// NewHub creates a hub forwarding display input to in
func NewHub(in Input, b game.Bounds) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		input:      in,
		done:       make(chan struct{}),
		ipConns:    make(map[string]int),
		bounds:     b,
		holds:      make(map[string]int),
	}
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Run processes register/unregister events until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("display %s connected from %s", client.id, client.remoteAddr)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("display %s disconnected", client.id)
		}
	}
}

// ClientCount returns the number of connected displays
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}

// Bounds returns the viewport newcomers are told about
func (h *Hub) Bounds() game.Bounds {
	h.boundsMu.RLock()
	defer h.boundsMu.RUnlock()
	return h.bounds
}

// BroadcastJSON sends a text message to every display
func (h *Hub) BroadcastJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.SendRaw(data)
	}
}

// BroadcastBinary sends a binary message to every display
func (h *Hub) BroadcastBinary(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.SendBinary(data)
	}
}

// press forwards a key-down; fresh marks a display newly holding key.
// Posting under holdMu keeps downs and ups in count order.
func (h *Hub) press(key string, fresh bool) {
	h.holdMu.Lock()
	defer h.holdMu.Unlock()
	if fresh {
		h.holds[key]++
	}
	h.postKey(game.KeyEvent{Key: key, Down: true})
}

// release drops one display's hold and forwards the key-up once nobody holds it
func (h *Hub) release(key string) {
	h.holdMu.Lock()
	defer h.holdMu.Unlock()
	h.holds[key]--
	if h.holds[key] > 0 {
		return
	}
	delete(h.holds, key)
	h.postKey(game.KeyEvent{Key: key, Down: false})
}

// postKey hands a key event to the simulation, giving up on shutdown
func (h *Hub) postKey(ev game.KeyEvent) {
	select {
	case h.input.Keys() <- ev:
	case <-h.done:
	}
}

// postResize hands a viewport change to the simulation
func (h *Hub) postResize(b game.Bounds) {
	h.boundsMu.Lock()
	h.bounds = b
	h.boundsMu.Unlock()
	select {
	case h.input.Resizes() <- b:
	case <-h.done:
	}
}
