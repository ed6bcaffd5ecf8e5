// Package realtime pushes room snapshots to websocket subscribers.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"

	"github.com/gorilla/websocket"
)

// MessageTypeRoom tags a full room snapshot.
const MessageTypeRoom = "room"

// Message is the envelope written to subscribers.
type Message struct {
	Type string     `json:"type"`
	Room *game.Room `json:"room"`
}

// Hub fans room updates out to the connections subscribed to each room code.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]map[*Connection]struct{}
	upgrader websocket.Upgrader
}

// NewHub returns a hub. Browser websocket requests must come from one of
// allowedOrigins; with none configured only same-host origins are accepted.
func NewHub(allowedOrigins ...string) *Hub {
	h := &Hub{rooms: make(map[string]map[*Connection]struct{})}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	}
	return h
}

// Subscribe registers c for updates of roomCode.
func (h *Hub) Subscribe(roomCode string, c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.rooms[roomCode]
	if conns == nil {
		conns = make(map[*Connection]struct{})
		h.rooms[roomCode] = conns
	}
	conns[c] = struct{}{}
}

// Unsubscribe removes c and closes its send queue.
func (h *Hub) Unsubscribe(roomCode string, c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.rooms[roomCode]
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.rooms, roomCode)
	}
	close(c.send)
}

// Subscribers returns the number of connections watching roomCode.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

// Publish sends a snapshot of r to its subscribers. Slow subscribers whose
// queue is full miss the update; the next snapshot supersedes it.
func (h *Hub) Publish(r *game.Room) {
	if r == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	conns := h.rooms[r.JoinCode]
	if len(conns) == 0 {
		return
	}
	data, err := encodeRoom(r)
	if err != nil {
		logging.Error("failed to encode room snapshot", err, logging.Fields{constants.LogFieldRoomID: r.ID})
		return
	}
	for c := range conns {
		select {
		case c.send <- data:
		default:
			logging.Warn("dropping room update for slow subscriber", logging.Fields{constants.LogFieldRoomCode: r.JoinCode})
		}
	}
}

func encodeRoom(r *game.Room) ([]byte, error) {
	return json.Marshal(Message{Type: MessageTypeRoom, Room: r})
}
