package realtime

import (
	"net/http"
	"strings"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"

	"github.com/gorilla/websocket"
)

const (
	sendQueue  = 16
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// originChecker accepts requests without an Origin header (non-browser
// clients) and browser origins present in allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			set[strings.ToLower(o)] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[strings.ToLower(origin)]
		return ok
	}
}

// Connection is one websocket subscriber.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// Serve upgrades the request, sends the current snapshot and streams
// updates for the room until the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, room *game.Room) {
	snapshot, err := encodeRoom(room)
	if err != nil {
		logging.Error("failed to encode room snapshot", err, logging.Fields{constants.LogFieldRoomCode: room.JoinCode})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("websocket upgrade failed", logging.Fields{constants.LogFieldRoomCode: room.JoinCode, "reason": err.Error()})
		return
	}
	c := &Connection{ws: ws, send: make(chan []byte, sendQueue)}
	c.send <- snapshot
	h.Subscribe(room.JoinCode, c)

	go c.writeLoop()
	c.readLoop()
	h.Unsubscribe(room.JoinCode, c)
}

// readLoop discards client messages and returns once the peer goes away.
func (c *Connection) readLoop() {
	c.ws.SetReadLimit(512)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
