// SPDX-License-Identifier: AGPL-3.0-only

package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The daemon only serves local UIs; the origin is not meaningful here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub fans broadcast payloads out to all connected WebSocket clients.
type hub struct {
	connections map[*connection]bool
	broadcast   chan []byte
	register    chan *connection
	unregister  chan *connection
	done        chan struct{}
	stopOnce    sync.Once

	// snapshot produces the initial payload sent to a client on connect.
	snapshot func() []byte
}

func newHub(snapshot func() []byte) *hub {
	return &hub{
		connections: make(map[*connection]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		done:        make(chan struct{}),
		snapshot:    snapshot,
	}
}

func (h *hub) run() {
	for {
		select {
		case <-h.done:
			for conn := range h.connections {
				close(conn.send)
				delete(h.connections, conn)
			}
			return
		case conn := <-h.register:
			h.connections[conn] = true
		case conn := <-h.unregister:
			if _, ok := h.connections[conn]; ok {
				close(conn.send)
				delete(h.connections, conn)
			}
		case message := <-h.broadcast:
			for conn := range h.connections {
				select {
				case conn.send <- message:
				default:
					// A client that cannot keep up is dropped.
					close(conn.send)
					delete(h.connections, conn)
				}
			}
		}
	}
}

func (h *hub) stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

// handleWebSocket upgrades the request, sends the initial snapshot and keeps
// the connection until the client goes away. Nothing beyond the upgrade
// handshake is consumed from the client.
func (h *hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	c := &connection{ws: ws, send: make(chan []byte, 256)}
	if initial := h.snapshot(); initial != nil {
		c.send <- initial
	}
	h.register <- c
	defer func() { h.unregister <- c }()

	go c.writePump()
	c.readPump()
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// readPump discards inbound frames; it exists to notice the close.
func (c *connection) readPump() {
	defer c.ws.Close()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("WebSocket read error")
			}
			return
		}
	}
}

func (c *connection) writePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Debug().Err(err).Msg("WebSocket write error")
			return
		}
	}
	_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}
