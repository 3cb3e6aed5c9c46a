package handlers

import (
	"log"
	"net/http"

	"github.com/dom/battle-service/internal/websocket"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type EventsHandler struct {
	hub *websocket.Hub
}

func NewEventsHandler(hub *websocket.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Handle streams a BATTLE_RESOLVED message for every battle created after the
// connection is established.
func (h *EventsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// Upgrade writes the 400 response itself on a bad handshake
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn)
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
