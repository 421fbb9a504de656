package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/dominoes-tournament/brackets"
)

type WebSocketHandler struct {
	hub      *brackets.Hub
	room     string
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler joins every connection to the league's room. checkOrigin may be nil
// to accept any origin.
func NewWebSocketHandler(hub *brackets.Hub, league string, checkOrigin func(r *http.Request) bool, logger *slog.Logger) *WebSocketHandler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:  hub,
		room: league,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// ServeWs upgrades the request and streams TOURNAMENT_UPDATED messages to the client.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: h.room,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
