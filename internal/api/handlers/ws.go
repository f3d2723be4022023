package handlers

import (
	"net/http"
	"time"

	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range config.AllowedOrigins {
			if origin == allowed {
				return true
			}
		}
		return false
	},
}
