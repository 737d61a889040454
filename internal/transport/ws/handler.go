package ws

import (
	"net/http"

	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"jackut/internal/transport/http/middleware"
	"jackut/pkg/logger"
)

// SessionResolver maps a store session id to the login holding it.
type SessionResolver func(sessionID string) (string, error)

// ServeWS upgrades to WebSocket. Auth is done via ?token=xxx query
// param since WebSocket clients cannot send headers.
func ServeWS(hub *Hub, jwtSecret string, resolve SessionResolver) http.HandlerFunc {
	log := logger.Get()
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.URL.Query().Get("token")
		if tokenStr == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		sid, err := middleware.SessionFromToken(tokenStr, jwtSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		login, err := resolve(sid)
		if err != nil {
			http.Error(w, "invalid session", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Warn("ws accept", zap.Error(err))
			return
		}

		client := NewClient(hub, conn, login)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
