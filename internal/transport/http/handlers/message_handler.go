package handlers

import (
	"encoding/json"
	"net/http"

	"jackut/internal/transport/http/middleware"
	"jackut/internal/transport/ws"
)

type sendMessageInput struct {
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	var input sendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Recipient == "" {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Recipient is required")
		return
	}

	h.mu.Lock()
	err := h.store.SendMessage(sid, input.Recipient, input.Content)
	var sender string
	if err == nil {
		sender, _ = h.store.ResolveSession(sid)
	}
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.hub.SendToUser(input.Recipient, ws.NewEvent(ws.EventMessageReceived, map[string]string{"sender": sender}))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReadMessage(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	h.mu.Lock()
	content, err := h.store.ReadMessage(sid)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (h *Handler) ReadPost(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	h.mu.Lock()
	content, err := h.store.ReadPost(sid)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}
