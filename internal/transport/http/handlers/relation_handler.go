package handlers

import (
	"encoding/json"
	"net/http"

	"jackut/internal/transport/http/middleware"
	"jackut/internal/transport/ws"
)

type relationInput struct {
	Login string `json:"login"`
}

func (h *Handler) decodeRelation(w http.ResponseWriter, r *http.Request) (string, bool) {
	var input relationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Login == "" {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Target login is required")
		return "", false
	}
	return input.Login, true
}

func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	target, ok := h.decodeRelation(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	err := h.store.AddFriend(sid, target)
	var acting string
	var confirmed bool
	if err == nil {
		acting, _ = h.store.ResolveSession(sid)
		confirmed, _ = h.store.AreFriends(acting, target)
	}
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	if confirmed {
		h.hub.SendToUser(target, ws.NewEvent(ws.EventFriendConfirmed, map[string]string{"login": acting}))
		h.hub.SendToUser(acting, ws.NewEvent(ws.EventFriendConfirmed, map[string]string{"login": target}))
	}

	writeJSON(w, http.StatusOK, map[string]bool{"confirmed": confirmed})
}

func (h *Handler) AreFriends(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	friends, err := h.store.AreFriends(r.PathValue("login"), r.PathValue("other"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"friends": friends})
}

func (h *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	friends, err := h.store.GetFriends(r.PathValue("login"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"friends": friends})
}

func (h *Handler) AddIdol(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	idol, ok := h.decodeRelation(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	err := h.store.AddIdol(sid, idol)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) IsFan(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	fan, err := h.store.IsFan(r.PathValue("login"), r.PathValue("idol"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"fan": fan})
}

func (h *Handler) GetFans(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	fans, err := h.store.GetFans(r.PathValue("login"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"fans": fans})
}

func (h *Handler) AddFlirt(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	flirt, ok := h.decodeRelation(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	err := h.store.AddFlirt(sid, flirt)
	var acting string
	var mutual bool
	if err == nil {
		acting, _ = h.store.ResolveSession(sid)
		mutual, _ = h.store.IsFlirt(flirt, acting)
	}
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	if mutual {
		h.hub.SendToUser(flirt, ws.NewEvent(ws.EventFlirtMatched, map[string]string{"login": acting}))
		h.hub.SendToUser(acting, ws.NewEvent(ws.EventFlirtMatched, map[string]string{"login": flirt}))
	}

	writeJSON(w, http.StatusOK, map[string]bool{"mutual": mutual})
}

func (h *Handler) IsFlirt(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	flirting, err := h.store.IsFlirt(r.PathValue("login"), r.PathValue("other"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"flirt": flirting})
}

func (h *Handler) GetFlirts(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	flirts, err := h.store.GetFlirts(r.PathValue("login"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"flirts": flirts})
}

func (h *Handler) AddEnemy(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	enemy, ok := h.decodeRelation(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	err := h.store.AddEnemy(sid, enemy)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
