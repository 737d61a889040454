package handlers

import (
	"encoding/json"
	"net/http"

	"jackut/internal/domain"
	"jackut/internal/transport/http/middleware"
	"jackut/internal/transport/ws"
	"jackut/pkg/validator"
)

type createCommunityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	var input createCommunityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCommunity(input.Name, input.Description); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	h.mu.Lock()
	err := h.store.CreateCommunity(sid, input.Name, input.Description)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"name": input.Name})
}

func (h *Handler) JoinCommunity(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	name := r.PathValue("name")

	h.mu.Lock()
	err := h.store.JoinCommunity(sid, name)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type postInput struct {
	Content string `json:"content"`
}

func (h *Handler) PostToCommunity(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	name := r.PathValue("name")

	var input postInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	h.mu.Lock()
	err := h.store.PostToCommunity(sid, name, input.Content)
	var members string
	if err == nil {
		members, _ = h.store.GetCommunityMembers(name)
	}
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	event := ws.NewEvent(ws.EventPostReceived, map[string]string{"community": name})
	for _, member := range domain.DecodeList(members) {
		h.hub.SendToUser(member, event)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	h.mu.Lock()
	description, err := h.store.GetCommunityDescription(name)
	var owner, members string
	if err == nil {
		owner, _ = h.store.GetCommunityOwner(name)
		members, _ = h.store.GetCommunityMembers(name)
	}
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"name":        name,
		"description": description,
		"owner":       owner,
		"members":     members,
	})
}

func (h *Handler) GetUserCommunities(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	communities, err := h.store.GetUserCommunities(r.PathValue("login"))
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"communities": communities})
}
