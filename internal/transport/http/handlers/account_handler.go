package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"jackut/internal/transport/http/middleware"
	"jackut/pkg/validator"
)

type createUserInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input createUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCreateUser(input.Login, input.Password, input.Name); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	h.mu.Lock()
	err := h.store.CreateUser(input.Login, input.Password, input.Name)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"login": input.Login})
}

type openSessionInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var input openSessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateOpenSession(input.Login, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	h.mu.Lock()
	sid, err := h.store.OpenSession(input.Login, input.Password)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	token, err := middleware.IssueToken(sid, h.jwtSecret)
	if err != nil {
		h.log.Error("issuing token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"session_id":   sid,
		"access_token": token,
	})
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	h.mu.Lock()
	err := h.store.DeleteAccount(sid)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetAttribute(w http.ResponseWriter, r *http.Request) {
	login := r.PathValue("login")
	name := r.PathValue("attribute")

	h.mu.Lock()
	value, err := h.store.GetAttribute(login, name)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"name": name, "value": value})
}

type setAttributeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *Handler) SetAttribute(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	var input setAttributeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ATTRIBUTE", "Attribute name is required")
		return
	}

	h.mu.Lock()
	err := h.store.SetAttribute(sid, input.Name, input.Value)
	h.mu.Unlock()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
