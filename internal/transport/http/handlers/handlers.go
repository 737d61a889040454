package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"jackut/internal/snapshot"
	"jackut/internal/store"
	"jackut/internal/transport/ws"
	"jackut/pkg/logger"
	"jackut/pkg/validator"
)

// Handler exposes one endpoint per store verb, pure pass-through. The
// store assumes a single caller, so every handler takes the aggregate
// lock for the duration of the call.
type Handler struct {
	mu        sync.Mutex
	store     *store.Store
	snap      *snapshot.DB
	hub       *ws.Hub
	jwtSecret string
	log       *zap.Logger
}

func New(st *store.Store, snap *snapshot.DB, hub *ws.Hub, jwtSecret string) *Handler {
	return &Handler{
		store:     st,
		snap:      snap,
		hub:       hub,
		jwtSecret: jwtSecret,
		log:       logger.Get(),
	}
}

// SessionResolver exposes session→login resolution to the WebSocket
// transport, under the same aggregate lock as every other store call.
func (h *Handler) SessionResolver() func(sessionID string) (string, error) {
	return func(sessionID string) (string, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.store.ResolveSession(sessionID)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}

// writeStoreError maps the store's error taxonomy onto HTTP statuses.
// Every store failure carries the offending login or name in its
// message, so the message is passed through as-is.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, store.ErrInvalidCredential):
		status, code = http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, store.ErrInvalidSession):
		status, code = http.StatusUnauthorized, "INVALID_SESSION"
	case errors.Is(err, store.ErrNoSuchUser):
		status, code = http.StatusNotFound, "NO_SUCH_USER"
	case errors.Is(err, store.ErrNoSuchCommunity):
		status, code = http.StatusNotFound, "NO_SUCH_COMMUNITY"
	case errors.Is(err, store.ErrAttributeNotSet):
		status, code = http.StatusNotFound, "ATTRIBUTE_NOT_SET"
	case errors.Is(err, store.ErrEmptyInbox):
		status, code = http.StatusNotFound, "EMPTY_INBOX"
	case errors.Is(err, store.ErrEmptyTimeline):
		status, code = http.StatusNotFound, "EMPTY_TIMELINE"
	case errors.Is(err, store.ErrDuplicateAccount):
		status, code = http.StatusConflict, "DUPLICATE_ACCOUNT"
	case errors.Is(err, store.ErrDuplicateCommunity):
		status, code = http.StatusConflict, "DUPLICATE_COMMUNITY"
	case errors.Is(err, store.ErrAlreadyFriends):
		status, code = http.StatusConflict, "ALREADY_FRIENDS"
	case errors.Is(err, store.ErrFriendRequestPending):
		status, code = http.StatusConflict, "REQUEST_PENDING"
	case errors.Is(err, store.ErrAlreadyIdolized):
		status, code = http.StatusConflict, "ALREADY_IDOLIZED"
	case errors.Is(err, store.ErrAlreadyFlirting):
		status, code = http.StatusConflict, "ALREADY_FLIRTING"
	case errors.Is(err, store.ErrAlreadyEnemies):
		status, code = http.StatusConflict, "ALREADY_ENEMIES"
	case errors.Is(err, store.ErrAlreadyMember):
		status, code = http.StatusConflict, "ALREADY_MEMBER"
	case errors.Is(err, store.ErrBlockedByEnemy):
		status, code = http.StatusForbidden, "BLOCKED_BY_ENEMY"
	case errors.Is(err, store.ErrSelfRelation), errors.Is(err, store.ErrSelfMessage):
		status, code = http.StatusUnprocessableEntity, "SELF_NOT_ALLOWED"
	default:
		h.log.Error("store", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeError(w, status, code, err.Error())
}
