package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// Shutdown saves the current snapshot without stopping the server, the
// explicit persistence boundary of the system.
func (h *Handler) Shutdown(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	users, communities := h.store.Snapshot()
	err := h.snap.Save(r.Context(), users, communities)
	h.mu.Unlock()
	if err != nil {
		h.log.Error("saving snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to save snapshot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset flushes users, sessions and communities and discards any stored
// snapshot.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.store.Reset()
	err := h.snap.Discard(r.Context())
	h.mu.Unlock()
	if err != nil {
		h.log.Error("discarding snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to discard snapshot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
