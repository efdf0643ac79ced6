package api

import (
	"net/http"
)

// HomeHandler serves the home page strips.
type HomeHandler struct {
	deps         Dependencies
	defaultLimit int
	maxLimit     int
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(deps Dependencies, defaultLimit, maxLimit int) *HomeHandler {
	return &HomeHandler{deps: deps, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// HandleHome handles GET /home?limit=.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit, err := intParam(r, "limit", h.defaultLimit)
	if err != nil || limit <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("home", ErrBadRequest))
		return
	}
	if limit > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind("home", ErrLimitExceeded))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sections": h.deps.Home(r.Context(), limit)})
}
