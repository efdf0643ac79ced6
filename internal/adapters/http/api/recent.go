package api

import "net/http"

// RecentHandler serves the recently played list.
type RecentHandler struct {
	deps Dependencies
}

// NewRecentHandler creates a new recent handler.
func NewRecentHandler(deps Dependencies) *RecentHandler {
	return &RecentHandler{deps: deps}
}

// HandleRecent handles GET /recent.
func (h *RecentHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.Recent(r.Context())})
}
