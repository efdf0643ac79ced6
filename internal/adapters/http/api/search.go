package api

import (
	"net/http"
)

// SearchHandler serves keyword search.
type SearchHandler struct {
	deps        Dependencies
	maxPageSize int
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies, maxPageSize int) *SearchHandler {
	return &SearchHandler{deps: deps, maxPageSize: maxPageSize}
}

// HandleSearch handles GET /search?q=&page=&page_size=.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	page, pageSize, code, err := pageParams(r, h.maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Search(r.Context(), r.URL.Query().Get("q"), page, pageSize))
}
