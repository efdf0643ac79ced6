package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
)

// GameDependencies is the catalog surface used by the games handlers.
type GameDependencies interface {
	Games(ctx context.Context, filter model.Filter, categoryID, page, pageSize int) model.Page
	Game(ctx context.Context, id string) (model.Game, error)
}

// GamesHandler serves catalog listings and single game lookups.
type GamesHandler struct {
	deps        Dependencies
	maxPageSize int
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps Dependencies, maxPageSize int) *GamesHandler {
	return &GamesHandler{deps: deps, maxPageSize: maxPageSize}
}

// HandleListGames handles GET /games?filter=&category=&page=&page_size=.
func (h *GamesHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	page, pageSize, code, err := pageParams(r, h.maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, err)
		return
	}
	categoryID, ok := resolveCategory(h.deps, r.URL.Query().Get("category"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind("list games", errors.New("unknown category")))
		return
	}

	filter := model.ParseFilter(r.URL.Query().Get("filter"))
	writeJSON(w, http.StatusOK, h.deps.Games(r.Context(), filter, categoryID, page, pageSize))
}

// HandleGetGame handles GET /games/{id} and GET /games/{id}/{slug}. A slug
// that does not match the game's current slug redirects to the canonical URL.
func (h *GamesHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/games/"), "/")
	if rest == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("get game", errors.New("missing game id")))
		return
	}
	id, slug, hasSlug := strings.Cut(rest, "/")
	if strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	g, err := h.deps.Game(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind("get game", ErrNotFound, errors.New("game not found")))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap("get game", err))
		return
	}

	if hasSlug && slug != g.Slug {
		http.Redirect(w, r, "/games/"+url.PathEscape(g.ID)+"/"+url.PathEscape(g.Slug), http.StatusMovedPermanently)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
