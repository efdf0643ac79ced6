// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/query"
)

// Default limits.
const (
	defaultMaxPageSize = 100
	defaultHomeLimit   = 8
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	GameDependencies
	CategoryDependencies
	PlayDependencies

	Search(ctx context.Context, keyword string, page, pageSize int) model.Page
	Home(ctx context.Context, perSection int) []model.Section
	Recent(ctx context.Context) []model.Game
}

// Server wires HTTP routes for the catalog API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	gamesHandler    *GamesHandler
	searchHandler   *SearchHandler
	categoryHandler *CategoriesHandler
	homeHandler     *HomeHandler
	recentHandler   *RecentHandler
	playsHandler    *PlaysHandler
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	maxPageSize int
	homeLimit   int
}

// WithMaxPageSize caps page_size and limit query parameters.
func WithMaxPageSize(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxPageSize = n
		}
	}
}

// WithHomeLimit sets the number of games per home section when the request
// has no limit.
func WithHomeLimit(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.homeLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := serverConfig{maxPageSize: defaultMaxPageSize, homeLimit: defaultHomeLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		gamesHandler:    NewGamesHandler(deps, cfg.maxPageSize),
		searchHandler:   NewSearchHandler(deps, cfg.maxPageSize),
		categoryHandler: NewCategoriesHandler(deps, cfg.maxPageSize),
		homeHandler:     NewHomeHandler(deps, cfg.homeLimit, cfg.maxPageSize),
		recentHandler:   NewRecentHandler(deps),
		playsHandler:    NewPlaysHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/games", MetricsMiddleware(s.gamesHandler.HandleListGames, "games"))
	mux.HandleFunc("/games/", MetricsMiddleware(s.gamesHandler.HandleGetGame, "game"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.categoryHandler.HandleListCategories, "categories"))
	mux.HandleFunc("/categories/", MetricsMiddleware(s.categoryHandler.HandleGetCategory, "category"))
	mux.HandleFunc("/home", MetricsMiddleware(s.homeHandler.HandleHome, "home"))
	mux.HandleFunc("/recent", MetricsMiddleware(s.recentHandler.HandleRecent, "recent"))
	mux.HandleFunc("/plays", MetricsMiddleware(s.playsHandler.HandlePostPlay, "plays"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, query.ErrGameNotFound) || errors.Is(err, ErrNotFound)
}

// intParam parses an optional integer query parameter. A missing value
// yields def.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + "; must be an integer")
	}
	return n, nil
}

// pageParams reads page and page_size. Values below one are passed through
// so the engine can apply its defaults.
func pageParams(r *http.Request, maxPageSize int) (page, pageSize int, code string, err error) {
	if page, err = intParam(r, "page", 1); err != nil {
		return 0, 0, "bad_request", ErrBadRequest
	}
	if pageSize, err = intParam(r, "page_size", 0); err != nil {
		return 0, 0, "bad_request", ErrBadRequest
	}
	if pageSize > maxPageSize {
		return 0, 0, "limit_exceeded", ErrLimitExceeded
	}
	return page, pageSize, "", nil
}

// resolveCategory accepts a category id or a category slug. An empty value
// means every category.
func resolveCategory(deps CategoryDependencies, raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return category.AllID, true
	}
	if id, err := strconv.Atoi(raw); err == nil {
		return id, true
	}
	c, ok := deps.Category(raw)
	if !ok {
		return 0, false
	}
	return c.ID, true
}
