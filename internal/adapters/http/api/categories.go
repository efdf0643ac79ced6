package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
)

// CategoryDependencies is the category table surface used by the handlers.
type CategoryDependencies interface {
	Categories() []category.Category
	Category(slug string) (category.Category, bool)
	CategoryByID(id int) (category.Category, bool)
}

// CategoriesHandler serves the category table and per-category listings.
type CategoriesHandler struct {
	deps        Dependencies
	maxPageSize int
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps Dependencies, maxPageSize int) *CategoriesHandler {
	return &CategoriesHandler{deps: deps, maxPageSize: maxPageSize}
}

type categoryPage struct {
	Category category.Category `json:"category"`
	Games    model.Page        `json:"games"`
}

// HandleListCategories handles GET /categories.
func (h *CategoriesHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.Categories()})
}

// HandleGetCategory handles GET /categories/{slug-or-id}?filter=&page=&page_size=.
func (h *CategoriesHandler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/categories/"), "/")
	if key == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("get category", errors.New("missing category")))
		return
	}

	var (
		c  category.Category
		ok bool
	)
	if id, err := strconv.Atoi(key); err == nil {
		c, ok = h.deps.CategoryByID(id)
	} else {
		c, ok = h.deps.Category(key)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", WrapKind("get category", ErrNotFound, errors.New("unknown category")))
		return
	}

	page, pageSize, code, err := pageParams(r, h.maxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, err)
		return
	}

	filter := model.ParseFilter(r.URL.Query().Get("filter"))
	writeJSON(w, http.StatusOK, categoryPage{
		Category: c,
		Games:    h.deps.Games(r.Context(), filter, c.ID, page, pageSize),
	})
}
