// Package query answers catalog listing, lookup and search requests over the
// resident catalogs. Every operation is synchronous and leaves the catalogs
// untouched.
package query

import (
	"fmt"
	"strings"

	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
	"github.com/fthomas67/ninjagamezone/internal/domain/similarity"
)

// Messages attached to empty pages.
const (
	msgNoGames       = "no games found"
	msgEmptyCategory = "no games available in category %s"
	msgBlankKeyword  = "enter a keyword to search"
	msgNoMatch       = "no games match %q"
)

// Source exposes the read-only catalogs.
type Source interface {
	// Select returns the catalog for f. Unknown filters fall back to most played.
	Select(f model.Filter) []model.RawGameRecord
	// LookupPool returns the records single-game lookups search, in priority order.
	LookupPool() []model.RawGameRecord
}

// Engine runs queries against a Source.
type Engine struct {
	source     Source
	resolver   *category.Resolver
	normalizer *normalize.Normalizer
	ranker     *similarity.Ranker

	defaultPageSize int
	similarLimit    int
}

// New creates an Engine over src.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{
		source:          src,
		defaultPageSize: DefaultPageSize,
		similarLimit:    similarity.DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = category.Default()
	}
	if e.normalizer == nil {
		e.normalizer = normalize.New(normalize.WithResolver(e.resolver))
	}
	if e.ranker == nil {
		e.ranker = similarity.New(similarity.WithNormalizer(e.normalizer))
	}
	return e
}

// Resolver returns the category resolver the engine filters with.
func (e *Engine) Resolver() *category.Resolver {
	return e.resolver
}

// SimilarLimit returns the number of similar games attached by FindByID.
func (e *Engine) SimilarLimit() int {
	return e.similarLimit
}

// Query returns one page of the catalog selected by filter, restricted to
// categoryID unless it is category.AllID. Unknown category ids are treated
// as category.AllID. page below one is read as the first page and pageSize
// below one as the default page size.
func (e *Engine) Query(filter model.Filter, categoryID, page, pageSize int) model.Page {
	page, pageSize = e.clamp(page, pageSize)
	if !e.resolver.Known(categoryID) {
		categoryID = category.AllID
	}

	records := e.source.Select(filter)

	matched := records
	if categoryID != category.AllID {
		matched = make([]model.RawGameRecord, 0, len(records))
		for i := range records {
			if e.resolver.Matches(categoryID, records[i].Category, records[i].Tags) {
				matched = append(matched, records[i])
			}
		}
		if len(matched) == 0 {
			return emptyPage(page, pageSize, fmt.Sprintf(msgEmptyCategory, e.resolver.NameFromID(categoryID)))
		}
	}
	if len(matched) == 0 {
		return emptyPage(page, pageSize, msgNoGames)
	}

	return e.paginate(matched, page, pageSize)
}

// FindByID looks id up in the lookup pool. The first record with that id
// wins. A found game carries its similar games, ranked against the same pool.
func (e *Engine) FindByID(id string) (model.Game, bool) {
	raw := e.find(id)
	if raw == nil {
		return model.Game{}, false
	}
	g := e.normalizer.Normalize(*raw)
	g.SimilarGames = e.ranker.FindSimilar(g, e.source.LookupPool(), e.similarLimit)
	return g, true
}

// Get is FindByID without the similar games.
func (e *Engine) Get(id string) (model.Game, bool) {
	raw := e.find(id)
	if raw == nil {
		return model.Game{}, false
	}
	return e.normalizer.Normalize(*raw), true
}

// Contains reports whether FindByID would find id, without building the game.
func (e *Engine) Contains(id string) bool {
	return e.find(id) != nil
}

func (e *Engine) find(id string) *model.RawGameRecord {
	pool := e.source.LookupPool()
	for i := range pool {
		if pool[i].ID == id {
			return &pool[i]
		}
	}
	return nil
}

// Search returns the games of the lookup pool whose title, description or
// tags contain keyword, ignoring case. Each id is reported once.
func (e *Engine) Search(keyword string, page, pageSize int) model.Page {
	page, pageSize = e.clamp(page, pageSize)

	term := strings.ToLower(strings.TrimSpace(keyword))
	if term == "" {
		return emptyPage(page, pageSize, msgBlankKeyword)
	}

	pool := e.source.LookupPool()
	seen := make(map[string]struct{}, len(pool))
	matched := make([]model.RawGameRecord, 0)
	for i := range pool {
		r := &pool[i]
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		if strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Tags), term) {
			matched = append(matched, *r)
		}
	}
	if len(matched) == 0 {
		return emptyPage(page, pageSize, fmt.Sprintf(msgNoMatch, strings.TrimSpace(keyword)))
	}

	return e.paginate(matched, page, pageSize)
}

func (e *Engine) clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = e.defaultPageSize
	}
	return page, pageSize
}

// paginate normalizes the records of one page. Total counts all records.
func (e *Engine) paginate(records []model.RawGameRecord, page, pageSize int) model.Page {
	total := len(records)
	// page-1 is compared before multiplying so huge pages cannot wrap.
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}

	return model.Page{
		Items:    e.normalizer.NormalizeAll(records[start:end]),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func emptyPage(page, pageSize int, msg string) model.Page {
	return model.Page{
		Items:    []model.Game{},
		Page:     page,
		PageSize: pageSize,
		Message:  msg,
	}
}
