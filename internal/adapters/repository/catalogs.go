// Package repository holds the resident catalogs and the local files they are
// loaded from.
package repository

import (
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/pkg/metrics"
)

// Catalogs is the immutable set of popularity catalogs. It is built once and
// only read afterwards, so it needs no locking.
type Catalogs struct {
	byFilter map[model.Filter][]model.RawGameRecord
	pool     []model.RawGameRecord
}

// NewCatalogs copies sets into a new Catalogs. Entries for filters without a
// catalog of their own are ignored; missing filters get an empty catalog.
func NewCatalogs(sets map[model.Filter][]model.RawGameRecord) *Catalogs {
	c := &Catalogs{byFilter: make(map[model.Filter][]model.RawGameRecord, len(model.Filters()))}
	for _, f := range model.Filters() {
		src := sets[f]
		dst := make([]model.RawGameRecord, len(src))
		copy(dst, src)
		c.byFilter[f] = dst
		metrics.UpdateCatalogRecords(string(f), len(dst))
	}

	newest, most := c.byFilter[model.FilterNewest], c.byFilter[model.FilterMostPlayed]
	c.pool = make([]model.RawGameRecord, 0, len(newest)+len(most))
	c.pool = append(c.pool, newest...)
	c.pool = append(c.pool, most...)
	return c
}

// Select returns the catalog for f. Filters without a catalog fall back to
// most played. The returned slice must not be modified.
func (c *Catalogs) Select(f model.Filter) []model.RawGameRecord {
	if !f.Known() {
		f = model.FilterMostPlayed
	}
	return c.byFilter[f]
}

// LookupPool returns newest followed by most played. Only these two catalogs
// are searched by single-game lookups, so a game listed only in best rated
// or best on mobile cannot be opened by id.
func (c *Catalogs) LookupPool() []model.RawGameRecord {
	return c.pool
}

// Count returns the number of records in the catalog for f.
func (c *Catalogs) Count(f model.Filter) int {
	return len(c.Select(f))
}

// Counts returns the record count of every catalog.
func (c *Catalogs) Counts() map[model.Filter]int {
	out := make(map[model.Filter]int, len(c.byFilter))
	for f, recs := range c.byFilter {
		out[f] = len(recs)
	}
	return out
}
