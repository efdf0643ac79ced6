package model

import "strings"

// Filter selects one of the popularity catalogs.
type Filter string

// Known catalog filters.
const (
	FilterNewest       Filter = "newest"
	FilterMostPlayed   Filter = "mostplayed"
	FilterBestRated    Filter = "bestgames"
	FilterBestOnMobile Filter = "bestonmobile"

	// FilterHot is accepted from clients but has no catalog of its own.
	FilterHot Filter = "hotgames"
)

// Filters lists the filters that own a catalog, in display order.
func Filters() []Filter {
	return []Filter{FilterNewest, FilterMostPlayed, FilterBestRated, FilterBestOnMobile}
}

// Known reports whether f owns a catalog.
func (f Filter) Known() bool {
	switch f {
	case FilterNewest, FilterMostPlayed, FilterBestRated, FilterBestOnMobile:
		return true
	}
	return false
}

// Path segments used by the portal for the filter pages.
var filterSlugs = map[string]Filter{
	"plus-recents": FilterNewest,
	"plus-joues":   FilterMostPlayed,
	"mieux-notes":  FilterBestRated,
}

// Slug returns the portal path segment for f, or the filter value itself
// when the portal has no page for it.
func (f Filter) Slug() string {
	for s, v := range filterSlugs {
		if v == f {
			return s
		}
	}
	return string(f)
}

// ParseFilter maps a client value or portal slug to a catalog filter.
// Anything that does not own a catalog, hotgames included, falls back to
// most played.
func ParseFilter(s string) Filter {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := filterSlugs[s]; ok {
		return f
	}
	if f := Filter(s); f.Known() {
		return f
	}
	return FilterMostPlayed
}
