package query

import (
	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
	"github.com/fthomas67/ninjagamezone/internal/domain/similarity"
)

// Default engine configuration.
const (
	DefaultPageSize = 24
)

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultPageSize sets the page size used when a caller passes a page
// size below one.
func WithDefaultPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultPageSize = n
		}
	}
}

// WithSimilarLimit sets how many similar games a lookup attaches.
func WithSimilarLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.similarLimit = n
		}
	}
}

// WithResolver sets the category resolver.
func WithResolver(r *category.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithNormalizer sets the record normalizer. The similarity ranker shares it.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// WithRanker sets the similarity ranker.
func WithRanker(r *similarity.Ranker) Option {
	return func(e *Engine) {
		if r != nil {
			e.ranker = r
		}
	}
}
