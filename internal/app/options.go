package service

import (
	"strings"

	"github.com/fthomas67/ninjagamezone/internal/adapters/repository"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalogDir loads catalogs from dir instead of the embedded samples.
func WithCatalogDir(dir string) Option {
	return func(s *Service) {
		s.catalogDir = dir
	}
}

// WithCatalogs uses already loaded catalogs. It takes precedence over
// WithCatalogDir.
func WithCatalogs(c *repository.Catalogs) Option {
	return func(s *Service) {
		if c != nil {
			s.catalogs = c
		}
	}
}

// WithDefaultPageSize sets the page size used when a request has none.
func WithDefaultPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultPageSize = n
		}
	}
}

// WithSimilarLimit sets how many similar games a game lookup returns.
func WithSimilarLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.similarLimit = n
		}
	}
}

// WithRecentCapacity sets the size of the recently played list.
func WithRecentCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentCapacity = n
		}
	}
}

// WithRecentPath persists the recently played list to path. An empty path
// keeps the list in memory only.
func WithRecentPath(path string) Option {
	return func(s *Service) {
		s.recentPath = path
	}
}

// WithQueueSize sets the maximum number of pending play events.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of play event workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithPopularity sets how popularity is derived and the seed used by the
// random mode.
func WithPopularity(mode string, seed int64) Option {
	return func(s *Service) {
		if m := normalize.Mode(strings.ToLower(strings.TrimSpace(mode))); m.Valid() {
			s.popularityMode = m
		}
		s.popularitySeed = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
