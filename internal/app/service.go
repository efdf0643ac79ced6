// Package service wires the catalogs, the query engine and the play event
// pipeline into the operations the HTTP API exposes.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	eventqueue "github.com/fthomas67/ninjagamezone/internal/adapters/mq/queue"
	workerpool "github.com/fthomas67/ninjagamezone/internal/adapters/mq/worker"
	"github.com/fthomas67/ninjagamezone/internal/adapters/repository"
	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
	"github.com/fthomas67/ninjagamezone/internal/domain/query"
	"github.com/fthomas67/ninjagamezone/internal/domain/recent"
	"github.com/fthomas67/ninjagamezone/internal/domain/similarity"
	"github.com/fthomas67/ninjagamezone/pkg/logger"
	"github.com/fthomas67/ninjagamezone/pkg/metrics"
)

// homeSections lists the home page strips in display order. hotgames has no
// catalog and shows most played.
var homeSections = []struct {
	filter model.Filter
	title  string
}{
	{model.FilterMostPlayed, "Les plus joués"},
	{model.FilterNewest, "Plus récents"},
	{model.FilterBestRated, "Mieux notés"},
	{model.FilterHot, "Tendances"},
}

// Service implements the API dependencies for the catalog portal.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalogs   *repository.Catalogs
	resolver   *category.Resolver
	engine     *query.Engine
	recent     recent.List
	eventQueue eventqueue.Queue
	workerPool *workerpool.Pool

	// Configuration
	catalogDir      string
	defaultPageSize int
	similarLimit    int
	recentCapacity  int
	recentPath      string
	queueSize       int
	workerCount     int
	popularityMode  normalize.Mode
	popularitySeed  int64

	started bool
	logger  logger.Logger
}

// New constructs a Service with default configuration. Nothing is loaded
// until Start.
func New(opts ...Option) *Service {
	s := &Service{
		defaultPageSize: query.DefaultPageSize,
		similarLimit:    similarity.DefaultLimit,
		recentCapacity:  12,
		queueSize:       1024,
		workerCount:     runtime.NumCPU(),
		popularityMode:  normalize.ModeHashed,
		popularitySeed:  42,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalogs, restores the recent list and starts the workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting catalog service...")

	if s.catalogs == nil {
		c, err := repository.NewLoader(repository.WithDir(s.catalogDir)).Load(ctx)
		if err != nil {
			return fmt.Errorf("load catalogs: %w", err)
		}
		s.catalogs = c
	}

	s.resolver = category.Default()
	normalizer := normalize.New(
		normalize.WithResolver(s.resolver),
		normalize.WithMode(s.popularityMode),
		normalize.WithSeed(s.popularitySeed),
	)
	s.engine = query.New(s.catalogs,
		query.WithResolver(s.resolver),
		query.WithNormalizer(normalizer),
		query.WithRanker(similarity.New(similarity.WithNormalizer(normalizer))),
		query.WithDefaultPageSize(s.defaultPageSize),
		query.WithSimilarLimit(s.similarLimit),
	)
	metrics.UpdateCategoryCount(s.resolver.Len())

	s.recent = recent.New(recent.WithCapacity(s.recentCapacity))
	if s.recentPath != "" {
		ids, err := repository.LoadRecent(s.recentPath)
		if err != nil {
			// A corrupt file only costs the history.
			s.logger.Warn(ctx, "ignoring recent list file", logger.String("path", s.recentPath), logger.Error(err))
		}
		s.recent.Restore(ids)
	}
	metrics.UpdateRecentSize(int(s.recent.Size()))

	s.eventQueue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	s.workerPool = workerpool.NewPool(s.workerCount, s.eventQueue, s.engine, s.recent)
	s.workerPool.Start(context.WithoutCancel(ctx))

	s.started = true
	counts := s.catalogs.Counts()
	s.logger.Info(ctx, "catalog service started",
		logger.Int("newest", counts[model.FilterNewest]),
		logger.Int("mostplayed", counts[model.FilterMostPlayed]),
		logger.Int("bestgames", counts[model.FilterBestRated]),
		logger.Int("bestonmobile", counts[model.FilterBestOnMobile]),
		logger.Int("workers", s.workerPool.Size()),
		logger.Int("queueSize", s.queueSize),
		logger.String("popularity", string(normalizer.Mode())),
	)
	return nil
}

// Stop drains the play queue and saves the recent list.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.logger.Info(ctx, "stopping catalog service...")

	var errs []error
	if err := s.workerPool.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.recentPath != "" {
		if err := repository.SaveRecent(s.recentPath, s.recent.IDs()); err != nil {
			errs = append(errs, err)
		}
	}

	s.started = false
	s.logger.Info(ctx, "catalog service stopped")
	return errors.Join(errs...)
}

func (s *Service) running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Games returns one page of a catalog, optionally restricted to a category.
func (s *Service) Games(ctx context.Context, filter model.Filter, categoryID, page, pageSize int) model.Page {
	start := time.Now()
	p := s.engine.Query(filter, categoryID, page, pageSize)
	metrics.RecordQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordQuery(string(model.ParseFilter(string(filter))), pageOutcome(&p))

	s.logger.Debug(ctx, "games query",
		logger.String("filter", string(filter)),
		logger.Int("category", categoryID),
		logger.Int("page", p.Page),
		logger.Int("total", p.Total),
	)
	return p
}

// Game returns the game with id and its similar games.
func (s *Service) Game(ctx context.Context, id string) (model.Game, error) {
	g, ok := s.engine.FindByID(id)
	if !ok {
		metrics.RecordLookup("not_found")
		return model.Game{}, fmt.Errorf("%w: %s", query.ErrGameNotFound, id)
	}
	metrics.RecordLookup("found")
	metrics.RecordSimilarResults(len(g.SimilarGames))
	return g, nil
}

// Search returns games whose title, description or tags contain keyword.
func (s *Service) Search(ctx context.Context, keyword string, page, pageSize int) model.Page {
	p := s.engine.Search(keyword, page, pageSize)
	metrics.RecordSearch(pageOutcome(&p))
	s.logger.Debug(ctx, "search", logger.String("keyword", keyword), logger.Int("total", p.Total))
	return p
}

// Categories lists every category ordered by id.
func (s *Service) Categories() []category.Category {
	return s.resolver.Categories()
}

// Category resolves a category by URL slug.
func (s *Service) Category(slug string) (category.Category, bool) {
	return s.resolver.BySlug(slug)
}

// CategoryByID resolves a category by id.
func (s *Service) CategoryByID(id int) (category.Category, bool) {
	return s.resolver.Get(id)
}

// Home returns the first perSection games of each home page strip.
func (s *Service) Home(ctx context.Context, perSection int) []model.Section {
	out := make([]model.Section, 0, len(homeSections))
	for _, sec := range homeSections {
		p := s.Games(ctx, sec.filter, category.AllID, 1, perSection)
		out = append(out, model.Section{Key: string(sec.filter), Title: sec.title, Games: p.Items})
	}
	return out
}

// Recent returns the recently played games, most recent first. Ids no longer
// in the catalogs are skipped.
func (s *Service) Recent(ctx context.Context) []model.Game {
	ids := s.recent.IDs()
	out := make([]model.Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.engine.Get(id); ok {
			out = append(out, g)
		}
	}
	return out
}

// Enqueue submits a play event. A missing event id or timestamp is filled in.
// The returned event is the one that was queued.
func (s *Service) Enqueue(ctx context.Context, e model.PlayEvent) (model.PlayEvent, error) {
	if !s.running() {
		return e, ErrNotStarted
	}
	if e.GameID == "" {
		return e, fmt.Errorf("%w: missing game_id", ErrInvalidEvent)
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.TS.IsZero() {
		e.TS = time.Now().UTC()
	}

	if err := s.eventQueue.Enqueue(ctx, e); err != nil {
		if errors.Is(err, eventqueue.ErrFull) || errors.Is(err, eventqueue.ErrClosed) {
			metrics.RecordPlayDropped("backpressure")
			return e, fmt.Errorf("%w: %w", ErrBackpressure, err)
		}
		return e, err
	}
	s.logger.Debug(ctx, "play event queued", logger.String("eventID", e.EventID), logger.String("gameID", e.GameID))
	return e, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"workerCount":     s.workerCount,
		"queueSize":       s.queueSize,
		"recentCapacity":  s.recentCapacity,
		"defaultPageSize": s.defaultPageSize,
		"similarLimit":    s.similarLimit,
		"popularityMode":  string(s.popularityMode),
	}

	if s.started {
		counts := make(map[string]int, len(model.Filters()))
		for f, n := range s.catalogs.Counts() {
			counts[string(f)] = n
		}
		stats["catalogs"] = counts
		stats["categories"] = s.resolver.Len()
		stats["queueLength"] = s.eventQueue.Len()
		stats["recentSize"] = s.recent.Size()
		stats["playsProcessed"] = s.workerPool.Processed()
		stats["playsDropped"] = s.workerPool.Dropped()

		metrics.UpdateQueueSize(s.eventQueue.Len())
	}
	return stats
}

func pageOutcome(p *model.Page) string {
	switch {
	case p.Empty():
		return "empty"
	case len(p.Items) == 0:
		return "beyond_end"
	default:
		return "ok"
	}
}
