package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

// Run executes every probe step against cfg.BaseURL and returns the first
// failed check.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	applyDefaults(cfg)
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(cfg)
	log := logger.Get().Named("probe")

	log.Info(ctx, "starting catalog probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Any("filters", cfg.Filters),
		logger.Int("pageSize", cfg.PageSize),
		logger.Int("similarLimit", cfg.SimilarLimit),
		logger.Int("plays", cfg.Plays),
		logger.Int("workers", cfg.Workers))

	if err := client.getJSON(ctx, "/healthz", nil); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	var (
		ids    []string
		anchor string
	)
	for _, f := range cfg.Filters {
		games, err := walkCatalog(ctx, client, cfg, f, stats)
		if err != nil {
			return stats, err
		}
		log.Info(ctx, "catalog walked", logger.String("filter", f), logger.Int("games", len(games)))

		if len(games) == 0 {
			continue
		}
		found, err := checkLookup(ctx, client, cfg, f, games[0], stats)
		if err != nil {
			return stats, err
		}
		// Plays for games the service cannot look up are dropped, so the
		// final play goes to a game known to resolve.
		if found && anchor == "" {
			anchor = games[0].ID
		}
		for _, g := range games {
			ids = append(ids, g.ID)
		}
	}

	if anchor != "" && submitPlays(ctx, client, cfg, ids, anchor, stats) {
		if err := checkRecent(ctx, client, cfg, anchor, stats); err != nil {
			return stats, err
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	displayFinalStats(ctx, stats)
	return stats, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Filters) == 0 {
		cfg.Filters = []string{"newest", "mostplayed", "bestgames", "bestonmobile"}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = DefaultSimilarLimit
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultSettle
	}
}

// checkRecent waits for the workers to drain and expects last in the
// recently played list. Concurrent workers may reorder the final few plays,
// so only membership is checked.
func checkRecent(ctx context.Context, c *httpClient, cfg *Config, last string, stats *Stats) error {
	var body struct {
		Items []Game `json:"items"`
	}
	deadline := time.Now().Add(cfg.Settle)
	for {
		if err := c.getJSON(ctx, "/recent", &body); err != nil {
			return err
		}
		for _, g := range body.Items {
			if g.ID == last {
				stats.RecentSize = len(body.Items)
				return nil
			}
		}
		if time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.Settle / 10):
		}
	}
	return fmt.Errorf("%w: %s missing from %d recent games", ErrRecentMismatch, last, len(body.Items))
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "final statistics",
		logger.Int("pagesFetched", stats.PagesFetched),
		logger.Int("gamesSeen", stats.GamesSeen),
		logger.Int("gamesLookedUp", stats.GamesLookedUp),
		logger.Int("playsSubmitted", stats.PlaysSubmitted),
		logger.Int("playsAccepted", stats.PlaysAccepted),
		logger.Int("playsRejected", stats.PlaysRejected),
		logger.Int("recentSize", stats.RecentSize),
		logger.Duration("duration", stats.Duration))
}
