package probe

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

// walkCatalog fetches every page of filter and checks that the pages add up
// to the reported total with no repeats, and that the page after the last
// one is empty without a message.
func walkCatalog(ctx context.Context, c *httpClient, cfg *Config, filter string, stats *Stats) ([]Game, error) {
	var (
		games []Game
		total = -1
		seen  = make(map[string]int)
	)

	for page := 1; page <= maxPages; page++ {
		var p Page
		if err := c.getJSON(ctx, pagePath(filter, page, cfg.PageSize), &p); err != nil {
			return nil, err
		}
		stats.PagesFetched++

		if total < 0 {
			total = p.Total
			if total == 0 {
				logger.Get().Info(ctx, "catalog is empty", logger.String("filter", filter), logger.String("message", p.Message))
				return nil, nil
			}
		} else if p.Total != total {
			return nil, fmt.Errorf("%w: %s total changed from %d to %d on page %d", ErrLossyPagination, filter, total, p.Total, page)
		}

		if len(p.Items) == 0 {
			if p.Message != "" {
				return nil, fmt.Errorf("%w: %s page %d past the end carries message %q", ErrLossyPagination, filter, page, p.Message)
			}
			break
		}
		if len(p.Items) > cfg.PageSize {
			return nil, fmt.Errorf("%w: %s page %d has %d items for page_size %d", ErrLossyPagination, filter, page, len(p.Items), cfg.PageSize)
		}
		for _, g := range p.Items {
			seen[g.ID]++
			games = append(games, g)
		}
		if cfg.Verbose {
			logger.Get().Debug(ctx, "page fetched", logger.String("filter", filter), logger.Int("page", page), logger.Int("items", len(p.Items)))
		}
	}

	if len(games) != total {
		return nil, fmt.Errorf("%w: %s walked %d games, total says %d", ErrLossyPagination, filter, len(games), total)
	}
	// Feeds may list an id twice, so distinct ids can be fewer than total.
	stats.GamesSeen += len(seen)
	return games, nil
}

func pagePath(filter string, page, pageSize int) string {
	q := url.Values{}
	q.Set("filter", filter)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return "/games?" + q.Encode()
}
