package probe

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

// submitPlays posts cfg.Plays play events, all but the last spread over ids
// by a pool of cfg.Workers submitters. The last play is for last and is
// sent once the others are done. It reports whether that play was accepted.
func submitPlays(ctx context.Context, c *httpClient, cfg *Config, ids []string, last string, stats *Stats) bool {
	if len(ids) == 0 || cfg.Plays <= 0 {
		return false
	}

	var accepted, rejected, failed int64
	plays := make(chan Play, cfg.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range plays {
				status, err := c.postJSON(ctx, "/plays", p)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
				case status == http.StatusAccepted:
					atomic.AddInt64(&accepted, 1)
				case status == http.StatusTooManyRequests:
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

send:
	for i := 0; i < cfg.Plays-1; i++ {
		p := Play{EventID: uuid.NewString(), GameID: ids[i%len(ids)], TS: time.Now().UTC().Format(time.RFC3339)}
		select {
		case <-ctx.Done():
			break send
		case plays <- p:
		}
	}
	close(plays)
	wg.Wait()

	ok := false
	if ctx.Err() == nil {
		status, err := c.postJSON(ctx, "/plays", Play{EventID: uuid.NewString(), GameID: last})
		switch {
		case err != nil:
			failed++
		case status == http.StatusAccepted:
			accepted++
			ok = true
		default:
			rejected++
		}
	}

	stats.PlaysSubmitted = int(accepted + rejected + failed)
	stats.PlaysAccepted = int(accepted)
	stats.PlaysRejected = int(rejected)
	stats.PlaysFailed = int(failed)

	logger.Get().Info(ctx, "plays submitted",
		logger.Int("accepted", stats.PlaysAccepted),
		logger.Int("rejected", stats.PlaysRejected),
		logger.Int("failed", stats.PlaysFailed))
	return ok
}
