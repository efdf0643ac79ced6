package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// lookupPool lists the filters whose games must always resolve by id.
var lookupPool = map[string]bool{"newest": true, "mostplayed": true}

// checkLookup fetches g, walked from filter, by id and checks that its
// similar games exclude the game itself and carry no duplicate ids. found is
// false when the service does not serve lookups for g, which is only
// accepted for filters outside the lookup pool.
func checkLookup(ctx context.Context, c *httpClient, cfg *Config, filter string, g Game, stats *Stats) (found bool, err error) {
	var got Game
	if err := c.getJSON(ctx, "/games/"+url.PathEscape(g.ID), &got); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			if lookupPool[filter] {
				return false, fmt.Errorf("%w: %s from %s", ErrLookupMissing, g.ID, filter)
			}
			return false, nil
		}
		return false, err
	}
	stats.GamesLookedUp++

	if got.ID != g.ID {
		return true, fmt.Errorf("%w: asked for %s, got %s", ErrBadSimilar, g.ID, got.ID)
	}
	if len(got.SimilarGames) > cfg.SimilarLimit {
		return true, fmt.Errorf("%w: %s has %d similar games, limit %d", ErrBadSimilar, g.ID, len(got.SimilarGames), cfg.SimilarLimit)
	}
	seen := make(map[string]bool, len(got.SimilarGames))
	for _, s := range got.SimilarGames {
		if s.ID == g.ID {
			return true, fmt.Errorf("%w: %s lists itself", ErrBadSimilar, g.ID)
		}
		if seen[s.ID] {
			return true, fmt.Errorf("%w: %s lists %s twice", ErrBadSimilar, g.ID, s.ID)
		}
		if len(s.SimilarGames) != 0 {
			return true, fmt.Errorf("%w: %s nests similar games under %s", ErrBadSimilar, g.ID, s.ID)
		}
		seen[s.ID] = true
	}
	return true, nil
}
