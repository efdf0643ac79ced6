// Package similarity ranks catalog records by tag overlap with a target game.
package similarity

import (
	"sort"
	"strings"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
)

// DefaultLimit is the number of similar games returned when the caller does
// not ask for a specific count.
const DefaultLimit = 6

// Option configures a Ranker.
type Option func(*Ranker)

// WithNormalizer sets the normalizer used to build the returned games.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(r *Ranker) {
		if n != nil {
			r.normalizer = n
		}
	}
}

// Ranker finds games sharing tags with a target.
type Ranker struct {
	normalizer *normalize.Normalizer
}

// New creates a Ranker.
func New(opts ...Option) *Ranker {
	r := &Ranker{}
	for _, opt := range opts {
		opt(r)
	}
	if r.normalizer == nil {
		r.normalizer = normalize.New()
	}
	return r
}

type candidate struct {
	raw   *model.RawGameRecord
	score int
}

// FindSimilar returns at most limit games from pool ordered by descending
// tag overlap with target. The target itself and records sharing no tag are
// left out; ties keep pool order. A record id appearing several times in pool
// is scored once, at its first occurrence.
func (r *Ranker) FindSimilar(target model.Game, pool []model.RawGameRecord, limit int) []model.Game {
	if limit < 1 {
		return []model.Game{}
	}

	want := TokenSet(target.Tags)
	if len(want) == 0 {
		return []model.Game{}
	}

	seen := make(map[string]struct{}, len(pool))
	candidates := make([]candidate, 0, len(pool))
	for i := range pool {
		raw := &pool[i]
		if raw.ID == target.ID {
			continue
		}
		if _, dup := seen[raw.ID]; dup {
			continue
		}
		seen[raw.ID] = struct{}{}

		if s := overlap(want, normalize.SplitTags(raw.Tags)); s > 0 {
			candidates = append(candidates, candidate{raw: raw, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]model.Game, len(candidates))
	for i, c := range candidates {
		out[i] = r.normalizer.Normalize(*c.raw)
	}
	return out
}

// Score returns the number of distinct case-insensitive tags shared by a and
// the raw tag string b.
func Score(a []string, b string) int {
	return overlap(TokenSet(a), normalize.SplitTags(b))
}

// TokenSet lower-cases tags into a set. Empty tags are ignored.
func TokenSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

func overlap(want map[string]struct{}, tags []string) int {
	if len(tags) == 0 {
		return 0
	}
	counted := make(map[string]struct{}, len(tags))
	n := 0
	for _, t := range tags {
		t = strings.ToLower(t)
		if _, ok := want[t]; !ok {
			continue
		}
		if _, dup := counted[t]; dup {
			continue
		}
		counted[t] = struct{}{}
		n++
	}
	return n
}
