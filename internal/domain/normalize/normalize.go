// Package normalize turns raw catalog records into canonical games.
package normalize

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"

	"github.com/fthomas67/ninjagamezone/internal/domain/category"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/pkg/slug"
)

// TagSeparator delimits tags inside a raw record.
const TagSeparator = ", "

const (
	defaultRandomSeed = 42
	popularityRange   = 100
	featuredCutoff    = 8 // out of 10
	newCutoff         = 7 // out of 10
)

// Mode selects how popularity and the cosmetic flags are derived.
type Mode string

const (
	// ModeHashed derives popularity from the record id, so the same record
	// always normalizes to the same game.
	ModeHashed Mode = "hashed"
	// ModeRandom draws popularity from a seeded generator on every call.
	ModeRandom Mode = "random"
)

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == ModeHashed || m == ModeRandom
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithResolver sets the category resolver.
func WithResolver(r *category.Resolver) Option {
	return func(n *Normalizer) {
		if r != nil {
			n.resolver = r
		}
	}
}

// WithMode sets the popularity mode. Unknown modes are ignored.
func WithMode(m Mode) Option {
	return func(n *Normalizer) {
		if m.Valid() {
			n.mode = m
		}
	}
}

// WithSeed seeds the generator used by ModeRandom.
func WithSeed(seed int64) Option {
	return func(n *Normalizer) {
		n.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // cosmetic values only
	}
}

// Normalizer converts RawGameRecord values into model.Game values.
// It is safe for concurrent use.
type Normalizer struct {
	resolver *category.Resolver
	mode     Mode

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Normalizer. By default it uses the embedded category table
// and hashed popularity.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		resolver: category.Default(),
		mode:     ModeHashed,
		rng:      rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // cosmetic values only
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Mode returns the popularity mode in use.
func (n *Normalizer) Mode() Mode {
	return n.mode
}

// Normalize builds the canonical game for raw. It never fails: an unknown
// category resolves to category.AllID and empty tags yield an empty slice.
func (n *Normalizer) Normalize(raw model.RawGameRecord) model.Game {
	title := strings.TrimSpace(raw.Title)
	g := model.Game{
		ID:           raw.ID,
		Title:        title,
		Slug:         slug.Make(title),
		Description:  raw.Description,
		Instructions: raw.Instructions,
		URL:          raw.URL,
		Thumbnail:    raw.Thumbnail,
		CategoryID:   n.resolver.IDFromName(raw.Category),
		CategoryName: raw.Category,
		Tags:         SplitTags(raw.Tags),
		Width:        raw.Width,
		Height:       raw.Height,
	}
	g.Popularity, g.Featured, g.New = n.rank(raw.ID)
	return g
}

// NormalizeAll normalizes records in order.
func (n *Normalizer) NormalizeAll(raws []model.RawGameRecord) []model.Game {
	out := make([]model.Game, len(raws))
	for i := range raws {
		out[i] = n.Normalize(raws[i])
	}
	return out
}

func (n *Normalizer) rank(id string) (popularity int, featured, isNew bool) {
	if n.mode == ModeRandom {
		n.mu.Lock()
		defer n.mu.Unlock()
		return n.rng.Intn(popularityRange), n.rng.Intn(10) >= featuredCutoff, n.rng.Intn(10) >= newCutoff
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum64()
	return int(sum % popularityRange), (sum>>20)%10 >= featuredCutoff, (sum>>40)%10 >= newCutoff
}

// SplitTags splits a raw tag string on TagSeparator. The empty string yields
// an empty, non-nil slice.
func SplitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, TagSeparator)
}
