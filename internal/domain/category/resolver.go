// Package category maps between category ids and names and decides whether a
// raw catalog record belongs to a category.
package category

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/fthomas67/ninjagamezone/pkg/slug"
)

// AllID is the id of the catch-all category. It matches every record.
const AllID = 0

//go:embed categories.yaml
var tableData []byte

// ErrInvalidTable is returned when a category table breaks the id invariants.
var ErrInvalidTable = errors.New("invalid category table")

// Category is one row of the category table.
type Category struct {
	ID         int      `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Label      string   `yaml:"label" json:"label"`
	Emoji      string   `yaml:"emoji" json:"emoji"`
	Variations []string `yaml:"variations" json:"-"`
	Slug       string   `yaml:"-" json:"slug"`
}

type tableFile struct {
	Categories []Category `yaml:"categories"`
}

// Resolver answers id/name questions against an immutable category table.
// It is safe for concurrent use.
type Resolver struct {
	byID   []Category
	byName map[string]int
	bySlug map[string]int
	// lower-cased canonical name plus variations, indexed by id
	match [][]string
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the resolver for the embedded category table.
func Default() *Resolver {
	defaultOnce.Do(func() {
		r, err := Load(tableData)
		if err != nil {
			panic(fmt.Sprintf("category: embedded table: %v", err))
		}
		defaultResolver = r
	})
	return defaultResolver
}

// Load parses a YAML category table. Ids must be unique, dense and start at 0.
func Load(data []byte) (*Resolver, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidTable, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidTable)
	}

	r := &Resolver{
		byID:   make([]Category, len(f.Categories)),
		byName: make(map[string]int, len(f.Categories)),
		bySlug: make(map[string]int, len(f.Categories)*2),
		match:  make([][]string, len(f.Categories)),
	}
	seen := make([]bool, len(f.Categories))

	for _, c := range f.Categories {
		if c.ID < 0 || c.ID >= len(f.Categories) {
			return nil, fmt.Errorf("%w: id %d outside 0..%d", ErrInvalidTable, c.ID, len(f.Categories)-1)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidTable, c.ID)
		}
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("%w: empty name for id %d", ErrInvalidTable, c.ID)
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidTable, c.Name)
		}
		if c.Label == "" {
			c.Label = c.Name
		}
		c.Slug = slug.Make(c.Name)

		seen[c.ID] = true
		r.byID[c.ID] = c
		r.byName[c.Name] = c.ID
		r.bySlug[c.Slug] = c.ID
		if ls := slug.Make(c.Label); ls != "" {
			if _, taken := r.bySlug[ls]; !taken {
				r.bySlug[ls] = c.ID
			}
		}
		r.match[c.ID] = matchTerms(c)
	}

	return r, nil
}

// matchTerms returns the canonical name and its non-empty variations,
// lower-cased and without duplicates.
func matchTerms(c Category) []string {
	terms := []string{strings.ToLower(c.Name)}
	for _, v := range c.Variations {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		dup := false
		for _, t := range terms {
			if t == v {
				dup = true
				break
			}
		}
		if !dup {
			terms = append(terms, v)
		}
	}
	return terms
}

// Len returns the number of categories.
func (r *Resolver) Len() int {
	return len(r.byID)
}

// Known reports whether id is present in the table.
func (r *Resolver) Known(id int) bool {
	return id >= 0 && id < len(r.byID)
}

// IDFromName returns the id for an exact canonical name, or AllID.
func (r *Resolver) IDFromName(name string) int {
	if id, ok := r.byName[name]; ok {
		return id
	}
	return AllID
}

// NameFromID returns the canonical name for id, or the AllID name.
func (r *Resolver) NameFromID(id int) string {
	if !r.Known(id) {
		return r.byID[AllID].Name
	}
	return r.byID[id].Name
}

// Variations returns the canonical name of id followed by its known
// alternative spellings.
func (r *Resolver) Variations(id int) []string {
	if !r.Known(id) {
		id = AllID
	}
	c := r.byID[id]
	out := make([]string, 0, 1+len(c.Variations))
	out = append(out, c.Name)
	for _, v := range c.Variations {
		v = strings.TrimSpace(v)
		if v != "" && v != c.Name {
			out = append(out, v)
		}
	}
	return out
}

// Matches reports whether a raw record belongs to category id.
//
// A record matches when its raw category equals the canonical name exactly,
// or when its tag string contains the name or one of its variations,
// ignoring case. Feed labels are inconsistent, which is why the tag string
// counts as a second signal. AllID and unknown ids match everything.
func (r *Resolver) Matches(id int, rawCategory, rawTags string) bool {
	if id == AllID || !r.Known(id) {
		return true
	}
	if rawCategory == r.byID[id].Name {
		return true
	}
	if rawTags == "" {
		return false
	}
	tags := strings.ToLower(rawTags)
	for _, term := range r.match[id] {
		if strings.Contains(tags, term) {
			return true
		}
	}
	return false
}

// Get returns the category with the given id.
func (r *Resolver) Get(id int) (Category, bool) {
	if !r.Known(id) {
		return Category{}, false
	}
	return r.byID[id], true
}

// BySlug resolves a URL slug built from either the canonical name or the
// display label.
func (r *Resolver) BySlug(s string) (Category, bool) {
	id, ok := r.bySlug[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Category{}, false
	}
	return r.byID[id], true
}

// Categories returns a copy of the table ordered by id.
func (r *Resolver) Categories() []Category {
	out := make([]Category, len(r.byID))
	copy(out, r.byID)
	return out
}
