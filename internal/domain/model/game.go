package model

import (
	"strconv"
	"strings"
)

// Game is the canonical, normalized form of a catalog record. Values are
// built once by the normalizer and never modified afterwards.
type Game struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions,omitempty"`
	URL          string   `json:"url"`
	Thumbnail    string   `json:"thumbnail"`
	CategoryID   int      `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Tags         []string `json:"tags"`
	Popularity   int      `json:"popularity"`
	Featured     bool     `json:"featured,omitempty"`
	New          bool     `json:"new,omitempty"`
	Width        string   `json:"width,omitempty"`
	Height       string   `json:"height,omitempty"`

	// SimilarGames is only populated by a single-game lookup.
	SimilarGames []Game `json:"similar_games,omitempty"`
}

// Dimensions parses the native width and height. ok is false when either
// value is missing or not a positive integer.
func (g *Game) Dimensions() (width, height int, ok bool) {
	w, err := strconv.Atoi(strings.TrimSpace(g.Width))
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(g.Height))
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
