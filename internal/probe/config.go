// Package probe drives a running catalog service over HTTP and checks the
// guarantees clients rely on: lossless pagination, similar game lookups and
// the play event pipeline.
package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL      string        // Base URL of the service
	Filters      []string      // Catalog filters to walk
	PageSize     int           // page_size used while walking
	SimilarLimit int           // Most similar games a lookup may return
	Plays        int           // Number of play events to submit
	Workers      int           // Concurrent play submitters
	Timeout      time.Duration // HTTP request timeout
	Settle       time.Duration // Wait between submitting plays and reading /recent
	Verbose      bool
}

// Game is the subset of the game payload the probe inspects.
type Game struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	CategoryID   int    `json:"category_id"`
	SimilarGames []Game `json:"similar_games"`
}

// Page mirrors the paginated listing payload.
type Page struct {
	Items    []Game `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Message  string `json:"message"`
}

// Play is the body of POST /plays.
type Play struct {
	EventID string `json:"event_id"`
	GameID  string `json:"game_id"`
	TS      string `json:"ts"`
}

// Stats holds probe results.
type Stats struct {
	PagesFetched   int
	GamesSeen      int
	GamesLookedUp  int
	PlaysSubmitted int
	PlaysAccepted  int
	PlaysRejected  int
	PlaysFailed    int
	RecentSize     int
	StartTime      time.Time
	Duration       time.Duration
}
