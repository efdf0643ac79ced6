// Package model contains domain models passed between layers.
package model

import "time"

// RawGameRecord is one entry of a catalog source file. Field names mirror the
// upstream JSON feed; none of them are validated.
type RawGameRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumb"`
	Category     string `json:"category"`
	Tags         string `json:"tags"` // "Action, Multiplayer, 3D"
	Width        string `json:"width,omitempty"`
	Height       string `json:"height,omitempty"`
}

// PlayEvent records that a game was opened by the player.
type PlayEvent struct {
	EventID string    // unique id, assigned by the API when the client omits it
	GameID  string    // catalog id of the played game
	TS      time.Time // when the game was opened
}
