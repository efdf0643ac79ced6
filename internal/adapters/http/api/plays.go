package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/fthomas67/ninjagamezone/internal/adapters/mq/queue"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
)

// maxPlayBody bounds the size of a play event request body.
const maxPlayBody = 4 << 10

// PlayDependencies accepts play events.
type PlayDependencies interface {
	Enqueue(ctx context.Context, e model.PlayEvent) (model.PlayEvent, error)
}

// PlaysHandler handles play event submissions.
type PlaysHandler struct {
	deps PlayDependencies
}

// NewPlaysHandler creates a new plays handler.
func NewPlaysHandler(deps PlayDependencies) *PlaysHandler {
	return &PlaysHandler{deps: deps}
}

type playRequest struct {
	EventID string `json:"event_id"`
	GameID  string `json:"game_id"`
	TS      string `json:"ts"`
}

type playAccepted struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

// HandlePostPlay handles POST /plays. The event is processed asynchronously
// and the handler answers 202 once it is queued.
func (h *PlaysHandler) HandlePostPlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req playRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlayBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("post play", ErrBadRequest, errors.New("invalid json")))
		return
	}

	e, err := req.toEvent()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("post play", ErrBadRequest, err))
		return
	}

	e, err = h.deps.Enqueue(r.Context(), e)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, playAccepted{Status: "accepted", EventID: e.EventID})
	case errors.Is(err, queue.ErrFull) || errors.Is(err, queue.ErrClosed):
		writeError(w, http.StatusTooManyRequests, "backpressure", WrapKind("post play", ErrBackpressure, err))
	default:
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind("post play", ErrUnavailable, err))
	}
}

func (req playRequest) toEvent() (model.PlayEvent, error) {
	e := model.PlayEvent{
		EventID: strings.TrimSpace(req.EventID),
		GameID:  strings.TrimSpace(req.GameID),
	}
	if e.GameID == "" {
		return e, errors.New("game_id is required")
	}
	if ts := strings.TrimSpace(req.TS); ts != "" {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return e, fmt.Errorf("ts must be RFC3339: %w", err)
		}
		e.TS = t.UTC()
	}
	return e, nil
}
