package worker

import "errors"

// ErrUnknownGame marks a play event for a game outside the lookup pool.
var ErrUnknownGame = errors.New("unknown game")
