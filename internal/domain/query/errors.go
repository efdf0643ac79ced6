package query

import "errors"

// ErrGameNotFound is returned by callers that need an error for a failed
// lookup. The engine itself reports absence through a boolean.
var ErrGameNotFound = errors.New("game not found")
