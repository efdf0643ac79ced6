package probe

import "errors"

// Check failures reported by Run.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrLossyPagination  = errors.New("pagination lost or repeated games")
	ErrBadSimilar       = errors.New("similar games violate lookup rules")
	ErrRecentMismatch   = errors.New("recent list does not reflect plays")
	ErrLookupMissing    = errors.New("game from the lookup pool did not resolve")
)
