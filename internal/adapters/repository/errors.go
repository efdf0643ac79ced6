package repository

import "errors"

// Sentinel kinds for catalog storage errors.
var (
	ErrInvalidCatalog = errors.New("invalid catalog file")
	ErrRecentFile     = errors.New("recent list file")
)
