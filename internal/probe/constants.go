package probe

import "time"

// Defaults applied by Run when a Config field is zero.
const (
	DefaultPageSize     = 10
	DefaultSimilarLimit = 6
	DefaultWorkers      = 4
	DefaultTimeout      = 10 * time.Second
	DefaultSettle       = 500 * time.Millisecond
)

// Upper bound on pages walked per filter, in case a server never reports
// an end.
const maxPages = 10000
